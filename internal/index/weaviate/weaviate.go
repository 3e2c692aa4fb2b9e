package weaviate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	weaviate "github.com/weaviate/weaviate-go-client/v5/weaviate"
	filters "github.com/weaviate/weaviate-go-client/v5/weaviate/filters"
	gql "github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"

	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
)

// classForCollection maps logical collection names to Weaviate classes.
var classForCollection = map[string]string{
	index.CollectionKnowledge:   "KnowledgeChunk",
	index.CollectionSubmissions: "SubmissionChunk",
}

// chunkFields are the properties requested for every hit.
var chunkFields = []gql.Field{
	{Name: "text"},
	{Name: "assetId"},
	{Name: "companyId"},
	{Name: "userId"},
	{Name: "submissionId"},
	{Name: "chunkType"},
	{Name: "sourceFile"},
	{Name: "page"},
	{Name: "startTime"},
	{Name: "endTime"},
	{Name: "speaker"},
	{Name: "tableTitle"},
	{Name: "_additional", Fields: []gql.Field{{Name: "distance"}}},
}

// weavIndex implements index.Index using the Weaviate Go client.
type weavIndex struct {
	client  *weaviate.Client
	baseURL string // host:port without scheme
}

// New constructs an index.Index backed by Weaviate at baseURL.
// baseURL should be host:port (without scheme), e.g., "localhost:8081".
func New(baseURL string) (index.Index, error) {
	cfg := weaviate.Config{Scheme: "http", Host: baseURL}
	cl, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &weavIndex{client: cl, baseURL: baseURL}, nil
}

func (w *weavIndex) Query(ctx context.Context, q index.Query) ([]index.Hit, error) {
	className, ok := classForCollection[q.Collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection: %s", q.Collection)
	}
	if len(q.AssetIDs) == 0 {
		return []index.Hit{}, nil
	}

	near := w.client.GraphQL().NearVectorArgBuilder().WithVector(q.Vector)

	operands := []*filters.WhereBuilder{
		filters.Where().WithPath([]string{"assetId"}).WithOperator(filters.ContainsAny).WithValueText(q.AssetIDs...),
	}
	if q.CompanyID != "" {
		operands = append(operands,
			filters.Where().WithPath([]string{"companyId"}).WithOperator(filters.Equal).WithValueText(q.CompanyID))
	}
	if q.UserID != "" {
		operands = append(operands,
			filters.Where().WithPath([]string{"userId"}).WithOperator(filters.Equal).WithValueText(q.UserID))
	}
	where := filters.Where().WithOperator(filters.And).WithOperands(operands)

	resp, err := w.client.GraphQL().Get().
		WithClassName(className).
		WithWhere(where).
		WithNearVector(near).
		WithLimit(q.TopK).
		WithFields(chunkFields...).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("weaviate graphql: %s", formatGraphQLErrors(resp.Errors))
	}

	getData, ok := resp.Data["Get"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	val := getData[className]
	if val == nil {
		return []index.Hit{}, nil
	}
	raw, ok := val.([]interface{})
	if !ok {
		return nil, nil
	}

	out := make([]index.Hit, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		hit := index.Hit{
			Text: safeString(m["text"]),
			Meta: index.ChunkMeta{
				AssetID:      safeString(m["assetId"]),
				CompanyID:    safeString(m["companyId"]),
				UserID:       safeString(m["userId"]),
				SubmissionID: safeString(m["submissionId"]),
				ChunkType:    safeString(m["chunkType"]),
				SourceFile:   safeString(m["sourceFile"]),
				Page:         safeInt(m["page"]),
				Start:        safeString(m["startTime"]),
				End:          safeString(m["endTime"]),
				Speaker:      safeString(m["speaker"]),
				TableTitle:   safeString(m["tableTitle"]),
			},
		}
		if add, ok := m["_additional"].(map[string]interface{}); ok {
			hit.Distance = safeFloat(add["distance"])
		}
		out = append(out, hit)
	}
	return out, nil
}

// HealthPing implements index.HealthPinger.
// It calls GET http://<baseURL>/v1/meta and expects 200 OK.
func (w *weavIndex) HealthPing(ctx context.Context) error {
	if w == nil || w.baseURL == "" {
		return fmt.Errorf("weaviate baseURL missing")
	}
	url := w.baseURL
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"/v1/meta", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weaviate status %d", resp.StatusCode)
	}
	return nil
}

func safeString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func safeInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return 0
}

func safeFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}

// formatGraphQLErrors returns a compact string with messages extracted for logging.
func formatGraphQLErrors(errs interface{}) string {
	if b, err := json.Marshal(errs); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", errs)
}
