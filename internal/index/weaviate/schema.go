package weaviate

import (
	"context"
	"fmt"
	"time"

	weaviate "github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate/entities/models"
)

// Bootstrap ensures the KnowledgeChunk and SubmissionChunk classes exist.
// Vectors are supplied by the offline ingestion process, so both classes
// disable the built-in vectorizer. Existing classes are left untouched.
func Bootstrap(ctx context.Context, baseURL string) error {
	cfg := weaviate.Config{Scheme: "http", Host: baseURL}
	cl, err := weaviate.NewClient(cfg)
	if err != nil {
		return err
	}

	cctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	knowledge := &models.Class{
		Class:      "KnowledgeChunk",
		Vectorizer: "none",
		Properties: chunkProperties(),
	}
	submissions := &models.Class{
		Class:      "SubmissionChunk",
		Vectorizer: "none",
		Properties: chunkProperties(),
	}

	if err := ensureClass(cctx, cl, knowledge); err != nil {
		return fmt.Errorf("bootstrap KnowledgeChunk: %w", err)
	}
	if err := ensureClass(cctx, cl, submissions); err != nil {
		return fmt.Errorf("bootstrap SubmissionChunk: %w", err)
	}
	return nil
}

func chunkProperties() []*models.Property {
	return []*models.Property{
		{Name: "text", DataType: []string{"text"}},
		{Name: "assetId", DataType: []string{"text"}},
		{Name: "companyId", DataType: []string{"text"}},
		{Name: "userId", DataType: []string{"text"}},
		{Name: "submissionId", DataType: []string{"text"}},
		{Name: "chunkType", DataType: []string{"text"}},
		{Name: "sourceFile", DataType: []string{"text"}},
		{Name: "page", DataType: []string{"int"}},
		{Name: "startTime", DataType: []string{"text"}},
		{Name: "endTime", DataType: []string{"text"}},
		{Name: "speaker", DataType: []string{"text"}},
		{Name: "tableTitle", DataType: []string{"text"}},
	}
}

func ensureClass(ctx context.Context, cl *weaviate.Client, desired *models.Class) error {
	ex, err := cl.Schema().ClassGetter().WithClassName(desired.Class).Do(ctx)
	if err == nil && ex != nil {
		return nil
	}
	if err := cl.Schema().ClassCreator().WithClass(desired).Do(ctx); err != nil {
		return fmt.Errorf("create class %s: %w", desired.Class, err)
	}
	return nil
}
