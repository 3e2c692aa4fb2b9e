package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

const contextSeparator = "\n\n---\n\n"

// Assembled is the labeled context block handed to the answer model plus the
// matching ordered citations. Citation N always corresponds to the block
// labeled Source N (or Submission N).
type Assembled struct {
	Context   string
	Citations []model.Citation
}

// Assembler joins ranked chunks with relational metadata.
type Assembler struct {
	store store.Store
}

func NewAssembler(st store.Store) *Assembler {
	return &Assembler{store: st}
}

// AssembleKnowledge builds the knowledge context. Chunk order is preserved;
// an asset missing from the store degrades the citation to file-level
// metadata instead of dropping the chunk.
func (a *Assembler) AssembleKnowledge(ctx context.Context, chunks []Chunk) (*Assembled, error) {
	parts := make([]string, 0, len(chunks))
	citations := make([]model.Citation, 0, len(chunks))

	for i, ch := range chunks {
		sourceName := ch.SourceFile
		if sourceName == "" {
			sourceName = "Unknown"
		}
		assetType := "unknown"

		asset, err := a.store.Assets().Get(ctx, ch.AssetID)
		if err != nil && !model.IsNotFound(err) {
			return nil, err
		}
		if asset != nil {
			sourceName = strings.TrimSuffix(asset.FileName, ".json")
			assetType = asset.Type
		}

		citations = append(citations, model.Citation{
			Index:      i + 1,
			AssetID:    ch.AssetID,
			SourceFile: ch.SourceFile,
			SourceName: sourceName,
			AssetType:  assetType,
			ChunkType:  ch.ChunkType,
			Relevance:  Relevance(ch.Distance),
			Page:       ch.Page,
			Start:      ch.Start,
			End:        ch.End,
			Speaker:    ch.Speaker,
			TableTitle: ch.TableTitle,
		})

		label := fmt.Sprintf("[Source %d: %s", i+1, sourceName)
		if ch.Page > 0 {
			label += fmt.Sprintf(", Page %d", ch.Page)
		}
		if ch.Start != "" {
			label += fmt.Sprintf(", %s-%s", ch.Start, ch.End)
		}
		label += "]"
		parts = append(parts, label+"\n"+ch.Text)
	}

	return &Assembled{Context: strings.Join(parts, contextSeparator), Citations: citations}, nil
}

// AssembleHistory builds the submission context for one user. Submission
// details are prefetched in a single store call and joined by asset id;
// feedback, when present, is appended to both the citation and the context
// block.
func (a *Assembler) AssembleHistory(ctx context.Context, userID string, chunks []Chunk) (*Assembled, error) {
	details, err := a.store.Submissions().ListDetails(ctx, userID)
	if err != nil {
		return nil, err
	}
	byAsset := make(map[string]*model.SubmissionDetail, len(details))
	for _, d := range details {
		byAsset[d.AssetID] = d
	}

	parts := make([]string, 0, len(chunks))
	citations := make([]model.Citation, 0, len(chunks))

	for i, ch := range chunks {
		detail := byAsset[ch.AssetID]
		repTitle := "Practice"
		if detail != nil && detail.RepTitle != "" {
			repTitle = detail.RepTitle
		}

		c := model.Citation{
			Index:        i + 1,
			AssetID:      ch.AssetID,
			SourceFile:   ch.SourceFile,
			SourceName:   "Your submission: " + repTitle,
			AssetType:    "submission",
			ChunkType:    ch.ChunkType,
			SubmissionID: ch.SubmissionID,
			Relevance:    Relevance(ch.Distance),
			Start:        ch.Start,
			End:          ch.End,
		}

		feedbackNote := ""
		if detail != nil && detail.FeedbackScore != nil {
			c.FeedbackScore = detail.FeedbackScore
			c.FeedbackText = detail.FeedbackText
			feedbackNote = fmt.Sprintf("\nFeedback (Score %d/10): %s", *detail.FeedbackScore, detail.FeedbackText)
		}
		citations = append(citations, c)

		label := fmt.Sprintf("[Submission %d: %s", i+1, repTitle)
		if ch.Start != "" {
			label += fmt.Sprintf(", %s-%s", ch.Start, ch.End)
		}
		label += "]"
		parts = append(parts, label+"\n"+ch.Text+feedbackNote)
	}

	return &Assembled{Context: strings.Join(parts, contextSeparator), Citations: citations}, nil
}
