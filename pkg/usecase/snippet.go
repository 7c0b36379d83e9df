package usecase

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/farrier/pkg/domain/types"
)

// assembleSnippets renders the first MaxSnippetFiles candidates as labeled
// blocks in walk order. Contents arrive already truncated, so this is a
// pure formatting step.
func assembleSnippets(candidates []model.CandidateFile) string {
	var sb strings.Builder
	for i, c := range candidates {
		if i >= types.MaxSnippetFiles {
			break
		}
		fmt.Fprintf(&sb, "--- %s ---\n%s\n\n", c.Path, c.Content)
	}
	return sb.String()
}
