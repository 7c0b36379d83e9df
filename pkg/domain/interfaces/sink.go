package interfaces

import (
	"context"

	"github.com/m-mizutani/farrier/pkg/domain/model"
)

// TraceSink receives diagnostic records from the tool pipelines. Sinks are
// observation-only: use cases log sink failures and keep going, so an
// implementation may be as slow or as lossy as it likes.
type TraceSink interface {
	// CompatCheck records the candidates, prompt and outbound payload of one
	// compatibility check, before the LLM call is issued.
	CompatCheck(ctx context.Context, rec *model.CompatTrace) error

	// ManifestEdit records one manifest rewrite.
	ManifestEdit(ctx context.Context, rec *model.ManifestTrace) error
}

// Notifier announces completed compatibility checks to an external channel.
// Failures must not fail the check itself.
type Notifier interface {
	CompatChecked(ctx context.Context, report *model.CompatibilityReport) error
}
