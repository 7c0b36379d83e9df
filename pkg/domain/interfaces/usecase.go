package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . CompatUseCase ManifestUseCase

import (
	"context"

	"github.com/m-mizutani/farrier/pkg/domain/model"
)

// CompatUseCase runs the full analysis pipeline for one library upgrade:
// scan, snippet assembly, prompt build, LLM session.
type CompatUseCase interface {
	// CheckCompatibility scans req.Dir for code using req.Library, asks the
	// LLM whether the version transition is safe, and returns the report.
	CheckCompatibility(ctx context.Context, req *model.CompatibilityRequest) (*model.CompatibilityReport, error)
}

// ManifestUseCase rewrites dependency versions in a build manifest.
type ManifestUseCase interface {
	// UpdateVersion rewrites the version of the first dependency whose
	// artifactId equals artifact in dir's manifest, in place.
	UpdateVersion(ctx context.Context, dir, artifact, newVersion string) (*model.VersionBump, error)
}
