package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/farrier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type manifestUseCase struct {
	sink interfaces.TraceSink
}

// ManifestOption configures NewManifest.
type ManifestOption func(*manifestUseCase)

// WithManifestTraceSink records a before/after pair for every applied edit.
func WithManifestTraceSink(sink interfaces.TraceSink) ManifestOption {
	return func(uc *manifestUseCase) {
		uc.sink = sink
	}
}

// NewManifest creates the build manifest editor use case.
func NewManifest(opts ...ManifestOption) interfaces.ManifestUseCase {
	uc := &manifestUseCase{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// UpdateVersion rewrites the version of the first dependency entry whose
// artifactId equals artifact, leaving the rest of the document as it was:
// declaration, namespace attributes, comments and indentation survive the
// round trip. The first matching entry wins; duplicates later in the file
// are left alone.
func (uc *manifestUseCase) UpdateVersion(ctx context.Context, dir, artifact, newVersion string) (*model.VersionBump, error) {
	logger := ctxlog.From(ctx)
	path := filepath.Join(dir, types.ManifestFile)

	before, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(types.ErrManifestNotFound, "no build manifest to edit", goerr.V("dir", dir))
		}
		return nil, goerr.Wrap(err, "failed to read build manifest", goerr.V("path", path))
	}

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(before); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedManifest, "failed to parse build manifest",
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}

	var oldVersion string
	var found bool
	for _, dep := range doc.FindElements("//dependency") {
		idEl := dep.SelectElement("artifactId")
		if idEl == nil || idEl.Text() != artifact {
			continue
		}

		verEl := dep.SelectElement("version")
		if verEl == nil {
			return nil, goerr.Wrap(types.ErrVersionMissing, "matched dependency has no version element",
				goerr.V("artifact", artifact),
				goerr.V("path", path),
			)
		}

		oldVersion = verEl.Text()
		verEl.SetText(newVersion)
		found = true
		break
	}
	if !found {
		return nil, goerr.Wrap(types.ErrDependencyNotFound, "no dependency entry matched",
			goerr.V("artifact", artifact),
			goerr.V("path", path),
		)
	}

	after, err := doc.WriteToBytes()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize build manifest", goerr.V("path", path))
	}

	if err := writeFileAtomic(path, after); err != nil {
		return nil, goerr.Wrap(err, "failed to write build manifest", goerr.V("path", path))
	}

	uc.writeTrace(ctx, &model.ManifestTrace{
		Path:       path,
		Artifact:   artifact,
		OldVersion: oldVersion,
		NewVersion: newVersion,
		Before:     string(before),
		After:      string(after),
	})

	logger.Info("Updated dependency version",
		"artifact", artifact,
		"old_version", oldVersion,
		"new_version", newVersion,
		"path", path,
	)

	return &model.VersionBump{
		Artifact:   artifact,
		OldVersion: oldVersion,
		NewVersion: newVersion,
		Path:       path,
	}, nil
}

func (uc *manifestUseCase) writeTrace(ctx context.Context, rec *model.ManifestTrace) {
	if uc.sink == nil {
		return
	}
	if err := uc.sink.ManifestEdit(ctx, rec); err != nil {
		ctxlog.From(ctx).Warn("Failed to write manifest trace", "path", rec.Path, "error", err)
	}
}

// writeFileAtomic replaces path via a temp file and rename, so a crash mid
// write never leaves a half-serialized manifest behind.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
