package trace

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FileSink appends a plain-text record of every check and edit to a single
// trace file. The file opens per record, so rotating or deleting it between
// checks is safe.
type FileSink struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.TraceSink = (*FileSink)(nil)

// NewFile creates a trace sink appending to the file at path.
func NewFile(path string) *FileSink {
	return &FileSink{path: path}
}

// CompatCheck records everything a compatibility check is about to send:
// the candidate files with their match reasons, the rendered prompt and a
// payload summary.
func (s *FileSink) CompatCheck(_ context.Context, rec *model.CompatTrace) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== COMPATIBILITY CHECK %s ===\n", rec.CheckID)
	fmt.Fprintf(&sb, "time: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "library: %s %s -> %s\n", rec.Library, rec.FromVersion, rec.ToVersion)
	fmt.Fprintf(&sb, "candidates: %d\n", len(rec.Candidates))
	for _, c := range rec.Candidates {
		fmt.Fprintf(&sb, "  - %s (%s, %d chars)\n", c.Path, c.Reason, len(c.Content))
	}
	sb.WriteString("--- prompt ---\n")
	sb.WriteString(rec.Prompt)
	if !strings.HasSuffix(rec.Prompt, "\n") {
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "--- payload ---\n%s\n", rec.Payload)
	sb.WriteString("=== END ===\n\n")

	return s.append(sb.String())
}

// ManifestEdit records an applied version edit as a unified patch rather
// than two full document copies.
func (s *FileSink) ManifestEdit(_ context.Context, rec *model.ManifestTrace) error {
	dmp := diffmatchpatch.New()
	patch := dmp.PatchToText(dmp.PatchMake(rec.Before, rec.After))

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== MANIFEST EDIT %s ===\n", rec.Path)
	fmt.Fprintf(&sb, "time: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "artifact: %s %s -> %s\n", rec.Artifact, rec.OldVersion, rec.NewVersion)
	sb.WriteString("--- patch ---\n")
	sb.WriteString(patch)
	if !strings.HasSuffix(patch, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("=== END ===\n\n")

	return s.append(sb.String())
}

func (s *FileSink) append(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to open trace file", goerr.V("path", s.path))
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return goerr.Wrap(err, "failed to append trace entry", goerr.V("path", s.path))
	}
	return nil
}
