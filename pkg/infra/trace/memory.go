package trace

import (
	"context"
	"sync"

	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/domain/model"
)

// MemorySink keeps every record in memory so tests can inspect what a
// check or edit actually reported.
type MemorySink struct {
	mu       sync.Mutex
	compat   []*model.CompatTrace
	manifest []*model.ManifestTrace
}

var _ interfaces.TraceSink = (*MemorySink)(nil)

// NewMemory creates an in-memory trace sink.
func NewMemory() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) CompatCheck(_ context.Context, rec *model.CompatTrace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compat = append(s.compat, rec)
	return nil
}

func (s *MemorySink) ManifestEdit(_ context.Context, rec *model.ManifestTrace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifest = append(s.manifest, rec)
	return nil
}

// CompatTraces returns the recorded check traces in arrival order.
func (s *MemorySink) CompatTraces() []*model.CompatTrace {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.CompatTrace, len(s.compat))
	copy(out, s.compat)
	return out
}

// ManifestTraces returns the recorded edit traces in arrival order.
func (s *MemorySink) ManifestTraces() []*model.ManifestTrace {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.ManifestTrace, len(s.manifest))
	copy(out, s.manifest)
	return out
}
