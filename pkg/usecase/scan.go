package usecase

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/farrier/pkg/domain/types"
)

// scanExtensions is the allow-list of file types worth reading during a
// scan: sources, build descriptors and structured configuration.
var scanExtensions = map[string]struct{}{
	".java":       {},
	".xml":        {},
	".properties": {},
	".yml":        {},
	".yaml":       {},
}

// defaultIgnoreGlobs prunes build output and tool state from the walk.
var defaultIgnoreGlobs = []string{
	"**/.git",
	"**/.idea",
	"**/target",
	"**/build",
	"**/node_modules",
}

// matcher is a single relevance predicate. Predicates run in order and the
// first hit decides the match reason for a file.
type matcher struct {
	reason model.MatchReason
	match  func(path, content string) bool
}

// scanner selects the files of a project tree that are relevant to one
// library, in directory walk order.
type scanner struct {
	library    string
	libLower   string
	markers    []string
	ecosystems []string
	ignore     []string
	chain      []matcher
}

func newScanner(library string, sets []model.MarkerSet) *scanner {
	s := &scanner{
		library:  library,
		libLower: strings.ToLower(library),
		ignore:   defaultIgnoreGlobs,
	}

	for _, set := range sets {
		eco := strings.ToLower(set.Ecosystem)
		s.ecosystems = append(s.ecosystems, eco)
		if strings.Contains(s.libLower, eco) {
			s.markers = append(s.markers, set.Markers...)
		}
	}

	s.chain = []matcher{
		{reason: model.MatchDirectName, match: s.matchDirectName},
		{reason: model.MatchImport, match: s.matchImport},
		{reason: model.MatchDependencyDecl, match: s.matchDependencyDecl},
	}
	return s
}

// scan walks root and returns every file that matches one of the relevance
// predicates. Unreadable entries are skipped, never fatal: a scan over a
// half-broken checkout should still return whatever it can read. A missing
// root yields an empty result for the same reason.
func (s *scanner) scan(ctx context.Context, root string) []model.CandidateFile {
	logger := ctxlog.From(ctx)

	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		logger.Warn("Code directory is not readable", "dir", root, "error", err)
		return nil
	}

	var candidates []model.CandidateFile
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.ignored(rel) {
				return fs.SkipDir
			}
			return nil
		}

		if _, ok := scanExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		if s.ignored(rel) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Skipping unreadable file", "path", rel, "error", err)
			return nil
		}
		content := strings.ToValidUTF8(string(raw), "")

		for _, m := range s.chain {
			if !m.match(rel, content) {
				continue
			}
			candidates = append(candidates, newCandidate(rel, content, m.reason))
			logger.Debug("File matched", "path", rel, "reason", m.reason)
			break
		}
		return nil
	})
	if walkErr != nil {
		logger.Warn("Walk aborted", "dir", root, "error", walkErr)
	}

	return candidates
}

func (s *scanner) ignored(rel string) bool {
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// matchDirectName hits when the file mentions the library by its exact name.
func (s *scanner) matchDirectName(_, content string) bool {
	return strings.Contains(content, s.library)
}

// matchImport hits when the file carries an ecosystem marker of the
// library's family, such as a framework import path or annotation.
func (s *scanner) matchImport(_, content string) bool {
	for _, marker := range s.markers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// matchDependencyDecl hits on XML build descriptors that declare
// dependencies and mention either the library or a known ecosystem.
func (s *scanner) matchDependencyDecl(path, content string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return false
	}
	if !strings.Contains(content, "dependency") {
		return false
	}

	lower := strings.ToLower(content)
	if strings.Contains(lower, s.libLower) {
		return true
	}
	for _, eco := range s.ecosystems {
		if strings.Contains(lower, eco) {
			return true
		}
	}
	return false
}

// fallbackManifest returns the root build descriptor as the sole candidate,
// so a project that matched nothing still gives the analysis its dependency
// declarations to work with. Returns nil when the descriptor is absent.
func fallbackManifest(ctx context.Context, root string) []model.CandidateFile {
	path := filepath.Join(root, types.ManifestFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		ctxlog.From(ctx).Warn("No fallback manifest available", "dir", root, "error", err)
		return nil
	}
	content := strings.ToValidUTF8(string(raw), "")
	return []model.CandidateFile{newCandidate(types.ManifestFile, content, model.MatchManifestFallback)}
}

func newCandidate(path, content string, reason model.MatchReason) model.CandidateFile {
	return model.CandidateFile{
		Path:    path,
		Content: truncate(content),
		Reason:  reason,
	}
}

// truncate caps content at the snippet limit, counted in runes so a cut
// never splits a multi-byte character, and appends the truncation marker.
func truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= types.MaxSnippetRunes {
		return content
	}
	return string(runes[:types.MaxSnippetRunes]) + types.TruncationMarker
}
