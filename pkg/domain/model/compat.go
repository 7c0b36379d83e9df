package model

// MatchReason explains why the scanner considered a file relevant to the
// library under analysis.
type MatchReason string

const (
	// MatchDirectName means the file contains the library name verbatim.
	MatchDirectName MatchReason = "direct_name"
	// MatchImport means the file contains an ecosystem marker (package
	// prefix or annotation) associated with the library's framework family.
	MatchImport MatchReason = "import"
	// MatchDependencyDecl means a descriptor file declares a dependency on
	// the library or its framework family.
	MatchDependencyDecl MatchReason = "dependency_declaration"
	// MatchManifestFallback means no file matched any heuristic and the root
	// manifest was included so the prompt is never empty-handed.
	MatchManifestFallback MatchReason = "manifest_fallback"
)

// CandidateFile is one file selected by the scanner. Content is already
// truncated to the snippet limit; Path is relative to the scanned root.
type CandidateFile struct {
	Path    string      `json:"path"`
	Content string      `json:"content"`
	Reason  MatchReason `json:"reason"`
}

// CompatibilityRequest fully determines one compatibility check.
type CompatibilityRequest struct {
	CheckID     string // assigned by the use case when empty
	Dir         string // root of the source tree to scan
	Library     string // dependency artifact name, e.g. "spring-core"
	FromVersion string
	ToVersion   string
}

// CompatibilityReport is the outcome of a successful check.
type CompatibilityReport struct {
	CheckID     string
	Library     string
	FromVersion string
	ToVersion   string
	Analysis    string          // LLM compatibility assessment, verbatim
	Candidates  []CandidateFile // what the prompt was built from, in walk order
}
