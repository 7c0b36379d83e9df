package model

// CompatTrace is the diagnostic record written before each LLM call: the
// candidate list, the built prompt, and a summary of the outbound payload.
// The trace format is for offline inspection only and is not a stable
// contract.
type CompatTrace struct {
	CheckID     string
	Library     string
	FromVersion string
	ToVersion   string
	Candidates  []CandidateFile
	Prompt      string
	Payload     string // outbound request summary (model, parameters, prompt sizes)
}

// ManifestTrace is the diagnostic record of one manifest rewrite. Before and
// After hold the whole document so sinks can render the change as a patch.
type ManifestTrace struct {
	Path       string
	Artifact   string
	OldVersion string
	NewVersion string
	Before     string
	After      string
}
