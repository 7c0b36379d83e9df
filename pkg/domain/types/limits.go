package types

import "time"

const (
	// ManifestFile is the build manifest edited by the version tool and used
	// as the scanner fallback.
	ManifestFile = "pom.xml"

	// MaxSnippetFiles bounds how many matched files are embedded into a
	// single analysis prompt.
	MaxSnippetFiles = 5

	// MaxSnippetRunes bounds the content of a single snippet. Longer files
	// are cut and TruncationMarker is appended.
	MaxSnippetRunes = 2000

	// TruncationMarker is appended to snippet content cut at MaxSnippetRunes.
	TruncationMarker = "... (truncated)"

	// AnalysisTimeout bounds one LLM round-trip. There is no retry: when the
	// deadline expires the check fails and the caller decides what to do.
	AnalysisTimeout = 120 * time.Second
)
