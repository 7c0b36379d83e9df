package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the structured failure modes of the tool surface.
// Handlers convert these into {status: error} results; they never escape
// as crashes.
var (
	// ErrManifestNotFound means the target directory has no pom.xml.
	ErrManifestNotFound = goerr.New("pom.xml not found in the directory")

	// ErrDependencyNotFound means no dependency entry matched the artifactId.
	ErrDependencyNotFound = goerr.New("dependency not found in pom.xml")

	// ErrVersionMissing means the matched dependency entry has no version element.
	ErrVersionMissing = goerr.New("dependency has no version element")

	// ErrMalformedManifest means the manifest could not be parsed or rewritten.
	ErrMalformedManifest = goerr.New("malformed pom.xml")

	// ErrAnalysisFailed wraps LLM transport and response failures.
	ErrAnalysisFailed = goerr.New("compatibility analysis failed")

	// ErrNotADirectory means a path given to the directory resource does not
	// point at an existing directory.
	ErrNotADirectory = goerr.New("directory does not exist")
)
