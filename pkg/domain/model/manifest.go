package model

// VersionBump records a successful in-place version rewrite in a manifest.
type VersionBump struct {
	Artifact   string // artifactId of the updated dependency entry
	OldVersion string // value found in the manifest before the rewrite
	NewVersion string
	Path       string // manifest file that was rewritten
}
