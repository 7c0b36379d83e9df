package model

// Tool results are rendered as JSON text content so that callers on any MCP
// client see the same {status, ...} envelopes the tool contract documents.

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the envelope shared by every failing tool or resource
// call. Failures stay inside the payload; the protocol call succeeds.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UpdateResponse is the wire shape of the update_library_version tool.
type UpdateResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	OldVersion string `json:"old_version,omitempty"`
	NewVersion string `json:"new_version,omitempty"`
}

// CompatResponse is the wire shape of the check_compatibility tool.
type CompatResponse struct {
	Status   string `json:"status"`
	Analysis string `json:"compatibility_analysis,omitempty"`
	Message  string `json:"message,omitempty"`
	CheckID  string `json:"check_id,omitempty"`
}

// DirListing is the wire shape of a successful codedir resource read. An
// empty directory still renders an explicit files array.
type DirListing struct {
	Status string   `json:"status"`
	Path   string   `json:"path"`
	Files  []string `json:"files"`
}
