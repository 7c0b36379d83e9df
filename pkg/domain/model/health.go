package model

// HealthStatus is the response shape of the HTTP health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
