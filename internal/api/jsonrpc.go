// Package api provides the HTTP query surface over a built engine.
package api

// QueryParams contains parameters for the POST /query endpoint.
type QueryParams struct {
	Terms []string `json:"terms"`
}

// SearchResult is a single projected document returned by a query.
type SearchResult struct {
	DocID      uint64 `json:"doc_id"`
	UserHandle string `json:"user_handle"`
	UserName   string `json:"user_name"`
	Body       string `json:"body"`
}

// QueryResult is returned by the POST /query endpoint.
type QueryResult struct {
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// HealthResult is returned by the GET /health endpoint.
type HealthResult struct {
	Healthy      bool   `json:"healthy"`
	Status       string `json:"status"`
	UptimeMs     int64  `json:"uptime_ms"`
	RequestCount uint64 `json:"request_count"`
}

// StatsResult is returned by the GET /stats endpoint.
type StatsResult struct {
	Documents int    `json:"documents"`
	Terms     int    `json:"terms"`
	BuildID   string `json:"build_id"`
}

// ErrorResult is the JSON body written on any handler error.
type ErrorResult struct {
	Error string `json:"error"`
}
