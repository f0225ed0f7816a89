package handlers

const (
	AppName    = "app1"
	AppVersion = "1.0.0"
	Greeting   = "Hello from App1!"

	StatusHealthy = "healthy"
	StatusRunning = "running"
)

// Struct field order is the key order on the wire.

// IndexResponse is the body of GET /.
type IndexResponse struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	App         string `json:"app"`
	Version     string `json:"version"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
}

// MetricsResponse is the body of GET /metrics.
type MetricsResponse struct {
	App         string `json:"app"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// ErrorResponse is written for unmatched paths, rejected methods and recovered panics.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Stack  string `json:"stack,omitempty"`
}
