package logging

// Structured log field keys shared across the service.
const (
	FieldModule     = "module"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldLatency    = "latency"
	FieldClientIP   = "client_ip"
	FieldParams     = "params"
	FieldResult     = "result"
	FieldHandler    = "handler"
)
