// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware wraps the HTTP mux to create a server span per request,
// propagate W3C trace context from inbound headers, and echo the trace ID
// in the X-Trace-Id response header. InitTracerProvider installs the SDK
// tracer provider; without an exporter configured, spans still carry IDs
// for log correlation but are not shipped anywhere.
//
// Example usage:
//
//	func main() {
//	    shutdown, _ := tracing.InitTracerProvider("blog-backend")
//	    defer shutdown(context.Background())
//
//	    handler := tracing.Middleware(mux)
//	    http.ListenAndServe(":8080", handler)
//	}
package tracing
