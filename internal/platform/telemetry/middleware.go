package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/Jaimeman84/daily-quotes-app/telemetry"

// Metrics holds the HTTP server instruments.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics registers the HTTP server instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

func (m *Metrics) routeAttrs(c *gin.Context) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	}
}

func (m *Metrics) recordStart(c *gin.Context) func() {
	attrs := metric.WithAttributes(m.routeAttrs(c)...)
	m.activeRequests.Add(c.Request.Context(), 1, attrs)

	return func() {
		m.activeRequests.Add(c.Request.Context(), -1, attrs)
	}
}

func (m *Metrics) recordCompletion(c *gin.Context, elapsed time.Duration) {
	attrs := metric.WithAttributes(append(m.routeAttrs(c),
		attribute.Int("http.status_code", c.Writer.Status()),
	)...)

	m.requestDuration.Record(c.Request.Context(), elapsed.Seconds(), attrs)
	m.requestTotal.Add(c.Request.Context(), 1, attrs)
}

// Middleware returns Gin middleware that traces requests with otelgin,
// records request metrics, and echoes the active trace ID in the X-Trace-ID
// response header. When instrument registration fails the error goes to the
// OTel error handler and the middleware degrades to tracing only.
func Middleware(serviceName string) gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	tracing := otelgin.Middleware(serviceName)

	return func(c *gin.Context) {
		start := time.Now()

		if metrics != nil {
			done := metrics.recordStart(c)
			defer done()
		}

		// otelgin starts the span and runs the rest of the chain.
		tracing(c)

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().HasTraceID() {
			c.Header("X-Trace-ID", span.SpanContext().TraceID().String())
		}

		if metrics != nil {
			metrics.recordCompletion(c, time.Since(start))
		}
	}
}

// TracingMiddleware returns the otelgin tracing middleware on its own, for
// routers that do not want the metrics instruments.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
