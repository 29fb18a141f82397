package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/common"
	"github.com/dmitrijs2005/gamestack/internal/logging"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Supported verbs.
const (
	VerbGet    = http.MethodGet
	VerbPost   = http.MethodPost
	VerbPut    = http.MethodPut
	VerbDelete = http.MethodDelete
)

var ErrUnknownVerb = errors.New("unknown request verb")

// Error is a request that produced no HTTP response.
type Error struct {
	Timeout bool
	Err     error
}

func (e *Error) Error() string {
	if e.Timeout {
		return "request timeout: " + e.Err.Error()
	}
	return "request failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Response is a completed HTTP exchange.
type Response struct {
	StatusCode int
	Body       string
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Executor is the request-executor capability the REST client depends on.
type Executor interface {
	Execute(ctx context.Context, verb string, headers map[string]string, url string, body string) (Response, error)
}

// HTTPExecutor implements Executor on top of net/http.
type HTTPExecutor struct {
	client  *http.Client
	log     logging.Logger
	metrics *Metrics
	newID   func() string
}

type Option func(*HTTPExecutor)

// WithMetrics records request counts and latency.
func WithMetrics(m *Metrics) Option {
	return func(e *HTTPExecutor) { e.metrics = m }
}

// WithRequestIDFunc overrides the X-Request-ID generator.
func WithRequestIDFunc(f func() string) Option {
	return func(e *HTTPExecutor) { e.newID = f }
}

func NewHTTPExecutor(c *http.Client, l logging.Logger, opts ...Option) *HTTPExecutor {
	e := &HTTPExecutor{
		client: c,
		log:    l,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *HTTPExecutor) Execute(ctx context.Context, verb string, headers map[string]string, url string, body string) (Response, error) {
	if !knownVerb(verb) {
		return Response{}, fmt.Errorf("%w: %s", ErrUnknownVerb, verb)
	}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, verb, url, reader)
	if err != nil {
		return Response{}, &Error{Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	id := e.newID()
	req.Header.Set(common.RequestIDHeader, id)
	ctx = logging.ContextWithRequestID(ctx, id)

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		terr := &Error{Timeout: isTimeout(err), Err: err}
		e.observe(verb, "error", start)
		e.log.Error(ctx, "request failed",
			"verb", verb, "url", url, "headers", headerNames(headers), "timeout", terr.Timeout, "error", err)
		return Response{}, terr
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		e.observe(verb, "error", start)
		return Response{}, &Error{Timeout: isTimeout(err), Err: fmt.Errorf("read body: %w", err)}
	}
	e.observe(verb, strconv.Itoa(resp.StatusCode), start)

	out := Response{StatusCode: resp.StatusCode, Body: string(b)}
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		e.log.Error(ctx, "request returned server error",
			"verb", verb, "url", url, "status", resp.StatusCode, "headers", headerNames(headers), "body", out.Body)
	case !out.OK():
		// 4xx answers such as the missing application user are classified by the caller.
		e.log.Warn(ctx, "request rejected",
			"verb", verb, "url", url, "status", resp.StatusCode, "headers", headerNames(headers))
	default:
		e.log.Debug(ctx, "request complete", "verb", verb, "url", url, "status", resp.StatusCode)
	}
	return out, nil
}

func (e *HTTPExecutor) observe(verb, status string, start time.Time) {
	if e.metrics == nil {
		return
	}
	e.metrics.requests.WithLabelValues(verb, status).Inc()
	e.metrics.duration.WithLabelValues(verb).Observe(time.Since(start).Seconds())
}

func knownVerb(v string) bool {
	switch v {
	case VerbGet, VerbPost, VerbPut, VerbDelete:
		return true
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// headerNames lists header keys only; values may carry bearer tokens.
func headerNames(h map[string]string) []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	return names
}

// Metrics are the executor's Prometheus collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamestack_client_requests_total", Help: "Outbound GameStack API requests",
		}, []string{"verb", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "gamestack_client_request_duration_seconds", Help: "Outbound GameStack API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"verb"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}
