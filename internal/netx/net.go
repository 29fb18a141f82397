// Package netx holds HTTP plumbing shared by the SDK transport and the CLI:
// a tuned outbound client and the metrics/health endpoint.
package netx

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClientOptions tunes NewHTTPClient.
type ClientOptions struct {
	Timeout   time.Duration
	VerifyTLS bool
}

// NewHTTPClient returns an http.Client with bounded dial/TLS timeouts and a
// pooled transport. Redirects are not followed; the GameStack APIs never
// answer with one on success.
func NewHTTPClient(o ClientOptions) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   o.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !o.VerifyTLS,
			MinVersion:         tls.VersionTLS12,
		},
	}
	return &http.Client{
		Timeout:   o.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// BootstrapMetricsServer starts serving /metrics from g and /healthz backed by
// health in a background goroutine. The caller owns Shutdown.
func BootstrapMetricsServer(addr string, g prometheus.Gatherer, health func(context.Context) error, l logging.Logger) *http.Server {
	ms := createMetricsServer(addr, g, health)

	go func() {
		l.Info(context.Background(), "metrics listening", "addr", addr)
		if err := ms.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error(context.Background(), "metrics server error", "error", err)
		}
	}()

	return ms
}

func createMetricsServer(addr string, g prometheus.Gatherer, health func(context.Context) error) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		if health != nil {
			if err := health(ctx); err != nil {
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}
