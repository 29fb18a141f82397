package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/client/claims"
	"github.com/dmitrijs2005/gamestack/internal/client/client"
	"github.com/dmitrijs2005/gamestack/internal/client/config"
	"github.com/dmitrijs2005/gamestack/internal/client/credentials"
	"github.com/dmitrijs2005/gamestack/internal/client/services"
	"github.com/dmitrijs2005/gamestack/internal/logging"
	"github.com/dmitrijs2005/gamestack/internal/netx"
	"github.com/dmitrijs2005/gamestack/internal/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	config             *config.Config
	log                logging.Logger
	authService        services.AuthService
	leaderboardService services.LeaderboardService
	tokens             *credentials.Controller
	metrics            *http.Server
	reader             *bufio.Reader
	out                io.Writer
}

// NewApp builds the SDK object graph from c. One credential store, token
// controller and application-user cache are shared by both services.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	httpClient := netx.NewHTTPClient(netx.ClientOptions{Timeout: c.RequestTimeout, VerifyTLS: true})
	exec := transport.NewHTTPExecutor(httpClient, log, transport.WithMetrics(transport.NewMetrics(reg)))
	api := client.NewRESTClient(exec, c.AuthAPIURL, c.LeaderboardAPIURL)

	store := credentials.NewStore()
	tokens := credentials.NewController(store, api, log, credentials.WithRefreshTimeout(c.RefreshTimeout))
	users := credentials.NewAppUserCache()

	as := services.NewAuthService(api, store, tokens, users, claimDecoder(c), log)
	ls := services.NewLeaderboardService(api, tokens)

	app := &App{
		config:             c,
		log:                log,
		authService:        as,
		leaderboardService: ls,
		tokens:             tokens,
		reader:             bufio.NewReader(os.Stdin),
		out:                os.Stdout,
	}
	if c.MetricsAddr != "" {
		app.metrics = netx.BootstrapMetricsServer(c.MetricsAddr, reg, nil, log)
	}
	return app, nil
}

// claimDecoder verifies access tokens when a secret is configured and only
// decodes them otherwise.
func claimDecoder(c *config.Config) services.ClaimDecoder {
	if c.TokenSecret == "" {
		return claims.Decode
	}
	var opts []claims.VerifierOption
	if c.ValidateTokenTimes {
		opts = append(opts, claims.WithTimeValidation(30*time.Second))
	}
	return claims.NewVerifier(claims.NewHMACSigner(c.TokenSecret), opts...).Verify
}

// Run starts the REPL and blocks until the user exits, then waits for
// background token refreshes and stops the metrics endpoint.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
	a.tokens.Wait()
	if a.metrics != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = a.metrics.Shutdown(shutdownCtx)
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsLoggedIn()
}
