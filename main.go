package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/time/rate"

	"posts/db"
	"posts/handler"
	"posts/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)

	e.Logger.Info("Running database schema migrations...")
	conn, err := db.Open(cfg.DBDriver, cfg.DBURL)
	if err != nil {
		e.Logger.Fatalf("Error opening database: %v", err)
	}
	defer conn.Close()

	posts, err := store.NewPostStore(conn, cfg.DBDriver)
	if err != nil {
		e.Logger.Fatal(err)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CorsAllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAccept, echo.HeaderContentType},
		ExposeHeaders: []string{echo.HeaderLocation},
		MaxAge:        300,
	}))
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(rateLimiterStore(cfg.RateLimit)))
	}

	h := handler.Handler{Posts: posts}
	h.Register(e)
	e.HTTPErrorHandler = handler.ErrorHandler

	useTLS := cfg.Address == ""
	if useTLS {
		// Cache certificates to avoid issues with rate limits (https://letsencrypt.org/docs/rate-limits)
		e.AutoTLSManager.Cache = autocert.DirCache(cfg.CertCacheDir)
		if cfg.WhitelistHost != "" {
			e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.WhitelistHost)
		}
		e.Pre(middleware.HTTPSRedirect())
	}

	go func() {
		var err error
		if useTLS {
			err = e.StartAutoTLS(":443")
		} else {
			err = e.Start(cfg.Address)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}

// rateLimiterStore allows limit requests per second per client. The burst is
// rounded up so that fractional limits still admit a first request.
func rateLimiterStore(limit float64) *middleware.RateLimiterMemoryStore {
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(limit),
		Burst: max(1, int(math.Ceil(limit))),
	})
}
