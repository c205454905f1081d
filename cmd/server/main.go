package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/christoffel/menuapp/internal/auth"
	"github.com/christoffel/menuapp/internal/catalog"
	"github.com/christoffel/menuapp/internal/middleware"
	"github.com/christoffel/menuapp/internal/service"
	"github.com/christoffel/menuapp/internal/session"
	"github.com/christoffel/menuapp/internal/storage/memory"
	"github.com/christoffel/menuapp/pkg/logging"
	"github.com/christoffel/menuapp/pkg/proto/protoconnect"
)

const tokenDuration = 12 * time.Hour

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logging.Setup()

	port := getEnv("PORT", "8080")
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	adminUsername := getEnv("ADMIN_USERNAME", "chef")
	adminHash := getEnv("ADMIN_PASSWORD_HASH", "")
	if adminHash == "" {
		slog.Error("ADMIN_PASSWORD_HASH is required")
		os.Exit(1)
	}

	// The menu lives in memory, pre-seeded with the standing menu.
	seed := catalog.Seed()
	store := memory.New(seed)
	defer store.Close()
	slog.Info("Menu store initialized", "seeded_items", len(seed.Items), "seeded_drinks", seed.Drinks.Count())

	controller := session.NewController(store)

	jwtManager := auth.NewJWTManager(jwtSecret, tokenDuration)
	authenticator := auth.NewPasswordAuthenticator(adminUsername, adminHash)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	// Auth runs before logging so the log lines carry the username.
	publicOpts := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)
	adminOpts := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAdmin(jwtManager),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	authPath, authHandler := protoconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, slog.Default()), publicOpts)
	mux.Handle(authPath, authHandler)

	menuPath, menuHandler := protoconnect.NewMenuServiceHandler(
		service.NewMenuService(store), publicOpts)
	mux.Handle(menuPath, menuHandler)

	sessionPath, sessionHandler := protoconnect.NewSessionServiceHandler(
		service.NewSessionService(controller), publicOpts)
	mux.Handle(sessionPath, sessionHandler)

	adminPath, adminHandler := protoconnect.NewAdminServiceHandler(
		service.NewAdminService(controller), adminOpts)
	mux.Handle(adminPath, adminHandler)

	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// CORS for browser clients, h2c so Connect's gRPC protocol works without TLS.
	handler := h2c.NewHandler(corsMiddleware(mux), &http2.Server{})

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
