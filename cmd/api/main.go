package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Kabi09/AKcart/internal/metrics"
	"github.com/Kabi09/AKcart/internal/modules/auth"
	"github.com/Kabi09/AKcart/internal/modules/catalog"
	"github.com/Kabi09/AKcart/internal/modules/notification"
	"github.com/Kabi09/AKcart/internal/modules/order"
	"github.com/Kabi09/AKcart/internal/modules/user"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on process environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.WithError(err).Fatal("opening database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("pinging database")
	}
	log.Info("connected to database")

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Mail sender ─────────────────────────────────────────
	var mailer notification.Sender
	if host := os.Getenv("SMTP_HOST"); host != "" {
		mailer = notification.NewSMTPSender(
			host,
			os.Getenv("SMTP_PORT"),
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASS"),
			os.Getenv("SMTP_FROM"),
		)
	} else {
		log.Warn("SMTP_HOST not set, emails go to the log")
		mailer = notification.NewLogSender(log)
	}

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)
	authMiddleware := auth.NewMiddleware(jwtKey)

	// ── Catalog ─────────────────────────────────────────────
	productRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(productRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router, authMiddleware)

	// ── Orders ──────────────────────────────────────────────
	orderMetrics := metrics.NewOrderMetrics()
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, productRepo, userRepo, mailer, orderMetrics)
	order.NewHandler(orderService).RegisterRoutes(router, authMiddleware)

	// ── Metrics ─────────────────────────────────────────────
	router.Handle("/metrics", promhttp.Handler())

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("AKcart API server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
