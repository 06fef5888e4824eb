package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/attendance"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/closure"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/leave"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/payroll"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/config"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/db"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/metrics"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/api"
	leavehandler "github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/handlers/leave"
	payrollhandler "github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/handlers/payroll"
	staffhandler "github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/handlers/staff"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	collector := metrics.New()
	if !cfg.MetricsEnabled {
		collector = nil
	}

	staffStore := staff.NewStore(pool)
	leaveService := leave.NewService(leave.NewStore(pool), staffStore)
	payrollService := payroll.NewService(
		payroll.NewStore(pool),
		staffStore,
		attendance.NewStore(pool),
		closure.NewStore(pool),
		payroll.Policy{ShortDayWeight: cfg.ShortDayWeight, OvertimeCredit: cfg.OvertimeCredit},
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		staffhandler.NewHandler(staffStore).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.With(middleware.RequirePrivileged).Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	log.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
