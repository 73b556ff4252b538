package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lotus-wellness/payroll-backend-go/internal/handler/http/middleware"
)

type RouterConfig struct {
	AuthHandler     AuthHandler
	PayrollHandler  PayrollHandler
	ScheduleHandler ScheduleHandler
	JWTAuth         *jwtauth.JWTAuth
	AllowedOrigins  []string
	Env             string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lotus-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTAuth))
			r.Use(middleware.AuthRequired(cfg.JWTAuth))

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", cfg.PayrollHandler.GetPayrolls)
				r.Get("/cash-and-tips", cfg.PayrollHandler.GetCashAndTips)
				r.Get("/acupuncture-reports", cfg.PayrollHandler.GetAcupunctureReports)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", cfg.ScheduleHandler.GetSchedule)
				r.Get("/range", cfg.ScheduleHandler.GetScheduleRange)
				r.Post("/{date}/sign", cfg.ScheduleHandler.SignSchedule)
			})
		})
	})

	return r
}
