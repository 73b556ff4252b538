package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/lotus-wellness/payroll-backend-go/internal/config"
	handler "github.com/lotus-wellness/payroll-backend-go/internal/handler/http"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/database"
	"github.com/lotus-wellness/payroll-backend-go/internal/pkg/jwt"
	"github.com/lotus-wellness/payroll-backend-go/internal/repository/postgresql"
	authservice "github.com/lotus-wellness/payroll-backend-go/internal/service/auth"
	payoutservice "github.com/lotus-wellness/payroll-backend-go/internal/service/payout"
	payrollservice "github.com/lotus-wellness/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Repositories
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	// Services
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := authservice.NewService(employeeRepo, jwtService)
	payrollService := payrollservice.NewService(payrollRepo)
	payoutService := payoutservice.NewService(scheduleRepo, float64(cfg.Payroll.AwardReservationCountThreshold))

	router := handler.NewRouter(handler.RouterConfig{
		AuthHandler:     handler.NewAuthHandler(authService),
		PayrollHandler:  handler.NewPayrollHandler(payrollService),
		ScheduleHandler: handler.NewScheduleHandler(payoutService),
		JWTAuth:         jwtService.JWTAuth(),
		AllowedOrigins:  cfg.App.AllowedOrigins,
		Env:             cfg.App.Env,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
