package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/classora/classora-backend/internal/config"
	"github.com/classora/classora-backend/internal/database"
	"github.com/classora/classora-backend/internal/handler"
	"github.com/classora/classora-backend/internal/logger"
	"github.com/classora/classora-backend/internal/repository"
	"github.com/classora/classora-backend/internal/router"
	"github.com/classora/classora-backend/internal/service"
	"github.com/classora/classora-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Classora Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	tenantRepo := repository.NewTenantRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	counterRepo := repository.NewCounterRepository(pool)
	sessionRepo := repository.NewAuthSessionRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo, tenantRepo, sessionRepo)
	tenantService := service.NewTenantService(tenantRepo, userRepo, authService)
	sequenceService := service.NewSequenceService(counterRepo)
	studentService := service.NewStudentService(studentRepo, classRepo, sequenceService)
	teacherService := service.NewTeacherService(teacherRepo, sequenceService)
	classService := service.NewClassService(classRepo, teacherRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, classRepo)
	userService := service.NewUserService(userRepo, authService)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg),
		Tenant:     handler.NewTenantHandler(tenantService),
		Student:    handler.NewStudentHandler(studentService),
		Teacher:    handler.NewTeacherHandler(teacherService),
		Class:      handler.NewClassHandler(classService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		User:       handler.NewUserHandler(userService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, pool, rdb, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
