// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/studyconnect/backend/internal/auth"
	"github.com/studyconnect/backend/internal/config"
	"github.com/studyconnect/backend/internal/email"
	"github.com/studyconnect/backend/internal/handler"
	"github.com/studyconnect/backend/internal/middleware"
	"github.com/studyconnect/backend/internal/repository"
	"github.com/studyconnect/backend/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, emailService)
	groupService := service.NewGroupService(groupRepo, membershipRepo, notificationService)
	chatService := service.NewChatService(groupRepo, membershipRepo, messageRepo, userRepo)
	forumService := service.NewForumService(questionRepo, userRepo, notificationService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	groupHandler := handler.NewGroupHandler(groupService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	chatHandler := handler.NewChatHandler(chatService)
	forumHandler := handler.NewForumHandler(forumService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
	})
	r.Get("/groups/all", groupHandler.List)
	r.Get("/groups/search", groupHandler.Search)
	r.Get("/groups/{groupID}", groupHandler.Get)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokenManager))

		r.Get("/auth/me", authHandler.Me)
		r.Put("/auth/me", authHandler.UpdateProfile)

		r.Post("/groups/create", groupHandler.Create)
		r.Post("/groups/join", groupHandler.Join)
		r.Get("/groups/mine", groupHandler.Mine)
		r.Get("/groups/created", groupHandler.Created)
		r.Get("/groups/suggested", groupHandler.Suggested)
		r.Get("/groups/all-pending-requests", groupHandler.AllPendingRequests)
		r.Get("/groups/requests/{groupID}", groupHandler.PendingRequests)
		r.Post("/groups/request/update", groupHandler.ResolveRequest)
		r.Put("/groups/update/{groupID}", groupHandler.Update)
		r.Get("/groups/{groupID}/members", groupHandler.Members)
		r.Post("/groups/{groupID}/kick/{memberID}", groupHandler.Kick)
		r.Get("/groups/{groupID}/messages", chatHandler.List)
		r.Post("/groups/{groupID}/messages", chatHandler.Send)

		r.Get("/groups/notifications/mine", notificationHandler.Mine)
		r.Post("/groups/notifications/read/{id}", notificationHandler.MarkRead)
		r.Post("/groups/notifications/read-all", notificationHandler.MarkAllRead)

		r.Get("/questions", forumHandler.List)
		r.Get("/questions/search/{query}", forumHandler.Search)
		r.Get("/questions/{id}", forumHandler.Get)
		r.Post("/questions", forumHandler.Create)
		r.Delete("/questions/{id}", forumHandler.Delete)
		r.Post("/questions/{id}/answers", forumHandler.Answer)
		r.Delete("/questions/answers/{id}", forumHandler.DeleteAnswer)
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the membership repository relies on for duplicate join requests.
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
