package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/bookmyspot/bookmyspot-api/internal/config"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/admin"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/auth"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/category"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/event"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/notification"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/venue"
	"github.com/bookmyspot/bookmyspot-api/internal/middleware"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/database"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/jwt"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/logger"
	pkgresponse "github.com/bookmyspot/bookmyspot-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting BookMySpot API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	categoryRepo := category.NewRepository(db)
	venueRepo := venue.NewRepository(db)
	eventRepo := event.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	adminRepo := admin.NewRepository(db)

	// ---------- WebSocket hub ----------
	hub := notification.NewHub(redis)
	go hub.Run()
	defer hub.Shutdown()

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis)
	categoryService := category.NewService(categoryRepo)
	venueCache := venue.NewCache(redis, cfg.VenueCacheTTL)
	venueService := venue.NewService(venueRepo, venueCache)
	eventService := event.NewService(eventRepo, venueService)
	notificationService := notification.NewService(notificationRepo, notification.NewWSPublisher(hub))
	bookingService := booking.NewService(
		bookingRepo,
		venueService,
		eventService,
		notification.NewBookingNotifier(notificationService),
	)
	adminService := admin.NewService(adminRepo, userRepo, bookingRepo)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	categoryHandler := category.NewHandler(categoryService)
	venueHandler := venue.NewHandler(venueService)
	eventHandler := event.NewHandler(eventService)
	bookingHandler := booking.NewHandler(bookingService)
	notificationHandler := notification.NewHandler(notificationService, hub, cfg.AllowedOrigins)
	adminHandler := admin.NewHandler(adminService)

	authMiddleware := middleware.Auth(jwtService)
	organizerMiddleware := middleware.RequireOrganizer()
	adminMiddleware := middleware.RequireAdmin()

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	// WebSocket endpoint; browsers cannot set headers on WS, token rides the query
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		authMiddleware(http.HandlerFunc(notificationHandler.WebSocket)).ServeHTTP(w, r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimw.Compress(5))

		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/categories", categoryHandler.Routes(authMiddleware, adminMiddleware))
		r.Mount("/venues", venueHandler.Routes(authMiddleware, organizerMiddleware, bookingHandler.ListForVenue))
		r.Mount("/events", eventHandler.Routes(authMiddleware, organizerMiddleware))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/notifications", notificationHandler.Routes(authMiddleware))
		r.Mount("/admin", adminHandler.Routes(authMiddleware, adminMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
