package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"property-engine/internal/api"
	"property-engine/internal/auth"
	"property-engine/internal/blob"
	"property-engine/internal/config"
	"property-engine/internal/logging"
	"property-engine/internal/notify"
	"property-engine/internal/scheduler"
	"property-engine/internal/services"
	"property-engine/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Logging)

	st, err := store.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer st.Close()

	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenExpiry)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Auth.TokenExpiry).Msg("invalid TOKEN_EXPIRY")
	}
	tokens := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.JWTIssuer, tokenTTL)
	sessions := auth.NewSessionManager(st, tokens, log)

	bus := notify.NewBus()
	hub := notify.NewHub(log)
	notifications := notify.NewManager(bus, hub, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionEvents, cancelEvents := sessions.Subscribe()
	go notifications.Run(ctx, sessionEvents, cancelEvents)

	properties := services.NewPropertyService(st, log)
	tenants := services.NewTenantService(st, log)
	maintenance := services.NewMaintenanceService(st, bus, log)
	rent := services.NewRentService(st, log)

	images, err := blob.New(cfg.Images)
	if err != nil {
		log.Fatal().Err(err).Msg("init image storage")
	}

	sweeper := scheduler.NewOverdueSweeper(st, rent, cfg.Scheduler.OverdueCron, log)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start overdue sweeper")
	}
	defer sweeper.Stop()

	handler := api.New(api.Deps{
		Sessions:      sessions,
		Store:         st,
		Properties:    properties,
		Tenants:       tenants,
		Maintenance:   maintenance,
		Rent:          rent,
		Notifications: notifications,
		Hub:           hub,
		Images:        images,
		Log:           log,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: corsHandler.Handler(handler.Router()),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
		cancel()
	}()

	log.Info().Str("addr", server.Addr).Msg("api server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
	log.Info().Msg("api server stopped")
}
