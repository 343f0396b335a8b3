package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/mediashelf/mediashelf/internal/config"
	"github.com/mediashelf/mediashelf/internal/delivery"
	ws "github.com/mediashelf/mediashelf/internal/delivery/ws"
	"github.com/mediashelf/mediashelf/internal/domain"
	"github.com/mediashelf/mediashelf/internal/infra"
	"github.com/mediashelf/mediashelf/internal/ports"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// CONFIG
	cfg, err := config.Load()
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}

	ctx := context.Background()

	// STORE
	var store ports.MediaStore
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := infra.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			panic("cannot connect pgxpool: " + err.Error())
		}
		defer pool.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(ctxPing); err != nil {
			panic("postgres ping failed: " + err.Error())
		}

		pgStore := infra.NewPostgresMediaStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			panic("schema setup failed: " + err.Error())
		}
		store = pgStore
	default:
		store = infra.NewFileMediaStore(cfg.DataFile)
	}

	// CATALOG SERVICE
	catalog := domain.NewCatalogService(store)
	hMedia := delivery.NewMediaHandler(catalog, zl)

	// SEED
	if cfg.Seed {
		added, err := infra.SeedSampleData(ctx, catalog)
		if err != nil {
			panic("seeding failed: " + err.Error())
		}
		if added > 0 {
			zl.Log(logger.LogEntry{
				Level:   "info",
				Message: "sample catalog seeded",
				Fields:  map[string]any{"records": added},
			})
		}
	}

	// WS HUB
	hub := ws.NewHub()

	// BROADCAST LISTENER
	go func() {
		for ev := range catalog.Events() {
			payload, err := json.Marshal(ev)
			if err != nil {
				log.Printf("event marshal failed: %v", err)
				continue
			}
			hub.Broadcast(payload)
		}
	}()

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hMedia)

	r.Get("/ws", ws.Handler(hub))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields: map[string]any{
			"port":    cfg.Port,
			"storage": cfg.StorageDriver,
		},
	})

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
