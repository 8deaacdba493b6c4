package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"github.com/mwhite7112/woodpantry-rates/internal/api"
	"github.com/mwhite7112/woodpantry-rates/internal/clients"
	"github.com/mwhite7112/woodpantry-rates/internal/config"
	"github.com/mwhite7112/woodpantry-rates/internal/db"
	"github.com/mwhite7112/woodpantry-rates/internal/events"
	"github.com/mwhite7112/woodpantry-rates/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set, address extraction is disabled")
	}
	if cfg.ShippoToken == "" {
		slog.Warn("SHIPPO_API_TOKEN is not set, starting in mock mode")
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	rates := clients.NewShippoClient(cfg.ShippoBaseURL, httpClient)
	extractor := clients.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.ExtractModel, httpClient)

	opts := []service.Option{service.WithCredential(cfg.ShippoToken)}

	var history *service.HistoryService
	if cfg.DBURL != "" {
		sqlDB, err := sql.Open("postgres", cfg.DBURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			log.Fatalf("connect to database: %v", err)
		}
		if err := db.Migrate(sqlDB); err != nil {
			log.Fatalf("migrations: %v", err)
		}

		history = service.NewHistoryService(db.New(sqlDB))
		opts = append(opts, service.WithRecorder(history))
	}

	if cfg.RabbitMQURL != "" {
		publisher, err := events.NewRatesQuotedPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer publisher.Close()
		opts = append(opts, service.WithNotifier(publisher))
	}

	ctrl := service.NewController(rates, extractor, opts...)
	handler := api.NewRouter(ctrl, history)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("rates service listening", "addr", addr, "history", history != nil, "events", cfg.RabbitMQURL != "")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
