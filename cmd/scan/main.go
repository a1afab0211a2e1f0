package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"PreMarketScout/internal/collector"
	"PreMarketScout/internal/config"
	"PreMarketScout/internal/notifier"
	"PreMarketScout/internal/scanner"
)

// scan evaluates the configured instrument pool against the trend/momentum/
// strength indicators and prints the BUY and WATCH partitions.
func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	setupLogging(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpc := collector.NewHTTPClient(collector.HTTPClientOptions{ProxyURL: cfg.Proxy})
	yahoo := collector.NewYahooFetcher(httpc)
	log.Info().Str("source", yahoo.Name()).Int("pool", len(cfg.Scan.Pool)).Msg("stock scan starting")

	sc := scanner.NewScanner(yahoo, cfg.Scan.HistoryDays)
	report := sc.Scan(ctx, cfg.Scan.Pool)
	log.Info().
		Int("buy", len(report.Buy)).
		Int("watch", len(report.Watch)).
		Int("skip", len(report.Skip)).
		Int("failed", len(report.Failures)).
		Msg("scan finished")

	out := notifier.FormatScanReport(report)
	fmt.Print(out)

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		if err := tn.SendWithRetry(ctx, out); err != nil {
			log.Error().Err(err).Msg("send report")
		}
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
