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

	"PreMarketScout/internal/bias"
	"PreMarketScout/internal/collector"
	"PreMarketScout/internal/config"
	"PreMarketScout/internal/gap"
	"PreMarketScout/internal/model"
	"PreMarketScout/internal/notifier"
)

// premarket builds the session bias score and the ranked gap watchlist.
// Run it before the open (08:45-09:15 IST works well).
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
	log.Info().Str("source", yahoo.Name()).Msg("pre-market scan starting")

	primary := collector.FetchQuotes(ctx, yahoo, cfg.Markets.Primary)
	secondary := collector.FetchQuotes(ctx, yahoo, cfg.Markets.Secondary)

	var volatility *model.ReferenceQuote
	if q, err := collector.FetchQuote(ctx, yahoo, cfg.Markets.Volatility.Name, cfg.Markets.Volatility.Symbol); err != nil {
		log.Warn().Err(err).Msg("volatility index unavailable")
	} else {
		volatility = &q
	}

	var aux *model.ScrapedValue
	scraper := &collector.GiftNiftyScraper{URL: cfg.Sources.GiftNiftyURL, Client: httpc}
	if v, err := scraper.FetchValue(ctx); err != nil {
		log.Debug().Err(err).Msg("gift nifty scrape unavailable")
	} else {
		aux = &model.ScrapedValue{Name: "GIFT Nifty", Value: v}
	}

	result := bias.Score(primary, secondary, aux, volatility)
	log.Info().Float64("score", result.Score).Str("label", string(result.Label)).Msg("market bias scored")

	preopen := &collector.PreOpenFetcher{URL: cfg.Sources.PreOpenURL, Client: httpc}
	var candidates []model.GapCandidate
	if payload, err := preopen.FetchSnapshot(ctx); err != nil {
		log.Warn().Err(err).Msg("pre-open snapshot unavailable")
	} else {
		candidates = gap.ParseSnapshot(payload)
	}
	if len(candidates) == 0 {
		log.Info().Msg("no usable snapshot rows, falling back to overnight gaps")
		candidates = gap.FallbackCandidates(ctx, yahoo, cfg.Scan.Pool)
	}
	watchlist := gap.Rank(candidates, cfg.Watchlist.TopN)

	report := notifier.FormatPreMarketReport(&result, watchlist)
	fmt.Print(report)

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		if err := tn.SendWithRetry(ctx, report); err != nil {
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
