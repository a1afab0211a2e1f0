package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"PreMarketScout/internal/model"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Markets struct {
		Primary    []model.IndexRef `yaml:"primary"`
		Secondary  []model.IndexRef `yaml:"secondary"`
		Volatility model.IndexRef   `yaml:"volatility"`
	} `yaml:"markets"`
	Sources struct {
		GiftNiftyURL string `yaml:"gift_nifty_url"`
		PreOpenURL   string `yaml:"preopen_url"`
	} `yaml:"sources"`
	Scan struct {
		Pool        []string `yaml:"pool"`
		HistoryDays int      `yaml:"history_days"`
	} `yaml:"scan"`
	Watchlist struct {
		TopN int `yaml:"top_n"`
	} `yaml:"watchlist"`
	Proxy string `yaml:"proxy"`
}

// defaultPool is the NSE F&O universe scanned when no pool is configured.
var defaultPool = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
	"HINDUNILVR.NS", "SBIN.NS", "BHARTIARTL.NS", "ITC.NS", "KOTAKBANK.NS",
	"LT.NS", "AXISBANK.NS", "BAJFINANCE.NS", "WIPRO.NS", "ASIANPAINT.NS",
	"MARUTI.NS", "TITAN.NS", "SUNPHARMA.NS", "ULTRACEMCO.NS", "NESTLEIND.NS",
	"HCLTECH.NS", "TATAMOTORS.NS", "POWERGRID.NS", "NTPC.NS", "TECHM.NS",
	"BAJAJFINSV.NS", "ONGC.NS", "M&M.NS", "ADANIPORTS.NS", "DIVISLAB.NS",
}

// Load reads config from a YAML file, then applies environment variable
// overrides and documented defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("GIFT_NIFTY_URL"); v != "" {
		cfg.Sources.GiftNiftyURL = v
	}
	if v := os.Getenv("PREOPEN_URL"); v != "" {
		cfg.Sources.PreOpenURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("WATCHLIST_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Watchlist.TopN = n
		}
	}

	// Defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if len(cfg.Markets.Primary) == 0 {
		cfg.Markets.Primary = []model.IndexRef{
			{Name: "S&P500", Symbol: "^GSPC"},
			{Name: "Dow", Symbol: "^DJI"},
			{Name: "Nasdaq", Symbol: "^IXIC"},
		}
	}
	if len(cfg.Markets.Secondary) == 0 {
		cfg.Markets.Secondary = []model.IndexRef{
			{Name: "Nikkei", Symbol: "^N225"},
			{Name: "HangSeng", Symbol: "^HSI"},
		}
	}
	if cfg.Markets.Volatility.Symbol == "" {
		cfg.Markets.Volatility = model.IndexRef{Name: "India VIX", Symbol: "^INDIAVIX"}
	}
	if cfg.Sources.GiftNiftyURL == "" {
		cfg.Sources.GiftNiftyURL = "https://www.moneycontrol.com/live-index/gift-nifty"
	}
	if cfg.Sources.PreOpenURL == "" {
		cfg.Sources.PreOpenURL = "https://howutrade.in/snapdata/?data=PreOpen_FO"
	}
	if len(cfg.Scan.Pool) == 0 {
		cfg.Scan.Pool = defaultPool
	}
	if cfg.Scan.HistoryDays == 0 {
		cfg.Scan.HistoryDays = 90
	}
	if cfg.Watchlist.TopN == 0 {
		cfg.Watchlist.TopN = 6
	}

	return cfg, nil
}

// Validate checks that the resolved configuration is usable.
func (c *Config) Validate() error {
	if c.Scan.HistoryDays < 50 {
		return fmt.Errorf("scan.history_days must be at least 50 (EMA(50) warm-up)")
	}
	if c.Watchlist.TopN <= 0 {
		return fmt.Errorf("watchlist.top_n must be positive")
	}
	if len(c.Scan.Pool) == 0 {
		return fmt.Errorf("scan.pool must not be empty")
	}
	if len(c.Markets.Primary) == 0 {
		return fmt.Errorf("markets.primary must not be empty")
	}
	return nil
}
