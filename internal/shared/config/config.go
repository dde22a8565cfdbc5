package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string
	DatabaseName      string
	Port              string
	Env               string
	VATRate           float64
	AMQPURL           string
	EventsExchange    string
	UsageSnapshotCron string
}

// DefaultVATRate is the Kenyan standard VAT applied to proposal subtotals
// when VAT_RATE is not configured.
const DefaultVATRate = 0.16

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DatabaseName:      os.Getenv("DATABASE_NAME"),
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		AMQPURL:           os.Getenv("AMQP_URL"),
		EventsExchange:    os.Getenv("EVENTS_EXCHANGE"),
		UsageSnapshotCron: os.Getenv("USAGE_SNAPSHOT_CRON"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.EventsExchange == "" {
		cfg.EventsExchange = "crm.events"
	}
	if cfg.UsageSnapshotCron == "" {
		cfg.UsageSnapshotCron = "@hourly"
	}

	cfg.VATRate = DefaultVATRate
	if raw := os.Getenv("VAT_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 || rate >= 1 {
			log.Printf("⚠️ Invalid VAT_RATE %q, using default %.2f", raw, DefaultVATRate)
		} else {
			cfg.VATRate = rate
		}
	}

	return cfg
}
