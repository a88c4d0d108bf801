package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Supported dataset sources.
const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourceSheet    = "sheet"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Sheets  SheetsConfig
	MongoDB MongoDBConfig
	Digest  DigestConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DataConfig selects where the financial dataset is loaded from.
type DataConfig struct {
	Source  string
	CSVPath string
}

// SheetsConfig contains configuration required to read the dataset from
// Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ReadRange       string
}

// MongoDBConfig holds settings for the query-history archive. An empty URI
// disables archiving.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// DigestConfig holds scheduler and notification settings for the daily
// digest. An empty WebhookURL disables the outbound push.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
	WebhookURL   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Data: DataConfig{
			Source:  getenvWithDefault("DATA_SOURCE", SourceEmbedded),
			CSVPath: os.Getenv("DATA_CSV_PATH"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
			ReadRange:       getenvWithDefault("GOOGLE_SHEET_READ_RANGE", "Financials!A:G"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "finsight"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 8 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "UTC"),
			WebhookURL:   os.Getenv("DIGEST_WEBHOOK_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Data.Source {
	case SourceEmbedded:
	case SourceCSV:
		if c.Data.CSVPath == "" {
			return errors.New("DATA_CSV_PATH must be provided when DATA_SOURCE=csv")
		}
	case SourceSheet:
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when DATA_SOURCE=sheet")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided when DATA_SOURCE=sheet")
		}
		if c.Sheets.ReadRange == "" {
			return errors.New("GOOGLE_SHEET_READ_RANGE must not be empty")
		}
	default:
		return fmt.Errorf("unsupported DATA_SOURCE %q", c.Data.Source)
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	if c.Digest.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
