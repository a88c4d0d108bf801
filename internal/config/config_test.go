package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DATA_SOURCE", "MONGODB_URI", "DIGEST_CRON_SCHEDULE", "TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Data.Source != SourceEmbedded {
		t.Errorf("expected embedded data source, got %s", cfg.Data.Source)
	}
	if cfg.Digest.CronSchedule == "" || cfg.Digest.Timezone == "" {
		t.Errorf("expected digest defaults, got %+v", cfg.Digest)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			Data:   DataConfig{Source: SourceEmbedded},
			Digest: DigestConfig{CronSchedule: "0 8 * * *", Timezone: "UTC"},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid embedded", func(*Config) {}, ""},
		{
			"csv without path",
			func(c *Config) { c.Data.Source = SourceCSV },
			"DATA_CSV_PATH",
		},
		{
			"sheet without credentials",
			func(c *Config) { c.Data.Source = SourceSheet },
			"GOOGLE_SHEETS_CREDENTIALS_PATH",
		},
		{
			"unknown source",
			func(c *Config) { c.Data.Source = "carrier-pigeon" },
			"DATA_SOURCE",
		},
		{
			"mongo uri without db name",
			func(c *Config) { c.MongoDB = MongoDBConfig{URI: "mongodb://localhost"} },
			"MONGODB_DB_NAME",
		},
		{
			"missing cron schedule",
			func(c *Config) { c.Digest.CronSchedule = "" },
			"DIGEST_CRON_SCHEDULE",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error mentioning %s, got %v", tc.wantErr, err)
			}
		})
	}
}
