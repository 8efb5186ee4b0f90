package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/andesmotors/entregas/fields"
	"github.com/sirupsen/logrus"
)

const defaultConfigPath = "config.json"

// parseConfig loads config.json (path overridable through ENTREGAS_CONFIG)
// and lets the API keys come from the environment so they stay out of the
// file on shared boxes.
func parseConfig(data *fields.Config) error {
	path := os.Getenv("ENTREGAS_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, data); err != nil {
			logrusLogger.Printf("Error in parsing config file: %v", err)
			return err
		}
	} else {
		logrusLogger.Printf("No config file at %s, relying on defaults and env: %v", path, err)
	}

	if v := os.Getenv("ENTREGAS_SHEETS_API_KEY"); v != "" {
		data.SheetsAPIKey = v
	}
	if v := os.Getenv("ENTREGAS_GEMINI_API_KEY"); v != "" {
		data.GeminiAPIKey = v
	}
	data.Defaults()
	return nil
}

func configureLogger(cfg fields.Config) {
	logrusLogger.Out = os.Stderr
	if cfg.IsDebug {
		logrusLogger.SetLevel(logrus.DebugLevel)
		logrusLogger.SetReportCaller(true)
	} else {
		logrusLogger.SetLevel(logrus.InfoLevel)
		logrusLogger.SetReportCaller(false)
	}
	logrusLogger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
}
