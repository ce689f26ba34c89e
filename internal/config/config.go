// Package config loads and validates gst settings from viper.
package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gstcalc/internal/common"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/spf13/viper"
)

// Ledger backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds the application settings.
type Config struct {
	Theme         string
	LedgerBackend string
	LogLevel      string
	LogFormat     string
	LogFile       string
	DefaultRate   model.Rate
	Inclusive     bool
	AltScreen     bool
	HelpBar       bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("calculator.default_rate", int(model.DefaultRate))
	v.SetDefault("calculator.inclusive", false)
	v.SetDefault("ledger.backend", BackendMemory)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.help_bar", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DefaultRate:   model.Rate(v.GetInt("calculator.default_rate")),
		Inclusive:     v.GetBool("calculator.inclusive"),
		LedgerBackend: strings.ToLower(strings.TrimSpace(v.GetString("ledger.backend"))),
		Theme:         v.GetString("ui.theme"),
		AltScreen:     v.GetBool("ui.alt_screen"),
		HelpBar:       v.GetBool("ui.help_bar"),
		LogLevel:      v.GetString("logging.level"),
		LogFormat:     v.GetString("logging.format"),
		LogFile:       ExpandPath(v.GetString("logging.file")),
	}

	if !cfg.DefaultRate.Valid() {
		return Config{}, fmt.Errorf("%w: calculator.default_rate %d is not one of 5, 12, 18, 28",
			common.ErrInvalidConfig, int(cfg.DefaultRate))
	}

	switch cfg.LedgerBackend {
	case BackendMemory, BackendSQLite:
	case "":
		cfg.LedgerBackend = BackendMemory
	default:
		return Config{}, fmt.Errorf("%w: ledger.backend %q (want %s or %s)",
			common.ErrInvalidConfig, cfg.LedgerBackend, BackendMemory, BackendSQLite)
	}

	return cfg, nil
}
