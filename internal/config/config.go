// Package config resolves the command settings from flags, GOCOMB_*
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by viper.
const EnvPrefix = "GOCOMB"

// Setting keys, shared with the cobra flag names.
const (
	KeyFile        = "file"
	KeyAnnex       = "annex"
	KeyVerbose     = "verbose"
	KeyFormat      = "format"
	KeyChartWidth  = "chart-width"
	KeyChartHeight = "chart-height"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// DefaultFile is the project file used when --file is not given.
const DefaultFile = "gocomb.yml"

// Settings are the resolved command settings.
type Settings struct {
	File        string
	Annex       string // empty keeps the annex of the project file
	Verbose     bool
	Format      string
	ChartWidth  int
	ChartHeight int
}

// New returns a viper instance reading GOCOMB_* variables, with defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyFile, DefaultFile)
	v.SetDefault(KeyFormat, FormatTable)
	v.SetDefault(KeyChartWidth, 60)
	v.SetDefault(KeyChartHeight, 12)
	return v
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// FromViper reads and validates the settings.
func FromViper(v *viper.Viper) (Settings, error) {
	s := Settings{
		File:        v.GetString(KeyFile),
		Annex:       strings.ToLower(strings.TrimSpace(v.GetString(KeyAnnex))),
		Verbose:     v.GetBool(KeyVerbose),
		Format:      strings.ToLower(v.GetString(KeyFormat)),
		ChartWidth:  v.GetInt(KeyChartWidth),
		ChartHeight: v.GetInt(KeyChartHeight),
	}
	return s, s.Validate()
}

// Validate ensures the settings are usable.
func (s Settings) Validate() error {
	if s.File == "" {
		return fmt.Errorf("settings.file is required")
	}
	if s.Annex != "" {
		if _, err := action.ParseAnnex(s.Annex); err != nil {
			return err
		}
	}
	if s.Format != FormatTable && s.Format != FormatJSON {
		return fmt.Errorf("settings.format must be %q or %q, got %q", FormatTable, FormatJSON, s.Format)
	}
	if s.ChartWidth < 10 || s.ChartHeight < 3 {
		return fmt.Errorf("chart size %dx%d is too small", s.ChartWidth, s.ChartHeight)
	}
	return nil
}

// JSON reports whether machine readable output was requested.
func (s Settings) JSON() bool {
	return s.Format == FormatJSON
}
