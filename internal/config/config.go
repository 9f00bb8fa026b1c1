// Package config loads runtime settings from configs/config.yml with
// STOREFRONT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "STOREFRONT"
	configName = "config"

	// Published sheets the storefront reads by default.
	DefaultRepairSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRPXAlCtH-DXvjGmoIpc5j8TQzJpJhfuT36sIU5Y9l0-qk_z2VYyClFzLk2N1LxmomZAyGecxjGKIyy/pub?output=csv"
	DefaultPartsSheetURL  = "https://docs.google.com/spreadsheets/d/e/2PACX-1vS7FjutTXkrEMA10CYXrco34xiTahV9GkCK9StE3hqLly_dKVlhJddHQayDA-HBgxpVlIDnIUpTN6jX/pub?output=csv"
)

type Config struct {
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	DB      DBConfig      `mapstructure:"db"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Inquiry InquiryConfig `mapstructure:"inquiry"`
	Session SessionConfig `mapstructure:"session"`
	Cookies CookieConfig  `mapstructure:"cookies"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type CatalogConfig struct {
	RepairURL   string `mapstructure:"repair_url"`
	PartsURL    string `mapstructure:"parts_url"`
	PartsMarker string `mapstructure:"parts_marker"`
	// FetchTimeout of zero leaves sheet fetches unbounded.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	Preload      bool          `mapstructure:"preload"`
}

type InquiryConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Phone    string `mapstructure:"phone"`
	Business string `mapstructure:"business"`
}

type SessionConfig struct {
	SigningKey string `mapstructure:"signing_key"`
}

type CookieConfig struct {
	Secure bool `mapstructure:"secure"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "storefront.db")
	v.SetDefault("catalog.repair_url", DefaultRepairSheetURL)
	v.SetDefault("catalog.parts_url", DefaultPartsSheetURL)
	v.SetDefault("catalog.parts_marker", "parts")
	v.SetDefault("catalog.fetch_timeout", "0s")
	v.SetDefault("catalog.preload", true)
	v.SetDefault("inquiry.base_url", "https://wa.me")
	v.SetDefault("inquiry.phone", "917819049772")
	v.SetDefault("inquiry.business", "Ashok Services")
	v.SetDefault("session.signing_key", "")
	v.SetDefault("cookies.secure", false)
}

// Load reads config.yml from the given directories (first match wins). A
// missing file is not an error: defaults and environment still apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
