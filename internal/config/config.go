// Package config holds the application configuration and its YAML loader.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var configLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	configLogger = l
}

// Config represents the complete configuration structure.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	Storage StorageConfig `yaml:"storage"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
}

type SiteConfig struct {
	Name        string `yaml:"name" default:"Aljaz Oblonsek"`
	Tagline     string `yaml:"tagline" default:"Software engineer, occasional blogger"`
	Author      string `yaml:"author" default:"Aljaz Oblonsek"`
	Description string `yaml:"description" default:"Personal portfolio and blog"`

	// BaseURL replaces the {{BASE_URL}} placeholder in post bodies and is
	// used for absolute links in templates.
	BaseURL string `yaml:"base_url" default:"http://localhost:8080"`
}

type ServerConfig struct {
	Host string `yaml:"host" default:"0.0.0.0"`
	Port string `yaml:"port" default:"8080"`
}

type ContentConfig struct {
	// PostsDir is the directory holding the markdown post documents.
	PostsDir string `yaml:"posts_dir" default:"content/posts"`

	// HeadingAnchorPrefix is prepended to every generated heading id so
	// deep links stay stable and never collide with other element ids.
	HeadingAnchorPrefix string `yaml:"heading_anchor_prefix" default:"bl-"`
}

type StorageConfig struct {
	// Backend selects where post documents are read from: "fs" or "s3".
	Backend string `yaml:"backend" default:"fs"`
	S3      S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket" default:""`
	Endpoint string `yaml:"endpoint" default:""`
	Region   string `yaml:"region" default:"auto"`
}

type ThemeConfig struct {
	Syntax string `yaml:"syntax" default:"catppuccin-mocha"`
}

type LoggingConfig struct {
	Level string `yaml:"level" default:"info"`
}

var AppConfig *Config

func LoadConfig(path string) error {
	config := &Config{}

	// Apply default values first
	applyDefaults(config)

	// Try to read and parse the config file
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just use defaults
		configLogger.Info().Str("path", path).Msg("Config file not found, using defaults")
		AppConfig = config
		return nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	AppConfig = config
	return nil
}

func ApplyDefaults(config interface{}) {
	applyDefaults(config)
}

func applyDefaults(config interface{}) {
	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.IsValid() || !field.CanSet() {
			continue
		}

		// Recursively apply defaults to nested structs
		if field.Kind() == reflect.Struct {
			applyDefaults(field.Addr().Interface())
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(defaultValue)
		case reflect.Bool:
			if val, err := strconv.ParseBool(defaultValue); err == nil {
				field.SetBool(val)
			}
		case reflect.Int:
			if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				field.SetInt(val)
			}
		case reflect.Slice:
			if field.Len() == 0 && field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(defaultValue, ",")
				slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
				for j, part := range parts {
					slice.Index(j).SetString(strings.TrimSpace(part))
				}
				field.Set(slice)
			}
		default:
			configLogger.Warn().
				Str("field_name", fieldType.Name).
				Str("field_type", field.Kind().String()).
				Msg("Unsupported field type for default value")
		}
	}
}
