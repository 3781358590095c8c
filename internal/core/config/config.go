package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Feed holds the order feed configuration.
	Feed FeedConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy used by the feed client.
	Proxy ProxyConfig `mapstructure:",squash"`

	// Cache holds the Redis configuration for AI insight caching.
	Cache CacheConfig `mapstructure:",squash"`

	// Gemini holds the generative AI configuration.
	Gemini GeminiConfig `mapstructure:",squash"`
}

// FeedConfig describes where the order feed lives.
type FeedConfig struct {
	// URL is the endpoint returning the JSON array of orders.
	URL string `mapstructure:"ORDER_FEED_URL" required:"true"`
	// Timeout bounds a single feed request.
	Timeout time.Duration `mapstructure:"FEED_TIMEOUT" default:"10s"`
}

// ProxyConfig holds the upstream proxy settings for outbound feed requests.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// CacheConfig holds cache connection details.
type CacheConfig struct {
	// RedisURL is the Redis connection string. Empty disables caching.
	RedisURL string `mapstructure:"REDIS_URL"`
	// InsightTTL is how long generated insights stay cached.
	InsightTTL time.Duration `mapstructure:"INSIGHT_CACHE_TTL" default:"1h"`
}

// GeminiConfig holds the credentials for the Gemini API.
type GeminiConfig struct {
	// APIKey authenticates against the Gemini API. Empty disables AI features.
	APIKey string `mapstructure:"GEMINI_API_KEY"`
	// Model is the generative model name.
	Model string `mapstructure:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	// Timeout bounds a single AI call.
	Timeout time.Duration `mapstructure:"AI_TIMEOUT" default:"30s"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if _, err := url.ParseRequestURI(config.Feed.URL); err != nil {
		return nil, fmt.Errorf("invalid ORDER_FEED_URL: %w", err)
	}

	return &config, nil
}

// HasProxy reports whether an upstream proxy is enabled and fully addressed.
func (p ProxyConfig) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// URL returns the proxy URL including credentials when present, or nil when disabled.
func (p ProxyConfig) URL() *url.URL {
	if !p.HasProxy() {
		return nil
	}
	u := &url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
	}
	if p.Username != "" && p.Password != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// Enabled reports whether an API key is configured.
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}

// walkFields calls fn for every leaf field of config, descending into nested structs.
func walkFields(config interface{}, fn func(field reflect.StructField, value reflect.Value) error) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := walkFields(val.Field(i).Addr().Interface(), fn); err != nil {
				return err
			}
			continue
		}

		if err := fn(field, val.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

// processTags binds every tagged key to the environment and registers defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	return walkFields(config, func(field reflect.StructField, _ reflect.Value) error {
		key := field.Tag.Get("mapstructure")
		if key == "" {
			return nil
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
		return nil
	})
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	return walkFields(config, func(field reflect.StructField, value reflect.Value) error {
		if field.Tag.Get("required") == "true" && isZero(value) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
		return nil
	})
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
