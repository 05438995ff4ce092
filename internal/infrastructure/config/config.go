package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	Session  SessionConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Shipping ShippingConfig
	Geocoder GeocoderConfig
	HTTP     HTTPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings. Either URL or the
// host/name pair must be configured; there is no usable default.
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// SessionConfig holds admin session settings
type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

// AdminConfig holds the bootstrap admin credential
type AdminConfig struct {
	Username string
	Password string
}

// StorageConfig holds S3-compatible object storage settings
type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicBaseURL is the base under which uploaded objects are
	// reachable; defaults to "{Endpoint}/{Bucket}".
	PublicBaseURL string
	UsePathStyle  bool
}

// ShippingConfig holds shipping estimation settings
type ShippingConfig struct {
	PickupCEP string
}

// GeocoderConfig holds the CEP geocoding provider settings
type GeocoderConfig struct {
	ViaCEPBaseURL    string
	NominatimBaseURL string
	UserAgent        string
	Timeout          time.Duration
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SHOP_ prefix (e.g., SHOP_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("database.url"),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Session: SessionConfig{
			Secret:       v.GetString("session.secret"),
			TTL:          v.GetDuration("session.ttl"),
			CookieName:   v.GetString("session.cookie_name"),
			CookieSecure: v.GetBool("session.cookie_secure"),
		},
		Admin: AdminConfig{
			Username: v.GetString("admin.username"),
			Password: v.GetString("admin.password"),
		},
		Storage: StorageConfig{
			Endpoint:      v.GetString("storage.endpoint"),
			Region:        v.GetString("storage.region"),
			Bucket:        v.GetString("storage.bucket"),
			AccessKey:     v.GetString("storage.access_key"),
			SecretKey:     v.GetString("storage.secret_key"),
			PublicBaseURL: v.GetString("storage.public_base_url"),
			UsePathStyle:  v.GetBool("storage.use_path_style"),
		},
		Shipping: ShippingConfig{
			PickupCEP: v.GetString("shipping.pickup_cep"),
		},
		Geocoder: GeocoderConfig{
			ViaCEPBaseURL:    v.GetString("geocoder.viacep_base_url"),
			NominatimBaseURL: v.GetString("geocoder.nominatim_base_url"),
			UserAgent:        v.GetString("geocoder.user_agent"),
			Timeout:          v.GetDuration("geocoder.timeout"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "admin_session"
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "admin123"
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = "product-images"
	}
	if cfg.Storage.PublicBaseURL == "" && cfg.Storage.Endpoint != "" {
		cfg.Storage.PublicBaseURL = strings.TrimRight(cfg.Storage.Endpoint, "/") + "/" + cfg.Storage.Bucket
	}
	if cfg.Shipping.PickupCEP == "" {
		cfg.Shipping.PickupCEP = "65606-530"
	}
	if cfg.Geocoder.ViaCEPBaseURL == "" {
		cfg.Geocoder.ViaCEPBaseURL = "https://viacep.com.br"
	}
	if cfg.Geocoder.NominatimBaseURL == "" {
		cfg.Geocoder.NominatimBaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = "storefront-shipping/1.0"
	}
	if cfg.Geocoder.Timeout == 0 {
		cfg.Geocoder.Timeout = 5 * time.Second
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 20 << 20 // 20MB, image uploads
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("database configuration is required: set database.url or database.host and database.dbname")
	}

	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env == "production" {
		if c.Session.Secret == "" {
			return fmt.Errorf("session.secret is required in production")
		}
		if len(c.Session.Secret) < 32 {
			return fmt.Errorf("session.secret must be at least 32 characters in production")
		}
		if c.Database.URL == "" && c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Admin.Password == "admin123" {
			return fmt.Errorf("admin.password must be changed from the default in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
