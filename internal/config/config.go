package config

import (
	"strings"
	"time"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Google    GoogleConfig    `yaml:"google"`
	Mail      MailConfig      `yaml:"mail"`
	Redis     RedisConfig     `yaml:"redis"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"                 env-required:"true"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"25"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"5"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
	ConnectTimeout    time.Duration `yaml:"connect_timeout"     env:"DATABASE_CONNECT_TIMEOUT"     env-default:"5s"`
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"    env-default:"dealflow"`
}

// AuthConfig holds bearer-token settings. Tokens are issued by the identity
// provider and signed with the shared secret.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"dealflow"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"1h"`
	SuperAdminEmail string        `yaml:"super_admin_email" env:"AUTH_SUPER_ADMIN_EMAIL"`
}

// GoogleConfig holds the OAuth client used for Calendar and Gmail.
type GoogleConfig struct {
	ClientID          string `yaml:"client_id"           env:"GOOGLE_CLIENT_ID"`
	ClientSecret      string `yaml:"client_secret"       env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL       string `yaml:"redirect_url"        env:"GOOGLE_REDIRECT_URL"        env-default:"http://localhost:8080/api/auth/google/callback"`
	AfterAuthRedirect string `yaml:"after_auth_redirect" env:"GOOGLE_AFTER_AUTH_REDIRECT" env-default:"/"`
	SecureCookies     bool   `yaml:"secure_cookies"      env:"GOOGLE_SECURE_COOKIES"      env-default:"true"`
	TimeZone          string `yaml:"time_zone"           env:"GOOGLE_TIME_ZONE"           env-default:"UTC"`
}

// Enabled reports whether both client credentials are configured.
func (c GoogleConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Location resolves TimeZone. Empty means UTC.
func (c GoogleConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// MailConfig holds invitation email settings. ShoutrrrURL is an smtp:// URL
// without recipients; the invitee is added per message.
type MailConfig struct {
	ShoutrrrURL string `yaml:"shoutrrr_url" env:"MAIL_SHOUTRRR_URL"`
	SiteURL     string `yaml:"site_url"     env:"MAIL_SITE_URL"     env-default:"http://localhost:3000"`
	AppName     string `yaml:"app_name"     env:"MAIL_APP_NAME"     env-default:"VC-SAAS"`
	FirmName    string `yaml:"firm_name"    env:"MAIL_FIRM_NAME"    env-default:"Dholakia Ventures"`
}

// RedisConfig enables cross-instance change fan-out when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Channel  string `yaml:"channel"  env:"REDIS_CHANNEL"  env-default:"dealflow:changes"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// PipelineConfig holds SLA thresholds.
type PipelineConfig struct {
	OverdueDays int `yaml:"overdue_days" env:"PIPELINE_OVERDUE_DAYS" env-default:"25"`
	AtRiskDays  int `yaml:"at_risk_days" env:"PIPELINE_AT_RISK_DAYS" env-default:"20"`
}

// Thresholds converts the config into domain thresholds.
func (c PipelineConfig) Thresholds() domain.Thresholds {
	return domain.Thresholds{OverdueDays: c.OverdueDays, AtRiskDays: c.AtRiskDays}
}

// CacheConfig holds in-memory cache settings.
type CacheConfig struct {
	RefDataTTL time.Duration `yaml:"refdata_ttl" env:"CACHE_REFDATA_TTL" env-default:"5m"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	PerMinute int `yaml:"per_minute" env:"RATE_LIMIT_PER_MINUTE" env-default:"300"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
