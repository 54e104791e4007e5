package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Mail     MailConfig
	CORS     CORSConfig
	LogFile  string
}

type ServerConfig struct {
	Port     string
	Prod     bool
	UseHTTPS bool
	CertFile string
	KeyFile  string
}

type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
	Verbose  bool
	Migrate  bool
}

type RedisConfig struct {
	URL string // redis:// URL or host:port, empty disables the draw lock
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type MailConfig struct {
	PublicKey    string
	PrivateKey   string
	Sender       string
	SenderName   string
	TemplateID   int
	ProxyBaseURL string
	Timeout      time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

// Load returns application configuration from environment variables
func Load() *Config {
	useHTTPS := getEnvBool("USE_HTTPS", false)
	defaultPort := "8080"
	if useHTTPS {
		defaultPort = "443"
	}
	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", defaultPort),
			Prod:     getEnvBool("PROD", false),
			UseHTTPS: useHTTPS,
			CertFile: getEnv("TLS_CERT_FILE", "/etc/letsencrypt/live/santa-family.fr/fullchain.pem"),
			KeyFile:  getEnv("TLS_KEY_FILE", "/etc/letsencrypt/live/santa-family.fr/privkey.pem"),
		},
		Postgres: PostgresConfig{
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			Database: getEnv("POSTGRES_DATABASE", "santa"),
			Verbose:  getEnvBool("VERBOSE_POSTGRES", false),
			Migrate:  getEnvBool("MIGRATE_POSTGRES", false),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Issuer: getEnv("JWT_ISSUER", "santa-family"),
			TTL:    getEnvDuration("JWT_TTL", 7*24*time.Hour),
		},
		Mail: MailConfig{
			PublicKey:    getEnv("MJ_APIKEY_PUBLIC", ""),
			PrivateKey:   getEnv("MJ_APIKEY_PRIVATE", ""),
			Sender:       getEnv("MAIL_SENDER", "contact@santa-family.fr"),
			SenderName:   getEnv("MAIL_SENDER_NAME", "Santa Family"),
			TemplateID:   getEnvInt("MAILJET_TEMPLATE_ID", 7499110),
			ProxyBaseURL: getEnv("PROXY_BASE_URL", "https://santa-family.fr/api/uuid/proxy"),
			Timeout:      getEnvDuration("MAIL_TIMEOUT", 10*time.Second),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		},
		LogFile: getEnv("LOG_FILE", ""),
	}
}

// MailjetEnabled reports whether both Mailjet keys are set
func (m MailConfig) MailjetEnabled() bool {
	return m.PublicKey != "" && m.PrivateKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
