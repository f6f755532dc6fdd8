package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every process-level setting. It is built once at startup and
// passed down explicitly; nothing in the application reads the environment
// after Load returns.
type Config struct {
	Port         string
	SecretKey    string
	DBPath       string
	CookieSecure bool

	UploadDir         string
	AllowedExtensions []string

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	Mail MailConfig
}

// MailConfig holds outbound mail transport settings. The application does not
// send mail yet; the block is parsed so deployments can configure it ahead of
// time without the process rejecting the variables.
type MailConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	UseTLS   bool
}

func Load() Config {
	// A missing .env file is fine; real deployments use plain env vars.
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		SecretKey:    getEnv("SECRET_KEY", "change_me_in_production"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "rentora.db")),
		CookieSecure: getBoolEnv("COOKIE_SECURE", false),

		UploadDir:         getEnv("UPLOAD_DIR", filepath.Join("data", "uploads")),
		AllowedExtensions: splitList(getEnv("ALLOWED_UPLOAD_EXTENSIONS", "png,jpg,jpeg,pdf")),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@rental.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		Mail: MailConfig{
			Server:   getEnv("MAIL_SERVER", ""),
			Port:     getIntEnv("MAIL_PORT", 587),
			Username: getEnv("MAIL_USERNAME", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			UseTLS:   getBoolEnv("MAIL_USE_TLS", true),
		},
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getBoolEnv(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	return raw == "1" || strings.EqualFold(raw, "true")
}

func getIntEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.ToLower(strings.TrimSpace(part))
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	return values
}
