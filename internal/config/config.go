package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string

	AuthSecret  string
	NonceSecret string

	SiteURL      string
	Timezone     string
	ReminderCron string

	SmtpHost     string
	SmtpPort     string
	SmtpUser     string
	SmtpPassword string
	SmtpFrom     string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),
		DbHost:     getEnv("MYSQL_HOST", "db"),
		DbPort:     getEnv("MYSQL_PORT", "3306"),
		DbUser:     getEnv("MYSQL_USER", "rtodo"),
		DbPassword: getEnv("MYSQL_PASSWORD", "rtodo"),
		DbName:     getEnv("MYSQL_DATABASE", "rtodo"),
		// clientFoundRows makes UPDATE report matched rows instead of changed
		// rows, which the ownership-scoped writes rely on.
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true&clientFoundRows=true"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		AuthSecret:  getEnv("AUTH_SECRET", ""),
		NonceSecret: getEnv("NONCE_SECRET", ""),

		SiteURL:      getEnv("SITE_URL", "http://localhost:8080"),
		Timezone:     getEnv("TIMEZONE", "UTC"),
		ReminderCron: getEnv("REMINDER_CRON", "0 8 * * *"),

		SmtpHost:     getEnv("SMTP_HOST", ""),
		SmtpPort:     getEnv("SMTP_PORT", "587"),
		SmtpUser:     getEnv("SMTP_USER", ""),
		SmtpPassword: getEnv("SMTP_PASSWORD", ""),
		SmtpFrom:     getEnv("SMTP_FROM", "rtodo@localhost"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
