package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv string
	Port   string

	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig

	UploadDir          string
	CORSAllowedOrigin  string
	DashboardCacheTTL  time.Duration
	OutboxPollInterval time.Duration
}

type DBConfig struct {
	Host        string
	User        string
	Password    string
	Name        string
	Port        string
	SSLMode     string
	MaxRetries  int
	AutoMigrate bool
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker  string
	GroupID string
}

// Load reads configuration from the environment. Call godotenv.Load first to pick up a .env file.
func Load() Config {
	return Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        getEnv("DB_NAME", "ems"),
			Port:        getEnv("DB_PORT", "5432"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxRetries:  getInt("DB_MAX_RETRIES", 5),
			AutoMigrate: getBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Broker:  os.Getenv("KAFKA_BROKER"),
			GroupID: getEnv("KAFKA_GROUP_ID", "go-ems-dashboard"),
		},
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		CORSAllowedOrigin:  getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:4000"),
		DashboardCacheTTL:  getDuration("DASHBOARD_CACHE_TTL", 5*time.Minute),
		OutboxPollInterval: getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
