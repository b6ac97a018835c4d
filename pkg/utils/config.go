package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AI        AIConfig
	Chat      ChatConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
	// TrustedProxies lists the addresses or CIDR ranges of reverse proxies
	// whose X-Forwarded-For header is believed.
	TrustedProxies []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// RedisConfig is optional. An empty Addr keeps conversations in memory and
// disables the opening hours cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type AIConfig struct {
	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string
	OpenAIAPIKey    string
	OpenAIModel     string
	GeminiAPIKey    string
	GeminiModel     string
	Timeout         time.Duration
	Temperature     float32
	MaxTokens       int
}

type ChatConfig struct {
	MaxRetries    int
	HistoryWindow int
	MaxQuantity   int
	SessionTTL    time.Duration
	TicketCatalog string
}

type AdminConfig struct {
	KeyHash string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("APP_NAME", "museum-chat")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1")
	viper.SetDefault("DEEPSEEK_MODEL", "deepseek-chat")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("AI_TIMEOUT_SECONDS", 20)
	viper.SetDefault("AI_TEMPERATURE", 0.7)
	viper.SetDefault("AI_MAX_TOKENS", 500)
	viper.SetDefault("MAX_RETRIES", 5)
	viper.SetDefault("HISTORY_WINDOW", 20)
	viper.SetDefault("MAX_TICKET_QUANTITY", 50)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("RATE_LIMIT_RPS", 2)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	// deployments configure through the environment only
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: SplitList(viper.GetString("ALLOWED_ORIGINS")),
			TrustedProxies: SplitList(viper.GetString("TRUSTED_PROXIES")),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			CacheTTL: time.Duration(viper.GetInt("REDIS_CACHE_TTL_SECONDS")) * time.Second,
		},
		AI: AIConfig{
			DeepSeekAPIKey:  viper.GetString("DEEPSEEK_API_KEY"),
			DeepSeekBaseURL: viper.GetString("DEEPSEEK_BASE_URL"),
			DeepSeekModel:   viper.GetString("DEEPSEEK_MODEL"),
			OpenAIAPIKey:    viper.GetString("OPENAI_API_KEY"),
			OpenAIModel:     viper.GetString("OPENAI_MODEL"),
			GeminiAPIKey:    viper.GetString("GEMINI_API_KEY"),
			GeminiModel:     viper.GetString("GEMINI_MODEL"),
			Timeout:         time.Duration(viper.GetInt("AI_TIMEOUT_SECONDS")) * time.Second,
			Temperature:     float32(viper.GetFloat64("AI_TEMPERATURE")),
			MaxTokens:       viper.GetInt("AI_MAX_TOKENS"),
		},
		Chat: ChatConfig{
			MaxRetries:    viper.GetInt("MAX_RETRIES"),
			HistoryWindow: viper.GetInt("HISTORY_WINDOW"),
			MaxQuantity:   viper.GetInt("MAX_TICKET_QUANTITY"),
			SessionTTL:    time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
			TicketCatalog: viper.GetString("TICKET_CATALOG"),
		},
		Admin: AdminConfig{
			KeyHash: viper.GetString("ADMIN_KEY_HASH"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
