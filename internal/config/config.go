package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	AI        AIConfig
	Exam      ExamConfig      `mapstructure:"exam"`
	Topics    TopicsConfig    `mapstructure:"topics"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 執行期旗標（由命令列參數設定，不在設定檔中）
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type AIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// ExamConfig 模擬考卷的組卷參數
type ExamConfig struct {
	ConceptCount        int `mapstructure:"concept_count"`
	ImplementationCount int `mapstructure:"implementation_count"`
	DurationSeconds     int `mapstructure:"duration_seconds"`
}

// TopicsConfig 出題主題目錄，注入 TopicSelector 以便測試時替換
type TopicsConfig struct {
	Concept        []string `mapstructure:"concept"`
	Implementation []string `mapstructure:"implementation"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// DefaultConceptTopics APCS 觀念題的預設主題目錄
var DefaultConceptTopics = []string{
	"Basic IO & Variables",
	"Control Structures",
	"Arrays & Strings",
	"Functions & Recursion",
	"Pointers & Memory",
	"Data Structures",
	"Algorithms",
}

// DefaultImplementationTopics APCS 實作題的預設主題目錄
var DefaultImplementationTopics = []string{
	"Basic Input/Output",
	"Conditional Logic",
	"Loops & Patterns",
	"Arrays & 2D Arrays",
	"String Manipulation",
	"Recursive Functions",
	"Sorting Algorithms",
	"Searching Algorithms",
	"Greedy Algorithms",
	"Dynamic Programming (Basic)",
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("APCS")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("exam.concept_count", 30)
	viper.SetDefault("exam.implementation_count", 3)
	viper.SetDefault("exam.duration_seconds", 150*60)
	viper.SetDefault("topics.concept", DefaultConceptTopics)
	viper.SetDefault("topics.implementation", DefaultImplementationTopics)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 正式環境校驗 JWT Secret 強度
	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	return &cfg, nil
}
