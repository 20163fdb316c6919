package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Gradebook Gradebook
	Auth      Auth
	Flow      Flow
	Redis     Redis
	RabbitMQ  RabbitMQ
	Log       Log
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Gradebook is where the runner fetches questions and posts attempts.
type Gradebook struct {
	BaseURL string
	Timeout time.Duration
}

type Auth struct {
	JWTSecret string
}

type Flow struct {
	SubmissionWeight float64
	TickInterval     time.Duration
}

type Redis struct {
	Addr             string
	Password         string
	DB               int
	QuestionCacheTTL time.Duration
}

type RabbitMQ struct {
	URL      string
	Exchange string
}

type Log struct {
	Level  string
	Pretty bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GRADEBOOK_BASE_URL", "http://localhost:8081/api/v1")
	viper.SetDefault("GRADEBOOK_TIMEOUT", "5s")
	viper.SetDefault("SUBMISSION_WEIGHT", 1)
	viper.SetDefault("TICK_INTERVAL", "1s")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("QUESTION_CACHE_TTL", "10m")
	viper.SetDefault("RABBITMQ_EXCHANGE", "assessflow.events")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gradebook.BaseURL = viper.GetString("GRADEBOOK_BASE_URL")
	config.Gradebook.Timeout = viper.GetDuration("GRADEBOOK_TIMEOUT")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Flow.SubmissionWeight = viper.GetFloat64("SUBMISSION_WEIGHT")
	config.Flow.TickInterval = viper.GetDuration("TICK_INTERVAL")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.QuestionCacheTTL = viper.GetDuration("QUESTION_CACHE_TTL")

	config.RabbitMQ.URL = viper.GetString("RABBITMQ_URL")
	config.RabbitMQ.Exchange = viper.GetString("RABBITMQ_EXCHANGE")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Every bearer token will be rejected.")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("gradebook", config.Gradebook.BaseURL).
		Str("database_host", config.Database.Host).
		Bool("redis", config.Redis.Addr != "").
		Bool("rabbitmq", config.RabbitMQ.URL != "").
		Msg("Config loaded")
	return &config, nil
}
