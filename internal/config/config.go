package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server struct {
		Addr            string `env:"ADDR" envDefault:":8080"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN string `env:"DSN,required"`
	} `envPrefix:"DATABASE_"`
	Redis struct {
		Addr     string `env:"ADDR" envDefault:"127.0.0.1:6379"`
		Password string `env:"PASSWORD" envDefault:""`
		DB       int    `env:"DB" envDefault:"0"`
	} `envPrefix:"REDIS_"`
	JWT struct {
		Secret     string        `env:"SECRET,required"`
		AccessTTL  time.Duration `env:"ACCESS_TTL" envDefault:"1h"`
		RefreshTTL time.Duration `env:"REFRESH_TTL" envDefault:"24h"`
	} `envPrefix:"JWT_"`
	SMTP struct {
		Host     string `env:"HOST"`
		Port     int    `env:"PORT" envDefault:"587"`
		Username string `env:"USERNAME"`
		Password string `env:"PASSWORD"`
		From     string `env:"FROM"`
	} `envPrefix:"SMTP_"`
	Kafka struct {
		Brokers []string `env:"BROKERS" envDefault:"127.0.0.1:9092"`
		Topic   string   `env:"TOPIC" envDefault:"moderation.report"`
	} `envPrefix:"KAFKA_"`
	TourAPI struct {
		BaseURL    string        `env:"BASE_URL" envDefault:"http://apis.data.go.kr/B551011/KorService2"`
		ServiceKey string        `env:"SERVICE_KEY,required"`
		Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
	} `envPrefix:"TOUR_API_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
