package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
// Las credenciales externas son opcionales: su ausencia degrada el
// comportamiento (modo demo, datos mock, resultados vacios), nunca
// impide el arranque.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	LLMBaseURL   string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel     string `env:"LLM_MODEL" envDefault:"gpt-4o"`

	WeatherAPIKey string `env:"WEATHER_API_KEY"`
	PlacesAPIKey  string `env:"GOOGLE_PLACES_API_KEY"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
