package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string   `env:"PORT" envDefault:"8800"`
	DatabaseURL   string   `env:"DATABASE_URL,required"`
	JWTSecret     string   `env:"JWT_SECRET_KEY,required"`
	TokenTTLDays  int      `env:"TOKEN_TTL_DAYS" envDefault:"21"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:","`
	RedisAddr     string   `env:"REDIS_ADDR"`
	RedisPassword string   `env:"REDIS_PASSWORD"`
	RedisDB       int      `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
