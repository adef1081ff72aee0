// README: Config loader (viper: yaml file + env overrides + defaults).
package config

import (
	"time"

	"github.com/spf13/viper"
)

type SimulatorConfig struct {
	TickSeconds int
	// JitterDegrees is the max coordinate perturbation per axis per tick.
	JitterDegrees float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
	Redis struct {
		Addr string
	}
	Simulator SimulatorConfig
	AI        struct {
		GeminiKey string
	}
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("LODHI")
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("JWT_SECRET", "lodhi-dev-secret")
	v.SetDefault("TOKEN_TTL_MINUTES", 720)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("SIM_TICK_SECONDS", 3)
	v.SetDefault("SIM_JITTER_DEGREES", 0.0005)
	v.SetDefault("GEMINI_API_KEY", "")

	// A missing config file is fine; env and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	cfg.HTTP.Addr = v.GetString("HTTP_ADDR")
	cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	cfg.Auth.TokenTTL = time.Duration(v.GetInt("TOKEN_TTL_MINUTES")) * time.Minute
	cfg.Redis.Addr = v.GetString("REDIS_ADDR")
	cfg.Simulator.TickSeconds = v.GetInt("SIM_TICK_SECONDS")
	cfg.Simulator.JitterDegrees = v.GetFloat64("SIM_JITTER_DEGREES")
	cfg.AI.GeminiKey = v.GetString("GEMINI_API_KEY")
	return cfg, nil
}
