package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the service.
type Config struct {
	Addr        string
	DatabaseURL string
	UploadDir   string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.AutomaticEnv()

	cfg := Config{
		Addr:        v.GetString("SERVER_ADDR"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		UploadDir:   v.GetString("UPLOAD_DIR"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	return cfg, nil
}
