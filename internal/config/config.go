// internal/config/config.go
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL  string `mapstructure:"url"`
		Name string `mapstructure:"name"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		ListLimit int64 `mapstructure:"list_limit"`
	} `mapstructure:"app"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	// The deployment environment provides the store coordinates and port as
	// plain environment variables.
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("server.port", "PORT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- Defaults ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8000'")
		Cfg.Server.Port = ":8000"
	}
	// PORT is commonly exported as a bare number.
	if !strings.HasPrefix(Cfg.Server.Port, ":") {
		Cfg.Server.Port = ":" + Cfg.Server.Port
	}
	if Cfg.App.ListLimit <= 0 {
		log.Println("App list limit not set or invalid, using default '50'")
		Cfg.App.ListLimit = 50
	}
	if Cfg.Database.Name == "" {
		log.Println("Database name not set, using default 'teacher_training'")
		Cfg.Database.Name = "teacher_training"
	}
	if Cfg.Database.URL == "" {
		// Not fatal: /test reports the missing variable instead.
		log.Println("Warning: Database URL is not set in config.")
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"*"}
	}
	if Cfg.CORS.MaxAge <= 0 {
		Cfg.CORS.MaxAge = 300
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Name: %s", Cfg.Database.Name)
	log.Printf("List Limit: %d", Cfg.App.ListLimit)

	return nil
}
