package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	AllowedOrigins []string
	LogLevel       string
}

// Load reads configuration from the environment, with an optional .env file
// filling in anything not already set.
func Load() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "userapi")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	return &Config{
		Port:           v.GetString("PORT"),
		MongoURI:       v.GetString("MONGO_URI"),
		MongoDB:        v.GetString("MONGO_DB"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// loadDotEnv sets variables from a local .env file without overriding
// anything already present in the environment.
func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		eq := strings.Index(line, "=")
		if eq <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:eq])
		value := strings.Trim(strings.TrimSpace(line[eq+1:]), `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
