package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabasePath string
	ImagesDir    string
}

// ParseFlags validates flags and fills in defaults from the environment.
// A .env file in the working directory is loaded first, if present.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Load .env before reading os.Getenv; missing file is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet("styleme-server", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database file path")
	fs.StringVar(&cfg.ImagesDir, "i", "", "Directory for uploaded images")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "styleme.db"
	}

	if cfg.ImagesDir == "" {
		cfg.ImagesDir = os.Getenv("IMAGES_DIR")
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = "images"
	}

	return cfg, nil
}
