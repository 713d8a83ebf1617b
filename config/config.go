package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	Seed    SeedConfig
}

type StorageConfig struct {
	DataDir     string
	UsersFile   string
	TrainsFile  string
	TicketsFile string
}

// SeedConfig is the admin account created on first run, when the user store
// is empty.
type SeedConfig struct {
	AdminLogin    string
	AdminPassword string
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", ".")

	AppConfig = &Config{
		Storage: StorageConfig{
			DataDir:     dataDir,
			UsersFile:   filepath.Join(dataDir, getEnv("USERS_FILE", "users.txt")),
			TrainsFile:  filepath.Join(dataDir, getEnv("TRAINS_FILE", "trains.txt")),
			TicketsFile: filepath.Join(dataDir, getEnv("TICKETS_FILE", "tickets.txt")),
		},
		Seed: SeedConfig{
			AdminLogin:    getEnv("SEED_ADMIN_LOGIN", "admin"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin"),
		},
	}

	return AppConfig
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
