/* config.go
 * Contains the application configuration. Values come from the environment, with a .env file loaded first if present
 */

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Logging
	Env      string
	LogLevel string

	// Database
	MongoURI string
	DBName   string

	// Roster and console
	ClubsDir   string
	ReportsDir string

	// Discord bot
	DiscordToken     string
	BotRatePerMinute int

	// Web
	HTTPAddr string
}

// Load reads the .env file, if there is one, and then the environment
// Postconditions: Returns the config with defaults filled in for anything not set
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is not an error, the environment may already be set
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Env:              getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "chess_tournament"),
		ClubsDir:         getEnv("CLUBS_DIR", "data/clubs"),
		ReportsDir:       getEnv("REPORTS_DIR", "data/tournaments/tournament_reports"),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		BotRatePerMinute: getEnvInt("BOT_RATE_PER_MINUTE", 20),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
