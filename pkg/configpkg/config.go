// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Supported block store drivers.
const (
	DriverPostgres = "postgres"
	DriverLevelDB  = "leveldb"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenKind           string        `mapstructure:"TOKEN_KIND"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environment         string        `mapstructure:"GO_ENV"`

	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxAgeDays int    `mapstructure:"LOG_MAX_AGE_DAYS"`

	BotID           uint64 `mapstructure:"BOT_ID"`
	LootSinkID      uint64 `mapstructure:"LOOT_SINK_ID"`
	BlockingDays    int    `mapstructure:"BLOCKING_DAYS"`
	MiningMin       uint64 `mapstructure:"MINING_MIN"`
	MiningMax       uint64 `mapstructure:"MINING_MAX"`
	DefaultTimezone string `mapstructure:"DEFAULT_TIMEZONE"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("DB_DRIVER", DriverLevelDB)
	v.SetDefault("DB_SOURCE", "data/blocks")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("TOKEN_KIND", "paseto")
	v.SetDefault("ACCESS_TOKEN_DURATION", 24*time.Hour)
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("BLOCKING_DAYS", 3)
	v.SetDefault("MINING_MIN", 1)
	v.SetDefault("MINING_MAX", 100)
	v.SetDefault("DEFAULT_TIMEZONE", "Europe/Paris")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
