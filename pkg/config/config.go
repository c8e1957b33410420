package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

// Config reads settings from the environment. Values in ./configs/.env are
// loaded first when the file exists; variables already set win.
type Config struct {
	v *viper.Viper
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = newConfig()
	})
	return instance
}

func newConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return &Config{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_ADDRESS", ":8080")
	v.SetDefault("STORAGE_DRIVER", "sqlite")
	v.SetDefault("SQLITE_PATH", "./discipline.db")
	v.SetDefault("MIGRATIONS_DIR", "./migrations")
	v.SetDefault("SNOOZE_DURATION", 5*time.Minute)
	v.SetDefault("EXACT_ALARMS_ALLOWED", true)
	v.SetDefault("INEXACT_WINDOW", 15*time.Minute)
	v.SetDefault("ROLLOVER_AT", "23:55")
	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetDuration parses values like "5m" or "90s".
func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// Set overrides a key for the rest of the process.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}
