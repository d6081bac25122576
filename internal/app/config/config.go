package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	DataDir     string
	ExportDir   string
	Log         LogConfig
}

type LogConfig struct {
	Path  string
	Level string
}

const dbFileName = "ussurochki.db"

func NewConfig() (*Config, error) {
	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("ServiceHost", "127.0.0.1")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("DataDir", "data")
	viper.SetDefault("ExportDir", "exports")
	viper.SetDefault("Log.Level", "info")

	// конфиг не обязателен, без файла работаем на значениях по умолчанию
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

// DBPath - путь к файлу встроенной базы внутри каталога данных
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, dbFileName)
}
