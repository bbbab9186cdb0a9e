package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	App struct {
		Name string `mapstructure:"NAME"`
		Port string `mapstructure:"PORT"`
	}

	DATABASE struct {
		MySQL struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	WS struct {
		MaxConnections   int    `mapstructure:"MAX_CONNECTIONS"`
		ConnectionsPerIP int    `mapstructure:"CONNECTIONS_PER_IP"`
		JWTSecret        string `mapstructure:"JWT_SECRET"`
	}

	REMINDER struct {
		Workers      int           `mapstructure:"WORKERS"`
		ScanInterval time.Duration `mapstructure:"SCAN_INTERVAL"`
	}
}

var Conf *AppConfig

func LoadConfig() error {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("TEAMB")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		return fmt.Errorf("error unmarshalling config: %w", err)
	}

	if config.REMINDER.Workers == 0 {
		config.REMINDER.Workers = 5
	}
	if config.REMINDER.ScanInterval == 0 {
		config.REMINDER.ScanInterval = time.Hour
	}

	Conf = &config
	log.Info().Msg("configuration loaded...")
	return nil
}
