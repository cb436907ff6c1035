package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/lintang-b-s/klpartitioner/pkg"
	"github.com/spf13/viper"
)

// ReadConfig loads ./data/config.yaml (or any format viper understands) on top of the
// defaults. a missing config file is not an error, every key has a default and can be
// overridden from the environment.
func ReadConfig() error {
	SetConfigDefaults()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("API_MAX_BODY_BYTES", 8<<20)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", 15*time.Second)
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", 15*time.Second)
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", 60*time.Second)
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", 5*time.Second)

	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("TRUST_PROXY_HEADERS", false)

	viper.SetDefault("PARTITION_CACHE_SIZE", pkg.DEFAULT_PARTITION_CACHE_SIZE)
	viper.SetDefault("BATCH_WORKERS", pkg.DEFAULT_BATCH_WORKERS)
	viper.SetDefault("MAX_NETLIST_EDGES", pkg.DEFAULT_MAX_NETLIST_EDGES)
	viper.SetDefault("MAX_NETLIST_VERTICES", pkg.DEFAULT_MAX_NETLIST_VERTICES)
}
