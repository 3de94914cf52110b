package providers

import (
	"aquad/internal/structures"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "AQUAD_LOG_LEVEL")
	viper.BindEnv("persistence.dir", "AQUAD_DATA_DIR")
	viper.BindEnv("notifications.permission", "AQUAD_NOTIFICATION_PERMISSION")
	viper.BindEnv("cache.enabled", "AQUAD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "AQUAD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Persistence.StateKey == "" {
		conf.Persistence.StateKey = "hydrationState"
	}

	conf.AppName = "AquaFlowDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
