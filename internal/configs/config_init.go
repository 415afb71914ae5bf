package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
)

// ConfigHolder is implemented by the application's config wrapper.
type ConfigHolder interface {
	GetStaticConfig() interface{}
}

// InitConfig binds environment variables onto the holder's static config.
// APP_NAME (env) maps to app_name (mapstructure key) and so on.
func InitConfig(configHolder ConfigHolder) {
	once.Do(func() {
		viper.AutomaticEnv()

		staticConfig := configHolder.GetStaticConfig()
		cfg, ok := staticConfig.(*Configs)
		if !ok {
			log.Fatal("Failed to cast static config to *Configs")
		}

		bindEnvKeys(cfg)
		if err := viper.Unmarshal(cfg); err != nil {
			log.Fatalf("Failed to unmarshal config from environment: %v", err)
		}

		log.Println("Configuration loaded from environment variables")
	})
}

// viper.Unmarshal only sees env vars that have been bound or set; bind each
// key explicitly so AutomaticEnv covers the mapstructure fields.
func bindEnvKeys(cfg *Configs) {
	keys := []string{
		"app_name",
		"app_env",
		"app_log_level",
		"app_metric_sampling_rate",
		"app_port",
		"mysql_db_name",
		"mysql_master_host",
		"mysql_master_password",
		"mysql_master_port",
		"mysql_master_username",
		"mysql_slave_host",
		"mysql_slave_password",
		"mysql_slave_port",
		"mysql_slave_username",
		"shadow_mode_active",
		"shadow_workers",
		"shadow_queue_size",
	}
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}
}
