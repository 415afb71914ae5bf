package configs

// Configs holds every environment-sourced setting the gateway consumes.
type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// MySQL configuration
	MysqlDbName         string `mapstructure:"mysql_db_name"`
	MysqlMasterHost     string `mapstructure:"mysql_master_host"`
	MysqlMasterPassword string `mapstructure:"mysql_master_password"`
	MysqlMasterPort     int    `mapstructure:"mysql_master_port"`
	MysqlMasterUsername string `mapstructure:"mysql_master_username"`
	MysqlSlaveHost      string `mapstructure:"mysql_slave_host"`
	MysqlSlavePassword  string `mapstructure:"mysql_slave_password"`
	MysqlSlavePort      int    `mapstructure:"mysql_slave_port"`
	MysqlSlaveUsername  string `mapstructure:"mysql_slave_username"`

	// Shadow serving configuration
	ShadowModeActive bool `mapstructure:"shadow_mode_active"`
	ShadowWorkers    int  `mapstructure:"shadow_workers"`
	ShadowQueueSize  int  `mapstructure:"shadow_queue_size"`
}
