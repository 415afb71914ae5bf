package infra

import (
	"errors"

	"github.com/spf13/viper"
)

const (
	masterHost     = "MYSQL_MASTER_HOST"
	masterPort     = "MYSQL_MASTER_PORT"
	masterDBName   = "MYSQL_DB_NAME"
	masterUsername = "MYSQL_MASTER_USERNAME"
	masterPassword = "MYSQL_MASTER_PASSWORD"

	slaveHost     = "MYSQL_SLAVE_HOST"
	slavePort     = "MYSQL_SLAVE_PORT"
	slaveUsername = "MYSQL_SLAVE_USERNAME"
	slavePassword = "MYSQL_SLAVE_PASSWORD"
)

// SQLConfig represents the configuration for a SQL database connection
type SQLConfig struct {
	Host     string
	Port     int
	DBName   string
	Username string
	Password string
}

// BuildSQLConfigFromEnv constructs master and slave SQL configurations from
// environment variables via viper.
//
// Mandatory environment variables:
//   - MYSQL_MASTER_HOST, MYSQL_MASTER_PORT, MYSQL_DB_NAME,
//     MYSQL_MASTER_USERNAME, MYSQL_MASTER_PASSWORD
//
// Optional slave variables:
//   - MYSQL_SLAVE_HOST, MYSQL_SLAVE_PORT, MYSQL_SLAVE_USERNAME,
//     MYSQL_SLAVE_PASSWORD
func BuildSQLConfigFromEnv() (master SQLConfig, slave SQLConfig, err error) {
	if !viper.IsSet(masterHost) {
		return master, slave, errors.New(masterHost + " not set")
	}
	if !viper.IsSet(masterPort) {
		return master, slave, errors.New(masterPort + " not set")
	}
	if !viper.IsSet(masterDBName) {
		return master, slave, errors.New(masterDBName + " not set")
	}
	if !viper.IsSet(masterUsername) {
		return master, slave, errors.New(masterUsername + " not set")
	}

	master = SQLConfig{
		Host:     viper.GetString(masterHost),
		Port:     viper.GetInt(masterPort),
		DBName:   viper.GetString(masterDBName),
		Username: viper.GetString(masterUsername),
		Password: viper.GetString(masterPassword),
	}

	if viper.IsSet(slaveHost) &&
		viper.IsSet(slaveUsername) &&
		viper.IsSet(slavePassword) {

		slavePortValue := viper.GetInt(masterPort)
		if viper.IsSet(slavePort) {
			slavePortValue = viper.GetInt(slavePort)
		}

		slave = SQLConfig{
			Host:     viper.GetString(slaveHost),
			Port:     slavePortValue,
			DBName:   viper.GetString(masterDBName),
			Username: viper.GetString(slaveUsername),
			Password: viper.GetString(slavePassword),
		}
	}

	return master, slave, nil
}
