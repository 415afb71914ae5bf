package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testHolder struct {
	configs Configs
}

func (h *testHolder) GetStaticConfig() interface{} {
	return &h.configs
}

func TestInitConfigBindsEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "ml_api")
	t.Setenv("APP_PORT", "5000")
	t.Setenv("SHADOW_MODE_ACTIVE", "true")
	t.Setenv("SHADOW_WORKERS", "4")
	t.Setenv("MYSQL_DB_NAME", "predictions")

	holder := &testHolder{}
	InitConfig(holder)

	assert.Equal(t, "ml_api", holder.configs.AppName)
	assert.Equal(t, 5000, holder.configs.AppPort)
	assert.True(t, holder.configs.ShadowModeActive)
	assert.Equal(t, 4, holder.configs.ShadowWorkers)
	assert.Equal(t, "predictions", holder.configs.MysqlDbName)
}
