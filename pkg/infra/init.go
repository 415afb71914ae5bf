package infra

import (
	"sync"

	"github.com/predictgate/predictgate/internal/configs"
)

var (
	mut sync.Mutex
)

// InitDBConnectors sets up the SQL connection pool once at startup.
func InitDBConnectors(config configs.Configs) {
	mut.Lock()
	defer mut.Unlock()
	if SQL == nil {
		initSQLConns()
	}
}
