package main

import (
	"strconv"

	"github.com/gin-contrib/cors"

	"github.com/predictgate/predictgate/internal/configs"
	"github.com/predictgate/predictgate/internal/monitoring"
	predictionRouter "github.com/predictgate/predictgate/internal/prediction/router"
	"github.com/predictgate/predictgate/pkg/httpframework"
	"github.com/predictgate/predictgate/pkg/infra"
	"github.com/predictgate/predictgate/pkg/logger"
	"github.com/predictgate/predictgate/pkg/metric"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Configs configs.Configs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

var (
	appConfig AppConfig
)

func main() {
	configs.InitConfig(&appConfig)

	logger.Init(appConfig.Configs)

	infra.InitDBConnectors(appConfig.Configs)

	metric.Init(appConfig.Configs)

	appName := appConfig.Configs.AppName
	if appName == "" {
		appName = "ml_api"
	}
	sink := monitoring.NewPrometheusSink(appName)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	httpframework.Init(cors.New(corsConfig), monitoring.RequestMetrics(sink))

	predictionRouter.Init(appConfig.Configs, sink)
	defer predictionRouter.Dispatcher().Stop()

	port := appConfig.Configs.AppPort
	if port == 0 {
		port = 5000
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 5000")
	}
	if err := httpframework.Instance().Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal().Err(err).Msg("HTTP server terminated")
	}
}
