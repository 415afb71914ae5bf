package router

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/predictgate/predictgate/internal/configs"
	"github.com/predictgate/predictgate/internal/monitoring"
	"github.com/predictgate/predictgate/internal/prediction/controller"
	"github.com/predictgate/predictgate/internal/prediction/handler"
	"github.com/predictgate/predictgate/internal/prediction/model"
	"github.com/predictgate/predictgate/internal/repositories/sql/predictions"
	"github.com/predictgate/predictgate/pkg/httpframework"
	"github.com/predictgate/predictgate/pkg/infra"
	"github.com/rs/zerolog/log"
)

var (
	initPredictionRouterOnce sync.Once
	dispatcher               handler.Dispatcher
)

// Init wires repository, adapter and dispatcher and registers the prediction
// routes. It expects the http framework and DB connectors to be initialized.
func Init(config configs.Configs, sink monitoring.Sink) {
	initPredictionRouterOnce.Do(func() {
		connection, err := infra.SQL.GetConnection()
		if err != nil {
			log.Panic().Err(err).Msg("SQL connection not available")
		}
		sqlConn, ok := connection.(*infra.SQLConnection)
		if !ok {
			log.Panic().Msg("Unexpected SQL connection type")
		}
		repository, err := predictions.NewRepository(sqlConn)
		if err != nil {
			log.Panic().Err(err).Msg("Failed to create predictions repository")
		}

		adapter := model.NewAdapter()
		dispatcher = handler.NewDispatcher(adapter, repository, sink, handler.Config{
			ShadowModeActive: config.ShadowModeActive,
			ShadowWorkers:    config.ShadowWorkers,
			ShadowQueueSize:  config.ShadowQueueSize,
		})

		sink.PublishStaticInfo(map[string]string{
			"live_model":     model.Lasso.Name(),
			"live_version":   adapter.Version(model.Lasso),
			"shadow_model":   model.GradientBoosting.Name(),
			"shadow_version": adapter.Version(model.GradientBoosting),
		})

		RegisterRoutes(httpframework.Instance(), controller.NewController(dispatcher), sink)
	})
}

// RegisterRoutes mounts the HTTP surface on the given engine.
func RegisterRoutes(engine *gin.Engine, predictionController *controller.PredictionController, sink monitoring.Sink) {
	engine.GET("/", predictionController.Health)

	v1 := engine.Group("/v1/predictions")
	{
		v1.POST("/regression", predictionController.PredictRegression)
		v1.POST("/gradient", predictionController.PredictGradient)
	}

	if promSink, ok := sink.(*monitoring.PrometheusSink); ok {
		engine.GET("/metrics", gin.WrapH(promSink.Handler()))
	}
}

// Dispatcher exposes the running dispatcher so main can drain it on shutdown.
func Dispatcher() handler.Dispatcher {
	return dispatcher
}
