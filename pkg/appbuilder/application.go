package appbuilder

import (
	"github.com/gin-gonic/gin"

	"github.com/GMartinho/star-wars-api/pkg/logger"
)

type Application struct {
	Logger *logger.Logger
	Addr   string
	Engine *gin.Engine
}

func (a *Application) Start() {
	a.Logger.Info("Starting Application runtime...")

	a.Logger.Infof("REST API is now listening on: %s", a.Addr)
	if err := a.Engine.Run(a.Addr); err != nil {
		a.Logger.Fatal(err, "REST API server stopped")
	}
}
