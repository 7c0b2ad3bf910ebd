package appbuilder

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/GMartinho/star-wars-api/pkg/logger"
	"github.com/GMartinho/star-wars-api/pkg/rest"
	"github.com/GMartinho/star-wars-api/pkg/utilities"
)

type AppConfig interface {
	GetLoggerConfig() logger.LoggerConfig
	GetRestApiPort() uint16
}

type AppBuilder[T utilities.JsonConfigObj[U], U AppConfig] struct {
	Logger *logger.Logger
	Config U
	Engine *gin.Engine

	middlewares []rest.Middleware
	routes      []rest.Route
}

func New[T utilities.JsonConfigObj[U], U AppConfig]() *AppBuilder[T, U] {
	return &AppBuilder[T, U]{}
}

func (a *AppBuilder[T, U]) InitLogger(loggerArgs logger.GlobalLoggerConfig) *AppBuilder[T, U] {
	logger.InitDefaultLogger(loggerArgs)
	a.Logger = logger.Default()
	a.Logger.Info("Logger initialized")

	return a
}

// ResolveEnvironment loads a .env file when one is present so that later
// os.Getenv lookups see its values. A missing file is not an error.
func (a *AppBuilder[T, U]) ResolveEnvironment() *AppBuilder[T, U] {
	if err := godotenv.Load(); err == nil {
		a.Logger.Info("Loaded environment overrides from .env")
	}
	return a
}

func (a *AppBuilder[T, U]) LoadConfig(filePath string) *AppBuilder[T, U] {
	a.Logger.Infof("Preparing to load config from %s ...", filePath)
	config, err := utilities.ReadConfig[T, U](filePath)
	if err != nil {
		a.Logger.Error(err, "Failed to load config")
		panic(err)
	}

	a.Config = config
	a.Logger.WithLevel(a.Config.GetLoggerConfig().LogLevel)
	a.Logger.Info("Config successfully loaded.")
	return a
}

func (a *AppBuilder[T, U]) WithOption(option func(a *AppBuilder[T, U])) *AppBuilder[T, U] {
	option(a)
	return a
}

func (a *AppBuilder[T, U]) AddGinMiddleware(middlewares ...rest.Middleware) *AppBuilder[T, U] {
	a.Logger.Info("Adding Gin middlewares to Application...")
	a.middlewares = append(a.middlewares, middlewares...)
	return a
}

func (a *AppBuilder[T, U]) AddGinRoutes(routes ...rest.Route) *AppBuilder[T, U] {
	a.Logger.Info("Adding Gin REST API routes to Application...")
	a.routes = append(a.routes, routes...)
	return a
}

func (a *AppBuilder[T, U]) InitGinRouter() *AppBuilder[T, U] {
	a.Logger.Info("Initializing Gin Router...")
	router := gin.Default()

	groups := map[string]*gin.RouterGroup{}
	group := func(name string) *gin.RouterGroup {
		if _, exists := groups[name]; !exists {
			groups[name] = router.Group("/" + name)
		}
		return groups[name]
	}

	for _, m := range a.middlewares {
		if m.Group == "*" {
			router.Use(m.Handler)
		} else {
			group(m.Group).Use(m.Handler)
		}
	}

	a.Logger.Info("Registering REST API routes...")
	for _, r := range a.routes {
		g := group(r.Group)

		switch r.Method {
		case rest.GET:
			g.GET(r.Path, r.HandlerFunc)
		case rest.POST:
			g.POST(r.Path, r.HandlerFunc)
		case rest.PUT:
			g.PUT(r.Path, r.HandlerFunc)
		case rest.PATCH:
			g.PATCH(r.Path, r.HandlerFunc)
		case rest.DELETE:
			g.DELETE(r.Path, r.HandlerFunc)
		default:
			a.Logger.Warnf("Unrecognized HTTP method: %d", r.Method)
		}
	}

	a.Engine = router
	a.Logger.Info("Successfully registered REST API routes.")
	return a
}

func (a *AppBuilder[T, U]) Build() *Application {
	return &Application{
		Logger: a.Logger,
		Addr:   fmt.Sprintf("0.0.0.0:%d", a.Config.GetRestApiPort()),
		Engine: a.Engine,
	}
}
