package main

import (
	"os"

	"github.com/GMartinho/star-wars-api/pkg/appbuilder"
	"github.com/GMartinho/star-wars-api/pkg/logger"
	"github.com/GMartinho/star-wars-api/pkg/rest"
	"github.com/GMartinho/star-wars-api/src/database"
	"github.com/GMartinho/star-wars-api/src/middleware"
	"github.com/GMartinho/star-wars-api/src/planet"
	"github.com/GMartinho/star-wars-api/src/swapi"
)

// @title           Star Wars Planets API
// @version         1.0
// @description     API to manage planet records with SWAPI film-appearance enrichment
// @BasePath /planets
func main() {

	var planetHandler *planet.Handler
	var corsOrigin string

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{}).
		ResolveEnvironment().
		LoadConfig(configPath).
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			// ----- DATABASE + MIGRATIONS -----
			connectionString := a.Config.GetDatabaseConnectionString()
			if env := os.Getenv("DB_CONNECTION_STRING"); env != "" {
				connectionString = env
			}
			db := database.ConnectToDatabase(connectionString)
			database.RunMigrations(db)

			// ----- APPEARANCE LOOKUP -----
			baseURL := a.Config.SwapiConf.BaseURL
			if env := os.Getenv("SWAPI_BASE_URL"); env != "" {
				baseURL = env
			}
			lookup := swapi.NewClient(baseURL, a.Config.SwapiConf.Timeout)

			// ----- PLANET SERVICE -----
			planetHandler = planet.Build(db, lookup)

			corsOrigin = a.Config.CorsConf.AllowOrigin
		}).

		// ----- CORS -----
		AddGinMiddleware(
			rest.NewMiddleware("*", middleware.CORSMiddleware(corsOrigin)),
		).

		// ----- ROUTES -----
		AddGinRoutes(
			rest.NewRoute(rest.POST, "planets", "add", planetHandler.AddPlanet),
			rest.NewRoute(rest.GET, "planets", "list", planetHandler.ListPlanets),
			rest.NewRoute(rest.GET, "planets", "getbyname/:name", planetHandler.GetPlanetByName),
			rest.NewRoute(rest.GET, "planets", "getbyid/:id", planetHandler.GetPlanetById),

			// deletion answers GET as well as DELETE
			rest.NewRoute(rest.GET, "planets", "deletebyid/:id", planetHandler.DeletePlanetById),
			rest.NewRoute(rest.DELETE, "planets", "deletebyid/:id", planetHandler.DeletePlanetById),
		).
		InitGinRouter().
		Build().
		Start()
}
