package cmd

import (
	"InfoCity/internal/config"
	"InfoCity/internal/services"
)

type App struct {
	Configuration  *config.Configuration
	LogService     services.LogService
	CityService    services.CityService
	JanitorService *services.Janitor
}

func NewApp(
	configuration *config.Configuration,
	logService services.LogService,
	cityService services.CityService,
	janitorService *services.Janitor,
) *App {
	return &App{
		Configuration:  configuration,
		LogService:     logService,
		CityService:    cityService,
		JanitorService: janitorService,
	}
}
