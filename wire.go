//go:build wireinject
// +build wireinject

package main

import (
	"InfoCity/cmd"
	"InfoCity/database"
	"InfoCity/internal/config"
	"InfoCity/internal/services"
	"github.com/google/wire"
)

func InitializeApp(configurationFilePath string) (*cmd.App, error) {
	wire.Build(
		cmd.NewApp,
		config.LoadConfiguration,
		services.NewLogService,
		ProvideLogger,
		database.NewSessionFactory,
		services.NewCityService,
		services.NewJanitorService,
	)
	return nil, nil
}
