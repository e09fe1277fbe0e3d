package main

import (
	"InfoCity/internal/services"
	"github.com/sirupsen/logrus"
)

func ProvideLogger(logService services.LogService) *logrus.Logger {
	return logService.Log
}
