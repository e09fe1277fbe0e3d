package services

import (
	"InfoCity/internal/config"
	"fmt"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) (LogService, error) {
	log := logrus.New()
	if err := setLogOutputType(configuration, log); err != nil {
		return LogService{}, err
	}
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	return LogService{
		Log: log,
	}, nil
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Log.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	switch strings.ToLower(configuration.Log.Level) {
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		log.SetLevel(logrus.FatalLevel)
	case "panic":
		log.SetLevel(logrus.PanicLevel)
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	}
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) error {
	switch configuration.Log.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		if configuration.Log.LogPath == "" {
			return fmt.Errorf("file output requires logPath to be set")
		}
		logFolder := strings.TrimRight(configuration.Log.LogPath, "/")
		logName := fmt.Sprintf("%s-%s.log", "infocity", time.Now().Format("2006-01-02"))
		file, err := os.OpenFile(filepath.Join(logFolder, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		log.SetOutput(file)
	}
	return nil
}
