package database

import (
	"InfoCity/internal/config"
	"InfoCity/internal/models"
	"InfoCity/internal/repository"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// NewSessionFactory returns a factory opening the configured persistence
// unit. Every session gets its own connection factory and closes it.
func NewSessionFactory(cfg *config.Configuration, log *logrus.Logger) (repository.SessionFactory, error) {
	unit, err := cfg.Unit(cfg.Persistence.Unit)
	if err != nil {
		return nil, err
	}
	return func() (*repository.Session, error) {
		db, err := OpenUnit(unit, log)
		if err != nil {
			return nil, fmt.Errorf("open persistence unit %q: %w", cfg.Persistence.Unit, err)
		}
		return repository.NewSession(db, log), nil
	}, nil
}

func OpenUnit(unit config.UnitConfig, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch unit.Driver {
	case "postgres":
		dialector = postgres.Open(unit.DSN)
	case "sqlite":
		dialector = sqlite.Open(unit.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", unit.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   unit.TablePrefix,
			SingularTable: unit.SingularTable,
		},
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             unit.SlowThreshold,
			LogLevel:                  logLevel(unit.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}
	if unit.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one connection keeps :memory: databases coherent
		sqlDB.SetMaxOpenConns(1)
	}
	if unit.AutoMigrate {
		err = db.AutoMigrate(models.Town{}, models.User{}, models.Advert{})
		if err != nil {
			CloseDatabase(db, log)
			return nil, err
		}
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB, log *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

func logLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	}
	return gormlogger.Warn
}
