package services

import (
	"InfoCity/internal/models"
	"InfoCity/internal/repository"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

func setupSessionFactory(t *testing.T) repository.SessionFactory {
	t.Helper()
	path := filepath.Join(t.TempDir(), "infocity.db")
	log := testLogService().Log
	return func() (*repository.Session, error) {
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&models.Town{}, &models.User{}, &models.Advert{}); err != nil {
			return nil, err
		}
		return repository.NewSession(db, log), nil
	}
}

func registerToulon(t *testing.T, service CityService) {
	t.Helper()
	town := &models.Town{BaseModel: models.BaseModel{ID: 125}, Name: "Toulon", Country: "France", State: "PACA"}
	users := []*models.User{models.NewUser(456, "paul", "martin", "paulmartin@mail.fr", "pass")}
	adverts := []*models.Advert{
		models.NewAdvertBuilder().SetID(1).SetMessage("Oye! Oye!").SetLocation("rue bidon").SetType("sport").Build(),
		models.NewAdvertBuilder().SetID(2).SetMessage("Brocante").SetType("market").Build(),
	}
	require.NoError(t, service.RegisterTown(town, users, adverts))
}

func TestCityService_RegisterTown(t *testing.T) {
	service := NewCityService(setupSessionFactory(t), testLogService())
	registerToulon(t, service)

	town, err := service.GetTown(125)
	require.NoError(t, err)
	require.NotNil(t, town)
	assert.Equal(t, "Toulon", town.Name)
	assert.Len(t, town.Users, 1)
	assert.Len(t, town.Adverts, 2)

	user, err := service.GetUser(456)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.TownID)
	assert.Equal(t, uint(125), *user.TownID)

	advert, err := service.GetAdvert(1)
	require.NoError(t, err)
	require.NotNil(t, advert)
	assert.Equal(t, "Toulon", advert.Town.Name)
}

func TestCityService_RegisterTownRollsBackOnFailure(t *testing.T) {
	service := NewCityService(setupSessionFactory(t), testLogService())
	registerToulon(t, service)

	town := &models.Town{BaseModel: models.BaseModel{ID: 83}, Name: "La Seyne"}
	duplicate := []*models.User{models.NewUser(456, "paul", "martin", "paulmartin@mail.fr", "pass")}
	err := service.RegisterTown(town, duplicate, nil)
	assert.Error(t, err)

	missing, err := service.GetTown(83)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCityService_AdvertsInTown(t *testing.T) {
	service := NewCityService(setupSessionFactory(t), testLogService())
	registerToulon(t, service)

	all, err := service.AdvertsInTown(125, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := service.AdvertsInTown(125, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	none, err := service.AdvertsInTown(6, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCityService_RemoveAdvert(t *testing.T) {
	service := NewCityService(setupSessionFactory(t), testLogService())
	registerToulon(t, service)

	require.NoError(t, service.RemoveAdvert(2))
	advert, err := service.GetAdvert(2)
	assert.NoError(t, err)
	assert.Nil(t, advert)

	err = service.RemoveAdvert(2)
	assert.ErrorIs(t, err, repository.ErrEntityNotFound)
}

func TestCityService_SessionFactoryFailure(t *testing.T) {
	failure := errors.New("database unavailable")
	service := NewCityService(func() (*repository.Session, error) { return nil, failure }, testLogService())

	_, err := service.GetTown(125)
	assert.ErrorIs(t, err, failure)
	assert.ErrorIs(t, service.RemoveAdvert(1), failure)
}
