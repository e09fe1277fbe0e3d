package services

import (
	"InfoCity/internal/models"
	"InfoCity/internal/repository"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type CityService interface {
	RegisterTown(town *models.Town, users []*models.User, adverts []*models.Advert) error
	GetTown(id uint) (*models.Town, error)
	GetUser(id uint) (*models.User, error)
	GetAdvert(id uint) (*models.Advert, error)
	AdvertsInTown(townID uint, limit int) ([]models.Advert, error)
	RemoveAdvert(id uint) error
}

func NewCityService(newSession repository.SessionFactory, logService LogService) CityService {
	return &cityServiceImpl{newSession: newSession, logService: logService}
}

type cityServiceImpl struct {
	newSession repository.SessionFactory
	logService LogService
}

// RegisterTown stores the town, its users and its adverts in one transaction.
func (s *cityServiceImpl) RegisterTown(town *models.Town, users []*models.User, adverts []*models.Advert) error {
	return s.inTransaction(func(session *repository.Session) error {
		if _, err := repository.NewTownRepository(session).Create(town); err != nil {
			return fmt.Errorf("create town %q: %w", town.Name, err)
		}
		userRepository := repository.NewUserRepository(session)
		for _, user := range users {
			user.TownID = &town.ID
			if _, err := userRepository.Create(user); err != nil {
				return fmt.Errorf("create user %d: %w", user.ID, err)
			}
		}
		advertRepository := repository.NewAdvertRepository(session)
		for _, advert := range adverts {
			advert.SetTown(town)
			if _, err := advertRepository.Create(advert); err != nil {
				return fmt.Errorf("create advert %d: %w", advert.ID, err)
			}
		}
		s.logService.Log.WithFields(logrus.Fields{
			"town":    town.ID,
			"users":   len(users),
			"adverts": len(adverts),
		}).Info("town registered")
		return nil
	})
}

func (s *cityServiceImpl) GetTown(id uint) (*models.Town, error) {
	var town *models.Town
	err := s.read(func(session *repository.Session) (err error) {
		town, err = repository.NewTownRepository(session).Find(id)
		return err
	})
	return town, err
}

func (s *cityServiceImpl) GetUser(id uint) (*models.User, error) {
	var user *models.User
	err := s.read(func(session *repository.Session) (err error) {
		user, err = repository.NewUserRepository(session).Find(id)
		return err
	})
	return user, err
}

func (s *cityServiceImpl) GetAdvert(id uint) (*models.Advert, error) {
	var advert *models.Advert
	err := s.read(func(session *repository.Session) (err error) {
		advert, err = repository.NewAdvertRepository(session).Find(id)
		return err
	})
	return advert, err
}

func (s *cityServiceImpl) AdvertsInTown(townID uint, limit int) ([]models.Advert, error) {
	var adverts []models.Advert
	err := s.read(func(session *repository.Session) (err error) {
		adverts, err = repository.NewAdvertRepository(session).FindByTown(townID, limit)
		return err
	})
	return adverts, err
}

// RemoveAdvert fails with repository.ErrEntityNotFound when the advert does
// not exist; the check happens on commit.
func (s *cityServiceImpl) RemoveAdvert(id uint) error {
	return s.inTransaction(func(session *repository.Session) error {
		return repository.NewAdvertRepository(session).Delete(id)
	})
}

func (s *cityServiceImpl) read(fn func(session *repository.Session) error) error {
	session, err := s.newSession()
	if err != nil {
		return err
	}
	return errors.Join(fn(session), session.Close())
}

func (s *cityServiceImpl) inTransaction(fn func(session *repository.Session) error) error {
	session, err := s.newSession()
	if err != nil {
		return err
	}
	if err := session.NewTransaction(); err != nil {
		return errors.Join(err, session.Close())
	}
	if err := fn(session); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"session": session.ID(),
			"error":   err.Error(),
		}).Error("unit of work failed")
		return errors.Join(err, session.Rollback(), session.Close())
	}
	if err := session.Commit(); err != nil {
		return errors.Join(err, session.Close())
	}
	return session.Close()
}
