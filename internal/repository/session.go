package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type State int

const (
	StateIdle State = iota
	StateActive
	StateCommitted
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCommitted:
		return "committed"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// SessionFactory opens a new session on the configured persistence unit.
type SessionFactory func() (*Session, error)

// Session is one unit of work: it owns the connection factory it was
// created with and at most one transaction at a time.
//
//	session.NewTransaction()
//	repository.NewGenericRepository[models.Town](session).Create(town)
//	session.Commit()
//	session.Close()
//
// A Session must not be shared between goroutines.
type Session struct {
	id      string
	factory *gorm.DB
	tx      *gorm.DB
	state   State
	pending []error
	log     *logrus.Entry
}

func NewSession(factory *gorm.DB, log *logrus.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:      id,
		factory: factory,
		state:   StateIdle,
		log:     log.WithField("session", id),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) IsActive() bool {
	return s.state == StateActive
}

// NewTransaction begins a transaction. Calling it while one is already
// active does nothing.
func (s *Session) NewTransaction() error {
	switch s.state {
	case StateClosed:
		return ErrSessionClosed
	case StateActive:
		s.log.Debug("transaction already active")
		return nil
	}
	tx := s.factory.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	s.tx = tx
	s.state = StateActive
	s.log.Debug("transaction started")
	return nil
}

// Commit makes the transaction durable. Failures deferred by Delete are
// reported here; the transaction is then rolled back instead.
func (s *Session) Commit() error {
	if s.state != StateActive {
		return ErrNoActiveTransaction
	}
	tx := s.tx
	pending := s.pending
	s.tx = nil
	s.pending = nil

	if len(pending) > 0 {
		s.state = StateIdle
		if err := tx.Rollback().Error; err != nil {
			pending = append(pending, err)
		}
		err := errors.Join(pending...)
		s.log.WithFields(logrus.Fields{
			"status": "rolled back",
			"error":  err.Error(),
		}).Warn("commit failed")
		return err
	}
	if err := tx.Commit().Error; err != nil {
		s.state = StateIdle
		return err
	}
	s.state = StateCommitted
	s.log.Debug("transaction committed")
	return nil
}

func (s *Session) Rollback() error {
	if s.state != StateActive {
		return ErrNoActiveTransaction
	}
	tx := s.tx
	s.tx = nil
	s.pending = nil
	s.state = StateIdle
	return tx.Rollback().Error
}

// Close releases the connection factory. It does nothing while a
// transaction is active, so uncommitted work is never dropped silently.
func (s *Session) Close() error {
	switch s.state {
	case StateClosed:
		return nil
	case StateActive:
		s.log.Warn("close ignored: transaction still active")
		return nil
	}
	s.state = StateClosed
	sqlDB, err := s.factory.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// handle returns the handle reads go through: the transaction when one is
// active, the factory otherwise.
func (s *Session) handle() (*gorm.DB, error) {
	switch s.state {
	case StateClosed:
		return nil, ErrSessionClosed
	case StateActive:
		return s.tx, nil
	}
	return s.factory, nil
}

func (s *Session) writeHandle() (*gorm.DB, error) {
	switch s.state {
	case StateClosed:
		return nil, ErrSessionClosed
	case StateActive:
		return s.tx, nil
	}
	return nil, ErrNoActiveTransaction
}

func (s *Session) deferFailure(err error) {
	s.log.WithField("error", err.Error()).Debug("failure deferred to commit")
	s.pending = append(s.pending, err)
}
