package services

import (
	"InfoCity/internal/config"
	"InfoCity/internal/repository"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor hard-deletes rows that were soft-deleted longer than the
// configured retention ago.
type Janitor struct {
	newSession    repository.SessionFactory
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
	now           func() time.Time
}

func NewJanitorService(
	newSession repository.SessionFactory,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		newSession:    newSession,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
		now:           time.Now,
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryStart() {
		return errors.New("cleaning is in progress")
	}
	go func() {
		defer j.finish()
		j.clean(true)
	}()
	return nil
}

func (j *Janitor) StartCleanCycle() error {
	schedule := j.configuration.Janitor.Schedule
	j.logService.Log.WithField("cron", schedule).Debug("starting cleaning job")
	_, err := j.cron.AddFunc(schedule, func() {
		if !j.tryStart() {
			return
		}
		defer j.finish()
		j.clean(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return err
	}
	j.cron.Start()
	return nil
}

// StopClean stops the schedule and waits for a running cycle to end.
func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

// RunCleanCycle purges in one unit of work and returns the number of rows removed.
func (j *Janitor) RunCleanCycle() (int64, error) {
	session, err := j.newSession()
	if err != nil {
		return 0, err
	}
	if err := session.NewTransaction(); err != nil {
		return 0, errors.Join(err, session.Close())
	}

	before := j.now().Add(-j.configuration.Janitor.Retention)
	purgers := []func(time.Time) (int64, error){
		repository.NewAdvertRepository(session).PurgeDeleted,
		repository.NewUserRepository(session).PurgeDeleted,
		repository.NewTownRepository(session).PurgeDeleted,
	}
	var total int64
	for _, purge := range purgers {
		count, err := purge(before)
		if err != nil {
			return 0, errors.Join(err, session.Rollback(), session.Close())
		}
		total += count
	}
	if err := session.Commit(); err != nil {
		return 0, errors.Join(err, session.Close())
	}
	return total, session.Close()
}

func (j *Janitor) clean(forced bool) {
	logFields := logrus.Fields{
		"job":    "clean",
		"status": "start",
		"cron":   j.configuration.Janitor.Schedule,
	}
	if forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Debug("cleaning job started")

	count, err := j.RunCleanCycle()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to purge deleted rows")
		return
	}
	if count > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  count,
		}).Info("cleaning job finished")
	}
}

func (j *Janitor) tryStart() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}
