// Package scheduler runs periodic maintenance jobs on top of gocron.
package scheduler

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

var (
	// ErrEmptyJobName возвращается при регистрации задачи без имени
	ErrEmptyJobName = errors.New("scheduler: job name is required")

	// ErrInvalidInterval возвращается при неположительном интервале
	ErrInvalidInterval = errors.New("scheduler: interval must be positive")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler обертка над gocron с логированием и защитой от паник задач
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    Logger
	stopOnce  sync.Once
	stopErr   error
}

// New создает планировщик. Задачи начинают выполняться после Start.
func New(logger Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("Scheduler: job %s (%s) panicked: %v", jobName, jobID, recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: sched, logger: logger}, nil
}

// AddIntervalJob регистрирует задачу, выполняемую каждые interval.
// Первый запуск происходит сразу после Start; пересекающиеся запуски не допускаются.
func (s *Scheduler) AddIntervalJob(name string, interval time.Duration, task func()) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyJobName
	}
	if interval <= 0 {
		return ErrInvalidInterval
	}

	wrapped := func() {
		started := time.Now()
		task()
		s.logger.Info("Scheduler: job %s completed in %s", name, time.Since(started).Round(time.Millisecond))
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(wrapped),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		s.logger.Error("Scheduler: failed to register job %s: %v", name, err)
		return err
	}

	s.logger.Info("Scheduler: job %s registered, interval=%s", name, interval)
	return nil
}

// Start запускает выполнение задач
func (s *Scheduler) Start() {
	s.logger.Info("Scheduler: starting with %d jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop останавливает планировщик и дожидается выполняющихся задач
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("Scheduler: stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
