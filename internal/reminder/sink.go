package reminder

import (
	"aquad/internal/models"
	"aquad/internal/providers"
	"aquad/internal/reminder/interfaces"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// LocalSink delivers reminders on this device: each scheduled entry becomes
// a one-time gocron job that fires at the requested wall-clock time. There
// is no delivery acknowledgment and no retry.
type LocalSink struct {
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	scheduler gocron.Scheduler

	mu   sync.Mutex
	jobs map[uuid.UUID]struct{}
}

func NewLocalSink(logger providers.Logger, metrics providers.MetricsProviderInterface) (interfaces.NotificationSink, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification scheduler: %w", err)
	}

	sink := &LocalSink{
		logger:    logger,
		metrics:   metrics,
		scheduler: scheduler,
		jobs:      make(map[uuid.UUID]struct{}),
	}
	scheduler.Start()
	return sink, nil
}

func (s *LocalSink) ScheduleAt(payload models.NotificationPayload, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(s.deliver, payload),
		gocron.WithName("reminder-"+payload.ID),
		gocron.WithEventListeners(gocron.AfterJobRuns(s.forget)),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder %s: %w", payload.ID, err)
	}

	s.jobs[job.ID()] = struct{}{}
	return nil
}

func (s *LocalSink) deliver(payload models.NotificationPayload) {
	s.logger.Infof(providers.TypeApp, "%s: %s (sound=%t vibration=%v)",
		payload.Title, payload.Body, payload.Sound, payload.Vibration)
	s.metrics.IncRemindersDelivered()
}

func (s *LocalSink) forget(jobID uuid.UUID, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, jobID)
}

// CancelAll removes every not-yet-fired job. Cancellation is total by
// contract; there is no selective removal.
func (s *LocalSink) CancelAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.jobs {
		if err := s.scheduler.RemoveJob(id); err != nil {
			s.logger.Debugf(providers.TypeApp, "Remove job %s: %s", id, err)
		}
	}
	s.jobs = make(map[uuid.UUID]struct{})
	return nil
}

func (s *LocalSink) Close() error {
	return s.scheduler.Shutdown()
}
