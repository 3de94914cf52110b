package reminder

import (
	"aquad/internal/models"
	"aquad/internal/providers"
	"aquad/internal/reminder/interfaces"
	"aquad/internal/services"
	"aquad/internal/structures"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler keeps the scheduled reminder batch consistent with the latest
// settings. Every trigger recomputes the whole batch from scratch; nothing
// is ever patched incrementally.
type Scheduler struct {
	conf    *structures.Config
	logger  providers.Logger
	service services.HydrationServiceInterface
	sink    interfaces.NotificationSink
	oracle  interfaces.PermissionOracle
	metrics providers.MetricsProviderInterface
	clock   services.Clock
	cron    gocron.Scheduler

	mu          sync.Mutex
	paused      bool
	resumeTimer *time.Timer

	// seams for tests
	pick      func(n int) int
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewScheduler(conf *structures.Config, logger providers.Logger, service services.HydrationServiceInterface, sink interfaces.NotificationSink, oracle interfaces.PermissionOracle, metrics providers.MetricsProviderInterface, clock services.Clock) interfaces.SchedulerInterface {
	return &Scheduler{
		conf:      conf,
		logger:    logger,
		service:   service,
		sink:      sink,
		oracle:    oracle,
		metrics:   metrics,
		clock:     clock,
		pick:      rand.IntN,
		afterFunc: time.AfterFunc,
	}
}

// Init starts the midnight rollover job and computes the initial batch.
func (s *Scheduler) Init() error {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create rollover scheduler: %w", err)
	}

	_, err = cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(s.rollover),
		gocron.WithName("day-rollover"),
	)
	if err != nil {
		return fmt.Errorf("failed to register rollover job: %w", err)
	}

	s.cron = cron
	cron.Start()
	s.Recompute()
	return nil
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.resumeTimer != nil {
		s.resumeTimer.Stop()
		s.resumeTimer = nil
	}
	s.mu.Unlock()

	if s.cron != nil {
		if err := s.cron.Shutdown(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Rollover scheduler shutdown: %s", err)
		}
	}
	// Already-scheduled reminders are left in place; they outlive the
	// session the way device notifications do.
}

// rollover runs the day-rollover pair at midnight and refreshes the batch
// so the {progress} substitution reflects the new (empty) day.
func (s *Scheduler) rollover() {
	s.service.RolloverDay()
	s.Recompute()
}

// OnStateChange is the store listener. Recomputation is only warranted when
// the reminder settings themselves changed; intake mutations keep the batch
// that was computed from the settings in force.
func (s *Scheduler) OnStateChange(prev, next *models.HydrationState) {
	if settingsEqual(prev.ReminderSettings, next.ReminderSettings) {
		return
	}
	go s.Recompute()
}

func (s *Scheduler) Recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
}

func (s *Scheduler) recomputeLocked() {
	s.cancelBatchLocked()

	if s.paused {
		return
	}

	state := s.service.State()
	if !state.ReminderSettings.Enabled {
		s.logger.Debugf(providers.TypeApp, "Reminders disabled, batch left empty")
		return
	}
	// Permission is asked fresh on every pass; a stale grant must never
	// schedule anything.
	if s.oracle.Status() != models.PermissionGranted {
		s.logger.Debugf(providers.TypeApp, "Notification permission not granted, batch left empty")
		return
	}

	batch := ComputeBatch(s.clock.Now(), state, s.pick)

	scheduled := 0
	for _, payload := range batch {
		if err := s.sink.ScheduleAt(payload, payload.FireAt); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error scheduling reminder %s: %s", payload.ID, err)
			continue
		}
		scheduled++
	}

	s.metrics.AddRemindersScheduled(scheduled)
	s.logger.Infof(providers.TypeApp, "Scheduled %d of %d reminders (interval %dm)",
		scheduled, len(batch), state.ReminderSettings.Interval)
}

func (s *Scheduler) cancelBatchLocked() {
	if err := s.sink.CancelAll(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error canceling reminders: %s", err)
	}
	s.metrics.IncBatchCancellations()
}

// Pause cancels the batch immediately and arms a single resume timer. A new
// pause request replaces any outstanding one; when the timer fires the batch
// is recomputed from whatever settings are current at that moment.
func (s *Scheduler) Pause(duration models.PauseDuration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelBatchLocked()
	s.paused = true

	if s.resumeTimer != nil {
		s.resumeTimer.Stop()
	}
	s.resumeTimer = s.afterFunc(duration.Delay(), s.resume)
	s.logger.Infof(providers.TypeApp, "Reminders paused for %s", duration.Delay())
}

func (s *Scheduler) resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused = false
	s.resumeTimer = nil
	s.recomputeLocked()
}

func (s *Scheduler) RequestPermission() models.PermissionStatus {
	status := s.oracle.Request()
	go s.Recompute()
	return status
}

func (s *Scheduler) PermissionStatus() models.PermissionStatus {
	return s.oracle.Status()
}

func settingsEqual(a, b models.ReminderSettings) bool {
	if a.Enabled != b.Enabled || a.Interval != b.Interval ||
		a.ActiveHours != b.ActiveHours || a.DndEnabled != b.DndEnabled ||
		a.SoundEnabled != b.SoundEnabled || a.VibrationEnabled != b.VibrationEnabled {
		return false
	}
	if len(a.DndPeriods) != len(b.DndPeriods) || len(a.CustomMessages) != len(b.CustomMessages) {
		return false
	}
	for i := range a.DndPeriods {
		if a.DndPeriods[i] != b.DndPeriods[i] {
			return false
		}
	}
	for i := range a.CustomMessages {
		if a.CustomMessages[i] != b.CustomMessages[i] {
			return false
		}
	}
	return true
}
