package services

import (
	"aquad/internal/models"
	"sync"

	"go.uber.org/atomic"
)

// Listener is notified synchronously after each successful reduction.
// Both states are reduced snapshots and must be treated as read-only.
type Listener func(prev, next *models.HydrationState)

type HydrationServiceInterface interface {
	Dispatch(action models.Action) *models.HydrationState
	RolloverDay() *models.HydrationState
	State() *models.HydrationState
	Generation() uint64
	Subscribe(listener Listener)
}

// HydrationService owns the aggregate. There is exactly one writer at a
// time: dispatchMu serializes the reduce-then-notify sequence, stateMu only
// guards the pointer swap so readers never block behind listeners.
type HydrationService struct {
	dispatchMu sync.Mutex
	stateMu    sync.RWMutex
	state      *models.HydrationState
	clock      Clock
	listeners  []Listener
	generation atomic.Uint64

	// lastRollover is the day key of the most recent rollover, guarded by
	// dispatchMu. The midnight job and the lazy guard in Dispatch both see
	// the same boundary; this makes sure only one of them rotates the day.
	lastRollover string
}

func NewHydrationService(clock Clock) HydrationServiceInterface {
	return &HydrationService{
		clock: clock,
		state: models.DefaultState(),
	}
}

func (hs *HydrationService) Dispatch(action models.Action) *models.HydrationState {
	hs.dispatchMu.Lock()
	defer hs.dispatchMu.Unlock()

	prev := hs.currentState()
	next := prev

	// A log landing after midnight rolls the day over first, so the weekly
	// window and streak never straddle two calendar days.
	if _, ok := action.(models.AddWater); ok && hs.rolloverDue(next) {
		next = hs.rollover(next)
	}

	next = hs.reduce(next, action)
	hs.swapState(next)

	hs.notify(prev, next)
	return next.Clone()
}

// RolloverDay runs the day-rollover pair (UpdateStreak, then
// ResetDailyIntake) atomically under the dispatch lock. Callers never
// sequence the two actions themselves.
func (hs *HydrationService) RolloverDay() *models.HydrationState {
	hs.dispatchMu.Lock()
	defer hs.dispatchMu.Unlock()

	prev := hs.currentState()
	next := hs.rollover(prev)
	hs.swapState(next)

	hs.notify(prev, next)
	return next.Clone()
}

func (hs *HydrationService) rolloverDue(s *models.HydrationState) bool {
	today := models.DayKey(hs.clock.Now())
	return s.LastLogDate != "" && s.LastLogDate != today && hs.lastRollover != today
}

func (hs *HydrationService) rollover(s *models.HydrationState) *models.HydrationState {
	s = hs.reduce(s, models.UpdateStreak{})
	s = hs.reduce(s, models.ResetDailyIntake{})
	hs.lastRollover = models.DayKey(hs.clock.Now())
	return s
}

func (hs *HydrationService) reduce(s *models.HydrationState, action models.Action) *models.HydrationState {
	now := hs.clock.Now()
	today := models.DayKey(now)
	yesterday := models.DayKey(now.AddDate(0, 0, -1))

	next := models.Reduce(s, action, today, yesterday)
	hs.generation.Inc()
	return next
}

// State returns a deep-copied snapshot of the aggregate.
func (hs *HydrationService) State() *models.HydrationState {
	hs.stateMu.RLock()
	defer hs.stateMu.RUnlock()
	return hs.state.Clone()
}

// Generation increments on every reduction; read endpoints use it to scope
// cache keys to a specific state.
func (hs *HydrationService) Generation() uint64 {
	return hs.generation.Load()
}

func (hs *HydrationService) Subscribe(listener Listener) {
	hs.dispatchMu.Lock()
	defer hs.dispatchMu.Unlock()
	hs.listeners = append(hs.listeners, listener)
}

func (hs *HydrationService) currentState() *models.HydrationState {
	hs.stateMu.RLock()
	defer hs.stateMu.RUnlock()
	return hs.state
}

func (hs *HydrationService) swapState(next *models.HydrationState) {
	hs.stateMu.Lock()
	hs.state = next
	hs.stateMu.Unlock()
}

func (hs *HydrationService) notify(prev, next *models.HydrationState) {
	for _, l := range hs.listeners {
		l(prev, next)
	}
}
