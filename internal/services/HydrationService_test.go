package services

import (
	"testing"
	"time"

	"aquad/internal/models"
	"aquad/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) (HydrationServiceInterface, *testutil.MockClock) {
	clock := testutil.NewMockClock(now)
	return NewHydrationService(clock), clock
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return ts
}

func TestDispatch_AddWaterAccumulates(t *testing.T) {
	svc, _ := newTestService(mustTime(t, "2025-03-10 09:00"))

	svc.Dispatch(models.AddWater{Amount: 250})
	next := svc.Dispatch(models.AddWater{Amount: 500})

	assert.Equal(t, 750, next.CurrentIntake)
	assert.Equal(t, "2025-03-10", next.LastLogDate)
	assert.Equal(t, 750, next.WeeklyData[6])
}

func TestDispatch_ReturnsSnapshot(t *testing.T) {
	svc, _ := newTestService(mustTime(t, "2025-03-10 09:00"))

	got := svc.Dispatch(models.AddWater{Amount: 250})
	got.CurrentIntake = 9999

	assert.Equal(t, 250, svc.State().CurrentIntake)
}

func TestState_ReturnsSnapshot(t *testing.T) {
	svc, _ := newTestService(mustTime(t, "2025-03-10 09:00"))
	svc.Dispatch(models.AddWater{Amount: 100})

	got := svc.State()
	got.WeeklyData[6] = 9999

	assert.Equal(t, 100, svc.State().WeeklyData[6])
}

func TestDispatch_NotifiesListenersInOrder(t *testing.T) {
	svc, _ := newTestService(mustTime(t, "2025-03-10 09:00"))

	var calls []string
	svc.Subscribe(func(prev, next *models.HydrationState) {
		calls = append(calls, "first")
		assert.Equal(t, 0, prev.CurrentIntake)
		assert.Equal(t, 300, next.CurrentIntake)
	})
	svc.Subscribe(func(prev, next *models.HydrationState) {
		calls = append(calls, "second")
	})

	svc.Dispatch(models.AddWater{Amount: 300})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatch_ListenerCanReadStateWithoutDeadlock(t *testing.T) {
	svc, _ := newTestService(mustTime(t, "2025-03-10 09:00"))

	var seen int
	svc.Subscribe(func(prev, next *models.HydrationState) {
		seen = svc.State().CurrentIntake
	})

	svc.Dispatch(models.AddWater{Amount: 400})

	assert.Equal(t, 400, seen)
}

func TestRolloverDay_RunsStreakThenReset(t *testing.T) {
	svc, clock := newTestService(mustTime(t, "2025-03-10 23:30"))

	svc.Dispatch(models.AddWater{Amount: 2000})
	require.Equal(t, 0, svc.State().StreakCount)

	clock.Set(mustTime(t, "2025-03-11 00:00"))
	next := svc.RolloverDay()

	// Goal was met "yesterday" relative to the new day, so the streak holds
	// and the intake window rotates.
	assert.Equal(t, 1, next.StreakCount)
	assert.Equal(t, 0, next.CurrentIntake)
	assert.Equal(t, 2000, next.WeeklyData[5])
	assert.Equal(t, 0, next.WeeklyData[6])
}

func TestRolloverDay_ResetsStaleStreak(t *testing.T) {
	svc, clock := newTestService(mustTime(t, "2025-03-10 12:00"))

	seeded := models.DefaultState()
	seeded.StreakCount = 5
	seeded.CurrentIntake = 2000
	seeded.LastLogDate = "2025-03-10"
	svc.Dispatch(models.LoadState{State: seeded})

	// Two days pass with no logging.
	clock.Set(mustTime(t, "2025-03-12 00:00"))
	next := svc.RolloverDay()

	assert.Equal(t, 0, next.StreakCount)
	assert.Equal(t, 0, next.CurrentIntake)
}

func TestDispatch_LazyRolloverBeforeLateLog(t *testing.T) {
	svc, clock := newTestService(mustTime(t, "2025-03-10 22:00"))

	svc.Dispatch(models.AddWater{Amount: 2000})

	// First log of the next day: yesterday's total must rotate out before
	// the new amount lands.
	clock.Set(mustTime(t, "2025-03-11 07:30"))
	next := svc.Dispatch(models.AddWater{Amount: 300})

	assert.Equal(t, 300, next.CurrentIntake)
	assert.Equal(t, "2025-03-11", next.LastLogDate)
	assert.Equal(t, 2000, next.WeeklyData[5])
	assert.Equal(t, 300, next.WeeklyData[6])
	assert.Equal(t, 1, next.StreakCount)
}

func TestDispatch_NoSecondRolloverAfterMidnightJob(t *testing.T) {
	svc, clock := newTestService(mustTime(t, "2025-03-10 22:00"))

	svc.Dispatch(models.AddWater{Amount: 2000})

	// Midnight job rotates the day; the first log of the morning must not
	// rotate it again.
	clock.Set(mustTime(t, "2025-03-11 00:00"))
	svc.RolloverDay()

	clock.Set(mustTime(t, "2025-03-11 07:30"))
	next := svc.Dispatch(models.AddWater{Amount: 300})

	assert.Equal(t, 300, next.CurrentIntake)
	assert.Equal(t, 2000, next.WeeklyData[5])
	assert.Equal(t, 300, next.WeeklyData[6])
	assert.Equal(t, 1, next.StreakCount)
}

func TestDispatch_LazyRolloverStillFiresWithoutMidnightJob(t *testing.T) {
	svc, clock := newTestService(mustTime(t, "2025-03-10 22:00"))

	svc.Dispatch(models.AddWater{Amount: 2000})
	clock.Set(mustTime(t, "2025-03-11 07:30"))
	svc.Dispatch(models.AddWater{Amount: 300})

	// A second rollover two midnights later is a new boundary and must run.
	clock.Set(mustTime(t, "2025-03-12 09:00"))
	next := svc.Dispatch(models.AddWater{Amount: 500})

	assert.Equal(t, 500, next.CurrentIntake)
	assert.Equal(t, 300, next.WeeklyData[5])
	assert.Equal(t, 500, next.WeeklyData[6])
}

func TestDispatch_NoRolloverForNonLogActions(t *testing.T) {
	svc, clock := newTestService(mustTime(t, "2025-03-10 22:00"))

	svc.Dispatch(models.AddWater{Amount: 1500})

	clock.Set(mustTime(t, "2025-03-11 09:00"))
	next := svc.Dispatch(models.SetDailyGoal{Goal: 2500})

	// Settings changes never trigger the day boundary.
	assert.Equal(t, 1500, next.CurrentIntake)
	assert.Equal(t, "2025-03-10", next.LastLogDate)
}

func TestGeneration_IncrementsPerReduction(t *testing.T) {
	svc, _ := newTestService(mustTime(t, "2025-03-10 09:00"))

	before := svc.Generation()
	svc.Dispatch(models.AddWater{Amount: 100})
	afterOne := svc.Generation()
	svc.RolloverDay()
	afterRollover := svc.Generation()

	assert.Equal(t, before+1, afterOne)
	// Rollover is two reductions (streak update, then reset).
	assert.Equal(t, afterOne+2, afterRollover)
}

func TestDispatch_LoadStateReplacesAggregate(t *testing.T) {
	svc, _ := newTestService(mustTime(t, "2025-03-10 09:00"))

	restored := models.DefaultState()
	restored.CurrentIntake = 1200
	restored.StreakCount = 4
	restored.LastLogDate = "2025-03-10"

	next := svc.Dispatch(models.LoadState{State: restored})

	assert.Equal(t, 1200, next.CurrentIntake)
	assert.Equal(t, 4, next.StreakCount)
	assert.Equal(t, 1200, svc.State().CurrentIntake)
}
