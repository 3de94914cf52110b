package reminder

import (
	"aquad/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// BatchHorizon is the number of interval steps projected forward on every
// recomputation.
const BatchHorizon = 24

// ComputeBatch derives the full reminder batch from a state snapshot. It is
// pure apart from uuid generation: the caller supplies the current time and
// the message picker. Progress is substituted at computation time and not
// re-evaluated when a reminder fires.
func ComputeBatch(now time.Time, state *models.HydrationState, pick func(n int) int) []models.NotificationPayload {
	rs := state.ReminderSettings
	if rs.Interval <= 0 {
		return nil
	}

	messages := rs.CustomMessages
	if len(messages) == 0 {
		messages = models.DefaultMessages
	}
	progress := cast.ToString(state.ProgressPercent())

	var batch []models.NotificationPayload
	for i := 1; i <= BatchHorizon; i++ {
		fireAt := now.Add(time.Duration(i*rs.Interval) * time.Minute)
		hour := fireAt.Hour()

		if !rs.ActiveHours.Contains(hour) {
			continue
		}
		// DND periods apply whenever present; dndEnabled only gates whether
		// the periods are user-editable.
		if inDndPeriod(rs.DndPeriods, hour) {
			continue
		}

		body := strings.ReplaceAll(messages[pick(len(messages))], "{progress}", progress)
		batch = append(batch, models.NotificationPayload{
			ID:        uuid.NewString(),
			Title:     models.NotificationTitle,
			Body:      body,
			Sound:     rs.SoundEnabled,
			Vibration: vibrationPattern(rs.VibrationEnabled),
			FireAt:    fireAt,
		})
	}
	return batch
}

func inDndPeriod(periods []models.HourRange, hour int) bool {
	for _, p := range periods {
		if p.Contains(hour) {
			return true
		}
	}
	return false
}

func vibrationPattern(enabled bool) []int {
	if !enabled {
		return []int{}
	}
	return append([]int(nil), models.DefaultVibrationPattern...)
}
