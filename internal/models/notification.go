package models

import "time"

// NotificationTitle is fixed for every reminder firing.
const NotificationTitle = "AquaFlow Hydration Reminder"

// DefaultVibrationPattern mirrors the device pattern used when vibration
// is enabled; an empty pattern means no vibration.
var DefaultVibrationPattern = []int{0, 250, 250, 250}

// NotificationPayload is one entry of a scheduled reminder batch.
type NotificationPayload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Sound     bool      `json:"sound"`
	Vibration []int     `json:"vibration"`
	FireAt    time.Time `json:"fireAt"`
}

type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)

type PauseDuration string

const (
	PauseShort PauseDuration = "short"
	PauseHour  PauseDuration = "hour"
	PauseDay   PauseDuration = "day"
)

// Delay maps a pause request to its fixed resume delay.
func (d PauseDuration) Delay() time.Duration {
	switch d {
	case PauseShort:
		return 15 * time.Minute
	case PauseHour:
		return time.Hour
	case PauseDay:
		return 24 * time.Hour
	}
	return 0
}

func (d PauseDuration) Valid() bool {
	return d == PauseShort || d == PauseHour || d == PauseDay
}
