package interfaces

import (
	"aquad/internal/models"
	"time"
)

// SchedulerInterface is the reminder scheduling engine surface consumed by
// the app and the API boundary.
type SchedulerInterface interface {
	Init() error
	Stop()
	Recompute()
	Pause(duration models.PauseDuration)
	RequestPermission() models.PermissionStatus
	PermissionStatus() models.PermissionStatus
	OnStateChange(prev, next *models.HydrationState)
}

// NotificationSink is the external local-notification service: delivery is
// best-effort and cancellation is always total.
type NotificationSink interface {
	ScheduleAt(payload models.NotificationPayload, at time.Time) error
	CancelAll() error
	Close() error
}

// PermissionOracle reports the notification permission state. Status must be
// asked fresh on every recomputation; the engine never caches a grant.
type PermissionOracle interface {
	Status() models.PermissionStatus
	Request() models.PermissionStatus
}
