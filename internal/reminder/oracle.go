package reminder

import (
	"aquad/internal/models"
	"aquad/internal/providers"
	"aquad/internal/reminder/interfaces"
	"aquad/internal/structures"

	"go.uber.org/atomic"
)

// StaticOracle stands in for the device permission service. The initial
// status comes from config; Request promotes an undetermined status to
// granted when the config allows it, and a denial sticks.
type StaticOracle struct {
	status       *atomic.String
	allowRequest bool
	logger       providers.Logger
}

func NewOracle(conf *structures.Config, logger providers.Logger) interfaces.PermissionOracle {
	return &StaticOracle{
		status:       atomic.NewString(conf.Notifications.Permission),
		allowRequest: conf.Notifications.AllowRequest,
		logger:       logger,
	}
}

func (o *StaticOracle) Status() models.PermissionStatus {
	return models.PermissionStatus(o.status.Load())
}

func (o *StaticOracle) Request() models.PermissionStatus {
	current := o.Status()
	if current != models.PermissionUndetermined {
		return current
	}
	if !o.allowRequest {
		o.status.Store(string(models.PermissionDenied))
		o.logger.Infof(providers.TypeApp, "Notification permission request denied")
		return models.PermissionDenied
	}
	o.status.Store(string(models.PermissionGranted))
	o.logger.Infof(providers.TypeApp, "Notification permission granted")
	return models.PermissionGranted
}
