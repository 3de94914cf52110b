package models

// Action is the closed set of state transitions. The reducer assumes every
// action is already validated at the boundary (see controllers) and never
// signals domain errors.
type Action interface {
	isAction()
	Name() string
}

// AddWater logs an intake. Amount is in milliliters; unit conversion happens
// before dispatch.
type AddWater struct {
	Amount int
}

type SetDailyGoal struct {
	Goal int // ml
}

type SetUnit struct {
	Unit Unit
}

// ReminderSettingsPatch is a partial update; nil fields are left untouched.
type ReminderSettingsPatch struct {
	Enabled          *bool
	Interval         *int
	ActiveHours      *HourRange
	DndEnabled       *bool
	DndPeriods       *[]HourRange
	SoundEnabled     *bool
	VibrationEnabled *bool
	CustomMessages   *[]string
}

type UpdateReminderSettings struct {
	Patch ReminderSettingsPatch
}

// UpdateProfile shallow-merges the non-nil fields into the user profile.
type UpdateProfile struct {
	Patch UserProfile
}

// ResetDailyIntake clears today's intake and rotates the weekly window left.
type ResetDailyIntake struct{}

// UpdateStreak evaluates the streak against lastLogDate at day rollover.
type UpdateStreak struct{}

type AddAchievement struct {
	ID string
}

// LoadState replaces the aggregate wholesale; used once at startup.
type LoadState struct {
	State *HydrationState
}

func (AddWater) isAction()               {}
func (SetDailyGoal) isAction()           {}
func (SetUnit) isAction()                {}
func (UpdateReminderSettings) isAction() {}
func (UpdateProfile) isAction()          {}
func (ResetDailyIntake) isAction()       {}
func (UpdateStreak) isAction()           {}
func (AddAchievement) isAction()         {}
func (LoadState) isAction()              {}

func (AddWater) Name() string               { return "add_water" }
func (SetDailyGoal) Name() string           { return "set_daily_goal" }
func (SetUnit) Name() string                { return "set_unit" }
func (UpdateReminderSettings) Name() string { return "update_reminder_settings" }
func (UpdateProfile) Name() string          { return "update_profile" }
func (ResetDailyIntake) Name() string       { return "reset_daily_intake" }
func (UpdateStreak) Name() string           { return "update_streak" }
func (AddAchievement) Name() string         { return "add_achievement" }
func (LoadState) Name() string              { return "load_state" }
