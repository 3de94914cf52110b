package models

const (
	// WeeklyWindow is the fixed length of the weekly series.
	WeeklyWindow = 7
	// MonthlyWindow caps the monthly series; oldest entries are evicted first.
	MonthlyWindow = 30

	AchievementDailyGoal = "Daily Goal Achieved!"
)

// Reduce applies an action to the previous state and returns the next one.
// It is pure: the current calendar day is passed in rather than looked up,
// and prev is never mutated. Input validation is the caller's job.
func Reduce(prev *HydrationState, action Action, today, yesterday string) *HydrationState {
	switch a := action.(type) {
	case AddWater:
		next := prev.Clone()
		next.CurrentIntake = prev.CurrentIntake + a.Amount
		next.WeeklyData[WeeklyWindow-1] = next.CurrentIntake
		next.MonthlyData = upsertMonthly(next.MonthlyData, today, next.CurrentIntake)
		next.LastLogDate = today
		if prev.CurrentIntake < prev.DailyGoal && next.CurrentIntake >= next.DailyGoal && !next.HasAchievement(AchievementDailyGoal) {
			next.Achievements = append(next.Achievements, AchievementDailyGoal)
		}
		return next

	case SetDailyGoal:
		next := prev.Clone()
		next.DailyGoal = a.Goal
		return next

	case SetUnit:
		// Presentation only; stored quantities stay in ml.
		next := prev.Clone()
		next.Unit = a.Unit
		return next

	case UpdateReminderSettings:
		next := prev.Clone()
		next.ReminderSettings = mergeReminderSettings(next.ReminderSettings, a.Patch)
		return next

	case UpdateProfile:
		next := prev.Clone()
		next.UserProfile = mergeProfile(next.UserProfile, a.Patch)
		return next

	case ResetDailyIntake:
		next := prev.Clone()
		next.CurrentIntake = 0
		next.WeeklyData = append(next.WeeklyData[1:], 0)
		return next

	case UpdateStreak:
		next := prev.Clone()
		switch {
		case prev.LastLogDate == yesterday && prev.CurrentIntake >= prev.DailyGoal:
			next.StreakCount = prev.StreakCount + 1
		case prev.LastLogDate != today && prev.LastLogDate != yesterday:
			next.StreakCount = 0
		}
		return next

	case AddAchievement:
		if prev.HasAchievement(a.ID) {
			return prev.Clone()
		}
		next := prev.Clone()
		next.Achievements = append(next.Achievements, a.ID)
		return next

	case LoadState:
		return a.State.Clone()
	}

	return prev.Clone()
}

func upsertMonthly(entries []MonthlyEntry, date string, amount int) []MonthlyEntry {
	for i := range entries {
		if entries[i].Date == date {
			entries[i].Amount = amount
			return entries
		}
	}
	entries = append(entries, MonthlyEntry{Date: date, Amount: amount})
	if len(entries) > MonthlyWindow {
		entries = entries[len(entries)-MonthlyWindow:]
	}
	return entries
}

func mergeReminderSettings(base ReminderSettings, patch ReminderSettingsPatch) ReminderSettings {
	if patch.Enabled != nil {
		base.Enabled = *patch.Enabled
	}
	if patch.Interval != nil {
		base.Interval = *patch.Interval
	}
	if patch.ActiveHours != nil {
		base.ActiveHours = *patch.ActiveHours
	}
	if patch.DndEnabled != nil {
		base.DndEnabled = *patch.DndEnabled
	}
	if patch.DndPeriods != nil {
		base.DndPeriods = append([]HourRange(nil), (*patch.DndPeriods)...)
	}
	if patch.SoundEnabled != nil {
		base.SoundEnabled = *patch.SoundEnabled
	}
	if patch.VibrationEnabled != nil {
		base.VibrationEnabled = *patch.VibrationEnabled
	}
	if patch.CustomMessages != nil {
		base.CustomMessages = append([]string(nil), (*patch.CustomMessages)...)
	}
	return base
}

func mergeProfile(base UserProfile, patch UserProfile) UserProfile {
	if patch.Age != nil {
		base.Age = patch.Age
	}
	if patch.Weight != nil {
		base.Weight = patch.Weight
	}
	if patch.ActivityLevel != nil {
		base.ActivityLevel = patch.ActivityLevel
	}
	if patch.Gender != nil {
		base.Gender = patch.Gender
	}
	return base.clone()
}
