package models

import "sort"

// DefaultMessages ship with a fresh state. {progress} is replaced with the
// integer goal percentage at scheduling time.
var DefaultMessages = []string{
	"Hydration check! You're doing great - keep flowing!",
	"Time for a water break! Your body will thank you!",
	"Stay hydrated, stay healthy! Time for some H2O!",
	"Water reminder: You're {progress}% toward your daily goal!",
}

const (
	DefaultDailyGoal = 2000 // ml
	DefaultInterval  = 60   // minutes

	MinInterval = 15
	MaxInterval = 240
)

// DefaultState is the aggregate used when no persisted blob exists.
func DefaultState() *HydrationState {
	return &HydrationState{
		DailyGoal:     DefaultDailyGoal,
		CurrentIntake: 0,
		Unit:          UnitMl,
		StreakCount:   0,
		LastLogDate:   "",
		WeeklyData:    make([]int, WeeklyWindow),
		MonthlyData:   []MonthlyEntry{},
		Achievements:  []string{},
		ReminderSettings: ReminderSettings{
			Enabled:          true,
			Interval:         DefaultInterval,
			ActiveHours:      HourRange{Start: 8, End: 22},
			DndEnabled:       false,
			DndPeriods:       []HourRange{},
			SoundEnabled:     true,
			VibrationEnabled: true,
			CustomMessages:   append([]string(nil), DefaultMessages...),
		},
		UserProfile: UserProfile{},
	}
}

// Normalize repairs a deserialized state so the aggregate invariants hold:
// unknown or missing fields fall back to defaults instead of failing the load.
func (s *HydrationState) Normalize() {
	if s.DailyGoal <= 0 {
		s.DailyGoal = DefaultDailyGoal
	}
	if s.CurrentIntake < 0 {
		s.CurrentIntake = 0
	}
	if s.Unit != UnitMl && s.Unit != UnitOz {
		s.Unit = UnitMl
	}
	if s.StreakCount < 0 {
		s.StreakCount = 0
	}
	s.WeeklyData = normalizeWeekly(s.WeeklyData)
	s.MonthlyData = normalizeMonthly(s.MonthlyData)
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	s.ReminderSettings.normalize()
}

func normalizeWeekly(data []int) []int {
	if len(data) == WeeklyWindow {
		return data
	}
	out := make([]int, WeeklyWindow)
	// Keep the most recent entries, aligned to the right (index 6 = today).
	start := len(data) - WeeklyWindow
	if start < 0 {
		copy(out[WeeklyWindow-len(data):], data)
	} else {
		copy(out, data[start:])
	}
	return out
}

func normalizeMonthly(entries []MonthlyEntry) []MonthlyEntry {
	if entries == nil {
		return []MonthlyEntry{}
	}
	// Last write wins per day, then ascending by date, capped at the window.
	byDate := make(map[string]int, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e.Amount
	}
	out := make([]MonthlyEntry, 0, len(byDate))
	for date, amount := range byDate {
		out = append(out, MonthlyEntry{Date: date, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > MonthlyWindow {
		out = out[len(out)-MonthlyWindow:]
	}
	return out
}

func (rs *ReminderSettings) normalize() {
	if rs.Interval == 0 {
		rs.Interval = DefaultInterval
	}
	if rs.Interval < MinInterval {
		rs.Interval = MinInterval
	}
	if rs.Interval > MaxInterval {
		rs.Interval = MaxInterval
	}
	rs.ActiveHours = clampRange(rs.ActiveHours)
	if rs.DndPeriods == nil {
		rs.DndPeriods = []HourRange{}
	}
	for i := range rs.DndPeriods {
		rs.DndPeriods[i] = clampRange(rs.DndPeriods[i])
	}
	if len(rs.CustomMessages) == 0 {
		rs.CustomMessages = append([]string(nil), DefaultMessages...)
	}
}

func clampRange(hr HourRange) HourRange {
	hr.Start = clampHour(hr.Start)
	hr.End = clampHour(hr.End)
	return hr
}

func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}
