package models

import "time"

// DayKeyLayout is the calendar-day identifier used for lastLogDate and
// monthlyData keys. Lexicographic order equals chronological order.
const DayKeyLayout = "2006-01-02"

func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

type Unit string

const (
	UnitMl Unit = "ml"
	UnitOz Unit = "oz"
)

type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// HourRange is an inclusive hour-of-day range (0-23 on both bounds).
type HourRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (hr HourRange) Contains(hour int) bool {
	return hour >= hr.Start && hour <= hr.End
}

type ReminderSettings struct {
	Enabled          bool        `json:"enabled"`
	Interval         int         `json:"interval"` // minutes, 15-240
	ActiveHours      HourRange   `json:"activeHours"`
	DndEnabled       bool        `json:"dndEnabled"`
	DndPeriods       []HourRange `json:"dndPeriods"`
	SoundEnabled     bool        `json:"soundEnabled"`
	VibrationEnabled bool        `json:"vibrationEnabled"`
	CustomMessages   []string    `json:"customMessages"`
}

type UserProfile struct {
	Age           *int           `json:"age,omitempty"`
	Weight        *float64       `json:"weight,omitempty"` // kg
	ActivityLevel *ActivityLevel `json:"activityLevel,omitempty"`
	Gender        *string        `json:"gender,omitempty"`
}

type MonthlyEntry struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

// HydrationState is the single owned aggregate. All quantities are stored
// in milliliters; Unit only affects presentation.
type HydrationState struct {
	DailyGoal        int              `json:"dailyGoal"`
	CurrentIntake    int              `json:"currentIntake"`
	Unit             Unit             `json:"unit"`
	StreakCount      int              `json:"streakCount"`
	LastLogDate      string           `json:"lastLogDate"`
	WeeklyData       []int            `json:"weeklyData"`  // always 7 entries, index 6 = today
	MonthlyData      []MonthlyEntry   `json:"monthlyData"` // ascending by date, max 30
	Achievements     []string         `json:"achievements"`
	ReminderSettings ReminderSettings `json:"reminderSettings"`
	UserProfile      UserProfile      `json:"userProfile"`
}

// Clone returns a deep copy. Reduction is copy-on-write: the previous state
// is never mutated, so snapshots handed to listeners stay immutable.
func (s *HydrationState) Clone() *HydrationState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.WeeklyData = append([]int(nil), s.WeeklyData...)
	cp.MonthlyData = append([]MonthlyEntry(nil), s.MonthlyData...)
	cp.Achievements = append([]string(nil), s.Achievements...)
	cp.ReminderSettings.DndPeriods = append([]HourRange(nil), s.ReminderSettings.DndPeriods...)
	cp.ReminderSettings.CustomMessages = append([]string(nil), s.ReminderSettings.CustomMessages...)
	cp.UserProfile = s.UserProfile.clone()
	return &cp
}

func (p UserProfile) clone() UserProfile {
	cp := UserProfile{}
	if p.Age != nil {
		v := *p.Age
		cp.Age = &v
	}
	if p.Weight != nil {
		v := *p.Weight
		cp.Weight = &v
	}
	if p.ActivityLevel != nil {
		v := *p.ActivityLevel
		cp.ActivityLevel = &v
	}
	if p.Gender != nil {
		v := *p.Gender
		cp.Gender = &v
	}
	return cp
}

func (s *HydrationState) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// ProgressPercent is the integer percentage of the daily goal reached.
func (s *HydrationState) ProgressPercent() int {
	if s.DailyGoal <= 0 {
		return 0
	}
	return int(float64(s.CurrentIntake)/float64(s.DailyGoal)*100 + 0.5)
}
