package models

import "math"

// RecommendedDailyIntake estimates a daily goal in ml from the profile:
// 35 ml per kg of body weight, scaled for activity level, slightly reduced
// past age 65. Falls back to the default goal when weight is unknown.
// It never mutates the configured goal; applying it is a separate dispatch.
func RecommendedDailyIntake(profile UserProfile) int {
	if profile.Weight == nil || *profile.Weight <= 0 {
		return DefaultDailyGoal
	}

	base := *profile.Weight * 35

	if profile.ActivityLevel != nil {
		switch *profile.ActivityLevel {
		case ActivityModerate:
			base *= 1.2
		case ActivityHigh:
			base *= 1.4
		}
	}

	if profile.Age != nil && *profile.Age > 65 {
		base *= 0.9
	}

	return int(math.Round(base))
}
