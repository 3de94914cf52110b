package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func profile(weight float64, level ActivityLevel, age int) UserProfile {
	return UserProfile{Weight: &weight, ActivityLevel: &level, Age: &age}
}

func TestRecommendedDailyIntake_DefaultWithoutWeight(t *testing.T) {
	assert.Equal(t, DefaultDailyGoal, RecommendedDailyIntake(UserProfile{}))
}

func TestRecommendedDailyIntake_BaseFormula(t *testing.T) {
	// 70kg * 35 = 2450
	assert.Equal(t, 2450, RecommendedDailyIntake(profile(70, ActivityLow, 30)))
}

func TestRecommendedDailyIntake_ActivityScaling(t *testing.T) {
	assert.Equal(t, 2940, RecommendedDailyIntake(profile(70, ActivityModerate, 30))) // ×1.2
	assert.Equal(t, 3430, RecommendedDailyIntake(profile(70, ActivityHigh, 30)))     // ×1.4
}

func TestRecommendedDailyIntake_AgeReduction(t *testing.T) {
	// 70*35*0.9 = 2205
	assert.Equal(t, 2205, RecommendedDailyIntake(profile(70, ActivityLow, 70)))
	// 65 is not "over 65"
	assert.Equal(t, 2450, RecommendedDailyIntake(profile(70, ActivityLow, 65)))
}

func TestRecommendedDailyIntake_CombinedScaling(t *testing.T) {
	// 80*35*1.4*0.9 = 3528
	assert.Equal(t, 3528, RecommendedDailyIntake(profile(80, ActivityHigh, 66)))
}

func TestRecommendedDailyIntake_NonPositiveWeight(t *testing.T) {
	weight := -5.0
	assert.Equal(t, DefaultDailyGoal, RecommendedDailyIntake(UserProfile{Weight: &weight}))
}
