package controllers

import (
	"aquad/internal/models"
	"aquad/internal/providers"
	"aquad/internal/reminder/interfaces"
	"aquad/internal/services"
	"fmt"
	"math"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// ApiController is the inbound dispatch boundary. Validation happens here,
// before anything reaches the reducer: the store accepts what it is given.
type ApiController struct {
	logger    providers.Logger
	service   services.HydrationServiceInterface
	scheduler interfaces.SchedulerInterface
	cache     providers.CacheProviderInterface
	metrics   providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.HydrationServiceInterface, scheduler interfaces.SchedulerInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		service:   service,
		scheduler: scheduler,
		cache:     cache,
		metrics:   metrics,
	}
}

func (ac *ApiController) dispatch(action models.Action) *models.HydrationState {
	ac.metrics.IncActionsTotal(action.Name())
	return ac.service.Dispatch(action)
}

// --- request payloads ---

type addWaterRequest struct {
	Amount float64 `json:"amount" validate:"required|gt:0"`
	Unit   string  `json:"unit" validate:"in:ml,oz"`
}

type setGoalRequest struct {
	Goal float64 `json:"goal" validate:"required|gt:0"`
	Unit string  `json:"unit" validate:"in:ml,oz"`
}

type setUnitRequest struct {
	Unit string `json:"unit" validate:"required|in:ml,oz"`
}

type hourRangeRequest struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type reminderSettingsRequest struct {
	Enabled          *bool               `json:"enabled"`
	Interval         *int                `json:"interval"`
	ActiveHours      *hourRangeRequest   `json:"activeHours"`
	DndEnabled       *bool               `json:"dndEnabled"`
	DndPeriods       *[]hourRangeRequest `json:"dndPeriods"`
	SoundEnabled     *bool               `json:"soundEnabled"`
	VibrationEnabled *bool               `json:"vibrationEnabled"`
	CustomMessages   *[]string           `json:"customMessages"`
}

type profileRequest struct {
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"`
	ActivityLevel *string  `json:"activityLevel"`
	Gender        *string  `json:"gender"`
}

type pauseRequest struct {
	Duration string `json:"duration" validate:"required|in:short,hour,day"`
}

// --- helpers ---

func (ac *ApiController) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) validateStruct(w http.ResponseWriter, payload any) bool {
	v := validate.Struct(payload)
	if !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() any) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	gson, err := json.Marshal(compute())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) cacheKey(name string) string {
	return fmt.Sprintf("%s:%d", name, ac.service.Generation())
}

func parseUnit(raw string) models.Unit {
	if raw == string(models.UnitOz) {
		return models.UnitOz
	}
	return models.UnitMl
}

func toMlAmount(amount float64, unit models.Unit) int {
	return int(math.Round(models.Convert(amount, unit, models.UnitMl)))
}

// --- mutating endpoints ---

func (ac *ApiController) AddWater(w http.ResponseWriter, r *http.Request) {
	var payload addWaterRequest
	if !ac.decode(w, r, &payload) || !ac.validateStruct(w, &payload) {
		return
	}

	amount := toMlAmount(payload.Amount, parseUnit(payload.Unit))
	if amount <= 0 {
		http.Error(w, "amount must convert to at least 1ml", http.StatusBadRequest)
		return
	}

	state := ac.dispatch(models.AddWater{Amount: amount})
	ac.writeJSON(w, http.StatusOK, state)
}

func (ac *ApiController) SetGoal(w http.ResponseWriter, r *http.Request) {
	var payload setGoalRequest
	if !ac.decode(w, r, &payload) || !ac.validateStruct(w, &payload) {
		return
	}

	goal := toMlAmount(payload.Goal, parseUnit(payload.Unit))
	if goal <= 0 {
		http.Error(w, "goal must convert to at least 1ml", http.StatusBadRequest)
		return
	}

	state := ac.dispatch(models.SetDailyGoal{Goal: goal})
	ac.writeJSON(w, http.StatusOK, state)
}

func (ac *ApiController) SetUnit(w http.ResponseWriter, r *http.Request) {
	var payload setUnitRequest
	if !ac.decode(w, r, &payload) || !ac.validateStruct(w, &payload) {
		return
	}

	state := ac.dispatch(models.SetUnit{Unit: parseUnit(payload.Unit)})
	ac.writeJSON(w, http.StatusOK, state)
}

func (ac *ApiController) UpdateReminderSettings(w http.ResponseWriter, r *http.Request) {
	var payload reminderSettingsRequest
	if !ac.decode(w, r, &payload) {
		return
	}

	patch, err := payload.toPatch()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := ac.dispatch(models.UpdateReminderSettings{Patch: patch})
	ac.writeJSON(w, http.StatusOK, state)
}

func (ac *ApiController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var payload profileRequest
	if !ac.decode(w, r, &payload) {
		return
	}

	patch, err := payload.toPatch()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := ac.dispatch(models.UpdateProfile{Patch: patch})
	ac.writeJSON(w, http.StatusOK, state)
}

func (ac *ApiController) Rollover(w http.ResponseWriter, r *http.Request) {
	ac.metrics.IncActionsTotal("day_rollover")
	state := ac.service.RolloverDay()
	ac.writeJSON(w, http.StatusOK, state)
}

func (ac *ApiController) PauseReminders(w http.ResponseWriter, r *http.Request) {
	var payload pauseRequest
	if !ac.decode(w, r, &payload) || !ac.validateStruct(w, &payload) {
		return
	}

	duration := models.PauseDuration(payload.Duration)
	ac.scheduler.Pause(duration)
	ac.writeJSON(w, http.StatusAccepted, map[string]any{
		"paused":   true,
		"duration": string(duration),
	})
}

func (ac *ApiController) RequestPermission(w http.ResponseWriter, r *http.Request) {
	status := ac.scheduler.RequestPermission()
	ac.writeJSON(w, http.StatusOK, map[string]any{
		"permission": string(status),
	})
}

// --- read endpoints ---

func (ac *ApiController) GetState(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, ac.cacheKey("state"), func() any {
		return ac.service.State()
	})
}

type progressResponse struct {
	CurrentIntake int    `json:"currentIntake"`
	DailyGoal     int    `json:"dailyGoal"`
	Percent       int    `json:"percent"`
	Display       string `json:"display"`
	StreakCount   int    `json:"streakCount"`
}

func (ac *ApiController) GetProgress(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, ac.cacheKey("progress"), func() any {
		state := ac.service.State()
		display := models.FormatAmount(models.Convert(float64(state.CurrentIntake), models.UnitMl, state.Unit), state.Unit)
		return progressResponse{
			CurrentIntake: state.CurrentIntake,
			DailyGoal:     state.DailyGoal,
			Percent:       state.ProgressPercent(),
			Display:       display,
			StreakCount:   state.StreakCount,
		}
	})
}

func (ac *ApiController) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, ac.cacheKey("weekly"), func() any {
		return ac.service.State().WeeklyData
	})
}

func (ac *ApiController) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, ac.cacheKey("monthly"), func() any {
		return ac.service.State().MonthlyData
	})
}

func (ac *ApiController) GetAchievements(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, ac.cacheKey("achievements"), func() any {
		return ac.service.State().Achievements
	})
}

type recommendedResponse struct {
	Recommended int    `json:"recommended"`
	Display     string `json:"display"`
}

func (ac *ApiController) GetRecommended(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, ac.cacheKey("recommended"), func() any {
		state := ac.service.State()
		recommended := models.RecommendedDailyIntake(state.UserProfile)
		display := models.FormatAmount(models.Convert(float64(recommended), models.UnitMl, state.Unit), state.Unit)
		return recommendedResponse{Recommended: recommended, Display: display}
	})
}

// --- patch mapping ---

func (req *reminderSettingsRequest) toPatch() (models.ReminderSettingsPatch, error) {
	var patch models.ReminderSettingsPatch

	if req.Interval != nil {
		if *req.Interval < models.MinInterval || *req.Interval > models.MaxInterval {
			return patch, fmt.Errorf("interval must be between %d and %d minutes", models.MinInterval, models.MaxInterval)
		}
		patch.Interval = req.Interval
	}
	if req.ActiveHours != nil {
		hr, err := req.ActiveHours.toRange()
		if err != nil {
			return patch, err
		}
		patch.ActiveHours = &hr
	}
	if req.DndPeriods != nil {
		periods := make([]models.HourRange, 0, len(*req.DndPeriods))
		for _, p := range *req.DndPeriods {
			hr, err := p.toRange()
			if err != nil {
				return patch, err
			}
			periods = append(periods, hr)
		}
		patch.DndPeriods = &periods
	}

	patch.Enabled = req.Enabled
	patch.DndEnabled = req.DndEnabled
	patch.SoundEnabled = req.SoundEnabled
	patch.VibrationEnabled = req.VibrationEnabled
	patch.CustomMessages = req.CustomMessages
	return patch, nil
}

func (hr hourRangeRequest) toRange() (models.HourRange, error) {
	if hr.Start < 0 || hr.Start > 23 || hr.End < 0 || hr.End > 23 {
		return models.HourRange{}, fmt.Errorf("hours must be between 0 and 23")
	}
	return models.HourRange{Start: hr.Start, End: hr.End}, nil
}

func (req *profileRequest) toPatch() (models.UserProfile, error) {
	var patch models.UserProfile

	if req.Age != nil {
		if *req.Age <= 0 || *req.Age > 150 {
			return patch, fmt.Errorf("age out of range")
		}
		patch.Age = req.Age
	}
	if req.Weight != nil {
		if *req.Weight <= 0 {
			return patch, fmt.Errorf("weight must be positive")
		}
		patch.Weight = req.Weight
	}
	if req.ActivityLevel != nil {
		level := models.ActivityLevel(*req.ActivityLevel)
		if level != models.ActivityLow && level != models.ActivityModerate && level != models.ActivityHigh {
			return patch, fmt.Errorf("activityLevel must be low, moderate or high")
		}
		patch.ActivityLevel = &level
	}
	if req.Gender != nil {
		switch *req.Gender {
		case "male", "female", "other":
			patch.Gender = req.Gender
		default:
			return patch, fmt.Errorf("gender must be male, female or other")
		}
	}
	return patch, nil
}
