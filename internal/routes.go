package internal

import (
	"aquad/internal/controllers"
	"aquad/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/water", http.HandlerFunc(apiController.AddWater))
	routers.Put("/goal", http.HandlerFunc(apiController.SetGoal))
	routers.Put("/unit", http.HandlerFunc(apiController.SetUnit))
	routers.Put("/settings/reminders", http.HandlerFunc(apiController.UpdateReminderSettings))
	routers.Put("/profile", http.HandlerFunc(apiController.UpdateProfile))
	routers.Post("/rollover", http.HandlerFunc(apiController.Rollover))
	routers.Post("/reminders/pause", http.HandlerFunc(apiController.PauseReminders))
	routers.Post("/reminders/permission", http.HandlerFunc(apiController.RequestPermission))

	routers.Get("/state", http.HandlerFunc(apiController.GetState))
	routers.Get("/progress", http.HandlerFunc(apiController.GetProgress))
	routers.Get("/stats/weekly", http.HandlerFunc(apiController.GetWeeklyStats))
	routers.Get("/stats/monthly", http.HandlerFunc(apiController.GetMonthlyStats))
	routers.Get("/achievements", http.HandlerFunc(apiController.GetAchievements))
	routers.Get("/recommended", http.HandlerFunc(apiController.GetRecommended))
	return routers
}
