package api

import (
	"alcyxob/workout-tracker/internal/catalog"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/realtime"
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services bundles what the routes depend on.
type Services struct {
	Auth     service.AuthService
	Workouts service.WorkoutService
	Progress service.ProgressService
	Meals    service.MealService
	Catalog  *catalog.Sessions
	Hub      *realtime.Hub
}

func SetupRoutes(router *gin.Engine, svc Services, logger logging.Logger) {
	authHandler := NewAuthHandler(svc.Auth, logger)
	workoutHandler := NewWorkoutHandler(svc.Workouts, logger)
	catalogHandler := NewCatalogHandler(svc.Catalog)
	discoverHandler := NewDiscoverHandler()
	progressHandler := NewProgressHandler(svc.Progress, svc.Meals, logger)
	realtimeHandler := NewRealtimeHandler(svc.Hub, logger)

	authMiddleware := AuthMiddleware(svc.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/signin", authHandler.SignIn)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		// --- Workouts ---
		workouts := protected.Group("/workouts")
		{
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.GET("/by-day", workoutHandler.GroupByDay)
			workouts.GET("/recent", workoutHandler.RecentWorkouts)
			workouts.GET("/stats/weekly", workoutHandler.WeeklyStats)

			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.PUT("/:id", workoutHandler.UpdateWorkout)
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)

			workouts.POST("/:id/exercises", workoutHandler.AddExercise)
			workouts.DELETE("/:id/exercises/:ex", workoutHandler.RemoveExercise)
			workouts.POST("/:id/exercises/:ex/sets", workoutHandler.AddSet)
			workouts.PUT("/:id/exercises/:ex/sets/:set", workoutHandler.UpdateSet)
			workouts.DELETE("/:id/exercises/:ex/sets/:set", workoutHandler.RemoveSet)

			workouts.POST("/:id/image/upload-url", workoutHandler.RequestImageUpload)
			workouts.POST("/:id/image/confirm", workoutHandler.ConfirmImageUpload)
		}
		protected.POST("/templates/:id/instantiate", workoutHandler.InstantiateTemplate)

		// --- Exercise catalog ---
		catalogGroup := protected.Group("/catalog")
		{
			catalogGroup.GET("", catalogHandler.GetCatalog)
			catalogGroup.POST("/pickers", catalogHandler.OpenPicker)
			catalogGroup.GET("/pickers/:sid", catalogHandler.GetPicker)
			catalogGroup.DELETE("/pickers/:sid", catalogHandler.ClosePicker)
			catalogGroup.POST("/pickers/:sid/custom", catalogHandler.AddCustom)
			catalogGroup.POST("/pickers/:sid/hidden", catalogHandler.Hide)
			catalogGroup.DELETE("/pickers/:sid/hidden", catalogHandler.Unhide)
		}

		// --- Supplements and coaching ---
		discoverGroup := protected.Group("/discover")
		{
			discoverGroup.GET("/supplements", discoverHandler.ListSupplements)
			discoverGroup.GET("/coaches", discoverHandler.ListCoaches)
		}

		// --- Progress ---
		progress := protected.Group("/progress")
		{
			progress.POST("/weights", progressHandler.LogWeight)
			progress.GET("/weights", progressHandler.RecentWeights)
			progress.GET("/weights/trend", progressHandler.WeightTrend)
		}
		protected.GET("/meals", progressHandler.ListMeals)
		protected.POST("/meals", progressHandler.AddMeal)
		protected.DELETE("/meals/:id", progressHandler.DeleteMeal)

		protected.GET("/realtime/workouts", realtimeHandler.WorkoutsWS)
	}
}
