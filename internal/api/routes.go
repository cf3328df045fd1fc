package api

import (
	"net/http"

	"gympal/gains-tracker/internal/metrics"
	"gympal/gains-tracker/internal/service"
	"gympal/gains-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupRoutes registers the full API surface on the router. Resource
// read routes run under optional auth so anonymous callers see public
// and default resources; mutation routes require a session.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	oauthService service.OAuthService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	programService service.ProgramService,
	fileStorage storage.FileStorage,
	registry *prometheus.Registry,
	corsOrigin string,
) {
	userHandler := NewUserHandler(authService, fileStorage)
	oauthHandler := NewOAuthHandler(oauthService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	programHandler := NewProgramHandler(programService)

	requireAuth := AuthMiddleware(authService)
	optionalAuth := OptionalAuthMiddleware(authService)

	router.Use(CORSMiddleware(corsOrigin))

	if registry != nil {
		collector := metrics.NewCollector(registry)
		router.Use(collector.Middleware())
		router.GET("/metrics", metrics.Handler(registry))
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the gains tracker API"})
	})

	users := router.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/change-password", requireAuth, userHandler.ChangePassword)
		users.GET("/profile", requireAuth, userHandler.Profile)
		users.POST("/avatar", requireAuth, userHandler.Avatar)
		// Logout succeeds even without a session so clients can always
		// clear local credentials.
		users.POST("/logout", optionalAuth, userHandler.Logout)
	}

	auth := router.Group("/auth")
	{
		auth.GET("/github", oauthHandler.GithubRedirect)
		auth.GET("/github/callback", oauthHandler.GithubCallback)
	}

	exercises := router.Group("/exercises")
	{
		exercises.GET("", optionalAuth, exerciseHandler.List)
		exercises.GET("/default", optionalAuth, exerciseHandler.ListDefaults)
		exercises.GET("/me", requireAuth, exerciseHandler.ListMine)
		exercises.GET("/muscle-group/:muscleGroup", optionalAuth, exerciseHandler.ListByMuscleGroup)
		exercises.GET("/:id", optionalAuth, exerciseHandler.Get)
		exercises.POST("", requireAuth, exerciseHandler.Create)
		exercises.PUT("/:id", requireAuth, exerciseHandler.Update)
		exercises.DELETE("/:id", requireAuth, exerciseHandler.Delete)
	}

	workouts := router.Group("/workouts")
	{
		workouts.GET("", optionalAuth, workoutHandler.List)
		workouts.GET("/default", optionalAuth, workoutHandler.ListDefaults)
		workouts.GET("/me", requireAuth, workoutHandler.ListMine)
		workouts.GET("/:id", optionalAuth, workoutHandler.Get)
		workouts.POST("", requireAuth, workoutHandler.Create)
		workouts.PUT("/:id", requireAuth, workoutHandler.Update)
		workouts.DELETE("/:id", requireAuth, workoutHandler.Delete)
	}

	programs := router.Group("/programs")
	{
		programs.GET("", optionalAuth, programHandler.List)
		programs.GET("/default", optionalAuth, programHandler.ListDefaults)
		programs.GET("/me", requireAuth, programHandler.ListMine)
		programs.GET("/:id", optionalAuth, programHandler.Get)
		programs.POST("", requireAuth, programHandler.Create)
		programs.PUT("/:id", requireAuth, programHandler.Update)
		programs.DELETE("/:id", requireAuth, programHandler.Delete)
	}
}
