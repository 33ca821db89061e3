package routes

import (
	"net/http"

	"github.com/ITECH-Group8/WellLog/config"
	"github.com/ITECH-Group8/WellLog/controllers"
	"github.com/ITECH-Group8/WellLog/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	User      *controllers.UserController
	Record    *controllers.RecordController
	Goal      *controllers.GoalController
	Advice    *controllers.AdviceController
	Dashboard *controllers.DashboardController
	Export    *controllers.ExportController
	Community *controllers.CommunityController
	Feed      *controllers.FeedController
}

func SetupRouter(cfg *config.Config, db *gorm.DB, ctrl Controllers) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Locally stored uploads are served straight from disk. The local
	// store also backs the fallback when S3 uploads fail, so the route
	// is mounted regardless of which store is primary.
	r.Static(cfg.MediaBaseURL, cfg.MediaDir)

	requireAuth := middlewares.AuthMiddleware(db, cfg.JWTSecret)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/verify-mfa", ctrl.Auth.VerifyMFA)
		auth.POST("/forgot-password", ctrl.Auth.ForgotPassword)
		auth.POST("/reset-password", ctrl.Auth.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(requireAuth)
	{
		user.GET("/profile", ctrl.User.GetProfile)
		user.PUT("/profile", ctrl.User.UpdateProfile)
	}

	// Health records, goal, dashboard, export
	health := r.Group("/health")
	health.Use(requireAuth)
	{
		health.POST("/steps", ctrl.Record.AddSteps)
		health.PUT("/steps/:id", ctrl.Record.UpdateSteps)
		health.DELETE("/steps/:id", ctrl.Record.DeleteSteps)
		health.GET("/steps", ctrl.Record.StepsHistory)

		health.POST("/sleep", ctrl.Record.AddSleep)
		health.PUT("/sleep/:id", ctrl.Record.UpdateSleep)
		health.DELETE("/sleep/:id", ctrl.Record.DeleteSleep)
		health.GET("/sleep", ctrl.Record.SleepHistory)

		health.POST("/diet", ctrl.Record.AddDiet)
		health.PUT("/diet/:id", ctrl.Record.UpdateDiet)
		health.DELETE("/diet/:id", ctrl.Record.DeleteDiet)
		health.GET("/diet", ctrl.Record.DietHistory)

		health.POST("/running", ctrl.Record.AddRunning)
		health.PUT("/running/:id", ctrl.Record.UpdateRunning)
		health.DELETE("/running/:id", ctrl.Record.DeleteRunning)
		health.GET("/running", ctrl.Record.RunningHistory)

		health.POST("/training", ctrl.Record.AddTraining)
		health.PUT("/training/:id", ctrl.Record.UpdateTraining)
		health.DELETE("/training/:id", ctrl.Record.DeleteTraining)
		health.GET("/training", ctrl.Record.TrainingHistory)

		health.POST("/mood", ctrl.Record.AddMood)
		health.PUT("/mood/:id", ctrl.Record.UpdateMood)
		health.DELETE("/mood/:id", ctrl.Record.DeleteMood)
		health.GET("/mood", ctrl.Record.MoodHistory)

		health.POST("/weight", ctrl.Record.AddWeight)
		health.PUT("/weight/:id", ctrl.Record.UpdateWeight)
		health.DELETE("/weight/:id", ctrl.Record.DeleteWeight)
		health.GET("/weight", ctrl.Record.WeightHistory)

		health.GET("/goal", ctrl.Goal.GetGoal)
		health.PUT("/goal", ctrl.Goal.PutGoal)

		health.GET("/dashboard", ctrl.Dashboard.Overview)

		health.GET("/export", ctrl.Export.Export)
		health.POST("/import", ctrl.Export.Import)
	}

	// AI analysis
	analysis := r.Group("/analysis")
	analysis.Use(requireAuth)
	{
		analysis.POST("/advice/generate", ctrl.Advice.Generate)
		analysis.GET("/advice/latest", ctrl.Advice.Latest)
	}

	// Community
	community := r.Group("/community")
	community.Use(requireAuth)
	{
		community.GET("/posts", ctrl.Community.ListPosts)
		community.POST("/posts", ctrl.Community.CreatePost)
		community.GET("/posts/:id", ctrl.Community.GetPost)
		community.DELETE("/posts/:id", ctrl.Community.DeletePost)
		community.POST("/posts/:id/comments", ctrl.Community.AddComment)
		community.POST("/posts/:id/like", ctrl.Community.ToggleLike)
		community.GET("/ws", ctrl.Feed.FeedWS)
	}

	return r
}
