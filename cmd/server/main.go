package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sdiallo/projecthub-api/internal/config"
	"github.com/sdiallo/projecthub-api/internal/constants"
	"github.com/sdiallo/projecthub-api/internal/database"
	"github.com/sdiallo/projecthub-api/internal/handlers"
	"github.com/sdiallo/projecthub-api/internal/middleware"
	"github.com/sdiallo/projecthub-api/internal/repository"
	"github.com/sdiallo/projecthub-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	gin.SetMode(cfg.GinMode)
	if cfg.GinMode == gin.ReleaseMode {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if err := database.Connect(cfg); err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.Migrate(); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	if err := database.AddIndexes(database.GetDB()); err != nil {
		logrus.WithError(err).Fatal("failed to add indexes")
	}

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	projectTaskRepo := repository.NewProjectTaskRepository(db)
	personalTaskRepo := repository.NewPersonalTaskRepository(db)

	// Services
	referralService := services.NewReferralService(referralRepo)
	authService := services.NewAuthService(userRepo, referralService)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	projectTaskService := services.NewProjectTaskService(projectTaskRepo, projectRepo, userRepo)
	personalTaskService := services.NewPersonalTaskService(personalTaskRepo)
	dashboardService := services.NewDashboardService(userRepo, projectRepo, projectTaskRepo, personalTaskRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	referralHandler := handlers.NewReferralHandler(referralService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	projectTaskHandler := handlers.NewProjectTaskHandler(projectTaskService)
	personalTaskHandler := handlers.NewPersonalTaskHandler(personalTaskService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create Redis session store")
	}
	isProduction := cfg.GinMode == gin.ReleaseMode
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "ProjectHub API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/dashboard", dashboardHandler.GetDashboard)

			referrals := protected.Group("/referrals")
			{
				referrals.GET("", referralHandler.ListReferrals)
				referrals.POST("", referralHandler.CreateReferral)
				referrals.DELETE("/:id", referralHandler.DeleteReferral)
			}

			users := protected.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			projects := protected.Group("/projects")
			{
				projects.GET("", projectHandler.ListMyProjects)
				projects.POST("", projectHandler.CreateProject)
				projects.GET("/:id", projectHandler.GetProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.PUT("/:id/status", projectHandler.UpdateProjectStatus)
				projects.PUT("/:id/members", projectHandler.ToggleMember)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}
			protected.GET("/admin/projects", projectHandler.AdminListProjects)

			projectTasks := protected.Group("/project-tasks")
			{
				projectTasks.POST("", projectTaskHandler.CreateTask)
				projectTasks.PUT("/:id/status", projectTaskHandler.UpdateTaskStatus)
				projectTasks.DELETE("/:id", projectTaskHandler.DeleteTask)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("", personalTaskHandler.ListTasks)
				tasks.POST("", personalTaskHandler.CreateTask)
				tasks.PUT("/:id", personalTaskHandler.UpdateTask)
				tasks.DELETE("/:id", personalTaskHandler.DeleteTask)
			}
		}
	}

	logrus.WithField("port", cfg.HTTPPort).Info("server starting")
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
