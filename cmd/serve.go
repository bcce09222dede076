package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/cache"
	config "taskflow.com/taskflow/internal/configs"
	httpapi "taskflow.com/taskflow/internal/http"
	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the Taskflow HTTP API backed by the relational store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		commentRepo := repository.NewCommentRepository(database)
		notificationRepo := repository.NewNotificationRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		userRepo := repository.NewUserRepository(database)
		teamRepo := repository.NewTeamRepository(database)

		var searchCache *cache.SearchCache
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			searchCache = cache.NewSearchCache(
				redisClient,
				time.Duration(cfg.SearchCacheTTLSeconds)*time.Second,
			)
		}

		notificationService := services.NewNotificationService(notificationRepo)
		taskService := services.NewTaskService(taskRepo, projectRepo, notificationService)
		commentService := services.NewCommentService(commentRepo, taskRepo, notificationService)
		searchService := services.NewSearchService(taskRepo, projectRepo, userRepo, teamRepo, searchCache)
		projectService := services.NewProjectService(projectRepo)
		userService := services.NewUserService(userRepo)
		teamService := services.NewTeamService(teamRepo, userRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(
			taskService,
			commentService,
			notificationService,
			searchService,
			projectService,
			userService,
			teamService,
		)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
