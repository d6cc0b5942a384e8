package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"talentflow-service/internal/cache"
	"talentflow-service/internal/config"
	"talentflow-service/internal/db"
	"talentflow-service/internal/event"
	"talentflow-service/internal/handlers"
	"talentflow-service/internal/repository"
	"talentflow-service/internal/service"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, pipeline events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDB)

	// Repositories
	jobRepo := repository.NewJobRepository(database)
	candidateRepo := repository.NewCandidateRepository(database)
	assessmentRepo := repository.NewAssessmentRepository(database)
	submissionRepo := repository.NewSubmissionRepository(database)
	timelineRepo := repository.NewTimelineRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	authRepo := repository.NewAuthRepository(database)
	outboxRepo := repository.NewOutboxRepository(database)

	sessionCache := cache.NewSessionCache(redisClient)

	// Services
	jobService := service.NewJobService(jobRepo)
	candidateService := service.NewCandidateService(candidateRepo, timelineRepo, assignmentRepo)
	assessmentService := service.NewAssessmentService(assessmentRepo, submissionRepo, timelineRepo)
	authService := service.NewAuthService(authRepo, candidateRepo, outboxRepo, sessionCache, cfg.JWTSecret, cfg.HRPassword)

	// Seed development data when the store is empty
	seeder := service.NewSeedService(jobRepo, candidateRepo, assessmentRepo, timelineRepo)
	if err := seeder.SeedIfEmpty(context.Background()); err != nil {
		log.Printf("Seed skipped: %v", err)
	}

	// Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, authService)
	authHandler := handlers.NewAuthHandler(authService, outboxRepo)

	api := r.Group("/api")

	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", func(c *gin.Context) {
			jobHandler.CreateJob(c)
			publish(publisher, "job.created", nil)
		})
		jobs.PUT("/:id", func(c *gin.Context) {
			jobHandler.UpdateJob(c)
			publish(publisher, "job.updated", gin.H{"id": c.Param("id")})
		})
		jobs.PATCH("/:id/archive", func(c *gin.Context) {
			jobHandler.ArchiveJob(c)
			publish(publisher, "job.archived", gin.H{"id": c.Param("id")})
		})
		jobs.POST("/reorder", func(c *gin.Context) {
			jobHandler.ReorderJobs(c)
			publish(publisher, "job.reordered", nil)
		})
		jobs.POST("/bulk-unarchive", jobHandler.BulkUnarchive)
		jobs.DELETE("/:id", func(c *gin.Context) {
			jobHandler.DeleteJob(c)
			publish(publisher, "job.deleted", gin.H{"id": c.Param("id")})
		})
	}

	candidates := api.Group("/candidates")
	{
		candidates.GET("", candidateHandler.ListCandidates)
		candidates.GET("/:id", candidateHandler.GetCandidate)
		candidates.POST("", candidateHandler.CreateCandidate)
		candidates.PUT("/:id", func(c *gin.Context) {
			candidateHandler.UpdateCandidate(c)
			publish(publisher, "candidate.updated", gin.H{"id": c.Param("id")})
		})
		candidates.DELETE("/:id", candidateHandler.DeleteCandidate)
		candidates.GET("/:id/timeline", candidateHandler.GetTimeline)
		candidates.GET("/:id/assignments", candidateHandler.GetAssignments)
		candidates.POST("/:id/assign", func(c *gin.Context) {
			candidateHandler.AssignAssessment(c)
			publish(publisher, "candidate.assigned", gin.H{"id": c.Param("id")})
		})
	}

	assessments := api.Group("/assessments")
	{
		assessments.GET("/:jobId", assessmentHandler.GetAssessment)
		assessments.PUT("/:jobId", func(c *gin.Context) {
			assessmentHandler.SaveAssessment(c)
			publish(publisher, "assessment.saved", gin.H{"job_id": c.Param("jobId")})
		})
		assessments.POST("/:jobId/submit", func(c *gin.Context) {
			assessmentHandler.Submit(c)
			publish(publisher, "assessment.submitted", gin.H{
				"job_id":    c.Param("jobId"),
				"timestamp": time.Now(),
			})
		})
		assessments.GET("/:jobId/submissions", assessmentHandler.ListSubmissions)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/invite", func(c *gin.Context) {
			authHandler.Invite(c)
			publish(publisher, "candidate.invited", nil)
		})
		auth.POST("/login", authHandler.Login)
		auth.POST("/hr-login", authHandler.HRLogin)
	}

	api.GET("/outbox", authHandler.GetOutbox)

	r.Run(":" + cfg.HTTPPort)
}

func publish(p *event.EventPublisher, eventType string, payload interface{}) {
	if p != nil {
		p.Publish(eventType, payload)
	}
}
