package main

import (
	"log"
	"time"

	"examprep-service/internal/cache"
	"examprep-service/internal/configs"
	"examprep-service/internal/db"
	"examprep-service/internal/event"
	"examprep-service/internal/handlers"
	"examprep-service/internal/repository"
	"examprep-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.Load()

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, practice events will not be published")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.RegisterValidators()

	// Catalog
	catalogRepo := repository.NewCatalogRepository(database)
	catalogCache := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	catalogService := service.NewCatalogService(catalogRepo, catalogCache, cfg.CatalogTTL)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Questions
	store := repository.NewMongoQuestionStore(database, cfg.SubjectIDs, cfg.SelectionStrategy, cfg.QueryTimeout)
	questionService := service.NewQuestionService(store, cfg.QuestionsPerRequest)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Subject sampling
	samplerService := service.NewSamplerService(store)
	samplerHandler := handlers.NewSamplerHandler(samplerService)

	// AI review
	reviewService := service.NewReviewService(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	auth := handlers.AuthRequired(cfg.JWTSecret)

	r.GET("/courses", auth, catalogHandler.GetCourses)
	r.GET("/courses/:id/subjects", auth, catalogHandler.GetSubjects)
	r.GET("/topics/fetch-by-subject/:subjectId", auth, catalogHandler.GetTopicsWithSubtopics)

	r.POST("/questions/fetch", auth, func(c *gin.Context) {
		questionHandler.FetchQuestions(c)
		if publisher != nil && c.Writer.Status() < 400 {
			publisher.Publish(event.QuestionsFetched, gin.H{"userId": c.GetString("userId")})
		}
	})

	r.POST("/practice/ai-review", auth, func(c *gin.Context) {
		reviewHandler.AIReview(c)
		if publisher != nil {
			routingKey := event.SessionReviewed
			if c.Writer.Status() >= 400 {
				routingKey = event.ReviewFailed
			}
			publisher.Publish(routingKey, gin.H{"userId": c.GetString("userId")})
		}
	})

	// Sampling API, no auth
	r.GET("/api/health", samplerHandler.Health)
	r.GET("/api/questions", samplerHandler.GetQuestions)

	log.Printf("examprep-service listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
