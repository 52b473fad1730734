package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/danverh/careeratlas/config"
	"github.com/danverh/careeratlas/internal/api/handlers"
	"github.com/danverh/careeratlas/internal/api/middleware"
	"github.com/danverh/careeratlas/internal/api/routes"
	"github.com/danverh/careeratlas/internal/cache"
	"github.com/danverh/careeratlas/internal/embedding"
	"github.com/danverh/careeratlas/internal/logger"
	"github.com/danverh/careeratlas/internal/providers/llm"
	mongorepo "github.com/danverh/careeratlas/internal/repositories/mongo"
	pgrepo "github.com/danverh/careeratlas/internal/repositories/postgres"
	"github.com/danverh/careeratlas/internal/services"
	"github.com/danverh/careeratlas/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()
	ctx := context.Background()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// LLM provider is optional at boot: without it, embedding generation is
	// unavailable and roadmaps fall back to the static template.
	var provider llm.Provider
	if projectID := os.Getenv("VERTEX_PROJECT_ID"); projectID != "" {
		p, err := llm.NewVertexGemini(ctx, projectID, os.Getenv("VERTEX_LOCATION"), os.Getenv("VERTEX_MODEL"))
		if err != nil {
			log.Fatalf("Vertex init error: %v", err)
		}
		defer p.Close()
		provider = p
		l.Info("Vertex Gemini ready")
	} else {
		l.Warn("VERTEX_PROJECT_ID not set; running without language model")
	}

	var (
		uploader storage.Uploader
		signer   storage.Signer
	)
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		u, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer u.Close()
		uploader = u
		signer = u
	} else {
		l.Warn("GCS_BUCKET not set; resume uploads disabled")
	}

	mongoDB := config.MongoClient.Database(config.MongoDatabaseName())

	profileRepo := pgrepo.NewProfileRepo(config.PostgresDB)
	jobRepo := pgrepo.NewJobRepo(config.PostgresDB)
	matchRepo := pgrepo.NewMatchRepo(config.PostgresDB)
	resumeRepo := pgrepo.NewResumeFileRepo(config.PostgresDB)
	pathRepo := mongorepo.NewPathRepo(mongoDB)

	redisCache := cache.NewRedisCache(config.RedisClient)
	generator := embedding.NewGenerator(provider, l)

	profileSvc := services.NewProfileService(profileRepo)
	embeddingSvc := services.NewEmbeddingService(profileRepo, generator)
	matchSvc := services.NewMatchService(profileRepo, jobRepo, matchRepo, redisCache, l)
	seedSvc := services.NewSeedService(jobRepo, generator, l)
	jobSvc := services.NewJobService(jobRepo)
	var personalizer services.Personalizer
	if provider != nil {
		personalizer = services.LLMPersonalizer{LLM: provider}
	}
	roadmapSvc := services.NewRoadmapService(pathRepo, matchRepo, profileRepo, personalizer, l)
	resumeSvc := services.NewResumeFileService(resumeRepo, uploader, signer)

	r := gin.New()
	r.Use(middleware.RequestLogger(l), gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Profile: handlers.NewProfileHandler(profileSvc, embeddingSvc),
		Match:   handlers.NewMatchHandler(matchSvc),
		Job:     handlers.NewJobHandler(seedSvc, jobSvc),
		Roadmap: handlers.NewRoadmapHandler(roadmapSvc),
		Resume:  handlers.NewResumeHandler(resumeSvc),
		WS:      handlers.NewWSHandler(matchSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
