package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/danverh/careeratlas/internal/api/handlers"
	"github.com/danverh/careeratlas/internal/api/middleware"
)

type Deps struct {
	Profile *handlers.ProfileHandler
	Match   *handlers.MatchHandler
	Job     *handlers.JobHandler
	Roadmap *handlers.RoadmapHandler
	Resume  *handlers.ResumeHandler
	WS      *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile/update", d.Profile.Update)
	auth.POST("/embeddings/generate", d.Profile.GenerateEmbeddings)

	auth.POST("/matches/refresh", d.Match.Refresh)
	auth.GET("/matches", d.Match.Stored)

	auth.GET("/jobs", d.Job.List)
	auth.POST("/jobs/seed", middleware.RequireAdmin(), d.Job.Seed)

	auth.POST("/roadmap/generate", d.Roadmap.Generate)
	auth.GET("/roadmap", d.Roadmap.ListMine)
	auth.GET("/roadmap/:career_id", d.Roadmap.Get)
	auth.POST("/roadmap/:career_id/steps/:index/complete", d.Roadmap.CompleteStep)

	auth.POST("/resume/upload", d.Resume.Upload)
	auth.GET("/resume", d.Resume.ListMine)
	auth.GET("/resume/:id/url", d.Resume.DownloadURL)

	// WebSocket
	auth.GET("/ws/matches/refresh", d.WS.RefreshWS)
}
