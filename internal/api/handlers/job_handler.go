package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danverh/careeratlas/internal/services"
)

type JobHandler struct {
	svc  services.SeedService
	jobs services.JobLister
}

func NewJobHandler(svc services.SeedService, jobs services.JobLister) *JobHandler {
	return &JobHandler{svc: svc, jobs: jobs}
}

// Seed bootstraps the job catalog. Admin-only; idempotent.
func (h *JobHandler) Seed(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	res, err := h.svc.SeedJobs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *JobHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
