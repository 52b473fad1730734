package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danverh/careeratlas/internal/services"
	"github.com/danverh/careeratlas/internal/utils"
)

type RoadmapHandler struct {
	svc services.RoadmapService
}

func NewRoadmapHandler(svc services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{svc: svc}
}

type GenerateRoadmapRequest struct {
	CareerID    string `json:"career_id"`
	CareerTitle string `json:"career_title"`
}

func (h *RoadmapHandler) Generate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req GenerateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "RoadmapHandler.Generate", "invalid request body", err))
		return
	}

	path, err := h.svc.Generate(c.Request.Context(), userID, req.CareerID, req.CareerTitle)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, path)
}

func (h *RoadmapHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	careerID := c.Param("career_id")
	path, err := h.svc.Get(c.Request.Context(), userID, careerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, path)
}

func (h *RoadmapHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	paths, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paths": paths})
}

func (h *RoadmapHandler) CompleteStep(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	careerID := c.Param("career_id")
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "RoadmapHandler.CompleteStep", "step index must be an integer", err))
		return
	}

	path, serr := h.svc.CompleteStep(c.Request.Context(), userID, careerID, idx)
	if serr != nil {
		writeError(c, serr)
		return
	}

	c.JSON(http.StatusOK, path)
}
