package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danverh/careeratlas/internal/models"
	"github.com/danverh/careeratlas/internal/services"
	"github.com/danverh/careeratlas/internal/utils"
)

func newBlankProfile(userID string) *models.Profile {
	return &models.Profile{UserID: userID}
}

type ProfileHandler struct {
	svc        services.ProfileService
	embeddings services.EmbeddingService
}

func NewProfileHandler(svc services.ProfileService, embeddings services.EmbeddingService) *ProfileHandler {
	return &ProfileHandler{svc: svc, embeddings: embeddings}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

type UpdateProfileRequest struct {
	FullName    *string   `json:"full_name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	LinkedinURL *string   `json:"linkedin_url,omitempty"`
	ResumeText  *string   `json:"resume_text,omitempty"`
	Experience  *string   `json:"experience,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	Interests   *[]string `json:"interests,omitempty"`
	CareerGoals *[]string `json:"career_goals,omitempty"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	// Load existing (if not found => create new). Vectors are untouched:
	// profile field edits never clear or regenerate embeddings.
	existing, err := h.svc.GetMe(c.Request.Context(), userID)
	if err != nil {
		if utils.IsCode(err, utils.CodeNotFound) {
			existing = newBlankProfile(userID)
		} else {
			writeError(c, err)
			return
		}
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.LinkedinURL != nil {
		existing.LinkedinURL = *req.LinkedinURL
	}
	if req.ResumeText != nil {
		existing.ResumeText = *req.ResumeText
	}
	if req.Experience != nil {
		existing.Experience = *req.Experience
	}
	if req.Skills != nil {
		existing.Skills = *req.Skills
	}
	if req.Interests != nil {
		existing.Interests = *req.Interests
	}
	if req.CareerGoals != nil {
		existing.CareerGoals = *req.CareerGoals
	}

	existing.UpdatedAt = time.Now().UTC()

	if err := h.svc.Upsert(c.Request.Context(), existing); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, existing)
}

// GenerateEmbeddings runs the full three-facet embedding pass and upserts the
// profile in one operation.
func (h *ProfileHandler) GenerateEmbeddings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.EmbeddingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.GenerateEmbeddings", "invalid request body", err))
		return
	}

	if err := h.embeddings.Generate(c.Request.Context(), userID, req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
