package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/danverh/careeratlas/internal/matching"
	"github.com/danverh/careeratlas/internal/services"
	"github.com/danverh/careeratlas/internal/utils"
)

type MatchHandler struct {
	svc services.MatchService
}

func NewMatchHandler(svc services.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

// Refresh recomputes the full match set for the caller and returns the top
// ranked slice.
func (h *MatchHandler) Refresh(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	matches, err := h.svc.Refresh(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// Stored returns the persisted ranked match set, optionally narrowed by
// query-string filters. No recomputation.
func (h *MatchHandler) Stored(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	matches, err := h.svc.Stored(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	filters, ferr := filtersFromQuery(c)
	if ferr != nil {
		writeError(c, ferr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matching.ApplyFilters(matches, filters)})
}

// filtersFromQuery parses ?minScore=50&jobType=Full-time,Contract&... into
// Filters. Absent params mean no restriction.
func filtersFromQuery(c *gin.Context) (matching.Filters, error) {
	var f matching.Filters

	if raw := c.Query("minScore"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, utils.E(utils.CodeInvalidArgument, "MatchHandler.Stored", "minScore must be a number", err)
		}
		f.MinScore = v
	}
	f.JobTypes = splitCSV(c.Query("jobType"))
	f.Locations = splitCSV(c.Query("location"))
	f.ExperienceLevels = splitCSV(c.Query("experienceLevel"))
	return f, nil
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
