package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danverh/careeratlas/internal/services"
	"github.com/danverh/careeratlas/internal/utils"
)

const maxResumeFileBytes = 10 << 20 // 10 MiB

type ResumeHandler struct {
	svc services.ResumeFileService
}

func NewResumeHandler(svc services.ResumeFileService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Upload stores the raw resume file. Parsing stays with the client; only the
// object and its metadata are kept here.
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "multipart field 'file' is required", err))
		return
	}
	if fh.Size > maxResumeFileBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Upload", "file too large", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ResumeHandler.Upload", "failed to read upload", err))
		return
	}
	defer f.Close()

	row, serr := h.svc.Upload(c.Request.Context(), userID, fh.Filename, int(fh.Size), fh.Header.Get("Content-Type"), f)
	if serr != nil {
		writeError(c, serr)
		return
	}

	c.JSON(http.StatusOK, row)
}

// DownloadURL returns a short-lived signed link to one of the caller's
// stored resume objects.
func (h *ResumeHandler) DownloadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	url, err := h.svc.DownloadURL(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *ResumeHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	files, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}
