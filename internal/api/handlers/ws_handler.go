package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/danverh/careeratlas/internal/services"
)

type WSHandler struct {
	matches  services.MatchService
	upgrader websocket.Upgrader
}

func NewWSHandler(matches services.MatchService) *WSHandler {
	return &WSHandler{
		matches: matches,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsProgressMsg struct {
	Type  string `json:"type"`
	Done  int    `json:"done,omitempty"`
	Total int    `json:"total,omitempty"`

	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`

	Matches any `json:"matches,omitempty"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

// RefreshWS runs a match refresh for the caller and streams per-job progress,
// closing with the final ranked set or an error message.
func (h *WSHandler) RefreshWS(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}

	progress := func(done, total int) {
		_ = wc.writeJSON(wsProgressMsg{Type: "progress", Done: done, Total: total})
	}

	matches, err := h.matches.RefreshWithProgress(c.Request.Context(), userID, progress)
	if err != nil {
		_ = wc.writeJSON(wsProgressMsg{Type: "error", Code: "REFRESH_FAILED", Message: safeMessage(err)})
		return
	}

	_ = wc.writeJSON(wsProgressMsg{Type: "complete", Matches: matches})
}
