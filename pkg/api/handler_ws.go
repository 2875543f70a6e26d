package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades GET /ws to a WebSocket and hands the connection to
// the ConnectionManager, which blocks until the socket closes.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "websocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// TODO: replace with an OriginPatterns allowlist from server config.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}
