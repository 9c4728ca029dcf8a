package api

import (
	"net/http"

	"roofsite/internal/websocket"
)

// @Summary      Live lead feed
// @Description  Websocket stream of inspection.created events for signed-in admins.
// @Tags         admin
// @Success      101
// @Failure      401  {object}  errorResponse
// @Router       /admin-leads [get]
func (s *Server) AdminLeadsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	if claims == nil || s.hub == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	logger := s.log(r)

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(s.hub, conn, claims.Username)
	if !s.hub.Join(client) {
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}
