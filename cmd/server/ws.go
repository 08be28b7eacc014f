package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 5 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	CheckOrigin:      func(r *http.Request) bool { return true },
}

// Streams shots over a websocket: every `{"row", "column"}` frame
// is answered with a Report, or with an error object. The connection
// is closed by the server once the fleet is sunk.
func (s *server) handleWs(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("failed to upgrade connection:", err)
		return
	}
	defer ws.Close()

	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("failed to read from ws conn:", err)
			}
			return
		}

		var shot position
		if err := json.Unmarshal(payload, &shot); err != nil || shot.Row == nil || shot.Column == nil {
			if err := ws.WriteJSON(map[string]any{"error": ErrBadFormat, "details": "expected {\"row\", \"column\"}"}); err != nil {
				return
			}
			continue
		}

		report, err := sess.Fire(shot.Position())
		if err != nil {
			code, kind := statusOf(err)
			if err := ws.WriteJSON(map[string]any{"error": kind, "code": code, "details": err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := ws.WriteJSON(report); err != nil {
			return
		}

		if report.Over {
			err := ws.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"),
				time.Now().Add(time.Second),
			)
			if err != nil {
				log.Println("failed to close ws conn:", err)
			}
			return
		}
	}
}
