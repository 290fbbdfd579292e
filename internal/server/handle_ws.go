package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

// handleWS pushes a fresh snapshot to the client whenever a session
// event fires, starting with one on connect. The read side is only
// watched for the client going away.
func handleWS(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		slug := slugFrom(r)

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx := conn.CloseRead(r.Context())

		ch := broker.Subscribe(slug)
		defer broker.Unsubscribe(slug, ch)

		send := func() error {
			data, err := json.Marshal(sess.Snapshot())
			if err != nil {
				return err
			}
			writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return conn.Write(writeCtx, websocket.MessageText, data)
		}

		if err := send(); err != nil {
			logger.Debug("websocket initial write failed", "error", err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				if err := send(); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
