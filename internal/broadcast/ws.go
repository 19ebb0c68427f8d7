package broadcast

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"safelink/backend/pkg/logger"
)

const (
	writeTimeout = 5 * time.Second
	pingInterval = 30 * time.Second
)

// ServeWS upgrades the request and streams frames to the client until either
// side closes. Client messages are ignored.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, role Role, lang, name string) error {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		return err
	}
	defer conn.CloseNow()

	sub := h.Subscribe(role, lang, name)
	defer sub.Close()

	logger.Info("broadcast client connected", "module", "broadcast", "action", "connect", "role", role, "lang", lang, "name", name)
	defer logger.Info("broadcast client disconnected", "module", "broadcast", "action", "disconnect", "role", role, "name", name)

	ctx := conn.CloseRead(r.Context())

	hello := Frame{Type: EventHello, Lang: lang, SentAt: time.Now().UTC()}
	if err := writeFrame(ctx, conn, hello); err != nil {
		return nil
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return nil
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Ping(pctx)
			cancel()
			if err != nil {
				return nil
			}
		case frame, ok := <-sub.C():
			if !ok {
				conn.Close(websocket.StatusGoingAway, "hub closed")
				return nil
			}
			if err := writeFrame(ctx, conn, frame); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Debug("broadcast write failed", "module", "broadcast", "action", "write", "error", err)
				}
				return nil
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, f Frame) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, f)
}
