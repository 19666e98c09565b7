package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Channel is the Postgres notification channel written to by the row-change
// triggers applied in the schema migrations.
const Channel = "wishlink_changes"

// Listener holds one dedicated connection on LISTEN and feeds the hub. It
// reconnects with a fixed delay when the connection drops.
type Listener struct {
	pool *pgxpool.Pool
	hub  *Hub
}

func NewListener(pool *pgxpool.Pool, hub *Hub) *Listener {
	return &Listener{pool: pool, hub: hub}
}

const reconnectDelay = 3 * time.Second

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("notification listener disconnected", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev Event
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			slog.Warn("ignoring malformed change notification", "payload", notification.Payload)
			continue
		}
		l.hub.Publish(ev)
	}
}
