package notify

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	channelName       = "table_changes"
	reconnectInterval = time.Second * 3
)

// Listener subscribes to the row-change channel the migrations install
// triggers for, and delivers the name of each changed table. Delivery
// is best effort: a slow consumer drops events, the consumer re-reads
// everything on each event anyway.
type Listener struct {
	pool   *pgxpool.Pool
	events chan string
}

func New(pool *pgxpool.Pool) *Listener {
	return &Listener{
		pool:   pool,
		events: make(chan string, 16),
	}
}

func (l *Listener) Events() <-chan string {
	return l.events
}

func (l *Listener) Start(ctx context.Context) {
	zap.L().Info("change notification listener started")
	go l.run(ctx)
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.events)

	for {
		if ctx.Err() != nil {
			return
		}
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			zap.L().Error("notification listener disconnected, reconnecting", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectInterval):
			}
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channelName); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		select {
		case l.events <- notification.Payload:
		default:
			zap.L().Debug("dropping change notification, consumer busy",
				zap.String("table", notification.Payload))
		}
	}
}
