package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/syahmibakri/karya-admin/internal/config"
	"go.uber.org/zap"
)

// Event announces a moderation or payout decision to downstream
// consumers (storefront, notifications).
type Event struct {
	Entity     string    `json:"entity"`
	EntityID   int       `json:"entity_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type KafkaPublisher struct {
	conn *kafka.Conn
}

// NewKafkaPublisher returns nil when no broker is configured or the
// broker is unreachable; callers treat a nil publisher as "events
// disabled".
func NewKafkaPublisher(cfg *config.Config) *KafkaPublisher {
	if cfg.KafkaBroker == "" {
		return nil
	}
	conn, err := kafka.DialLeader(context.Background(), "tcp", cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaPartition)
	if err != nil {
		zap.L().Error("can't connect to kafka broker, events disabled", zap.Error(err))
		return nil
	}
	return &KafkaPublisher{conn: conn}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = p.conn.WriteMessages(kafka.Message{Value: payload})
	return err
}

func (p *KafkaPublisher) Close() error {
	return p.conn.Close()
}
