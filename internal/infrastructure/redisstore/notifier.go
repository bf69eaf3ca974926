package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Rollstock-api/internal/application/auth"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

var _ auth.SessionNotifier = (*Notifier)(nil)

const sessionChannelPrefix = "rollstock:session-events:"

// Notifier difunde eventos de sesión por Redis Pub/Sub, así todas las instancias los ven.
type Notifier struct {
	rdb redis.UniversalClient
	log *logger.Logger
}

// NewNotifier construye el notificador.
func NewNotifier(rdb redis.UniversalClient, log *logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{rdb: rdb, log: log}
}

func (n *Notifier) Publish(ctx context.Context, accountID string, ev auth.SessionEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := n.rdb.Publish(ctx, sessionChannelPrefix+accountID, payload).Err(); err != nil {
		return fmt.Errorf("publish session event: %w", err)
	}
	return nil
}

func (n *Notifier) Subscribe(ctx context.Context, accountID string) (<-chan auth.SessionEvent, error) {
	pubsub := n.rdb.Subscribe(ctx, sessionChannelPrefix+accountID)
	// Receive confirma la suscripción antes de devolver el canal.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe session events: %w", err)
	}

	out := make(chan auth.SessionEvent, 8)
	go func() {
		defer close(out)
		defer pubsub.Close() //nolint:errcheck
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev auth.SessionEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					n.log.Warn().Err(err).Msg("evento de sesión ilegible")
					continue
				}
				select {
				case out <- ev:
				default:
				}
			}
		}
	}()
	return out, nil
}
