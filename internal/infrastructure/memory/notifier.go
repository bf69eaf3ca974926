package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Rollstock-api/internal/application/auth"
)

var _ auth.SessionNotifier = (*Notifier)(nil)

// Notifier pub-sub de eventos de sesión dentro del proceso.
// Un suscriptor lento pierde eventos en lugar de bloquear al publicador.
type Notifier struct {
	mu   sync.Mutex
	subs map[string]map[chan auth.SessionEvent]struct{}
}

// NewNotifier crea el notificador.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]map[chan auth.SessionEvent]struct{})}
}

func (n *Notifier) Publish(_ context.Context, accountID string, ev auth.SessionEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs[accountID] {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

func (n *Notifier) Subscribe(ctx context.Context, accountID string) (<-chan auth.SessionEvent, error) {
	ch := make(chan auth.SessionEvent, 8)
	n.mu.Lock()
	if n.subs[accountID] == nil {
		n.subs[accountID] = make(map[chan auth.SessionEvent]struct{})
	}
	n.subs[accountID][ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs[accountID], ch)
		if len(n.subs[accountID]) == 0 {
			delete(n.subs, accountID)
		}
		n.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}
