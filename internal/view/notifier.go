package view

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Notification - временное уведомление об ошибке.
// Уведомления складываются в стопку и не дедуплицируются.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier хранит активные уведомления и автоматически скрывает их
// по истечении TTL. Истекшие записи отсекаются при чтении.
type Notifier struct {
	clock clockwork.Clock
	ttl   time.Duration

	mu     sync.Mutex
	active []Notification
}

// NewNotifier создает центр уведомлений с заданным временем жизни
func NewNotifier(ttl time.Duration, clock clockwork.Clock) *Notifier {
	return &Notifier{
		clock: clock,
		ttl:   ttl,
	}
}

// Push добавляет новое уведомление поверх существующих
func (n *Notifier) Push(message string) Notification {
	now := n.clock.Now()
	notification := Notification{
		ID:        uuid.New(),
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = append(n.active, notification)
	return notification
}

// Active возвращает еще не истекшие уведомления
func (n *Notifier) Active() []Notification {
	now := n.clock.Now()

	n.mu.Lock()
	defer n.mu.Unlock()

	remaining := n.active[:0]
	for _, notification := range n.active {
		if notification.ExpiresAt.After(now) {
			remaining = append(remaining, notification)
		}
	}
	n.active = remaining

	result := make([]Notification, len(n.active))
	copy(result, n.active)
	return result
}

// Clear скрывает все уведомления. Повторный вызов ничего не меняет.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = nil
}
