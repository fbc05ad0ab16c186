package view

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier() (*Notifier, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(testTime)
	return NewNotifier(5*time.Second, clock), clock
}

func TestNotifier_PushAndActive(t *testing.T) {
	notifier, _ := newTestNotifier()

	notification := notifier.Push("Latitude must be between -90 and 90")

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notification.ID, active[0].ID)
	assert.Equal(t, "Latitude must be between -90 and 90", active[0].Message)
	assert.Equal(t, testTime.Add(5*time.Second), active[0].ExpiresAt)
}

func TestNotifier_StackingWithoutDeduplication(t *testing.T) {
	notifier, _ := newTestNotifier()

	// Одинаковые сообщения складываются в стопку, а не схлопываются
	notifier.Push("Failed to get prediction. Please check if the API is running.")
	notifier.Push("Failed to get prediction. Please check if the API is running.")

	assert.Len(t, notifier.Active(), 2)
}

func TestNotifier_AutoDismissAfterTTL(t *testing.T) {
	notifier, clock := newTestNotifier()

	notifier.Push("first")
	clock.Advance(3 * time.Second)
	notifier.Push("second")

	// Через 5 секунд после первого уведомления живо только второе
	clock.Advance(2 * time.Second)
	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Message)

	clock.Advance(3 * time.Second)
	assert.Empty(t, notifier.Active())
}

func TestNotifier_ClearIsIdempotent(t *testing.T) {
	notifier, _ := newTestNotifier()

	notifier.Push("error")
	notifier.Clear()
	assert.Empty(t, notifier.Active())

	// Повторная очистка эквивалентна однократной
	notifier.Clear()
	assert.Empty(t, notifier.Active())
}
