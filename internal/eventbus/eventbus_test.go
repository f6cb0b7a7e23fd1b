package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"coursecat/internal/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *recorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestPublishDeliversToSubscribersOfThatType(t *testing.T) {
	b := New(zerolog.Nop())
	defer b.Close()

	created := &recorder{}
	loaded := &recorder{}
	b.Subscribe(EventCourseCreated, created.handle)
	b.Subscribe(EventCatalogLoaded, loaded.handle)

	b.Publish(CourseCreatedEvent{Course: domain.Course{ID: 7, Title: "Go"}})

	require.Eventually(t, func() bool { return created.count() == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, 0, loaded.count())

	created.mu.Lock()
	ev, ok := created.events[0].(CourseCreatedEvent)
	created.mu.Unlock()
	require.True(t, ok)
	require.Equal(t, int64(7), ev.Course.ID)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(zerolog.Nop())
	defer b.Close()

	first := &recorder{}
	second := &recorder{}
	unsubscribe := b.Subscribe(EventCatalogLoaded, first.handle)
	b.Subscribe(EventCatalogLoaded, second.handle)

	unsubscribe()
	b.Publish(CatalogLoadedEvent{Query: "go", Count: 3})

	require.Eventually(t, func() bool { return second.count() == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, 0, first.count())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New(zerolog.Nop())
	defer b.Close()

	got := &recorder{}
	b.Subscribe(EventCatalogFailed, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventCatalogFailed, got.handle)

	b.Publish(CatalogFailedEvent{Query: "x"})
	b.Publish(CatalogFailedEvent{Query: "y"})

	require.Eventually(t, func() bool { return got.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New(zerolog.Nop())
	b.Close()
	require.NotPanics(t, b.Close)
}
