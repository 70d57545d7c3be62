package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
)

type fakeRepo struct {
	notifications []*Notification
}

func (f *fakeRepo) Create(_ context.Context, n *Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]*Notification, error) {
	var out []*Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeRepo) UnreadCount(_ context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	for _, n := range f.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeRepo) DeleteOlderThan(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

type fakePublisher struct {
	pushed []uuid.UUID
	unread int
}

func (f *fakePublisher) NotifyNew(_ context.Context, userID uuid.UUID, _ *NotificationResponse, unreadCount int) error {
	f.pushed = append(f.pushed, userID)
	f.unread = unreadCount
	return nil
}

func TestNotifyPersistsAndPushes(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{}
	svc := NewService(repo, pub)
	userID := uuid.New()

	err := svc.Notify(context.Background(), userID, TypeBookingCreated, "New booking request", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.notifications) != 1 {
		t.Fatalf("expected one persisted notification, got %d", len(repo.notifications))
	}
	if len(pub.pushed) != 1 || pub.pushed[0] != userID {
		t.Fatal("realtime push not delivered to the target user")
	}
	if pub.unread != 1 {
		t.Fatalf("expected unread count 1 in the push, got %d", pub.unread)
	}
}

func TestBookingNotifierTypes(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)
	notifier := NewBookingNotifier(svc)
	customerID := uuid.New()
	bookingID := uuid.New()

	cases := []struct {
		status booking.Status
		want   Type
	}{
		{booking.StatusConfirmed, TypeBookingConfirmed},
		{booking.StatusRejected, TypeBookingRejected},
		{booking.StatusCompleted, TypeBookingCompleted},
	}

	for _, tc := range cases {
		if err := notifier.NotifyBookingStatusChanged(context.Background(), customerID, bookingID, tc.status); err != nil {
			t.Fatalf("notify %s: %v", tc.status, err)
		}
	}
	if len(repo.notifications) != len(cases) {
		t.Fatalf("expected %d notifications, got %d", len(cases), len(repo.notifications))
	}
	for i, tc := range cases {
		if repo.notifications[i].Type != tc.want {
			t.Errorf("case %d: expected type %s, got %s", i, tc.want, repo.notifications[i].Type)
		}
	}

	// pending is not a lifecycle change a customer hears about
	if err := notifier.NotifyBookingStatusChanged(context.Background(), customerID, bookingID, booking.StatusPending); err != nil {
		t.Fatalf("pending notify: %v", err)
	}
	if len(repo.notifications) != len(cases) {
		t.Fatal("pending status must not produce a notification")
	}

	data := repo.notifications[0].GetData()
	if data.BookingID == nil || *data.BookingID != bookingID {
		t.Fatal("booking id not linked on the notification")
	}
}

func TestHubSendToUserLocalDelivery(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Shutdown()

	userID := uuid.New()
	conn := &Connection{UserID: userID, Send: make(chan []byte, 1)}
	hub.Register(conn)

	// registration completes asynchronously in the hub loop
	deadline := time.After(time.Second)
	for !hub.IsOnline(userID) {
		select {
		case <-deadline:
			t.Fatal("registration never completed")
		case <-time.After(time.Millisecond):
		}
	}

	if err := hub.SendToUserJSON(userID, map[string]string{"type": "notification:new"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	select {
	case data := <-conn.Send:
		if len(data) == 0 {
			t.Fatal("empty payload delivered")
		}
	default:
		t.Fatal("payload not delivered to the local connection")
	}

	if !hub.IsOnline(userID) {
		t.Fatal("registered user should be online")
	}
	if hub.IsOnline(uuid.New()) {
		t.Fatal("stranger should be offline")
	}
}

func TestHubConcurrentSendAndUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Shutdown()

	userID := uuid.New()
	conns := make([]*Connection, 50)
	for i := range conns {
		conns[i] = &Connection{UserID: userID, Send: make(chan []byte, 1)}
		hub.Register(conns[i])
	}

	deadline := time.After(time.Second)
	for hub.ConnectionCount() != len(conns) {
		select {
		case <-deadline:
			t.Fatal("registrations never completed")
		case <-time.After(time.Millisecond):
		}
	}

	// Disconnects must not race a concurrent push: the hub closes Send
	// channels under the write lock while senders iterate the same map.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = hub.SendToUserJSON(userID, map[string]string{"type": "notification:new"})
		}
	}()
	for _, conn := range conns {
		hub.Unregister(conn)
	}
	<-done

	deadline = time.After(time.Second)
	for hub.IsOnline(userID) {
		select {
		case <-deadline:
			t.Fatal("unregistrations never completed")
		case <-time.After(time.Millisecond):
		}
	}
	if hub.ConnectionCount() != 0 {
		t.Fatalf("expected no connections left, got %d", hub.ConnectionCount())
	}
}
