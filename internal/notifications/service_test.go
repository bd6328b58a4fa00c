package notifications

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rasanusantara/storefront/internal/session"
	"github.com/rasanusantara/storefront/internal/session/sessiontest"
	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
	"github.com/rasanusantara/storefront/pkg/logger"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newServiceWithSeed(t *testing.T, seed bool) Service {
	t.Helper()
	store, err := session.NewStore(sessiontest.NewMemoryKV(), time.Hour, logger.Nop())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	n := 0
	svc, err := NewService(NewRepository(store), Options{
		SeedDemo: seed,
		Now:      func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("n-%d", n)
		},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil, Options{}); err == nil {
		t.Fatal("expected error without repository")
	}
}

func TestInboxAddPrependsAndCountsUnread(t *testing.T) {
	in := NewInbox()
	in.Add(Notification{ID: "a", Title: "first"})
	in.Add(Notification{ID: "b", Title: "second", Read: true})

	if in.Items[0].ID != "b" {
		t.Fatalf("expected newest first, got %s", in.Items[0].ID)
	}
	if in.Items[0].Read {
		t.Fatalf("added notifications start unread")
	}
	if in.UnreadCount != 2 {
		t.Fatalf("expected 2 unread, got %d", in.UnreadCount)
	}
}

func TestInboxMarkReadTwiceDecrementsOnce(t *testing.T) {
	in := NewInbox()
	in.Add(Notification{ID: "a"})
	in.Add(Notification{ID: "b"})

	if !in.MarkRead("a") || !in.MarkRead("a") {
		t.Fatalf("expected known id to be found")
	}
	if in.UnreadCount != 1 {
		t.Fatalf("expected unread count 1, got %d", in.UnreadCount)
	}
	if in.MarkRead("zzz") {
		t.Fatalf("unknown id should not be found")
	}
}

func TestListSeedsDemoOnce(t *testing.T) {
	svc := newServiceWithSeed(t, true)
	ctx := context.Background()

	inbox, err := svc.List(ctx, "sid")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(inbox.Items) != 2 || inbox.UnreadCount != 2 {
		t.Fatalf("expected 2 seeded notifications, got %+v", inbox)
	}
	if inbox.Items[0].Type != enums.NotificationTypeSystem || inbox.Items[1].Title != demoPromoTitle {
		t.Fatalf("unexpected seed order %+v", inbox.Items)
	}

	if err := svc.Clear(ctx, "sid"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	inbox, err = svc.List(ctx, "sid")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(inbox.Items) != 0 {
		t.Fatalf("cleared inbox must not be reseeded, got %d items", len(inbox.Items))
	}
}

func TestSeedSkipsNonEmptyInbox(t *testing.T) {
	svc := newServiceWithSeed(t, true)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sid", AddInput{Type: enums.NotificationTypeOrder, Title: "Pesanan berhasil"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	inbox, err := svc.List(ctx, "sid")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(inbox.Items) != 1 {
		t.Fatalf("expected only the order notification, got %d", len(inbox.Items))
	}
}

func TestServiceMarkReadFlow(t *testing.T) {
	svc := newServiceWithSeed(t, false)
	ctx := context.Background()

	n, err := svc.Add(ctx, "sid", AddInput{Type: enums.NotificationTypeOrder, Title: "Pesanan berhasil", Message: "ok"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if n.ID != "n-1" || !n.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected notification %+v", n)
	}
	if _, err := svc.Add(ctx, "sid", AddInput{Type: enums.NotificationTypePromo, Title: "Promo"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.MarkRead(ctx, "sid", "n-1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := svc.MarkRead(ctx, "sid", "n-1"); err != nil {
		t.Fatalf("mark read again: %v", err)
	}
	inbox, _ := svc.List(ctx, "sid")
	if inbox.UnreadCount != 1 {
		t.Fatalf("expected unread 1, got %d", inbox.UnreadCount)
	}

	if err := svc.MarkRead(ctx, "sid", "missing"); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	changed, err := svc.MarkAllRead(ctx, "sid")
	if err != nil || changed != 1 {
		t.Fatalf("expected 1 changed, got %d err=%v", changed, err)
	}
	inbox, _ = svc.List(ctx, "sid")
	if inbox.UnreadCount != 0 {
		t.Fatalf("expected unread 0, got %d", inbox.UnreadCount)
	}
}

func TestServiceAddValidates(t *testing.T) {
	svc := newServiceWithSeed(t, false)
	if _, err := svc.Add(context.Background(), "sid", AddInput{Type: "weird", Title: "x"}); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Add(context.Background(), "sid", AddInput{Type: enums.NotificationTypeOrder}); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
}
