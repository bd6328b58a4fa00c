package notifications

import (
	"time"

	"github.com/rasanusantara/storefront/pkg/enums"
)

const (
	demoPromoTitle    = "Promo Spesial Hari Ini!"
	demoPromoMessage  = "Dapatkan diskon 20% untuk semua produk kategori Makanan Tradisional. Berlaku hingga hari ini pukul 23:59."
	demoSystemTitle   = "Selamat Datang di Rasa Nusantara"
	demoSystemMessage = "Terima kasih telah mengunjungi toko kami. Jelajahi berbagai kuliner tradisional Indonesia dengan kualitas terbaik."
)

// Notification is one inbox entry.
type Notification struct {
	ID        string                 `json:"id"`
	Type      enums.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"createdAt"`
}

// Inbox is the notification state of a session, newest first.
type Inbox struct {
	Items       []Notification `json:"items"`
	UnreadCount int            `json:"unreadCount"`
	Seeded      bool           `json:"seeded"`
}

func NewInbox() *Inbox {
	return &Inbox{Items: []Notification{}}
}

// Add prepends an unread notification.
func (in *Inbox) Add(n Notification) Notification {
	n.Read = false
	in.Items = append([]Notification{n}, in.Items...)
	in.UnreadCount++
	return n
}

// MarkRead flags id as read. The unread count only moves for entries that
// were unread. It reports whether id exists.
func (in *Inbox) MarkRead(id string) bool {
	for i := range in.Items {
		if in.Items[i].ID != id {
			continue
		}
		if !in.Items[i].Read {
			in.Items[i].Read = true
			in.UnreadCount--
		}
		return true
	}
	return false
}

// MarkAllRead flags every entry and returns how many changed.
func (in *Inbox) MarkAllRead() int {
	changed := 0
	for i := range in.Items {
		if !in.Items[i].Read {
			in.Items[i].Read = true
			changed++
		}
	}
	in.UnreadCount = 0
	return changed
}

func (in *Inbox) Clear() {
	in.Items = []Notification{}
	in.UnreadCount = 0
}

// SeedDemo adds the promo and welcome entries to an empty inbox.
func (in *Inbox) SeedDemo(newID func() string, now time.Time) bool {
	in.Seeded = true
	if len(in.Items) > 0 {
		return false
	}
	in.Add(Notification{ID: newID(), Type: enums.NotificationTypePromo, Title: demoPromoTitle, Message: demoPromoMessage, CreatedAt: now})
	in.Add(Notification{ID: newID(), Type: enums.NotificationTypeSystem, Title: demoSystemTitle, Message: demoSystemMessage, CreatedAt: now})
	return true
}
