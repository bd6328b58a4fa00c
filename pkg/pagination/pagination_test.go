package pagination

import (
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 123, time.FixedZone("WIB", 7*3600))
	encoded := EncodeCursor(Cursor{CreatedAt: at, ID: "abc123xyz"})

	decoded, err := ParseCursor(encoded)
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if !decoded.CreatedAt.Equal(at) || decoded.ID != "abc123xyz" {
		t.Fatalf("unexpected cursor %+v", decoded)
	}
	if decoded.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected utc cursor time")
	}
}

func TestParseCursorRejectsGarbage(t *testing.T) {
	if c, err := ParseCursor(""); err != nil || c != nil {
		t.Fatalf("empty cursor should be nil, got %v %v", c, err)
	}
	if _, err := ParseCursor("!!!"); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := ParseCursor(EncodeCursor(Cursor{CreatedAt: time.Now()})); err == nil {
		t.Fatalf("expected missing id to fail")
	}
}

func TestNormalizeLimit(t *testing.T) {
	if NormalizeLimit(0) != DefaultLimit || NormalizeLimit(500) != MaxLimit || NormalizeLimit(7) != 7 {
		t.Fatalf("unexpected limit normalization")
	}
	if LimitWithBuffer(7) != 8 {
		t.Fatalf("expected buffer of one")
	}
}
