package notify

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type captured struct {
	severity Severity
	message  string
}

type captureNotifier struct{ got []captured }

func (c *captureNotifier) Notify(severity Severity, message string) {
	c.got = append(c.got, captured{severity, message})
}

func TestMultiFansOut(t *testing.T) {
	a := &captureNotifier{}
	b := &captureNotifier{}
	Multi{a, b}.Notify(SeveritySuccess, "Book created")

	for _, sink := range []*captureNotifier{a, b} {
		if len(sink.got) != 1 || sink.got[0].message != "Book created" {
			t.Fatalf("unexpected fan-out: %+v", sink.got)
		}
	}
}

func TestRedisNotifierAppendsToStream(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	n := NewRedisNotifierWithClient(client, "shelfdesk:notifications", nil)

	n.Notify(SeverityError, "Server error")
	n.Notify(SeveritySuccess, "Books loaded")

	entries, err := client.XRange(t.Context(), "shelfdesk:notifications", "-", "+").Result()
	if err != nil {
		t.Fatalf("xrange: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 stream entries, got %d", len(entries))
	}
	first := entries[0].Values
	if first["severity"] != string(SeverityError) || first["message"] != "Server error" {
		t.Fatalf("unexpected entry: %+v", first)
	}
	if first["id"] == "" || first["at"] == "" {
		t.Fatalf("expected id and timestamp fields: %+v", first)
	}
}

func TestRedisNotifierDropsOnFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	n := NewRedisNotifierWithClient(client, "shelfdesk:notifications", nil)
	mr.Close()

	// Fire-and-forget: a dead sink must not panic or block the caller.
	n.Notify(SeverityInfo, "still fine")
}
