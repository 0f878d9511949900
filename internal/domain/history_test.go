package domain

import (
	"fmt"
	"reflect"
	"testing"
)

func TestViewedHistoryPush(t *testing.T) {
	cases := []struct {
		name string
		h    ViewedHistory
		id   string
		want ViewedHistory
	}{
		{"empty", nil, "p1", ViewedHistory{"p1"}},
		{"new id goes first", ViewedHistory{"p1", "p2"}, "p3", ViewedHistory{"p3", "p1", "p2"}},
		{"repeat moves to front", ViewedHistory{"p1", "p2", "p3"}, "p3", ViewedHistory{"p3", "p1", "p2"}},
		{"blank ignored", ViewedHistory{"p1"}, "  ", ViewedHistory{"p1"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.h.Push(c.id); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Push(%q) = %v, want %v", c.id, got, c.want)
			}
		})
	}
}

func TestViewedHistoryPushEvictsOldest(t *testing.T) {
	var h ViewedHistory
	for i := 0; i < MaxViewedHistory+5; i++ {
		h = h.Push(fmt.Sprintf("p%d", i))
	}
	if len(h) != MaxViewedHistory {
		t.Fatalf("len = %d", len(h))
	}
	if h[0] != fmt.Sprintf("p%d", MaxViewedHistory+4) || h[len(h)-1] != "p5" {
		t.Fatalf("unexpected order: first %s last %s", h[0], h[len(h)-1])
	}
}

func TestViewedHistoryPushDoesNotMutate(t *testing.T) {
	h := ViewedHistory{"p1", "p2"}
	_ = h.Push("p2")
	if !reflect.DeepEqual(h, ViewedHistory{"p1", "p2"}) {
		t.Fatalf("receiver mutated: %v", h)
	}
}

func TestViewedHistoryEncodeDecode(t *testing.T) {
	h := NewViewedHistory([]string{"p3", "p1", "p3", "", "p2"})
	if h.Encode() != "p3,p1,p2" {
		t.Fatalf("Encode = %q", h.Encode())
	}
	if got := DecodeViewedHistory("p3,p1,p2"); !reflect.DeepEqual(got, h) {
		t.Fatalf("Decode = %v", got)
	}
	if got := DecodeViewedHistory(""); len(got) != 0 {
		t.Fatalf("Decode empty = %v", got)
	}
}
