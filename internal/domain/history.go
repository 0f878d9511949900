package domain

import "strings"

// MaxViewedHistory bounds the viewed-product history.
const MaxViewedHistory = 20

// ViewedHistory lists viewed product ids, most recent first, without repeats.
type ViewedHistory []string

// NewViewedHistory normalizes ids: blanks dropped, duplicates removed keeping
// the first (most recent) occurrence, capped at MaxViewedHistory.
func NewViewedHistory(ids []string) ViewedHistory {
	h := make(ViewedHistory, 0, min(len(ids), MaxViewedHistory))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		h = append(h, id)
		if len(h) == MaxViewedHistory {
			break
		}
	}
	return h
}

// Push records a view: id moves to the front and the oldest entry is evicted
// on overflow. The receiver is not modified.
func (h ViewedHistory) Push(id string) ViewedHistory {
	id = strings.TrimSpace(id)
	if id == "" {
		return h
	}
	out := make(ViewedHistory, 0, MaxViewedHistory)
	out = append(out, id)
	for _, v := range h {
		if v == id {
			continue
		}
		if len(out) == MaxViewedHistory {
			break
		}
		out = append(out, v)
	}
	return out
}

// Encode renders the history as a comma separated list.
func (h ViewedHistory) Encode() string { return strings.Join(h, ",") }

// DecodeViewedHistory parses the output of Encode.
func DecodeViewedHistory(s string) ViewedHistory {
	if s == "" {
		return ViewedHistory{}
	}
	return NewViewedHistory(strings.Split(s, ","))
}
