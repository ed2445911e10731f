package model

import (
	"testing"
	"time"
)

func entry(daysAgo int, typ string) PerformanceEntry {
	return PerformanceEntry{
		Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		Type: typ,
	}
}

func TestRecentHistoryOrderAndLimit(t *testing.T) {
	p := PlayerModel{
		PerformanceHistory: []PerformanceEntry{
			entry(3, "training"),
			entry(0, "match"),
			entry(7, "training"),
			entry(1, "match"),
		},
	}

	got := p.RecentHistory(2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if !got[0].Date.After(got[1].Date) {
		t.Fatal("entries must be sorted by date descending")
	}
	if got[0].Type != "match" {
		t.Fatalf("most recent entry should be the match, got %s", got[0].Type)
	}

	// Reading must not disturb the stored slice.
	if p.PerformanceHistory[0].Type != "training" {
		t.Fatal("stored history reordered by read")
	}
}

func TestRecentHistoryZeroLimitReturnsAll(t *testing.T) {
	p := PlayerModel{PerformanceHistory: []PerformanceEntry{entry(1, "match"), entry(2, "training")}}
	if got := p.RecentHistory(0); len(got) != 2 {
		t.Fatalf("limit 0 should return everything, got %d", len(got))
	}
}

func TestEnsureDefaults(t *testing.T) {
	p := (&PlayerModel{}).EnsureDefaults()
	if p.Attributes == nil || p.Stats == nil || p.PerformanceHistory == nil {
		t.Fatal("defaults must replace nil sub-objects")
	}
}
