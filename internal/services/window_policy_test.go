package services

import (
	"testing"
	"time"
)

func bogota(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("Failed to load timezone: %v", err)
	}
	return loc
}

func TestPregnancyDue(t *testing.T) {
	loc := bogota(t)
	p := NewWindowPolicy(loc)

	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, loc)
	due := p.PregnancyDue(anchor)

	if got := due.Sub(anchor).Hours() / 24; got != 280 {
		t.Fatalf("Expected due 280 days after anchor, got %.0f", got)
	}
}

func TestDewormingDueClampsToMonthEnd(t *testing.T) {
	loc := bogota(t)
	p := NewWindowPolicy(loc)

	cases := []struct {
		anchor string
		want   string
	}{
		{"2025-01-31", "2025-04-30"}, // April has 30 days
		{"2025-11-30", "2026-02-28"}, // February, non-leap
		{"2023-11-30", "2024-02-29"}, // February, leap year
		{"2025-06-15", "2025-09-15"}, // plain case, no clamping
	}
	for _, c := range cases {
		anchor, _ := time.ParseInLocation("2006-01-02", c.anchor, loc)
		due := p.DewormingDue(anchor)
		if got := due.Format("2006-01-02"); got != c.want {
			t.Errorf("DewormingDue(%s): expected %s, got %s", c.anchor, c.want, got)
		}
	}
}

func TestDaysUntilIsCalendarBased(t *testing.T) {
	loc := bogota(t)
	p := NewWindowPolicy(loc)

	// 23:50 local vs 00:10 local the next day: 10 wall-clock minutes apart
	// but one whole calendar day.
	now := time.Date(2025, 6, 1, 23, 50, 0, 0, loc)
	due := time.Date(2025, 6, 2, 0, 10, 0, 0, loc)
	if got := p.DaysUntil(due, now); got != 1 {
		t.Fatalf("Expected 1 calendar day, got %d", got)
	}

	// A due instant expressed in UTC must land on the same local day.
	dueUTC := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC) // 22:00 Jun 1 local
	if got := p.DaysUntil(dueUTC, now); got != 0 {
		t.Fatalf("Expected 0 days for same local day, got %d", got)
	}
}

func TestInAlertWindow(t *testing.T) {
	loc := bogota(t)
	p := NewWindowPolicy(loc)

	for days, want := range map[int]bool{0: true, 1: true, 3: true, 4: false, 10: false, -1: false} {
		if got := p.InAlertWindow(days); got != want {
			t.Errorf("InAlertWindow(%d): expected %v, got %v", days, want, got)
		}
	}

	p.IncludeOverdue = true
	if !p.InAlertWindow(-1) {
		t.Error("Expected overdue day to alert with IncludeOverdue set")
	}
	if p.InAlertWindow(4) {
		t.Error("IncludeOverdue must not widen the forward bound")
	}
}

func TestReminderMatches(t *testing.T) {
	loc := bogota(t)
	p := NewWindowPolicy(loc)
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)

	cases := []struct {
		offset time.Duration
		want   bool
	}{
		{58 * time.Minute, true},  // lower bound, inclusive
		{60 * time.Minute, true},  // exact horizon
		{62 * time.Minute, true},  // upper bound, inclusive
		{57 * time.Minute, false}, // just under
		{65 * time.Minute, false}, // just over
		{0, false},                // due right now is not "upcoming"
	}
	for _, c := range cases {
		if got := p.ReminderMatches(now.Add(c.offset), now); got != c.want {
			t.Errorf("ReminderMatches(now+%v): expected %v, got %v", c.offset, c.want, got)
		}
	}
}
