package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Users type local wall-clock times; the store holds UTC. The region sits
// at a fixed UTC-5 with no daylight saving.
func TestCreateReminderConvertsLocalTimeToUTC(t *testing.T) {
	reminders := newFakeReminderRepo()
	svc := NewReminderService(reminders)

	rem, err := svc.Create(context.Background(), "2025-06-02T18:00", "Ordeño", "", "Rutina", uuid.New(), nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	want := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
	if !rem.DueAt.Equal(want) {
		t.Fatalf("Expected due at %v, got %v", want, rem.DueAt)
	}
	if rem.DueAt.Location() != time.UTC {
		t.Fatalf("Expected UTC storage, got %v", rem.DueAt.Location())
	}
	if len(reminders.created) != 1 {
		t.Fatalf("Expected one persisted reminder, got %d", len(reminders.created))
	}
	if reminders.created[0].Sent {
		t.Fatal("A new reminder must start unsent")
	}
}

func TestCreateReminderRejectsBadTimestamp(t *testing.T) {
	svc := NewReminderService(newFakeReminderRepo())
	if _, err := svc.Create(context.Background(), "02/06/2025 18:00", "Ordeño", "", "", uuid.New(), nil); err == nil {
		t.Fatal("Expected error for malformed timestamp")
	}
}
