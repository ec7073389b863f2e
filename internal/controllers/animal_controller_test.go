package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func TestCreateAnimalParsesAnchorsAsRegionMidnight(t *testing.T) {
	repo := &stubAnimalRepo{}
	c := NewAnimalController(repo)

	body := `{"code":"V-001","age_years":4,"pregnancy_date":"2025-01-01","deworming_date":"2025-03-15"}`
	r := httptest.NewRequest(http.MethodPost, "/api/vacas/x", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"paddockID": uuid.NewString()})
	w := httptest.NewRecorder()

	c.CreateAnimalHandler(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.created) != 1 {
		t.Fatalf("Expected 1 animal created, got %d", len(repo.created))
	}
	a := repo.created[0]
	wantPreg := time.Date(2025, 1, 1, 0, 0, 0, 0, regionZone)
	if a.PregnancyDate == nil || !a.PregnancyDate.Equal(wantPreg) {
		t.Errorf("Expected pregnancy anchor %v, got %v", wantPreg, a.PregnancyDate)
	}
	wantDeworm := time.Date(2025, 3, 15, 0, 0, 0, 0, regionZone)
	if a.DewormingDate == nil || !a.DewormingDate.Equal(wantDeworm) {
		t.Errorf("Expected deworming anchor %v, got %v", wantDeworm, a.DewormingDate)
	}
}

// A "2025-01-01" anchor must land on January 1 in the region, where the
// alert window counts its days. Midnight UTC is still December 31 there
// and would shift every due date one day early.
func TestSetPregnancyDateStoresRegionMidnight(t *testing.T) {
	repo := &stubAnimalRepo{}
	c := NewAnimalController(repo)

	id := uuid.New()
	r := httptest.NewRequest(http.MethodPatch, "/api/vacas/x/embarazo", strings.NewReader(`{"date":"2025-01-01"}`))
	r = mux.SetURLVars(r, map[string]string{"id": id.String()})
	w := httptest.NewRecorder()

	c.SetPregnancyDateHandler(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.setPregnancyID != id {
		t.Fatalf("Expected update for %s, got %s", id, repo.setPregnancyID)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, regionZone)
	if !repo.setPregnancyDate.Equal(want) {
		t.Errorf("Expected region midnight %v, got %v", want, repo.setPregnancyDate)
	}
	if got := repo.setPregnancyDate.In(regionZone); got.Day() != 1 || got.Month() != time.January {
		t.Errorf("Expected the anchor to stay on January 1 in the region, got %v", got)
	}
}

func TestSetDewormingDateStoresRegionMidnight(t *testing.T) {
	repo := &stubAnimalRepo{}
	c := NewAnimalController(repo)

	id := uuid.New()
	r := httptest.NewRequest(http.MethodPatch, "/api/vacas/x/desparasitacion", strings.NewReader(`{"date":"2025-06-30"}`))
	r = mux.SetURLVars(r, map[string]string{"id": id.String()})
	w := httptest.NewRecorder()

	c.SetDewormingDateHandler(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	want := time.Date(2025, 6, 30, 0, 0, 0, 0, regionZone)
	if !repo.setDewormingDate.Equal(want) {
		t.Errorf("Expected region midnight %v, got %v", want, repo.setDewormingDate)
	}
}
