package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHerdAlertEmailPregnancy(t *testing.T) {
	loc := bogota(t)
	ev := DueEvent{
		Kind:          AlertKindPregnancy,
		SubjectID:     uuid.New(),
		RecipientName: "Carlos",
		AnimalCode:    "V-001",
		PaddockName:   "Potrero Norte",
		FarmName:      "La Esperanza",
		DueDate:       time.Date(2025, 6, 2, 0, 0, 0, 0, loc),
		DaysRemaining: 3,
	}

	subject, plainText, htmlBody := renderHerdAlertEmail(ev)

	require.Contains(t, subject, "V-001")
	assert.Contains(t, plainText, "V-001")
	assert.Contains(t, htmlBody, "Potrero Norte")
	assert.Contains(t, htmlBody, "La Esperanza")
	assert.Contains(t, htmlBody, "lunes 02 de junio de 2025")
}

func TestRenderHerdAlertEmailDeworming(t *testing.T) {
	loc := bogota(t)
	ev := DueEvent{
		Kind:          AlertKindDeworming,
		RecipientName: "Carlos",
		AnimalCode:    "V-010",
		PaddockName:   "Potrero Sur",
		FarmName:      "La Esperanza",
		DueDate:       time.Date(2025, 6, 5, 0, 0, 0, 0, loc),
		DaysRemaining: 0,
	}

	subject, plainText, htmlBody := renderHerdAlertEmail(ev)

	require.Contains(t, subject, "esparasitación")
	assert.Contains(t, plainText, "Potrero Sur")
	assert.Contains(t, htmlBody, "jueves 05 de junio de 2025")
}

func TestRenderReminderEmail(t *testing.T) {
	loc := bogota(t)
	due := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC) // 18:00 local
	ev := DueEvent{
		Kind:          AlertKindReminder,
		RecipientName: "Carlos",
		Title:         "Vacunar lote 3",
		Body:          "Aftosa, segunda dosis",
		Category:      "Sanidad",
		DueDate:       due,
	}

	subject, plainText := renderReminderEmail(ev, loc)

	require.Contains(t, subject, "Vacunar lote 3")
	assert.Contains(t, plainText, "18:00")
	assert.Contains(t, plainText, "Aftosa, segunda dosis")
}

func TestFormatSpanishDate(t *testing.T) {
	loc := bogota(t)
	assert.Equal(t, "lunes 02 de junio de 2025", formatSpanishDate(time.Date(2025, 6, 2, 0, 0, 0, 0, loc)))
	assert.Equal(t, "miércoles 31 de diciembre de 2025", formatSpanishDate(time.Date(2025, 12, 31, 0, 0, 0, 0, loc)))
}
