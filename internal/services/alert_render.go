package services

import (
	"fmt"
	"time"
)

type alertColors struct {
	primary   string
	secondary string
	accent    string
}

var (
	pregnancyColors = alertColors{primary: "#E91E63", secondary: "#FCE4EC", accent: "#AD1457"}
	dewormingColors = alertColors{primary: "#FF9800", secondary: "#FFF3E0", accent: "#F57C00"}
)

func detailRow(label, value string) string {
	return fmt.Sprintf(
		`<div style="margin-bottom: 10px;"><span style="color: #5a6c7d; font-size: 14px; font-weight: 500;">%s:</span>`+
			`<span style="color: #2c3e50; font-size: 14px; font-weight: 600; margin-left: 8px;">%s</span></div>`,
		label, value)
}

// renderHerdAlertEmail builds subject, plain-text and HTML bodies for a
// pregnancy or deworming event.
func renderHerdAlertEmail(ev DueEvent) (subject, plainText, htmlBody string) {
	var (
		colors      alertColors
		icon        string
		title       string
		description string
		details     string
	)

	switch ev.Kind {
	case AlertKindPregnancy:
		colors = pregnancyColors
		icon = "🐄"
		subject = fmt.Sprintf("🐄 Vaca %s próxima a parir", ev.AnimalCode)
		title = fmt.Sprintf("Vaca %s próxima a parir", ev.AnimalCode)
		description = fmt.Sprintf("La vaca <strong>%s</strong> se encuentra próxima a parir.", ev.AnimalCode)
		details = detailRow("🐄 Vaca", ev.AnimalCode) +
			detailRow("🌾 Potrero", ev.PaddockName) +
			detailRow("🏡 Finca", ev.FarmName) +
			detailRow("⏰ Días restantes", fmt.Sprintf("%d", ev.DaysRemaining))
	default:
		colors = dewormingColors
		icon = "💉"
		subject = "💉 Desparasitación pendiente"
		title = "Desparasitación pendiente"
		description = fmt.Sprintf(
			"Hay vacas del potrero <strong>%s</strong> de la finca <strong>%s</strong> que deben ser desparasitadas.",
			ev.PaddockName, ev.FarmName)
		details = detailRow("🌾 Potrero", ev.PaddockName) +
			detailRow("🏡 Finca", ev.FarmName) +
			detailRow("⏰ Días restantes", fmt.Sprintf("%d", ev.DaysRemaining))
	}

	dateStr := formatSpanishDate(ev.DueDate)

	plainText = fmt.Sprintf(
		"%s\n\nPotrero: %s\nFinca: %s\nFecha programada: %s\nDías restantes: %d",
		title, ev.PaddockName, ev.FarmName, dateStr, ev.DaysRemaining)

	htmlBody = fmt.Sprintf(alertEmailHTML,
		subject,
		colors.primary, colors.accent,
		icon,
		title,
		ev.RecipientName,
		colors.secondary, colors.primary,
		description,
		colors.accent, dateStr,
		details,
	)
	return subject, plainText, htmlBody
}

// renderReminderEmail builds subject and plain-text body for a reminder
// event. Reminders go out as plain text with the due hour shown in the
// recipient's local time.
func renderReminderEmail(ev DueEvent, loc *time.Location) (subject, plainText string) {
	subject = fmt.Sprintf("📌 Recordatorio: %s", ev.Title)
	plainText = fmt.Sprintf(
		"Hola %s,\n\nEste es tu recordatorio programado para las %s:\n\n%s\n\nTipo: %s",
		ev.RecipientName, ev.DueDate.In(loc).Format("15:04"), ev.Body, ev.Category)
	return subject, plainText
}
