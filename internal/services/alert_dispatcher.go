package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

// DispatchResult aggregates one dispatch run.
type DispatchResult struct {
	Outcomes []string
	Sent     int
	Failed   int
	Skipped  int
}

// AlertDispatcher consumes DueEvents one at a time: render, send, then
// durably mark the event handled. A failed send never mutates state and
// never stops the rest of the queue; no transaction spans two events.
type AlertDispatcher struct {
	animalRepo   repositories.AnimalRepository
	reminderRepo repositories.ReminderRepository
	mailer       Mailer
	location     *time.Location

	// Optional SMS copy for reminders. Nil-safe; never gates the
	// idempotency mutation.
	twilioClient *twilio.RestClient
	fromPhone    string
}

func NewAlertDispatcher(
	animalRepo repositories.AnimalRepository,
	reminderRepo repositories.ReminderRepository,
	mailer Mailer,
	location *time.Location,
	twilioClient *twilio.RestClient,
	fromPhone string,
) *AlertDispatcher {
	return &AlertDispatcher{
		animalRepo:   animalRepo,
		reminderRepo: reminderRepo,
		mailer:       mailer,
		location:     location,
		twilioClient: twilioClient,
		fromPhone:    fromPhone,
	}
}

// Dispatch processes the events strictly in order. The per-paddock
// deworming dedup set lives here, scoped to this single invocation: the
// first animal of a paddock in encounter order carries the alert.
func (d *AlertDispatcher) Dispatch(ctx context.Context, events []DueEvent) DispatchResult {
	var res DispatchResult
	notifiedPaddocks := make(map[uuid.UUID]struct{})

	for _, ev := range events {
		switch ev.Kind {
		case AlertKindPregnancy:
			d.dispatchPregnancy(ctx, ev, &res)
		case AlertKindDeworming:
			if _, done := notifiedPaddocks[ev.PaddockID]; done {
				res.Skipped++
				continue
			}
			notifiedPaddocks[ev.PaddockID] = struct{}{}
			d.dispatchDeworming(ctx, ev, &res)
		case AlertKindReminder:
			d.dispatchReminder(ctx, ev, &res)
		}
	}
	return res
}

func (d *AlertDispatcher) dispatchPregnancy(ctx context.Context, ev DueEvent, res *DispatchResult) {
	subject, plainText, htmlBody := renderHerdAlertEmail(ev)
	if err := d.mailer.Send(ev.RecipientName, ev.RecipientEmail, subject, plainText, htmlBody); err != nil {
		utils.Logger.WithError(err).Errorf("Error enviando correo de parto a %s (vaca %s)", ev.RecipientEmail, ev.AnimalCode)
		res.Failed++
		return
	}
	res.Sent++

	cleared, err := d.animalRepo.ClearPregnancyDate(ctx, ev.SubjectID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Correo enviado pero no se pudo limpiar la fecha de embarazo de la vaca %s", ev.AnimalCode)
		return
	}
	if !cleared {
		// Another scan beat us to it; the email is a duplicate we accept.
		res.Skipped++
		return
	}
	res.Outcomes = append(res.Outcomes,
		fmt.Sprintf("Embarazo - Vaca %s: Alerta enviada y fecha eliminada.", ev.AnimalCode))
}

func (d *AlertDispatcher) dispatchDeworming(ctx context.Context, ev DueEvent, res *DispatchResult) {
	subject, plainText, htmlBody := renderHerdAlertEmail(ev)
	if err := d.mailer.Send(ev.RecipientName, ev.RecipientEmail, subject, plainText, htmlBody); err != nil {
		utils.Logger.WithError(err).Errorf("Error enviando correo de desparasitación a %s (potrero %s)", ev.RecipientEmail, ev.PaddockName)
		res.Failed++
		return
	}
	res.Sent++

	// The new anchor is the old one advanced by the full interval, which
	// is exactly this event's due date. Applied to the whole paddock.
	if _, err := d.animalRepo.AdvanceDewormingForPaddock(ctx, ev.PaddockID, ev.DueDate); err != nil {
		utils.Logger.WithError(err).Errorf("Correo enviado pero no se pudo avanzar la fecha de desparasitación del potrero %s", ev.PaddockName)
		return
	}
	res.Outcomes = append(res.Outcomes,
		fmt.Sprintf("Desparasitación - Potrero %s: Alerta enviada y fecha actualizada.", ev.PaddockName))
}

func (d *AlertDispatcher) dispatchReminder(ctx context.Context, ev DueEvent, res *DispatchResult) {
	subject, plainText := renderReminderEmail(ev, d.location)
	if err := d.mailer.Send(ev.RecipientName, ev.RecipientEmail, subject, plainText, ""); err != nil {
		utils.Logger.WithError(err).Errorf("Error al enviar el correo a %s", ev.RecipientEmail)
		res.Failed++
		return
	}
	res.Sent++

	d.sendReminderSMS(ev, subject, plainText)

	marked, err := d.reminderRepo.MarkSent(ctx, ev.SubjectID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Correo enviado pero no se pudo marcar el recordatorio %s como enviado", ev.SubjectID)
		return
	}
	if !marked {
		res.Skipped++
		return
	}
	res.Outcomes = append(res.Outcomes,
		fmt.Sprintf("Recordatorio %q enviado a %s.", ev.Title, ev.RecipientEmail))
}

func (d *AlertDispatcher) sendReminderSMS(ev DueEvent, subject, plainText string) {
	if d.twilioClient == nil || ev.RecipientPhone == "" {
		return
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(ev.RecipientPhone)
	params.SetFrom(d.fromPhone)
	params.SetBody(subject + " :: " + plainText)
	if _, err := d.twilioClient.Api.CreateMessage(params); err != nil {
		utils.Logger.WithError(err).Warnf("No se pudo enviar el SMS del recordatorio %s", ev.SubjectID)
	}
}
