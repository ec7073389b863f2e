package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
)

// In-memory stand-ins for the pgx repositories, tracking the mutations
// the dispatcher issues.

type fakeAnimalRepo struct {
	alertRows []*models.AnimalAlertRow

	scanErr error

	clearedPregnancy []uuid.UUID
	clearResult      bool
	advancedPaddocks map[uuid.UUID]time.Time
}

func newFakeAnimalRepo(rows ...*models.AnimalAlertRow) *fakeAnimalRepo {
	return &fakeAnimalRepo{
		alertRows:        rows,
		clearResult:      true,
		advancedPaddocks: make(map[uuid.UUID]time.Time),
	}
}

func (f *fakeAnimalRepo) Create(context.Context, *models.Animal) error { return nil }
func (f *fakeAnimalRepo) GetByID(context.Context, uuid.UUID) (*models.Animal, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeAnimalRepo) ListByPaddockID(context.Context, uuid.UUID) ([]*models.AnimalWithMilkAvg, error) {
	return nil, nil
}
func (f *fakeAnimalRepo) ListByVeterinarianID(context.Context, uuid.UUID) ([]*models.Animal, error) {
	return nil, nil
}
func (f *fakeAnimalRepo) ListForAlertScan(context.Context) ([]*models.AnimalAlertRow, error) {
	return f.alertRows, f.scanErr
}
func (f *fakeAnimalRepo) SetPregnancyDate(context.Context, uuid.UUID, time.Time) error { return nil }
func (f *fakeAnimalRepo) SetDewormingDate(context.Context, uuid.UUID, time.Time) error { return nil }
func (f *fakeAnimalRepo) AssignVeterinarian(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (f *fakeAnimalRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeAnimalRepo) ClearPregnancyDate(_ context.Context, id uuid.UUID) (bool, error) {
	f.clearedPregnancy = append(f.clearedPregnancy, id)
	return f.clearResult, nil
}

func (f *fakeAnimalRepo) AdvanceDewormingForPaddock(_ context.Context, paddockID uuid.UUID, next time.Time) (int64, error) {
	f.advancedPaddocks[paddockID] = next
	return 1, nil
}

type fakeReminderRepo struct {
	due     []*models.Reminder
	created []*models.Reminder

	markResult  bool
	markedSent  []uuid.UUID
	listedFrom  time.Time
	listedTo    time.Time
	listErr     error
	markSentErr error
}

func newFakeReminderRepo(due ...*models.Reminder) *fakeReminderRepo {
	return &fakeReminderRepo{due: due, markResult: true}
}

func (f *fakeReminderRepo) Create(_ context.Context, rem *models.Reminder) error {
	f.created = append(f.created, rem)
	return nil
}
func (f *fakeReminderRepo) GetByID(context.Context, uuid.UUID) (*models.Reminder, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeReminderRepo) ListByAnimalID(context.Context, uuid.UUID) ([]*models.Reminder, error) {
	return nil, nil
}
func (f *fakeReminderRepo) ListDueUnsent(_ context.Context, from, to time.Time) ([]*models.Reminder, error) {
	f.listedFrom, f.listedTo = from, to
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Reminder
	for _, rem := range f.due {
		if !rem.Sent {
			out = append(out, rem)
		}
	}
	return out, nil
}
func (f *fakeReminderRepo) MarkSent(_ context.Context, id uuid.UUID) (bool, error) {
	if f.markSentErr != nil {
		return false, f.markSentErr
	}
	f.markedSent = append(f.markedSent, id)
	if !f.markResult {
		return false, nil
	}
	for _, rem := range f.due {
		if rem.ID == id {
			if rem.Sent {
				return false, nil
			}
			rem.Sent = true
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeReminderRepo) Delete(context.Context, uuid.UUID) (*models.Reminder, error) {
	return nil, pgx.ErrNoRows
}

type fakeUserRepo struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Phone == phone && phone != "" {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) ListByRole(_ context.Context, role string) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
func (f *fakeUserRepo) UpdatePassword(_ context.Context, email, hash string) error {
	u, ok := f.byEmail[email]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = hash
	return nil
}

type sentMail struct {
	ToEmail  string
	Subject  string
	Plain    string
	HTMLBody string
}

type fakeMailer struct {
	sent []sentMail

	// failEmails makes Send fail for these recipients.
	failEmails map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failEmails: make(map[string]bool)}
}

func (f *fakeMailer) Send(_, toEmail, subject, plainText, htmlBody string) error {
	if f.failEmails[toEmail] {
		return errors.New("smtp rejected")
	}
	f.sent = append(f.sent, sentMail{ToEmail: toEmail, Subject: subject, Plain: plainText, HTMLBody: htmlBody})
	return nil
}
