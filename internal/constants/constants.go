package constants

import "time"

// Region the herd operates in. All day-window math runs in this zone so a
// scan near midnight UTC still sees the farmer's calendar day.
const RegionTimeZone = "America/Bogota"

// RegionUTCOffset is the fixed offset used when converting user-supplied
// local reminder times to UTC. The region has no daylight saving.
const RegionUTCOffset = -5 * time.Hour

const (
	// PregnancyGestationDays is the bovine gestation period. The birth
	// alert fires within AlertWindowDays of anchor + gestation.
	PregnancyGestationDays = 280

	// DewormingIntervalMonths separates one deworming round from the next.
	// Calendar months, clamped to month end (Jan 31 + 3 = Apr 30).
	DewormingIntervalMonths = 3

	// AlertWindowDays is the inclusive 0..N day window during which a due
	// date is eligible to alert.
	AlertWindowDays = 3
)

const (
	// ReminderLeadTime: the reminder scan runs roughly hourly and picks up
	// reminders due about one hour from now.
	ReminderLeadTime = time.Hour

	// ReminderDispatchMargin absorbs scan-timing jitter around the lead
	// horizon, symmetric on both sides.
	ReminderDispatchMargin = 2 * time.Minute
)

const (
	ResetCodeLength = 6
	ResetCodeTTL    = 10 * time.Minute
)
