package services

import (
	"time"

	"github.com/MrSmurf09/Api-Proyecto/internal/constants"
)

// WindowPolicy decides, given "now" and a stored anchor date, whether a
// derived due date falls inside the alert window. It is pure: all state
// lives in its two fields.
//
// Day comparisons are calendar-day differences computed in the region's
// timezone, inclusive on both bounds, so a scan near midnight UTC cannot
// slip a day against the farmer's calendar.
type WindowPolicy struct {
	Location *time.Location

	// IncludeOverdue widens the window to "due date has arrived or passed".
	// Off by default: the stock behavior only fires inside the forward
	// 0..3 day window, which means an entirely skipped scan can lose a
	// pregnancy/deworming alert for good until the anchor is reset by
	// hand. Enabling this trades that loss for possible late alerts.
	IncludeOverdue bool
}

func NewWindowPolicy(loc *time.Location) WindowPolicy {
	return WindowPolicy{Location: loc}
}

// PregnancyDue returns anchor + the bovine gestation period.
func (p WindowPolicy) PregnancyDue(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, constants.PregnancyGestationDays)
}

// DewormingDue returns anchor + the deworming interval in calendar months,
// clamped to the last day of a shorter target month.
func (p WindowPolicy) DewormingDue(anchor time.Time) time.Time {
	return addMonthsClamped(anchor, constants.DewormingIntervalMonths)
}

// DaysUntil is the whole-day distance from now to due: 0 when both fall on
// the same calendar day in the policy's zone, negative when due has passed.
func (p WindowPolicy) DaysUntil(due, now time.Time) int {
	dueDay := dateOnlyInLocation(due, p.Location)
	nowDay := dateOnlyInLocation(now, p.Location)
	return int(dueDay.Sub(nowDay).Hours() / 24)
}

// InAlertWindow reports whether a day count is eligible to alert.
func (p WindowPolicy) InAlertWindow(days int) bool {
	if days < 0 {
		return p.IncludeOverdue
	}
	return days <= constants.AlertWindowDays
}

// ReminderWindow returns the inclusive [from, to] range the reminder scan
// matches against dueAt: one lead-time ahead of now, widened by the
// dispatch margin on both sides.
func (p WindowPolicy) ReminderWindow(now time.Time) (from, to time.Time) {
	horizon := now.Add(constants.ReminderLeadTime)
	return horizon.Add(-constants.ReminderDispatchMargin), horizon.Add(constants.ReminderDispatchMargin)
}

// ReminderMatches reports whether dueAt falls inside the reminder window.
func (p WindowPolicy) ReminderMatches(dueAt, now time.Time) bool {
	from, to := p.ReminderWindow(now)
	return !dueAt.Before(from) && !dueAt.After(to)
}

// dateOnlyInLocation returns the exact instant of local midnight for the
// calendar day that 't' falls in when viewed in 'loc'.
func dateOnlyInLocation(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func lastDayOfMonth(t time.Time) time.Time {
	n := t.AddDate(0, 1, 0)
	return time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -1)
}

// addMonthsClamped adds calendar months the way the scheduling UI expects:
// Jan 31 + 3 months is Apr 30, not May 1.
func addMonthsClamped(t time.Time, months int) time.Time {
	anchored := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).
		AddDate(0, months, 0)
	day := t.Day()
	if last := lastDayOfMonth(anchored).Day(); day > last {
		day = last
	}
	return time.Date(anchored.Year(), anchored.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
