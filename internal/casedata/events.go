package casedata

import (
	"time"

	"sscs-bulk-scan/internal/domain"
)

// mrnDeadlineMonths is how long after the MRN an appeal stays compliant.
const mrnDeadlineMonths = 13

// SelectEvent picks the lifecycle event for a validated case. Warnings take
// priority and route to the incomplete-application event; an MRN dated more
// than thirteen months before today routes to non-compliant; everything
// else is a valid appeal. A missing or unparseable MRN date never trips the
// non-compliance rule.
func SelectEvent(caseEvent domain.CaseEvent, response domain.CaseResponse, now time.Time) string {
	if response.HasWarnings() {
		return caseEvent.IncompleteApplicationEventID
	}

	var appeal *domain.Appeal
	if response.Record != nil {
		appeal = response.Record.Appeal
	}
	if mrnDate, ok := parseMrnDate(appeal); ok {
		today := atMidnight(now)
		if addMonthsClamped(mrnDate, mrnDeadlineMonths).Before(today) {
			return caseEvent.NonCompliantEventID
		}
	}
	return caseEvent.ValidAppealCreatedEventID
}

// StampReferredCase records why a non-compliant case is referred for
// interlocutory review: late with grounds, or late with grounds missing.
// Any other event leaves the record untouched.
func StampReferredCase(caseEvent domain.CaseEvent, rec *domain.CaseRecord, eventID string) {
	if rec == nil || eventID != caseEvent.NonCompliantEventID {
		return
	}
	if rec.Appeal.HasGrounds() {
		rec.InterlocReferralReason = domain.InterlocOver13Months
	} else {
		rec.InterlocReferralReason = domain.InterlocOver13MonthsAndGroundsMissing
	}
}

func parseMrnDate(appeal *domain.Appeal) (time.Time, bool) {
	raw := appeal.MrnDate()
	if raw == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// addMonthsClamped advances a calendar date by whole months, clamping to
// the last day of the target month instead of normalizing past it
// (31 January + 1 month is 28 February, not 3 March).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if lastDay := firstOfTarget.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

func atMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
