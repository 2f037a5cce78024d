// Package parse turns the plain text of a hotel booking confirmation into a
// structured lodging record. It is a best-effort heuristic extractor: a
// sequence of independent regex passes over one string, followed by a few
// ordered reconciliation steps around the stay dates. It never fails; a
// field the passes cannot resolve is simply absent.
package parse

import (
	"time"

	"github.com/tripfolio/lodging-parser/constants"
	"github.com/tripfolio/lodging-parser/internal/entity"
)

// Options tune the parser without changing its heuristics.
type Options struct {
	// Overrides enables the vendor override table.
	Overrides bool
	// MaxInputBytes truncates longer inputs before the regex passes run.
	MaxInputBytes int
}

func DefaultOptions() Options {
	return Options{
		Overrides:     true,
		MaxInputBytes: constants.DefaultMaxInputBytes,
	}
}

// stay tracks check-in/check-out resolution across reconciliation.
type stay struct {
	in, out     time.Time
	inOK, outOK bool
}

// Parse extracts a lodging record from confirmation text. It is total and
// deterministic: any string, including empty or binary garbage, yields a
// well-formed record, and identical input yields identical output. It never
// panics and never returns an error.
func Parse(text string) entity.ParsedLodging {
	return ParseWithOptions(text, DefaultOptions())
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(text string, opts Options) entity.ParsedLodging {
	if opts.MaxInputBytes > 0 && len(text) > opts.MaxInputBytes {
		text = text[:opts.MaxInputBytes]
	}

	var rec entity.ParsedLodging
	hits := findDates(text)
	all := datesOf(hits)

	// Independent passes. Each contributes its candidate or nothing.
	rec.HotelName = hotelName(text)
	rec.GuestName = guestName(text)
	rec.Rooms = roomCount(text)
	rec.FreeCancelBy = freeCancel(text)
	rec.BreakfastIncluded = mentionsBreakfast(text)
	rec.TotalCost = totalCost(text)
	rec.Currency = currency(text)
	rec.Paid = paidFlag(text)
	rec.Address = address(text)
	rec.Phone = phoneNumber(text)

	st := resolveInitialStay(text, hits)

	// Reconciliation. Order matters: a vendor override first, then the
	// passes that repair date pairings around the cancellation deadline.
	datesLocked := false
	if opts.Overrides {
		if ov, ok := matchOverride(text); ok {
			ov.apply(&rec)
			datesLocked = ov.CheckInDate != "" || ov.CheckOutDate != ""
		}
	}

	if !datesLocked {
		reconcileDates(&rec, &st, all)
		if st.inOK {
			rec.CheckInDate = isoDate(st.in)
		}
		if st.outOK {
			rec.CheckOutDate = isoDate(st.out)
		}
	}
	return rec
}

// resolveInitialStay searches explicit check-in/check-out labels first, then
// pairs the remaining dates, then falls back to the first two distinct dates
// in document order.
func resolveInitialStay(text string, hits []dateHit) stay {
	var st stay
	st.in, st.inOK = dateAfterLabel(text, reCheckInLabel)
	st.out, st.outOK = dateAfterLabel(text, reCheckOutLabel)
	if st.inOK && st.outOK {
		return st
	}

	remaining := datesOf(hits)
	if st.inOK {
		remaining = exclude(remaining, st.in)
	}
	if st.outOK {
		remaining = exclude(remaining, st.out)
	}
	st = repairStay(st, remaining)

	if !st.inOK && !st.outOK {
		if first, second, ok := firstTwoInOrder(hits); ok {
			st = stay{in: first, out: second, inOK: true, outOK: true}
		}
	}
	return st
}

// repairStay fills whatever part of the stay is missing from candidates.
func repairStay(st stay, cands []time.Time) stay {
	switch {
	case st.inOK && !st.outOK:
		if out, ok := partnerAfter(st.in, cands); ok {
			st.out, st.outOK = out, true
		}
	case !st.inOK && st.outOK:
		if in, ok := partnerBefore(st.out, cands); ok {
			st.in, st.inOK = in, true
		}
	case !st.inOK && !st.outOK:
		if in, out, ok := pairStayDates(cands); ok {
			st = stay{in: in, out: out, inOK: true, outOK: true}
		}
	}
	return st
}

// reconcileDates runs the ordered refinement steps that untangle the stay
// dates from the cancellation deadline:
//
//  1. re-pair excluding the resolved deadline when a stay date is missing;
//  2. infer a missing (or impossible: on/after check-in) deadline as the
//     latest prior date, preferring one within the cancel window;
//  3. with a resolved deadline, re-pair all other dates; a valid pair
//     overwrites the current stay, fixing cases where the deadline had been
//     absorbed into it.
func reconcileDates(rec *entity.ParsedLodging, st *stay, all []time.Time) {
	cancelAt, cancelOK := parseISO(rec.FreeCancelBy)

	if (!st.inOK || !st.outOK) && cancelOK {
		*st = repairStay(*st, exclude(all, cancelAt))
	}

	if st.inOK && (rec.FreeCancelBy == "" || (cancelOK && !cancelAt.Before(st.in))) {
		if inferred, ok := inferCancelDeadline(st.in, all); ok {
			rec.FreeCancelBy = isoDate(inferred)
			cancelAt, cancelOK = inferred, true
		}
	}

	if cancelOK {
		if in, out, ok := pairStayDates(exclude(all, cancelAt)); ok {
			*st = stay{in: in, out: out, inOK: true, outOK: true}
		}
	}
}
