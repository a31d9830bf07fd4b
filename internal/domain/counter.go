package domain

import (
	"fmt"
	"strconv"
	"time"
)

// OrderCounter is the singleton state behind civil order id allocation.
// Count resets to zero whenever the calendar month moves past LastMonth.
type OrderCounter struct {
	Name          string
	LastMonth     string
	Count         int64
	LastResetDate time.Time
}

// CivilCounterName keys the one civil counter row.
const CivilCounterName = "civil"

const monthKeyLayout = "2006-01"

// MonthKey renders the "YYYY-MM" key the counter tracks rollovers with.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// NeedsReset reports whether the counter belongs to an earlier month and
// must be zeroed before the next increment.
func (c OrderCounter) NeedsReset(now time.Time) bool {
	return c.LastMonth != MonthKey(now)
}

const civilOrderPrefix = "ORD"

// FormatCivilOrderID renders the nth id of the month: ORD001, ORD042,
// ORD1000. Past 999 the numeric part just widens.
func FormatCivilOrderID(n int64) string {
	return fmt.Sprintf("%s%03d", civilOrderPrefix, n)
}

// FallbackCivilOrderID is used when a create request carries no order id.
func FallbackCivilOrderID(now time.Time) string {
	return fallbackOrderID(civilOrderPrefix, now)
}

// fallbackOrderID derives an id from the last six digits of the unix
// millisecond clock.
func fallbackOrderID(prefix string, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return prefix + ms
}
