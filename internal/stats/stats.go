// Package stats derives dashboard figures from order records. Pure
// computation over in-memory slices; callers load the records.
package stats

import (
	"math"
	"time"

	"darzi/internal/domain"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// Record is the slice of an order the aggregator cares about. Position is
// empty for civil orders.
type Record struct {
	Status      string
	Date        string
	NoOfSets    int
	ShirtAmount float64
	PantAmount  float64
	Position    string
}

// Filter selects the records to aggregate. An explicit Date wins over
// Period. Period windows are trailing day counts, not calendar-aligned.
// Now defaults to the wall clock; tests pin it.
type Filter struct {
	Date   string
	Period string
	Now    time.Time
}

type Summary struct {
	Total            int            `json:"total"`
	Pending          int            `json:"pending"`
	Completed        int            `json:"completed"`
	MovedToStitching int            `json:"movedToStitching"`
	Revenue          float64        `json:"revenue"`
	ShirtRevenue     float64        `json:"shirtRevenue"`
	PantRevenue      float64        `json:"pantRevenue"`
	PositionCounts   map[string]int `json:"positionCounts,omitempty"`
}

// Compute aggregates the filtered records: total, status buckets and
// revenue. Revenue uses each record's own stored amounts, never a stored
// total, with sets defaulting to 1.
func Compute(records []Record, f Filter) Summary {
	var s Summary
	for _, r := range records {
		if !f.matches(r) {
			continue
		}

		s.Total++
		switch {
		case domain.IsOutstandingStatus(r.Status):
			s.Pending++
		case domain.IsDoneStatus(r.Status):
			s.Completed++
		case r.Status == domain.StatusMovedToStitching:
			s.MovedToStitching++
		}

		if domain.IsDoneStatus(r.Status) {
			sets := float64(r.NoOfSets)
			if sets < 1 {
				sets = 1
			}
			s.ShirtRevenue += r.ShirtAmount * sets
			s.PantRevenue += r.PantAmount * sets
			s.Revenue += (r.ShirtAmount + r.PantAmount) * sets
		}
	}
	return s
}

// ComputeEmployee aggregates like Compute and adds per-position counts,
// zero-filled across the whole position enumeration.
func ComputeEmployee(records []Record, f Filter) Summary {
	s := Compute(records, f)

	s.PositionCounts = make(map[string]int, len(domain.Positions()))
	for _, p := range domain.Positions() {
		s.PositionCounts[p] = 0
	}
	for _, r := range records {
		if !f.matches(r) {
			continue
		}
		if _, ok := s.PositionCounts[r.Position]; ok {
			s.PositionCounts[r.Position]++
		}
	}
	return s
}

func (f Filter) matches(r Record) bool {
	if f.Date != "" {
		return r.Date == f.Date
	}

	switch f.Period {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
	default:
		// all, empty, or unknown: no time restriction
		return true
	}

	d, err := time.Parse(domain.DateLayout, r.Date)
	if err != nil {
		return false
	}

	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	diffDays := int(math.Floor(now.Sub(d).Hours() / 24))
	switch f.Period {
	case PeriodToday:
		return diffDays == 0
	case PeriodWeek:
		return diffDays <= 7
	case PeriodMonth:
		return diffDays <= 30
	default:
		return diffDays <= 365
	}
}

// FromOrder projects a civil order into an aggregation record.
func FromOrder(o domain.Order) Record {
	return Record{
		Status:      o.Status,
		Date:        o.Date,
		NoOfSets:    o.NoOfSets,
		ShirtAmount: o.ShirtAmount,
		PantAmount:  o.PantAmount,
	}
}

// FromEmployeeOrder projects an employee order into an aggregation record.
func FromEmployeeOrder(o domain.EmployeeOrder) Record {
	return Record{
		Status:      o.Status,
		Date:        o.Date,
		NoOfSets:    o.NoOfSets,
		ShirtAmount: o.ShirtAmount,
		PantAmount:  o.PantAmount,
		Position:    o.Position,
	}
}
