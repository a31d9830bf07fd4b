package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"darzi/internal/domain"
)

var testNow = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

func record(status, date string, sets int, shirt, pant float64) Record {
	return Record{Status: status, Date: date, NoOfSets: sets, ShirtAmount: shirt, PantAmount: pant}
}

func TestCompute_StatusBuckets(t *testing.T) {
	records := []Record{
		record(domain.StatusPending, "2025-03-20", 1, 500, 400),
		record(domain.StatusInProgress, "2025-03-20", 1, 500, 400),
		record(domain.StatusReady, "2025-03-20", 1, 500, 400),
		record(domain.StatusDelivered, "2025-03-20", 1, 500, 400),
		record(domain.StatusCompleted, "2025-03-20", 1, 500, 400),
	}

	s := Compute(records, Filter{Period: PeriodAll, Now: testNow})

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 2, s.Completed)
	// Ready counts in neither bucket, so the partition is not exhaustive
	assert.LessOrEqual(t, s.Pending+s.Completed, s.Total)
}

func TestCompute_RevenueFromOwnAmounts(t *testing.T) {
	records := []Record{
		record(domain.StatusDelivered, "2025-03-18", 2, 500, 400),
		record(domain.StatusCompleted, "2025-03-19", 1, 600, 300),
		// outstanding orders contribute nothing
		record(domain.StatusPending, "2025-03-19", 5, 999, 999),
	}

	s := Compute(records, Filter{Period: PeriodAll, Now: testNow})

	assert.InDelta(t, 2700.0, s.Revenue, 1e-9)
	assert.InDelta(t, 1600.0, s.ShirtRevenue, 1e-9)
	assert.InDelta(t, 1100.0, s.PantRevenue, 1e-9)
	assert.InDelta(t, s.Revenue, s.ShirtRevenue+s.PantRevenue, 1e-9)
}

func TestCompute_RevenueZeroWithoutDoneOrders(t *testing.T) {
	records := []Record{
		record(domain.StatusPending, "2025-03-19", 2, 500, 400),
		record(domain.StatusReady, "2025-03-19", 1, 500, 400),
	}

	s := Compute(records, Filter{Period: PeriodAll, Now: testNow})
	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.ShirtRevenue)
	assert.Zero(t, s.PantRevenue)
}

func TestCompute_MissingSetsAndAmountsDefault(t *testing.T) {
	records := []Record{
		record(domain.StatusDelivered, "2025-03-19", 0, 500, 0),
	}

	s := Compute(records, Filter{Period: PeriodAll, Now: testNow})
	// zero sets counts as one set; zero amounts contribute zero
	assert.InDelta(t, 500.0, s.Revenue, 1e-9)
	assert.InDelta(t, 500.0, s.ShirtRevenue, 1e-9)
	assert.Zero(t, s.PantRevenue)
}

func TestFilter_DateWinsOverPeriod(t *testing.T) {
	records := []Record{
		record(domain.StatusPending, "2025-03-15", 1, 500, 400),
	}

	// "today" would exclude a five-day-old order, but the explicit date wins
	s := Compute(records, Filter{Date: "2025-03-15", Period: PeriodToday, Now: testNow})
	assert.Equal(t, 1, s.Total)

	s = Compute(records, Filter{Period: PeriodToday, Now: testNow})
	assert.Equal(t, 0, s.Total)
}

func TestFilter_TrailingWindows(t *testing.T) {
	records := []Record{
		record(domain.StatusPending, "2025-03-20", 1, 0, 0), // today
		record(domain.StatusPending, "2025-03-14", 1, 0, 0), // 6 days back
		record(domain.StatusPending, "2025-02-25", 1, 0, 0), // 23 days back
		record(domain.StatusPending, "2024-06-01", 1, 0, 0), // ~9 months back
		record(domain.StatusPending, "2023-01-01", 1, 0, 0), // over a year back
	}

	assert.Equal(t, 1, Compute(records, Filter{Period: PeriodToday, Now: testNow}).Total)
	assert.Equal(t, 2, Compute(records, Filter{Period: PeriodWeek, Now: testNow}).Total)
	assert.Equal(t, 3, Compute(records, Filter{Period: PeriodMonth, Now: testNow}).Total)
	assert.Equal(t, 4, Compute(records, Filter{Period: PeriodYear, Now: testNow}).Total)
	assert.Equal(t, 5, Compute(records, Filter{Period: PeriodAll, Now: testNow}).Total)
}

func TestFilter_UnparsableDateExcludedFromPeriods(t *testing.T) {
	records := []Record{
		record(domain.StatusPending, "not-a-date", 1, 0, 0),
	}

	assert.Equal(t, 0, Compute(records, Filter{Period: PeriodWeek, Now: testNow}).Total)
	assert.Equal(t, 1, Compute(records, Filter{Period: PeriodAll, Now: testNow}).Total)
}

func TestComputeEmployee_PositionCounts(t *testing.T) {
	records := []Record{
		{Status: domain.StatusPending, Date: "2025-03-20", Position: "Manager"},
		{Status: domain.StatusMovedToStitching, Date: "2025-03-20", Position: "Manager"},
		{Status: domain.StatusDelivered, Date: "2025-03-20", Position: "Watchman"},
	}

	s := ComputeEmployee(records, Filter{Period: PeriodAll, Now: testNow})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.MovedToStitching)
	assert.Equal(t, 2, s.PositionCounts["Manager"])
	assert.Equal(t, 1, s.PositionCounts["Watchman"])

	// zero-filled for every enumerated position
	assert.Len(t, s.PositionCounts, len(domain.Positions()))
	assert.Equal(t, 0, s.PositionCounts["HR"])
}

func TestFromOrderProjections(t *testing.T) {
	o := domain.Order{Status: domain.StatusDelivered, Date: "2025-03-20", NoOfSets: 2, ShirtAmount: 500, PantAmount: 400}
	r := FromOrder(o)
	assert.Equal(t, Record{Status: "Delivered", Date: "2025-03-20", NoOfSets: 2, ShirtAmount: 500, PantAmount: 400}, r)

	e := domain.EmployeeOrder{Status: domain.StatusPending, Date: "2025-03-20", NoOfSets: 1, Position: "HR"}
	assert.Equal(t, "HR", FromEmployeeOrder(e).Position)
}
