package domain

import "time"

// Order is a civil (walk-in customer) tailoring order.
type Order struct {
	ID            int64
	OrderID       string
	Name          string
	Phone         string
	Email         string
	NoOfSets      int
	ShirtAmount   float64
	PantAmount    float64
	TotalAmount   float64
	PaymentMethod string
	Shirt         Measurements
	Pant          Measurements
	Status        string
	Date          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	StatusPending          = "Pending"
	StatusInProgress       = "In Progress"
	StatusReady            = "Ready"
	StatusDelivered        = "Delivered"
	StatusCompleted        = "Completed"
	StatusMovedToStitching = "Moved to Stitching"
)

const (
	DefaultNoOfSets      = 1
	DefaultShirtAmount   = 500
	DefaultPantAmount    = 400
	DefaultPaymentMethod = "Cash"
)

// DateLayout is the calendar-date format carried on every order.
const DateLayout = "2006-01-02"

var civilStatuses = []string{
	StatusPending,
	StatusInProgress,
	StatusReady,
	StatusDelivered,
	StatusCompleted,
}

func CivilStatuses() []string {
	out := make([]string, len(civilStatuses))
	copy(out, civilStatuses)
	return out
}

// IsValidCivilStatus reports whether s belongs to the civil order enumeration.
// The machine is permissive: any enumerated status may replace any other.
func IsValidCivilStatus(s string) bool {
	for _, v := range civilStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsDoneStatus reports whether a status counts toward completed work and
// revenue.
func IsDoneStatus(s string) bool {
	return s == StatusDelivered || s == StatusCompleted
}

// IsOutstandingStatus reports whether a status counts as still-open work.
func IsOutstandingStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress
}

// ComputeTotalAmount derives the stored order total. Computed once at
// creation; later edits to amounts do not re-derive it.
func ComputeTotalAmount(shirtAmount, pantAmount float64, noOfSets int) float64 {
	return (shirtAmount + pantAmount) * float64(noOfSets)
}
