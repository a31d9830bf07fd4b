package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EmployeeOrder is a company-scoped order for one staff member. Same shape
// as a civil order plus the owning company and the employee's position.
type EmployeeOrder struct {
	ID            int64
	CompanyID     int64
	OrderID       string
	Name          string
	Phone         string
	Email         string
	Position      string
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

const PositionEmployee = "Employee"

var positions = []string{
	PositionEmployee,
	"Watchman",
	"Security",
	"HR",
	"Manager",
	"Senior Manager",
	"Housekeeping",
	"Other",
}

func Positions() []string {
	out := make([]string, len(positions))
	copy(out, positions)
	return out
}

// NormalizePosition maps anything outside the fixed enumeration to Employee.
func NormalizePosition(p string) string {
	for _, v := range positions {
		if v == p {
			return p
		}
	}
	return PositionEmployee
}

var employeeStatuses = append(CivilStatuses(), StatusMovedToStitching)

func EmployeeStatuses() []string {
	out := make([]string, len(employeeStatuses))
	copy(out, employeeStatuses)
	return out
}

func IsValidEmployeeStatus(s string) bool {
	for _, v := range employeeStatuses {
		if v == s {
			return true
		}
	}
	return false
}

const employeeOrderPrefix = "EMP"

// NextEmployeeOrderID derives the next per-company order id from the most
// recently created employee order's id. Lookup-and-guess, not an atomic
// counter: concurrent creates for the same company can race and repeat an
// id. Kept that way for compatibility with the original scheme.
func NextEmployeeOrderID(lastOrderID string) string {
	if lastOrderID == "" {
		return fmt.Sprintf("%s%03d", employeeOrderPrefix, 1)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(lastOrderID, employeeOrderPrefix))
	if err != nil {
		n = 0
	}
	return fmt.Sprintf("%s%03d", employeeOrderPrefix, n+1)
}

// FallbackEmployeeOrderID is used when a create request carries no order id.
func FallbackEmployeeOrderID(now time.Time) string {
	return fallbackOrderID(employeeOrderPrefix, now)
}
