package utils

import (
	"database/sql/driver"
	"fmt"
	"math"
	"time"
)

// CustomDate stores a calendar date only (no time of day).
type CustomDate struct {
	time.Time
}

// === JSON: accepts and emits "YYYY-MM-DD" ===
func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return fmt.Errorf("invalid date format: %s", str)
	}
	*d = CustomDate{t}
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// === DB: read and write date columns ===
func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil // NULL
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = CustomDate{v}
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = CustomDate{t}
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = CustomDate{t}
		return nil
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

// === Helpers ===
func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// normalized drops any time-of-day and timezone the underlying value carries.
func (d CustomDate) normalized() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func Today() CustomDate {
	y, m, d := time.Now().Date()
	return CustomDate{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func NewDate(year int, month time.Month, day int) CustomDate {
	return CustomDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d CustomDate) BeforeDate(other CustomDate) bool {
	return d.normalized().Before(other.normalized())
}

func (d CustomDate) AfterDate(other CustomDate) bool {
	return d.normalized().After(other.normalized())
}

// DaysUntil returns the number of whole days from d to other.
func (d CustomDate) DaysUntil(other CustomDate) int {
	diff := other.normalized().Sub(d.normalized())
	return int(math.Ceil(diff.Hours() / 24))
}
