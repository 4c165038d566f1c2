package model

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date rendered as "yyyy-MM-dd" in JSON. Birthday,
// createdAt and lastLogin are dates, not timestamps.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t.Truncate(24 * time.Hour)}
}

func Today() Date {
	now := time.Now().UTC()
	return Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		*d = Date{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", raw, err)
	}

	d.Time = parsed
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(dateLayout)
}
