package models

import "time"

// DeadlineFormat is the calendar-date layout every opportunity deadline
// must use, e.g. "2026-03-31".
const DeadlineFormat = "2006-01-02"

// AgeRange is an inclusive age window. A student whose age equals either
// bound qualifies.
type AgeRange struct {
	MinAge int `json:"min_age"`
	MaxAge int `json:"max_age"`
}

// Opportunity is one structured record in the catalog: a job opening,
// internship, scholarship, fellowship or government scheme.
type Opportunity struct {
	ID             string   `json:"id" gorm:"primaryKey"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`        // "job", "internship", "scholarship", ...
	EducationLevel string   `json:"education_level"` // e.g. "graduate", "12th"
	Eligibility    AgeRange `json:"eligibility" gorm:"embedded"`
	Deadline       string   `json:"deadline"` // DeadlineFormat
	Link           string   `json:"link"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseDeadline parses the deadline field. An unparsable deadline is a
// data error for the record, never silently coerced.
func (o *Opportunity) ParseDeadline() (time.Time, error) {
	return time.Parse(DeadlineFormat, o.Deadline)
}
