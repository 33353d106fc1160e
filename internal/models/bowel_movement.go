package models

import "time"

// severityTerms describes the 1..5 consistency scale, 1 being the loosest
// and 5 the most solid.
var severityTerms = map[int]string{
	1: "Liquid",
	2: "Mush",
	3: "Firm",
	4: "Logs",
	5: "Pebbles",
}

// SeverityScale lists the valid severity values in display order.
func SeverityScale() []int {
	return []int{1, 2, 3, 4, 5}
}

type BowelMovement struct {
	ID         uint      `gorm:"primaryKey"`
	OccurredAt time.Time `gorm:"not null;index"`
	Severity   *int
	Notes      string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (entry BowelMovement) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if entry.OccurredAt.IsZero() {
		errs["occurred_at"] = "can't be blank"
	}
	if entry.Severity != nil {
		if _, ok := severityTerms[*entry.Severity]; !ok {
			errs["severity"] = "is not included in the list"
		}
	}
	return errs
}

// SeverityTerm returns the descriptive term for the recorded severity.
// The second return is false when no severity was recorded.
func (entry BowelMovement) SeverityTerm() (string, bool) {
	if entry.Severity == nil {
		return "", false
	}
	term, ok := severityTerms[*entry.Severity]
	return term, ok
}
