package models

import (
	"strconv"
	"time"
)

// AmountOptions lists the valid Miralax dose sizes in caps.
func AmountOptions() []float64 {
	return []float64{0.5, 1.0, 1.5, 2.0}
}

type MiralaxCap struct {
	ID         uint      `gorm:"primaryKey"`
	OccurredAt time.Time `gorm:"not null;index"`
	Amount     float64   `gorm:"type:numeric(3,1);not null"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (entry MiralaxCap) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if entry.OccurredAt.IsZero() {
		errs["occurred_at"] = "can't be blank"
	}
	valid := false
	for _, option := range AmountOptions() {
		if entry.Amount == option {
			valid = true
			break
		}
	}
	if !valid {
		errs["amount"] = "is not included in the list"
	}
	return errs
}

// AmountLabel formats the dose for display, singular only at exactly one cap.
func (entry MiralaxCap) AmountLabel() string {
	return AmountLabelFor(entry.Amount)
}

// AmountLabelFor formats a dose value: "1 cap", "0.5 caps", "2 caps".
func AmountLabelFor(amount float64) string {
	if amount == 1.0 {
		return "1 cap"
	}
	return strconv.FormatFloat(amount, 'f', -1, 64) + " caps"
}
