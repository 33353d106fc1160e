package models

import "time"

const (
	AccidentPee  = "pee"
	AccidentPoop = "poop"
	AccidentBoth = "both"
)

var accidentTypeLabels = map[string]string{
	AccidentPee:  "Pee",
	AccidentPoop: "Poop",
	AccidentBoth: "Both",
}

// AccidentTypes lists the valid accident type values in display order.
func AccidentTypes() []string {
	return []string{AccidentPee, AccidentPoop, AccidentBoth}
}

type Accident struct {
	ID           uint      `gorm:"primaryKey"`
	OccurredAt   time.Time `gorm:"not null;index"`
	AccidentType string    `gorm:"not null"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (entry Accident) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if entry.OccurredAt.IsZero() {
		errs["occurred_at"] = "can't be blank"
	}
	if _, ok := accidentTypeLabels[entry.AccidentType]; !ok {
		errs["accident_type"] = "is not included in the list"
	}
	return errs
}

// AccidentTypeLabel returns the display label for the recorded type. The
// second return is false when the type is empty or unknown.
func (entry Accident) AccidentTypeLabel() (string, bool) {
	label, ok := accidentTypeLabels[entry.AccidentType]
	return label, ok
}

// AccidentTypeLabelFor maps a raw type value to its display label.
func AccidentTypeLabelFor(value string) (string, bool) {
	label, ok := accidentTypeLabels[value]
	return label, ok
}
