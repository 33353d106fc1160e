package models

import (
	"strings"
	"time"
)

const (
	giSeverityMin = 1
	giSeverityMax = 10
)

// SuggestedSymptomTypes feeds the symptom input's completion list. The field
// itself stays free-form.
func SuggestedSymptomTypes() []string {
	return []string{
		"Bowel Movement",
		"Nausea",
		"Pain",
		"Bloating",
		"Gas",
		"Diarrhea",
		"Constipation",
		"Cramping",
		"Other",
	}
}

type GiSymptom struct {
	ID          uint      `gorm:"primaryKey"`
	OccurredAt  time.Time `gorm:"not null;index"`
	SymptomType string    `gorm:"not null"`
	Severity    *int
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (entry GiSymptom) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if entry.OccurredAt.IsZero() {
		errs["occurred_at"] = "can't be blank"
	}
	if strings.TrimSpace(entry.SymptomType) == "" {
		errs["symptom_type"] = "can't be blank"
	}
	if entry.Severity != nil {
		if *entry.Severity < giSeverityMin || *entry.Severity > giSeverityMax {
			errs["severity"] = "is not included in the list"
		}
	}
	return errs
}
