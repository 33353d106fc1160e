package models

import (
	"strings"
	"time"
)

type FoodEntry struct {
	ID          uint      `gorm:"primaryKey"`
	ConsumedAt  time.Time `gorm:"not null;index"`
	Description string    `gorm:"type:text;not null"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (entry FoodEntry) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if entry.ConsumedAt.IsZero() {
		errs["consumed_at"] = "can't be blank"
	}
	if strings.TrimSpace(entry.Description) == "" {
		errs["description"] = "can't be blank"
	}
	return errs
}
