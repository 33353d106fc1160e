package db

import (
	"github.com/terraincognita07/gutlog/internal/models"
	"gorm.io/gorm"
)

type Repositories struct {
	FoodEntries    *EntryRepository[models.FoodEntry]
	BowelMovements *EntryRepository[models.BowelMovement]
	GiSymptoms     *EntryRepository[models.GiSymptom]
	Accidents      *EntryRepository[models.Accident]
	MiralaxCaps    *EntryRepository[models.MiralaxCap]
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		FoodEntries:    NewEntryRepository[models.FoodEntry](database, "consumed_at"),
		BowelMovements: NewEntryRepository[models.BowelMovement](database, "occurred_at"),
		GiSymptoms:     NewEntryRepository[models.GiSymptom](database, "occurred_at"),
		Accidents:      NewEntryRepository[models.Accident](database, "occurred_at"),
		MiralaxCaps:    NewEntryRepository[models.MiralaxCap](database, "occurred_at"),
	}
}
