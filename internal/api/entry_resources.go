package api

import (
	"fmt"

	"github.com/terraincognita07/gutlog/internal/models"
)

func (handler *Handler) foodEntryResource() entryResource[models.FoodEntry] {
	return entryResource[models.FoodEntry]{
		kind:           "food",
		kindLabel:      "Food",
		displayName:    "Food entry",
		pluralTitle:    "Food Entries",
		indexPath:      "/food_entries",
		timestampField: "consumed_at",
		fields: []FormField{
			{Name: "consumed_at", Label: "Consumed at", Input: "datetime", Required: true},
			{Name: "description", Label: "Description", Input: "textarea", Required: true},
			{Name: "notes", Label: "Notes", Input: "textarea"},
		},
		repo: handler.repositories.FoodEntries,
		bind: func(values map[string]string, entry *models.FoodEntry) models.ValidationErrors {
			entry.ConsumedAt = parseFormTime(values["consumed_at"], handler.location)
			entry.Description = values["description"]
			entry.Notes = values["notes"]
			return entry.Validate()
		},
		formValues: func(entry models.FoodEntry) map[string]string {
			return map[string]string{
				"consumed_at": formatFormTime(entry.ConsumedAt, handler.location),
				"description": entry.Description,
				"notes":       entry.Notes,
			}
		},
		row: func(entry models.FoodEntry) EntryRow {
			return EntryRow{
				ID:         entry.ID,
				Kind:       "food",
				KindLabel:  "Food",
				Timestamp:  entry.ConsumedAt,
				Title:      entry.Description,
				Notes:      entry.Notes,
				EditPath:   fmt.Sprintf("/food_entries/%d/edit", entry.ID),
				DeletePath: fmt.Sprintf("/food_entries/%d", entry.ID),
			}
		},
	}
}

func (handler *Handler) bowelMovementResource() entryResource[models.BowelMovement] {
	severityOptions := make([]FormOption, 0, len(models.SeverityScale()))
	for _, severity := range models.SeverityScale() {
		term, _ := models.BowelMovement{Severity: &severity}.SeverityTerm()
		severityOptions = append(severityOptions, FormOption{
			Value: fmt.Sprintf("%d", severity),
			Label: fmt.Sprintf("%d – %s", severity, term),
		})
	}

	return entryResource[models.BowelMovement]{
		kind:           "bowel_movement",
		kindLabel:      "BM",
		displayName:    "Bowel movement",
		pluralTitle:    "Bowel Movements",
		indexPath:      "/bowel_movements",
		timestampField: "occurred_at",
		fields: []FormField{
			{Name: "occurred_at", Label: "Occurred at", Input: "datetime", Required: true},
			{Name: "severity", Label: "Consistency", Input: "select", Options: severityOptions},
			{Name: "notes", Label: "Notes", Input: "textarea"},
		},
		repo: handler.repositories.BowelMovements,
		bind: func(values map[string]string, entry *models.BowelMovement) models.ValidationErrors {
			entry.OccurredAt = parseFormTime(values["occurred_at"], handler.location)
			entry.Severity = parseOptionalInt(values["severity"])
			entry.Notes = values["notes"]
			return entry.Validate()
		},
		formValues: func(entry models.BowelMovement) map[string]string {
			values := map[string]string{
				"occurred_at": formatFormTime(entry.OccurredAt, handler.location),
				"notes":       entry.Notes,
			}
			if entry.Severity != nil {
				values["severity"] = fmt.Sprintf("%d", *entry.Severity)
			}
			return values
		},
		row: func(entry models.BowelMovement) EntryRow {
			detail := ""
			if term, ok := entry.SeverityTerm(); ok {
				detail = fmt.Sprintf("%s (%d)", term, *entry.Severity)
			}
			return EntryRow{
				ID:         entry.ID,
				Kind:       "bowel_movement",
				KindLabel:  "BM",
				Timestamp:  entry.OccurredAt,
				Title:      "Bowel movement",
				Detail:     detail,
				Notes:      entry.Notes,
				EditPath:   fmt.Sprintf("/bowel_movements/%d/edit", entry.ID),
				DeletePath: fmt.Sprintf("/bowel_movements/%d", entry.ID),
			}
		},
	}
}

func (handler *Handler) giSymptomResource() entryResource[models.GiSymptom] {
	return entryResource[models.GiSymptom]{
		kind:           "gi_symptom",
		kindLabel:      "Symptom",
		displayName:    "GI symptom",
		pluralTitle:    "GI Symptoms",
		indexPath:      "/gi_symptoms",
		timestampField: "occurred_at",
		fields: []FormField{
			{Name: "occurred_at", Label: "Occurred at", Input: "datetime", Required: true},
			{Name: "symptom_type", Label: "Symptom", Input: "text", Required: true, Suggestions: models.SuggestedSymptomTypes()},
			{Name: "severity", Label: "Severity (1-10)", Input: "number", Min: 1, Max: 10},
			{Name: "notes", Label: "Notes", Input: "textarea"},
		},
		repo: handler.repositories.GiSymptoms,
		bind: func(values map[string]string, entry *models.GiSymptom) models.ValidationErrors {
			entry.OccurredAt = parseFormTime(values["occurred_at"], handler.location)
			entry.SymptomType = values["symptom_type"]
			entry.Severity = parseOptionalInt(values["severity"])
			entry.Notes = values["notes"]
			return entry.Validate()
		},
		formValues: func(entry models.GiSymptom) map[string]string {
			values := map[string]string{
				"occurred_at":  formatFormTime(entry.OccurredAt, handler.location),
				"symptom_type": entry.SymptomType,
				"notes":        entry.Notes,
			}
			if entry.Severity != nil {
				values["severity"] = fmt.Sprintf("%d", *entry.Severity)
			}
			return values
		},
		row: func(entry models.GiSymptom) EntryRow {
			detail := ""
			if entry.Severity != nil {
				detail = fmt.Sprintf("Severity %d/10", *entry.Severity)
			}
			return EntryRow{
				ID:         entry.ID,
				Kind:       "gi_symptom",
				KindLabel:  "Symptom",
				Timestamp:  entry.OccurredAt,
				Title:      entry.SymptomType,
				Detail:     detail,
				Notes:      entry.Notes,
				EditPath:   fmt.Sprintf("/gi_symptoms/%d/edit", entry.ID),
				DeletePath: fmt.Sprintf("/gi_symptoms/%d", entry.ID),
			}
		},
	}
}

func (handler *Handler) accidentResource() entryResource[models.Accident] {
	typeOptions := make([]FormOption, 0, len(models.AccidentTypes()))
	for _, value := range models.AccidentTypes() {
		label, _ := models.AccidentTypeLabelFor(value)
		typeOptions = append(typeOptions, FormOption{Value: value, Label: label})
	}

	return entryResource[models.Accident]{
		kind:           "accident",
		kindLabel:      "Accident",
		displayName:    "Accident",
		pluralTitle:    "Accidents",
		indexPath:      "/accidents",
		timestampField: "occurred_at",
		fields: []FormField{
			{Name: "occurred_at", Label: "Occurred at", Input: "datetime", Required: true},
			{Name: "accident_type", Label: "Type", Input: "select", Required: true, Options: typeOptions},
			{Name: "notes", Label: "Notes", Input: "textarea"},
		},
		repo: handler.repositories.Accidents,
		bind: func(values map[string]string, entry *models.Accident) models.ValidationErrors {
			entry.OccurredAt = parseFormTime(values["occurred_at"], handler.location)
			entry.AccidentType = values["accident_type"]
			entry.Notes = values["notes"]
			return entry.Validate()
		},
		formValues: func(entry models.Accident) map[string]string {
			return map[string]string{
				"occurred_at":   formatFormTime(entry.OccurredAt, handler.location),
				"accident_type": entry.AccidentType,
				"notes":         entry.Notes,
			}
		},
		row: func(entry models.Accident) EntryRow {
			title := "Accident"
			if label, ok := entry.AccidentTypeLabel(); ok {
				title = label + " accident"
			}
			return EntryRow{
				ID:         entry.ID,
				Kind:       "accident",
				KindLabel:  "Accident",
				Timestamp:  entry.OccurredAt,
				Title:      title,
				Notes:      entry.Notes,
				EditPath:   fmt.Sprintf("/accidents/%d/edit", entry.ID),
				DeletePath: fmt.Sprintf("/accidents/%d", entry.ID),
			}
		},
	}
}

func (handler *Handler) miralaxCapResource() entryResource[models.MiralaxCap] {
	amountOptions := make([]FormOption, 0, len(models.AmountOptions()))
	for _, amount := range models.AmountOptions() {
		amountOptions = append(amountOptions, FormOption{
			Value: fmt.Sprintf("%g", amount),
			Label: models.AmountLabelFor(amount),
		})
	}

	return entryResource[models.MiralaxCap]{
		kind:           "miralax_cap",
		kindLabel:      "Miralax",
		displayName:    "Miralax cap",
		pluralTitle:    "Miralax Caps",
		indexPath:      "/miralax_caps",
		timestampField: "occurred_at",
		fields: []FormField{
			{Name: "occurred_at", Label: "Occurred at", Input: "datetime", Required: true},
			{Name: "amount", Label: "Amount", Input: "select", Required: true, Options: amountOptions},
			{Name: "notes", Label: "Notes", Input: "textarea"},
		},
		repo: handler.repositories.MiralaxCaps,
		bind: func(values map[string]string, entry *models.MiralaxCap) models.ValidationErrors {
			entry.OccurredAt = parseFormTime(values["occurred_at"], handler.location)
			entry.Amount = parseAmount(values["amount"])
			entry.Notes = values["notes"]
			return entry.Validate()
		},
		formValues: func(entry models.MiralaxCap) map[string]string {
			return map[string]string{
				"occurred_at": formatFormTime(entry.OccurredAt, handler.location),
				"amount":      fmt.Sprintf("%g", entry.Amount),
				"notes":       entry.Notes,
			}
		},
		row: func(entry models.MiralaxCap) EntryRow {
			return EntryRow{
				ID:         entry.ID,
				Kind:       "miralax_cap",
				KindLabel:  "Miralax",
				Timestamp:  entry.OccurredAt,
				Title:      entry.AmountLabel(),
				Notes:      entry.Notes,
				EditPath:   fmt.Sprintf("/miralax_caps/%d/edit", entry.ID),
				DeletePath: fmt.Sprintf("/miralax_caps/%d", entry.ID),
			}
		},
	}
}
