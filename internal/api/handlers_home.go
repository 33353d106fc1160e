package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/gutlog/internal/services"
)

// ShowDay renders the combined timeline for one calendar day. A missing or
// unparseable date parameter falls back to today in the configured zone.
func (handler *Handler) ShowDay(c *fiber.Ctx) error {
	selectedDay := time.Now().In(handler.location)
	if raw := c.Query("date"); raw != "" {
		if day, err := services.ParseDay(raw, handler.location); err == nil {
			selectedDay = day
		}
	}

	dayStart, dayEnd := services.DayRange(selectedDay, handler.location)
	rows, err := handler.mergedRows(true, dayStart, dayEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entries")
	}

	selectedDate := services.FormatDay(dayStart, handler.location)
	dayPath := "/?date=" + selectedDate

	return handler.render(c, "home", fiber.Map{
		"Title":          "Journal",
		"Rows":           rows,
		"SelectedDate":   selectedDate,
		"DayLabel":       dayStart.Format("Monday, January 2 2006"),
		"IsToday":        services.WithinDay(time.Now().In(handler.location), dayStart, dayEnd),
		"PrevPath":       "/?date=" + services.FormatDay(dayStart.AddDate(0, 0, -1), handler.location),
		"NextPath":       "/?date=" + services.FormatDay(dayStart.AddDate(0, 0, 1), handler.location),
		"AddLinks":       handler.addLinks(selectedDate, dayPath),
		"DayReturnParam": url.QueryEscape(dayPath),
	})
}

// addLinks builds "log something on this date" links that carry the selected
// date for timestamp prefill and return to the same day view afterwards.
func (handler *Handler) addLinks(selectedDate string, dayPath string) []AddLink {
	returnTo := url.QueryEscape(dayPath)
	link := func(label string, indexPath string) AddLink {
		return AddLink{
			Label: label,
			Path:  fmt.Sprintf("%s/new?date=%s&return_to=%s", indexPath, selectedDate, returnTo),
		}
	}
	return []AddLink{
		link("Food", "/food_entries"),
		link("Bowel movement", "/bowel_movements"),
		link("GI symptom", "/gi_symptoms"),
		link("Accident", "/accidents"),
		link("Miralax", "/miralax_caps"),
	}
}

// mergedRows fetches every entry kind, optionally limited to one day, and
// merges them newest first.
func (handler *Handler) mergedRows(onDay bool, dayStart time.Time, dayEnd time.Time) ([]EntryRow, error) {
	foodItems, err := resourceItems(handler.foodEntryResource(), onDay, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	bowelItems, err := resourceItems(handler.bowelMovementResource(), onDay, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	symptomItems, err := resourceItems(handler.giSymptomResource(), onDay, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	accidentItems, err := resourceItems(handler.accidentResource(), onDay, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	capItems, err := resourceItems(handler.miralaxCapResource(), onDay, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	merged := services.MergeTimeline(foodItems, bowelItems, symptomItems, accidentItems, capItems)
	rows := make([]EntryRow, 0, len(merged))
	for _, item := range merged {
		rows = append(rows, item.Entry.(EntryRow))
	}
	return rows, nil
}

// resourceItems lists one kind's entries projected to rows and tagged for the
// merge.
func resourceItems[T any](resource entryResource[T], onDay bool, dayStart time.Time, dayEnd time.Time) ([]services.TimelineItem, error) {
	var entries []T
	var err error
	if onDay {
		entries, err = resource.repo.ListOnDay(dayStart, dayEnd)
	} else {
		entries, err = resource.repo.ListRecent()
	}
	if err != nil {
		return nil, err
	}

	rows := make([]EntryRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, resource.row(entry))
	}
	return services.TagEntries(resource.kind, rows, func(row EntryRow) time.Time {
		return row.Timestamp
	}), nil
}
