package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/gutlog/internal/models"
)

func TestDayViewShowsOnlySelectedDay(t *testing.T) {
	app, repos := newEntryTestApp(t)

	onDay := models.FoodEntry{
		ConsumedAt:  time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		Description: "Scrambled eggs",
	}
	dayBefore := models.FoodEntry{
		ConsumedAt:  time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC),
		Description: "Leftover pasta",
	}
	for _, entry := range []*models.FoodEntry{&onDay, &dayBefore} {
		if err := repos.FoodEntries.Create(entry); err != nil {
			t.Fatalf("seed food entry: %v", err)
		}
	}

	response := getPage(t, app, "/?date=2025-03-10")
	body := readResponseBody(t, response)

	if !strings.Contains(body, "Scrambled eggs") {
		t.Fatalf("expected same-day entry in body, got:\n%s", body)
	}
	if strings.Contains(body, "Leftover pasta") {
		t.Fatal("expected previous-day entry to be filtered out")
	}
}

func TestDayViewIncludesStartExcludesNextMidnight(t *testing.T) {
	app, repos := newEntryTestApp(t)

	atMidnight := models.Accident{
		OccurredAt:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AccidentType: models.AccidentPee,
	}
	atNextMidnight := models.Accident{
		OccurredAt:   time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		AccidentType: models.AccidentPoop,
		Notes:        "after the cutoff",
	}
	for _, entry := range []*models.Accident{&atMidnight, &atNextMidnight} {
		if err := repos.Accidents.Create(entry); err != nil {
			t.Fatalf("seed accident: %v", err)
		}
	}

	response := getPage(t, app, "/?date=2025-03-10")
	body := readResponseBody(t, response)

	if !strings.Contains(body, "Pee accident") {
		t.Fatalf("expected midnight entry in body, got:\n%s", body)
	}
	if strings.Contains(body, "after the cutoff") {
		t.Fatal("expected next-midnight entry to be excluded")
	}
}

func TestDayViewFallsBackToTodayOnBadDate(t *testing.T) {
	app, _ := newEntryTestApp(t)

	response := getPage(t, app, "/?date=garbage")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func TestTimelineMergesAllKindsNewestFirst(t *testing.T) {
	app, repos := newEntryTestApp(t)

	food := models.FoodEntry{
		ConsumedAt:  time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		Description: "Morning oats",
	}
	if err := repos.FoodEntries.Create(&food); err != nil {
		t.Fatalf("seed food entry: %v", err)
	}
	symptom := models.GiSymptom{
		OccurredAt:  time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		SymptomType: "Cramping",
	}
	if err := repos.GiSymptoms.Create(&symptom); err != nil {
		t.Fatalf("seed gi symptom: %v", err)
	}
	capEntry := models.MiralaxCap{
		OccurredAt: time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
		Amount:     1,
	}
	if err := repos.MiralaxCaps.Create(&capEntry); err != nil {
		t.Fatalf("seed miralax cap: %v", err)
	}

	response := getPage(t, app, "/timeline")
	body := readResponseBody(t, response)

	capIndex := strings.Index(body, "1 cap")
	symptomIndex := strings.Index(body, "Cramping")
	foodIndex := strings.Index(body, "Morning oats")
	if capIndex < 0 || symptomIndex < 0 || foodIndex < 0 {
		t.Fatalf("expected all three entries in body, got:\n%s", body)
	}
	if !(capIndex < symptomIndex && symptomIndex < foodIndex) {
		t.Fatal("expected timeline ordered newest first across kinds")
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newEntryTestApp(t)

	response := getPage(t, app, "/healthz")
	body := readResponseBody(t, response)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if !strings.Contains(body, "ok") {
		t.Fatalf("expected ok status in body, got %q", body)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	app, _ := newEntryTestApp(t)

	response := getPage(t, app, "/no-such-page")
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}
