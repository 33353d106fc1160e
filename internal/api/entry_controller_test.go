package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/gutlog/internal/db"
	"github.com/terraincognita07/gutlog/internal/models"
)

func mustCount[T any](t *testing.T, repo *db.EntryRepository[T]) int64 {
	t.Helper()
	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count entries: %v", err)
	}
	return count
}

func TestCreateFoodEntryRedirectsToIndex(t *testing.T) {
	app, repos := newEntryTestApp(t)

	form := url.Values{
		"consumed_at": {"2025-03-10T08:30"},
		"description": {"Oatmeal with banana"},
	}
	response := submitForm(t, app, "/food_entries", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusFound {
		t.Fatalf("expected status 302, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/food_entries" {
		t.Fatalf("expected redirect to /food_entries, got %q", location)
	}
	if count := mustCount(t, repos.FoodEntries); count != 1 {
		t.Fatalf("expected 1 food entry after create, got %d", count)
	}

	flashSet := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == flashCookieName && cookie.Value != "" {
			flashSet = true
		}
	}
	if !flashSet {
		t.Fatal("expected flash cookie on successful create")
	}
}

func TestCreateHonorsSafeReturnTo(t *testing.T) {
	app, _ := newEntryTestApp(t)

	form := url.Values{
		"occurred_at": {"2025-03-10T09:00"},
		"amount":      {"0.5"},
		"return_to":   {"/timeline"},
	}
	response := submitForm(t, app, "/miralax_caps", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusFound {
		t.Fatalf("expected status 302, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/timeline" {
		t.Fatalf("expected redirect to /timeline, got %q", location)
	}
}

func TestCreateFallsBackOnUnsafeReturnTo(t *testing.T) {
	app, _ := newEntryTestApp(t)

	form := url.Values{
		"occurred_at":   {"2025-03-10T07:45"},
		"accident_type": {"pee"},
		"return_to":     {"/accidents/9/edit"},
	}
	response := submitForm(t, app, "/accidents", form)
	defer response.Body.Close()

	if location := response.Header.Get("Location"); location != "/accidents" {
		t.Fatalf("expected fallback redirect to /accidents, got %q", location)
	}
}

func TestCreateInvalidFoodEntryRerendersForm(t *testing.T) {
	app, repos := newEntryTestApp(t)

	form := url.Values{
		"consumed_at": {"2025-03-10T08:30"},
		"description": {"   "},
	}
	response := submitForm(t, app, "/food_entries", form)

	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", response.StatusCode)
	}
	body := readResponseBody(t, response)
	if !strings.Contains(body, "can&#39;t be blank") {
		t.Fatalf("expected blank-description error in body, got:\n%s", body)
	}
	if count := mustCount(t, repos.FoodEntries); count != 0 {
		t.Fatalf("expected no food entries after invalid create, got %d", count)
	}
}

func TestUpdateRejectsOutOfScaleSeverity(t *testing.T) {
	app, repos := newEntryTestApp(t)

	severity := 3
	entry := models.BowelMovement{
		OccurredAt: time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC),
		Severity:   &severity,
	}
	if err := repos.BowelMovements.Create(&entry); err != nil {
		t.Fatalf("seed bowel movement: %v", err)
	}

	form := url.Values{
		"_method":     {"PATCH"},
		"occurred_at": {"2025-03-10T07:00"},
		"severity":    {"9"},
	}
	response := submitForm(t, app, "/bowel_movements/1", form)

	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", response.StatusCode)
	}
	body := readResponseBody(t, response)
	if !strings.Contains(body, "is not included in the list") {
		t.Fatalf("expected inclusion error in body, got:\n%s", body)
	}

	reloaded, found, err := repos.BowelMovements.Find(entry.ID)
	if err != nil || !found {
		t.Fatalf("reload bowel movement: found=%v err=%v", found, err)
	}
	if reloaded.Severity == nil || *reloaded.Severity != 3 {
		t.Fatalf("expected severity untouched at 3, got %v", reloaded.Severity)
	}
}

func TestUpdateFoodEntryViaMethodOverride(t *testing.T) {
	app, repos := newEntryTestApp(t)

	entry := models.FoodEntry{
		ConsumedAt:  time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
		Description: "Toast",
	}
	if err := repos.FoodEntries.Create(&entry); err != nil {
		t.Fatalf("seed food entry: %v", err)
	}

	form := url.Values{
		"_method":     {"PATCH"},
		"consumed_at": {"2025-03-10T08:30"},
		"description": {"Toast with jam"},
	}
	response := submitForm(t, app, "/food_entries/1", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusFound {
		t.Fatalf("expected status 302, got %d", response.StatusCode)
	}

	reloaded, found, err := repos.FoodEntries.Find(entry.ID)
	if err != nil || !found {
		t.Fatalf("reload food entry: found=%v err=%v", found, err)
	}
	if reloaded.Description != "Toast with jam" {
		t.Fatalf("expected updated description, got %q", reloaded.Description)
	}
}

func TestDestroyEntryViaMethodOverride(t *testing.T) {
	app, repos := newEntryTestApp(t)

	entry := models.GiSymptom{
		OccurredAt:  time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		SymptomType: "Bloating",
	}
	if err := repos.GiSymptoms.Create(&entry); err != nil {
		t.Fatalf("seed gi symptom: %v", err)
	}

	form := url.Values{
		"_method":   {"DELETE"},
		"return_to": {"/gi_symptoms"},
	}
	response := submitForm(t, app, "/gi_symptoms/1", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusFound {
		t.Fatalf("expected status 302, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/gi_symptoms" {
		t.Fatalf("expected redirect to /gi_symptoms, got %q", location)
	}
	if count := mustCount(t, repos.GiSymptoms); count != 0 {
		t.Fatalf("expected no gi symptoms after delete, got %d", count)
	}
}

func TestEditUnknownEntryReturns404(t *testing.T) {
	app, _ := newEntryTestApp(t)

	response := getPage(t, app, "/food_entries/999/edit")
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestIndexListsNewestFirst(t *testing.T) {
	app, repos := newEntryTestApp(t)

	older := models.FoodEntry{
		ConsumedAt:  time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC),
		Description: "Yesterday porridge",
	}
	newer := models.FoodEntry{
		ConsumedAt:  time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		Description: "Today smoothie",
	}
	if err := repos.FoodEntries.Create(&older); err != nil {
		t.Fatalf("seed older entry: %v", err)
	}
	if err := repos.FoodEntries.Create(&newer); err != nil {
		t.Fatalf("seed newer entry: %v", err)
	}

	response := getPage(t, app, "/food_entries")
	body := readResponseBody(t, response)

	newerIndex := strings.Index(body, "Today smoothie")
	olderIndex := strings.Index(body, "Yesterday porridge")
	if newerIndex < 0 || olderIndex < 0 {
		t.Fatalf("expected both descriptions in body, got:\n%s", body)
	}
	if newerIndex > olderIndex {
		t.Fatal("expected the newer entry listed before the older one")
	}
}

func TestNewFormPrefillsNoonForRequestedDate(t *testing.T) {
	app, _ := newEntryTestApp(t)

	response := getPage(t, app, "/food_entries/new?date=2025-03-10")
	body := readResponseBody(t, response)

	if !strings.Contains(body, "2025-03-10T12:00") {
		t.Fatalf("expected noon prefill for 2025-03-10 in body, got:\n%s", body)
	}
}

func TestNewFormIgnoresMalformedDate(t *testing.T) {
	app, _ := newEntryTestApp(t)

	response := getPage(t, app, "/food_entries/new?date=not-a-date")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}
