package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/gutlog/internal/db"
	"github.com/terraincognita07/gutlog/internal/models"
	"github.com/terraincognita07/gutlog/internal/services"
)

// entryResource is the per-type configuration the generic CRUD flow runs on:
// the storage accessor, the accepted form fields, the default listing route,
// the display name for notices, and the primary timestamp field name.
type entryResource[T any] struct {
	kind           string // timeline tag, e.g. "food"
	kindLabel      string // short badge text, e.g. "Food"
	displayName    string // notice subject, e.g. "Food entry"
	pluralTitle    string // index heading, e.g. "Food Entries"
	indexPath      string // default listing route, e.g. "/food_entries"
	timestampField string // form name of the primary timestamp

	fields []FormField
	repo   *db.EntryRepository[T]

	// bind assigns the submitted values to the entry and validates it.
	bind func(values map[string]string, entry *T) models.ValidationErrors
	// formValues projects an entry back into form values for editing.
	formValues func(entry T) map[string]string
	// row projects an entry into its list/timeline row.
	row func(entry T) EntryRow
}

func registerEntryRoutes[T any](app *fiber.App, handler *Handler, resource entryResource[T]) {
	app.Get(resource.indexPath, func(c *fiber.Ctx) error {
		return listEntries(handler, resource, c)
	})
	app.Get(resource.indexPath+"/new", func(c *fiber.Ctx) error {
		return newEntry(handler, resource, c)
	})
	app.Post(resource.indexPath, func(c *fiber.Ctx) error {
		return createEntry(handler, resource, c)
	})
	app.Get(resource.indexPath+"/:id/edit", func(c *fiber.Ctx) error {
		return editEntry(handler, resource, c)
	})
	update := func(c *fiber.Ctx) error {
		return updateEntry(handler, resource, c)
	}
	app.Patch(resource.indexPath+"/:id", update)
	app.Put(resource.indexPath+"/:id", update)
	app.Delete(resource.indexPath+"/:id", func(c *fiber.Ctx) error {
		return destroyEntry(handler, resource, c)
	})
}

func listEntries[T any](handler *Handler, resource entryResource[T], c *fiber.Ctx) error {
	entries, err := resource.repo.ListRecent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entries")
	}

	rows := make([]EntryRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, resource.row(entry))
	}

	return handler.render(c, "entries", fiber.Map{
		"Title":     resource.pluralTitle,
		"Rows":      rows,
		"IndexPath": resource.indexPath,
		"NewPath":   resource.indexPath + "/new",
	})
}

func newEntry[T any](handler *Handler, resource entryResource[T], c *fiber.Ctx) error {
	values := map[string]string{}
	// An unparseable date is ignored: the form simply starts blank.
	if raw := c.Query("date"); raw != "" {
		if day, err := services.ParseDay(raw, handler.location); err == nil {
			noon := services.NoonOn(day, handler.location)
			values[resource.timestampField] = formatFormTime(noon, handler.location)
		}
	}

	returnTo := handler.resolveReturnTo(c, resource.indexPath)
	return renderEntryForm(handler, resource, c, fiber.StatusOK, entryFormView{
		Title:    "New " + strings.ToLower(resource.displayName),
		Action:   resource.indexPath,
		Values:   values,
		ReturnTo: returnTo,
	})
}

func createEntry[T any](handler *Handler, resource entryResource[T], c *fiber.Ctx) error {
	values := collectFormValues(resource, c)
	var entry T
	errs := resource.bind(values, &entry)
	returnTo := handler.resolveReturnTo(c, resource.indexPath)

	if errs.Any() {
		return renderEntryForm(handler, resource, c, fiber.StatusUnprocessableEntity, entryFormView{
			Title:    "New " + strings.ToLower(resource.displayName),
			Action:   resource.indexPath,
			Values:   values,
			Errors:   errs,
			ReturnTo: returnTo,
		})
	}

	if err := resource.repo.Create(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save entry")
	}

	setFlashCookie(c, FlashPayload{Notice: resource.displayName + " was successfully created."})
	return c.Redirect(returnTo, fiber.StatusFound)
}

func editEntry[T any](handler *Handler, resource entryResource[T], c *fiber.Ctx) error {
	entry, found, err := findEntry(resource, c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entry")
	}
	if !found {
		return handler.NotFound(c)
	}

	returnTo := handler.resolveReturnTo(c, resource.indexPath)
	return renderEntryForm(handler, resource, c, fiber.StatusOK, entryFormView{
		Title:    "Edit " + strings.ToLower(resource.displayName),
		Action:   entryPath(resource, resource.row(entry).ID),
		Method:   "patch",
		Values:   resource.formValues(entry),
		ReturnTo: returnTo,
	})
}

func updateEntry[T any](handler *Handler, resource entryResource[T], c *fiber.Ctx) error {
	entry, found, err := findEntry(resource, c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entry")
	}
	if !found {
		return handler.NotFound(c)
	}

	values := collectFormValues(resource, c)
	updated := entry
	errs := resource.bind(values, &updated)
	returnTo := handler.resolveReturnTo(c, resource.indexPath)

	if errs.Any() {
		return renderEntryForm(handler, resource, c, fiber.StatusUnprocessableEntity, entryFormView{
			Title:    "Edit " + strings.ToLower(resource.displayName),
			Action:   entryPath(resource, resource.row(entry).ID),
			Method:   "patch",
			Values:   values,
			Errors:   errs,
			ReturnTo: returnTo,
		})
	}

	if err := resource.repo.Save(&updated); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save entry")
	}

	setFlashCookie(c, FlashPayload{Notice: resource.displayName + " was successfully updated."})
	return c.Redirect(returnTo, fiber.StatusFound)
}

func destroyEntry[T any](handler *Handler, resource entryResource[T], c *fiber.Ctx) error {
	entry, found, err := findEntry(resource, c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entry")
	}
	if !found {
		return handler.NotFound(c)
	}

	// Resolved before the delete so the target never derives from the
	// record that is about to disappear.
	returnTo := handler.resolveReturnTo(c, resource.indexPath)

	if err := resource.repo.Delete(resource.row(entry).ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to delete entry")
	}

	setFlashCookie(c, FlashPayload{Notice: resource.displayName + " was successfully deleted."})
	return c.Redirect(returnTo, fiber.StatusFound)
}

func findEntry[T any](resource entryResource[T], c *fiber.Ctx) (T, bool, error) {
	id, ok := parseEntryID(c)
	if !ok {
		var zero T
		return zero, false, nil
	}
	return resource.repo.Find(id)
}

func collectFormValues[T any](resource entryResource[T], c *fiber.Ctx) map[string]string {
	values := make(map[string]string, len(resource.fields))
	for _, field := range resource.fields {
		values[field.Name] = strings.TrimSpace(c.FormValue(field.Name))
	}
	return values
}

func entryPath[T any](resource entryResource[T], id uint) string {
	return fmt.Sprintf("%s/%d", resource.indexPath, id)
}

type entryFormView struct {
	Title    string
	Action   string
	Method   string // "" for create, "patch" for update
	Values   map[string]string
	Errors   models.ValidationErrors
	ReturnTo string
}

func renderEntryForm[T any](handler *Handler, resource entryResource[T], c *fiber.Ctx, status int, view entryFormView) error {
	return handler.renderStatus(c, status, "entry_form", fiber.Map{
		"Title":      view.Title,
		"Action":     view.Action,
		"Method":     view.Method,
		"Fields":     resource.fields,
		"Values":     view.Values,
		"Errors":     view.Errors,
		"ReturnTo":   view.ReturnTo,
		"CancelPath": view.ReturnTo,
	})
}
