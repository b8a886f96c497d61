// Package books exposes the uniform CRUD routes for bookkeeping documents.
// One generic registration covers invoices, estimates, expenses, vendors,
// projects, and timesheets.
package books

import (
	"reflect"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/omaradel/ledgerbook/pkg/config"
	bookssvc "github.com/omaradel/ledgerbook/pkg/service/books"
	"github.com/omaradel/ledgerbook/webapi/common"
	"github.com/omaradel/ledgerbook/webapi/middleware"
)

// Register mounts the CRUD routes for one document collection at path:
//   - POST   path       : create
//   - GET    path       : list
//   - GET    path/:id   : get by id
//   - PUT    path/:id   : partial update
//   - DELETE path/:id   : delete
func Register[T any](app *fiber.App, path string, svc *bookssvc.Service[T], cfg *config.App) {
	protected := middleware.Protected(cfg.Jwt)
	app.Post(path, protected, Create(svc))
	app.Get(path, protected, List(svc))
	app.Get(path+"/:id", protected, Get(svc))
	app.Put(path+"/:id", protected, Update(svc))
	app.Delete(path+"/:id", protected, Delete(svc))
}

// Create returns a handler that persists a new document.
func Create[T any](svc *bookssvc.Service[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[T](c)
		if input == nil {
			return err
		}
		assignID(input)
		if err := svc.Create(c.Context(), input); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create resource", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created", input)
	}
}

// Get returns a handler that fetches one document by id.
func Get[T any](svc *bookssvc.Service[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid ID", nil, fiber.StatusBadRequest)
		}
		entity, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch resource", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fetched", entity)
	}
}

// List returns a handler that lists every document in the collection.
func List[T any](svc *bookssvc.Service[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entities, err := svc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list resources", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fetched", entities)
	}
}

// Update returns a handler that applies a partial patch.
func Update[T any](svc *bookssvc.Service[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid ID", nil, fiber.StatusBadRequest)
		}
		patch := map[string]any{}
		if err := c.BodyParser(&patch); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", nil, err.Error(), fiber.StatusBadRequest)
		}
		entity, err := svc.Update(c.Context(), id, patch)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update resource", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Updated", entity)
	}
}

// Delete returns a handler that removes one document by id.
func Delete[T any](svc *bookssvc.Service[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid ID", nil, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete resource", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// assignID overwrites the ID field with a fresh UUID. Clients never choose
// document ids.
func assignID(entity any) {
	v := reflect.ValueOf(entity).Elem()
	field := v.FieldByName("ID")
	if !field.IsValid() || field.Type() != reflect.TypeOf(uuid.UUID{}) {
		return
	}
	field.Set(reflect.ValueOf(uuid.New()))
}
