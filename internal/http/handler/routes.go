package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"pagebuilder/internal/service"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, store Pinger, svc service.PageService) {
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html", fiber.StatusTemporaryRedirect)
	})

	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	pages := app.Group("/pages")
	pages.Get("/", ListPages(svc))
	pages.Post("/", CreatePage(svc))
	pages.Post("/import", ImportPage(svc))

	pages.Get("/:id", GetPage(svc))
	pages.Patch("/:id", UpdatePageMeta(svc))
	pages.Delete("/:id", DeletePage(svc))
	pages.Post("/:id/save", SavePage(svc))
	pages.Delete("/:id/session", ClosePage(svc))
	pages.Post("/:id/lock", ToggleLayoutLock(svc))
	pages.Put("/:id/mode", SetEditMode(svc))
	pages.Put("/:id/selection", SelectBlock(svc))
	pages.Get("/:id/layout", GetLayout(svc))
	pages.Get("/:id/export", ExportPage(svc))
	pages.Post("/:id/archive", ArchivePage(svc))
	pages.Get("/:id/archives", ListArchives(svc))
	pages.Post("/:id/duplicate", DuplicatePage(svc))

	pages.Post("/:id/blocks", AddBlock(svc))
	pages.Patch("/:id/blocks/:blockId", UpdateBlock(svc))
	pages.Delete("/:id/blocks/:blockId", DeleteBlock(svc))
	pages.Post("/:id/blocks/:blockId/move", MoveBlock(svc))
	pages.Post("/:id/blocks/:blockId/resize", ResizeBlock(svc))
	pages.Post("/:id/blocks/:blockId/drop", DropBlock(svc))
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Checks that the page store is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
