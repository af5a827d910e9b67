package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pagebuilder/internal/model"
	"pagebuilder/internal/service"
)

type editModeRequest struct {
	EditMode bool `json:"editMode"`
}

type selectRequest struct {
	BlockID string `json:"blockId"`
}

// ListPages godoc
// @Summary List stored pages
// @Tags pages
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.PageListResult
// @Failure 400 {object} errorPayload
// @Router /pages [get]
func ListPages(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreatePage godoc
// @Summary Create a page from the default template
// @Tags pages
// @Produce json
// @Success 201 {object} service.PageView
// @Router /pages [post]
func CreatePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.Create(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

// ImportPage godoc
// @Summary Import a page
// @Description Imports exported page JSON from the request body, or from an archive object when the archive query parameter is set.
// @Tags pages
// @Accept json
// @Produce json
// @Param archive query string false "archive object key"
// @Success 201 {object} service.PageView
// @Failure 400 {object} errorPayload
// @Router /pages/import [post]
func ImportPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			v   *service.PageView
			err error
		)
		if key := c.Query("archive"); key != "" {
			v, err = svc.ImportArchive(c.UserContext(), key)
		} else {
			v, err = svc.Import(c.UserContext(), c.Body())
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

// GetPage godoc
// @Summary Open a page
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 200 {object} service.PageView
// @Failure 404 {object} errorPayload
// @Router /pages/{id} [get]
func GetPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.Open(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// UpdatePageMeta godoc
// @Summary Update page title, subtitle, category or layout lock
// @Tags pages
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param patch body model.PageMetaPatch true "fields to change"
// @Success 200 {object} service.PageView
// @Router /pages/{id} [patch]
func UpdatePageMeta(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.PageMetaPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		v, err := svc.UpdateMeta(c.UserContext(), c.Params("id"), patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// DeletePage godoc
// @Summary Delete a page
// @Tags pages
// @Param id path string true "page id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /pages/{id} [delete]
func DeletePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SavePage godoc
// @Summary Persist the page's current state
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/save [post]
func SavePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.Save(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// ClosePage godoc
// @Summary Discard unsaved edits
// @Tags pages
// @Param id path string true "page id"
// @Success 204
// @Router /pages/{id}/session [delete]
func ClosePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Close(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToggleLayoutLock godoc
// @Summary Toggle the layout lock
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/lock [post]
func ToggleLayoutLock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.ToggleLayoutLock(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// SetEditMode godoc
// @Summary Switch edit mode
// @Tags pages
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param body body editModeRequest true "mode"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/mode [put]
func SetEditMode(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req editModeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		v, err := svc.SetEditMode(c.UserContext(), c.Params("id"), req.EditMode)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// SelectBlock godoc
// @Summary Select a block, or clear the selection with an empty id
// @Tags pages
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param body body selectRequest true "selection"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/selection [put]
func SelectBlock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req selectRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		v, err := svc.Select(c.UserContext(), c.Params("id"), req.BlockID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// GetLayout godoc
// @Summary Blocks in render order with their grid cells
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 200 {array} service.PlacedBlock
// @Router /pages/{id}/layout [get]
func GetLayout(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		placed, err := svc.Layout(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"columns": 12, "data": placed})
	}
}

// ExportPage godoc
// @Summary Export a page as JSON
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 200 {object} model.Document
// @Router /pages/{id}/export [get]
func ExportPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		text, err := svc.Export(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "page-"+id+".json"))
		c.Type("json")
		return c.Send(text)
	}
}

// ArchivePage godoc
// @Summary Archive the export to object storage
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 201 {object} service.ArchiveResult
// @Failure 501 {object} errorPayload
// @Router /pages/{id}/archive [post]
func ArchivePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Archive(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// ListArchives godoc
// @Summary List the archives taken of a page
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 200 {array} storage.Archive
// @Failure 501 {object} errorPayload
// @Router /pages/{id}/archives [get]
func ListArchives(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		as, err := svc.ListArchives(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": as})
	}
}

// DuplicatePage godoc
// @Summary Duplicate a page
// @Tags pages
// @Produce json
// @Param id path string true "page id"
// @Success 201 {object} service.PageView
// @Router /pages/{id}/duplicate [post]
func DuplicatePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.Duplicate(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}
