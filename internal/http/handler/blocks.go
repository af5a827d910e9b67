package handler

import (
	"github.com/gofiber/fiber/v2"

	"pagebuilder/internal/editor"
	"pagebuilder/internal/model"
	"pagebuilder/internal/service"
)

type addBlockRequest struct {
	Type    string `json:"type"`
	AfterID string `json:"afterId"`
}

type addBlockResponse struct {
	*service.PageView
	Block *model.Block `json:"block,omitempty"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type resizeRequest struct {
	ColumnSpan int `json:"columnSpan"`
}

// dropRequest targets either a grid cell or a pointer offset inside a
// container of the given pixel width.
type dropRequest struct {
	Column *int     `json:"column"`
	Row    *int     `json:"row"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
}

// AddBlock godoc
// @Summary Add a block
// @Description Inserts a block with default content after afterId, or appends it.
// @Tags blocks
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param body body addBlockRequest true "block kind and anchor"
// @Success 201 {object} addBlockResponse
// @Success 200 {object} addBlockResponse "layout locked, nothing added"
// @Failure 400 {object} errorPayload
// @Router /pages/{id}/blocks [post]
func AddBlock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req addBlockRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		v, b, err := svc.AddBlock(c.UserContext(), c.Params("id"), model.BlockType(req.Type), req.AfterID)
		if err != nil {
			return writeServiceError(c, err)
		}
		status := fiber.StatusOK
		if v.Changed {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(addBlockResponse{PageView: v, Block: b})
	}
}

// UpdateBlock godoc
// @Summary Update block fields
// @Tags blocks
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param blockId path string true "block id"
// @Param patch body model.BlockPatch true "fields to change"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/blocks/{blockId} [patch]
func UpdateBlock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.BlockPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		v, err := svc.UpdateBlock(c.UserContext(), c.Params("id"), c.Params("blockId"), patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// DeleteBlock godoc
// @Summary Delete a block
// @Tags blocks
// @Produce json
// @Param id path string true "page id"
// @Param blockId path string true "block id"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/blocks/{blockId} [delete]
func DeleteBlock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.DeleteBlock(c.UserContext(), c.Params("id"), c.Params("blockId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// MoveBlock godoc
// @Summary Swap a block with its neighbour
// @Tags blocks
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param blockId path string true "block id"
// @Param body body moveRequest true "up or down"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/blocks/{blockId}/move [post]
func MoveBlock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req moveRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		v, err := svc.MoveBlock(c.UserContext(), c.Params("id"), c.Params("blockId"), editor.Direction(req.Direction))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// ResizeBlock godoc
// @Summary Change a block's column span
// @Tags blocks
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param blockId path string true "block id"
// @Param body body resizeRequest true "new span"
// @Success 200 {object} service.PageView
// @Router /pages/{id}/blocks/{blockId}/resize [post]
func ResizeBlock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req resizeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		v, err := svc.ResizeBlock(c.UserContext(), c.Params("id"), c.Params("blockId"), req.ColumnSpan)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// DropBlock godoc
// @Summary Place a block on the grid
// @Description Accepts column and row, or a pointer offset x, y inside a container of pixel width.
// @Tags blocks
// @Accept json
// @Produce json
// @Param id path string true "page id"
// @Param blockId path string true "block id"
// @Param body body dropRequest true "target cell or pointer"
// @Success 200 {object} service.PageView
// @Failure 400 {object} errorPayload
// @Router /pages/{id}/blocks/{blockId}/drop [post]
func DropBlock(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dropRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		var (
			v   *service.PageView
			err error
		)
		id, blockID := c.Params("id"), c.Params("blockId")
		switch {
		case req.Column != nil && req.Row != nil:
			v, err = svc.DropBlock(c.UserContext(), id, blockID, *req.Column, *req.Row)
		case req.X != nil && req.Y != nil && req.Width != nil:
			v, err = svc.DropBlockAt(c.UserContext(), id, blockID, *req.X, *req.Y, *req.Width)
		default:
			return writeError(c, fiber.StatusBadRequest, "INVALID_TARGET", "column and row, or x, y and width are required")
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}
