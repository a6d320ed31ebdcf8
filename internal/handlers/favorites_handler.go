package handlers

import (
	"errors"
	"strconv"

	"favorites-backend/internal/services"
	"favorites-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FavoritesHandler struct {
	service services.FavoritesService
	exports services.ExportService
	logger  *logrus.Logger
}

func NewFavoritesHandler(service services.FavoritesService, exports services.ExportService, logger *logrus.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
		exports: exports,
		logger:  logger,
	}
}

// CreateList godoc
// @Summary Create a favorite list
// @Description Resolve each catalog film id, store new films and characters, and save a new list
// @Tags favorites
// @Accept json
// @Produce json
// @Param list body CreateListRequest true "List name and catalog film ids"
// @Success 201 {object} ListResponse "List created"
// @Failure 404 {object} utils.ErrorBody "Film not found"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /favorites [post]
func (h *FavoritesHandler) CreateList(c *fiber.Ctx) error {
	ctx := c.Context()

	var req CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	list, err := h.service.CreateList(ctx, req.ListName, req.Films)
	if err != nil {
		h.logger.WithError(err).WithField("films", req.Films).Error("Failed to create list")
		return mapServiceError(err)
	}

	return utils.JSONResponse(c, fiber.StatusCreated, ListResponse{List: list})
}

// SearchLists godoc
// @Summary Search favorite lists
// @Description Page through saved lists, optionally filtered by a substring of the list name
// @Tags favorites
// @Accept json
// @Produce json
// @Param search query string false "Substring of the list name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} ListsResponse "List summaries"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /favorites [get]
func (h *FavoritesHandler) SearchLists(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	search := c.Query("search", "")

	result, err := h.service.SearchLists(ctx, search, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to search lists")
		return mapServiceError(err)
	}

	return utils.JSONResponse(c, fiber.StatusOK, ListsResponse{
		Lists: result.Lists,
		Meta:  utils.CreatePaginationMeta(result.Page, result.Limit, result.Total),
	})
}

// GetList godoc
// @Summary Get a favorite list
// @Description Get one list with its films and every film's characters
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} ListResponse "List details"
// @Failure 404 {object} utils.ErrorBody "List not found"
// @Router /favorites/{id} [get]
func (h *FavoritesHandler) GetList(c *fiber.Ctx) error {
	ctx := c.Context()

	id, ok := parseListID(c)
	if !ok {
		return mapServiceError(services.ErrListNotFound)
	}

	list, err := h.service.GetList(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get list")
		return mapServiceError(err)
	}

	return utils.JSONResponse(c, fiber.StatusOK, ListResponse{List: list})
}

// ExportList godoc
// @Summary Export a favorite list
// @Description Download an xlsx sheet mapping each character of the list to the films it appears in
// @Tags favorites
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "List ID"
// @Success 200 {file} file "Spreadsheet attachment"
// @Failure 404 {object} utils.ErrorBody "List not found"
// @Router /favorites/{id}/file [get]
func (h *FavoritesHandler) ExportList(c *fiber.Ctx) error {
	ctx := c.Context()

	id, ok := parseListID(c)
	if !ok {
		return mapServiceError(services.ErrListNotFound)
	}

	export, err := h.exports.ExportList(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to export list")
		return mapServiceError(err)
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+export.Filename)
	if export.ArchiveURL != "" {
		c.Set("X-Export-URL", export.ArchiveURL)
	}

	return c.Status(fiber.StatusOK).Send(export.Data)
}

// parseListID reads the :id path parameter. Ids that cannot name a row
// report false.
func parseListID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// mapServiceError turns known service errors into HTTP errors; anything
// else goes to the application error handler untouched.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrFilmNotFound),
		errors.Is(err, services.ErrListNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}
