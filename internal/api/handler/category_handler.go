package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// List returns all categories. Public.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create adds a category. Admin only.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category name"
// @Success      201   {object}  domain.Category
// @Failure      409   {object}  errorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update renames a category. Admin only.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "Category name"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  errorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid category id"})
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete removes a category. Admin only.
//
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  int  true  "Category id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid category id"})
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
