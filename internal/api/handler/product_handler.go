package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"       validate:"gte=0"`
	Stock       int      `json:"stock"       validate:"gte=0"`
	Reference   string   `json:"reference"   validate:"required"`
	Images      []string `json:"images"`
	CategoryID  *int     `json:"category_id"`
}

type updateProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"       validate:"gte=0"`
	Stock       int      `json:"stock"       validate:"gte=0"`
	Images      []string `json:"images"`
	CategoryID  *int     `json:"category_id"`
}

// List returns the whole catalog. Public.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product by id. Public.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// GetByReference returns one product by its catalog reference. Public.
//
// @Summary      Get a product by reference
// @Tags         products
// @Produce      json
// @Param        reference  path      string  true  "Catalog reference"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products/reference/{reference} [get]
func (h *ProductHandler) GetByReference(c echo.Context) error {
	product, err := h.productService.GetByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a catalog entry. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Reference:   req.Reference,
		Images:      req.Images,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update replaces a product's mutable fields. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.productService.Update(c.Request().Context(), id, ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      req.Images,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
