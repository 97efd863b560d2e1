package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/api/metrics"
	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addCartItemRequest struct {
	// UserID lets an admin act on another user's cart; everyone else is
	// pinned to their own by the access policy.
	UserID    *int `json:"user_id"`
	ProductID int  `json:"product_id" validate:"required,gt=0"`
	Quantity  int  `json:"quantity"   validate:"gte=0"`
}

type updateCartItemRequest struct {
	UserID    *int `json:"user_id"`
	ProductID int  `json:"product_id" validate:"required,gt=0"`
	// Quantity <= 0 removes the line.
	Quantity int `json:"quantity"`
}

// targetUser resolves which user's cart the request addresses: the explicit
// user id when given, the session user otherwise. Zero means no target could
// be resolved.
func targetUser(claims *auth.Claims, explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	if claims != nil {
		return claims.UserID
	}
	return 0
}

func observeCartMutation(op string, start time.Time) {
	metrics.CartMutationsTotal.WithLabelValues(op).Inc()
	metrics.CartMutationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Get returns the active cart. Owner or admin; ?user_id= selects another
// user's cart (admins only, enforced by the policy).
//
// @Summary      Get the active cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     int  false  "Target user id (admin)"
// @Success      200  {object}  domain.Cart
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	claims := sessionFrom(c)

	var explicit *int
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user_id"})
		}
		explicit = &id
	}

	userID := targetUser(claims, explicit)
	if d := auth.RequireOwnerOrAdmin(claims, userID); !d.Permitted {
		return deny(c, d)
	}

	cart, err := h.cartService.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// AddItem adds a product to the cart, creating the cart on first use.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Product and quantity"
// @Success      200   {object}  domain.Cart
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	start := time.Now()

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	claims := sessionFrom(c)
	userID := targetUser(claims, req.UserID)
	if d := auth.RequireOwnerOrAdmin(claims, userID); !d.Permitted {
		return deny(c, d)
	}

	cart, err := h.cartService.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	observeCartMutation("add_item", start)
	return c.JSON(http.StatusOK, cart)
}

// UpdateItem sets a line's quantity; zero or less removes the line.
//
// @Summary      Update a cart line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCartItemRequest  true  "Product and new quantity"
// @Success      200   {object}  domain.Cart
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart/items [patch]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	start := time.Now()

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	claims := sessionFrom(c)
	userID := targetUser(claims, req.UserID)
	if d := auth.RequireOwnerOrAdmin(claims, userID); !d.Permitted {
		return deny(c, d)
	}

	cart, err := h.cartService.SetQuantity(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	observeCartMutation("set_quantity", start)
	return c.JSON(http.StatusOK, cart)
}

// RemoveItem deletes one product line from the cart.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      int  true   "Product id"
// @Param        user_id     query     int  false  "Target user id (admin)"
// @Success      200  {object}  domain.Cart
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	start := time.Now()

	productID, ok := pathID(c, "product_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
	}

	claims := sessionFrom(c)

	var explicit *int
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user_id"})
		}
		explicit = &id
	}

	userID := targetUser(claims, explicit)
	if d := auth.RequireOwnerOrAdmin(claims, userID); !d.Permitted {
		return deny(c, d)
	}

	cart, err := h.cartService.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return err
	}

	observeCartMutation("remove_item", start)
	return c.JSON(http.StatusOK, cart)
}

// Clear removes every line from the cart. The cart row stays active with a
// zero total.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     int  false  "Target user id (admin)"
// @Success      200  {object}  domain.Cart
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	start := time.Now()

	claims := sessionFrom(c)

	var explicit *int
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user_id"})
		}
		explicit = &id
	}

	userID := targetUser(claims, explicit)
	if d := auth.RequireOwnerOrAdmin(claims, userID); !d.Permitted {
		return deny(c, d)
	}

	cart, err := h.cartService.Clear(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	observeCartMutation("clear", start)
	return c.JSON(http.StatusOK, cart)
}
