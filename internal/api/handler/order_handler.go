package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/api/metrics"
	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type checkoutRequest struct {
	UserID *int `json:"user_id"`
}

// List returns orders. A plain user sees their own; an admin sees a specific
// user's with ?user_id= or everyone's without it.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     int  false  "Target user id (admin)"
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	claims := sessionFrom(c)
	if d := auth.RequireRole(claims, auth.LevelUser); !d.Permitted {
		return deny(c, d)
	}

	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user_id"})
		}
		if d := auth.RequireOwnerOrAdmin(claims, id); !d.Permitted {
			return deny(c, d)
		}
		orders, err := h.orderService.ListForUser(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, orders)
	}

	if claims.IsAdmin() {
		orders, err := h.orderService.ListAll(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, orders)
	}

	orders, err := h.orderService.ListForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Checkout settles the active cart into an order and retires the cart.
//
// @Summary      Checkout the active cart
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  false  "Target user (admin)"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders/checkout [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	claims := sessionFrom(c)
	userID := targetUser(claims, req.UserID)
	if d := auth.RequireOwnerOrAdmin(claims, userID); !d.Permitted {
		return deny(c, d)
	}

	order, err := h.orderService.Checkout(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	metrics.OrdersCheckedOutTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}
