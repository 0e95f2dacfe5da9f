package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations. Every route carries
// the claimed owner in the path; the service denies any identity whose
// subject differs, with no admin exception.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Create handles POST /carts/:owner.
//
// @Summary      Create a cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        owner  path  string  true  "Cart owner username"
// @Success      201  {object}  cartResponse
// @Failure      403  {object}  errorResponse
// @Router       /carts/{owner} [post]
func (h *CartHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.service.Create(c.Request().Context(), id, c.Param("owner"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCartResponse(cart))
}

// Get handles GET /carts/:owner/:cart_id.
//
// @Summary      Get a cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        owner    path  string  true  "Cart owner username"
// @Param        cart_id  path  string  true  "Cart id"
// @Success      200  {object}  cartResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /carts/{owner}/{cart_id} [get]
func (h *CartHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.service.Get(c.Request().Context(), id, c.Param("owner"), c.Param("cart_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// AddItem handles POST /carts/:owner/:cart_id/items.
//
// @Summary      Add a product to a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        owner    path  string          true  "Cart owner username"
// @Param        cart_id  path  string          true  "Cart id"
// @Param        body     body  addItemRequest  true  "Product to add"
// @Success      200  {object}  cartResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /carts/{owner}/{cart_id}/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cart, err := h.service.AddItem(c.Request().Context(), id, c.Param("owner"), c.Param("cart_id"), req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// RemoveItem handles DELETE /carts/:owner/:cart_id/items/:product_id.
//
// @Summary      Remove a product from a cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        owner       path  string  true  "Cart owner username"
// @Param        cart_id     path  string  true  "Cart id"
// @Param        product_id  path  string  true  "Product id"
// @Success      200  {object}  cartResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /carts/{owner}/{cart_id}/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.service.RemoveItem(c.Request().Context(), id, c.Param("owner"), c.Param("cart_id"), c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// ClearItems handles DELETE /carts/:owner/:cart_id/items.
//
// @Summary      Remove all items from a cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        owner    path  string  true  "Cart owner username"
// @Param        cart_id  path  string  true  "Cart id"
// @Success      200  {object}  cartResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /carts/{owner}/{cart_id}/items [delete]
func (h *CartHandler) ClearItems(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.service.ClearItems(c.Request().Context(), id, c.Param("owner"), c.Param("cart_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Delete handles DELETE /carts/:owner/:cart_id.
//
// @Summary      Delete a cart
// @Tags         carts
// @Security     BearerAuth
// @Param        owner    path  string  true  "Cart owner username"
// @Param        cart_id  path  string  true  "Cart id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /carts/{owner}/{cart_id} [delete]
func (h *CartHandler) Delete(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, c.Param("owner"), c.Param("cart_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
