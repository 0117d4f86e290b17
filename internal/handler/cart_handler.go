package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

// /cart, /cart/{id} を登録
func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.getCart)
	g.POST("/cart", h.addToCart)
	g.DELETE("/cart", h.clearCart)
	g.PATCH("/cart/:id", h.patchItem)
	g.DELETE("/cart/:id", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	return c.JSON(http.StatusOK, h.uc.GetCart(c.Request().Context(), s.Cart, middleware.LocaleFrom(c)))
}

func (h *CartHandler) addToCart(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), s.Cart, middleware.LocaleFrom(c), usecase.AddCartInput{
		ProductID: req.ProductID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity required"})
	}

	out := h.uc.UpdateCartItem(c.Request().Context(), s.Cart, middleware.LocaleFrom(c), c.Param("id"), usecase.UpdateCartItemInput{
		Quantity: *req.Quantity,
	})
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	return c.JSON(http.StatusOK, h.uc.DeleteCartItem(c.Request().Context(), s.Cart, middleware.LocaleFrom(c), c.Param("id")))
}

func (h *CartHandler) clearCart(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	return c.JSON(http.StatusOK, h.uc.ClearCart(c.Request().Context(), s.Cart, middleware.LocaleFrom(c)))
}
