package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// /checkout のHTTP。リクエストをイベントに変えるだけ。
type CheckoutHandler struct{}

// DI
func NewCheckoutHandler() *CheckoutHandler {
	return &CheckoutHandler{}
}

// 1項目ずつ、またはまとめて
type UpdateFormRequest struct {
	Field   string  `json:"field"`
	Value   string  `json:"value"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/checkout", h.get)
	g.POST("/checkout/open", h.open)
	g.PATCH("/checkout/form", h.updateForm)
	g.POST("/checkout/submit", h.submit)
	g.POST("/checkout/dismiss", h.dismiss)
}

func (h *CheckoutHandler) get(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}
	return c.JSON(http.StatusOK, s.Checkout.Snapshot())
}

func (h *CheckoutHandler) open(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	out, err := s.Checkout.Open()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) updateForm(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req UpdateFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	type change struct{ field, value string }
	var changes []change
	if req.Field != "" {
		changes = append(changes, change{req.Field, req.Value})
	}
	for field, v := range map[string]*string{"name": req.Name, "email": req.Email, "phone": req.Phone, "address": req.Address} {
		if v != nil {
			changes = append(changes, change{field, *v})
		}
	}
	if len(changes) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no fields"})
	}

	for _, ch := range changes {
		if _, err := s.Checkout.ChangeField(ch.field, ch.value); err != nil {
			return writeError(c, err)
		}
	}
	return c.JSON(http.StatusOK, s.Checkout.Snapshot())
}

func (h *CheckoutHandler) submit(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	out, err := s.Checkout.Submit()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, out)
}

func (h *CheckoutHandler) dismiss(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}
	return c.JSON(http.StatusOK, s.Checkout.Dismiss())
}
