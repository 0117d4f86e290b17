package server

import (
	"net/http"

	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Session  *handler.SessionHandler
}

// /healthz と /metrics はセッションなし。それ以外はSessionミドルウェアの下。
func RegisterRoutes(e *echo.Echo, h Handlers, metricsH http.Handler, sessionMW echo.MiddlewareFunc) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if metricsH != nil {
		e.GET("/metrics", echo.WrapHandler(metricsH))
	}

	g := e.Group("", sessionMW)
	h.Product.RegisterRoutes(g)
	h.Cart.RegisterRoutes(g)
	h.Checkout.RegisterRoutes(g)
	h.Session.RegisterRoutes(g)
}
