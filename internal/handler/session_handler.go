package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
)

// 通知・言語など画面まわりのAPI
type SessionHandler struct {
	tr *i18n.Translator
}

// DI
func NewSessionHandler(tr *i18n.Translator) *SessionHandler {
	return &SessionHandler{tr: tr}
}

type SetLocaleRequest struct {
	Locale string `json:"locale"`
}

type NotificationsResponse struct {
	Items []model.Notification `json:"items"`
}

type MessagesResponse struct {
	Locale   i18n.Locale       `json:"locale"`
	Messages map[string]string `json:"messages"`
}

func (h *SessionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.notifications)
	g.GET("/i18n", h.messages)
	g.PUT("/session/locale", h.setLocale)
}

// 未読の通知を取り出す（取り出したものは消える）
func (h *SessionHandler) notifications(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}
	return c.JSON(http.StatusOK, NotificationsResponse{Items: s.Inbox.Drain()})
}

func (h *SessionHandler) messages(c echo.Context) error {
	l := middleware.LocaleFrom(c)
	return c.JSON(http.StatusOK, MessagesResponse{Locale: l, Messages: h.tr.Messages(l)})
}

func (h *SessionHandler) setLocale(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req SetLocaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	l, ok := i18n.ParseLocale(req.Locale)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported locale"})
	}

	s.SetLocale(l)
	return c.JSON(http.StatusOK, MessagesResponse{Locale: l, Messages: h.tr.Messages(l)})
}
