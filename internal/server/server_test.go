package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/handler"
	"storefront/internal/i18n"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/payment"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApp struct {
	srv      *httptest.Server
	sessions *session.Registry
}

func newTestApp(t *testing.T, gw payment.Gateway) *testApp {
	t.Helper()

	seed, err := infraRepo.LoadSeedCatalog()
	require.NoError(t, err)
	productRepo, err := infraRepo.NewProductMemoryRepository(seed)
	require.NoError(t, err)

	log := zap.NewNop()
	tr := i18n.NewTranslator(i18n.EN)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	sessions := session.NewRegistry(session.NewBuilder(session.Deps{
		Validator:    validator.NewCheckoutValidator(),
		Gateway:      gw,
		Translator:   tr,
		Clock:        usecase.RealClock{},
		SuccessDelay: 50 * time.Millisecond,
		Log:          log,
		OnCartChange: m.ObserveCart,
		OnTransition: m.ObserveTransition,
	}), time.Hour, log)
	sessions.OnCountChange = m.SetActiveSessions

	e := server.New(server.Handlers{
		Product:  handler.NewProductHandler(usecase.NewProductUsecase(productRepo, tr)),
		Cart:     handler.NewCartHandler(usecase.NewCartUsecase(productRepo, tr)),
		Checkout: handler.NewCheckoutHandler(),
		Session:  handler.NewSessionHandler(tr),
	}, server.Options{
		Log:            log,
		Metrics:        m,
		MetricsHandler: metrics.Handler(reg),
		Session:        middleware.Session(middleware.NewSessionCodec("test-secret", time.Hour), sessions, tr, false),
	})

	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		srv.Close()
		sessions.CloseAll()
	})
	return &testApp{srv: srv, sessions: sessions}
}

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func (a *testApp) client(t *testing.T) *TestClient {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New failed: %v", err)
	}
	return &TestClient{
		BaseURL: a.srv.URL,
		HTTP:    &http.Client{Jar: jar, Timeout: 5 * time.Second},
	}
}

func (c *TestClient) doJSON(t *testing.T, method, path string, body any, header ...string) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.BaseURL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := c.HTTP.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(body))
	}
	return v
}

type cartDTO struct {
	Items []struct {
		ProductID string `json:"product_id"`
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
	TotalItems          int    `json:"total_items"`
	TotalPrice          string `json:"total_price"`
	TotalPriceFormatted string `json:"total_price_formatted"`
}

type checkoutDTO struct {
	Status   string `json:"status"`
	Open     bool   `json:"open"`
	ErrorKey string `json:"error_key"`
	Form     struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"form"`
	LastReceipt *struct {
		OrderID string `json:"order_id"`
	} `json:"last_receipt"`
}

type notificationsDTO struct {
	Items []struct {
		Title   string `json:"title"`
		Variant string `json:"variant"`
	} `json:"items"`
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	c := app.client(t)

	resp, body := c.doJSON(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.Equal(t, 0, app.sessions.Len())
}

func TestProducts_ListAndDetail(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	c := app.client(t)

	resp, body := c.doJSON(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[usecase.ProductListOutput](t, body)
	assert.Equal(t, 4, list.Total)

	resp, body = c.doJSON(t, http.MethodGet, "/products?category=service", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[usecase.ProductListOutput](t, body).Total)

	resp, _ = c.doJSON(t, http.MethodGet, "/products?category=physical", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = c.doJSON(t, http.MethodGet, "/products/course", nil, "Accept-Language", "de-DE")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decode[usecase.ProductView](t, body)
	assert.Equal(t, "course", p.ID)
	assert.Contains(t, p.PriceFormatted, "4.990")

	resp, body = c.doJSON(t, http.MethodGet, "/products/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not found", decode[handler.ErrorResponse](t, body).Error)
}

func TestCart_AddMergeUpdateDelete(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	c := app.client(t)

	resp, body := c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "course"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, body = c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "course"})
	cart := decode[cartDTO](t, body)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, "9980", cart.TotalPrice)

	q := 5
	_, body = c.doJSON(t, http.MethodPatch, "/cart/course", handler.UpdateCartItemRequest{Quantity: &q})
	assert.Equal(t, 5, decode[cartDTO](t, body).TotalItems)

	resp, _ = c.doJSON(t, http.MethodPatch, "/cart/course", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "ebooks"})
	assert.Len(t, decode[cartDTO](t, body).Items, 2)

	_, body = c.doJSON(t, http.MethodDelete, "/cart/course", nil)
	cart = decode[cartDTO](t, body)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "ebooks", cart.Items[0].ProductID)

	zero := 0
	_, body = c.doJSON(t, http.MethodPatch, "/cart/ebooks", handler.UpdateCartItemRequest{Quantity: &zero})
	assert.Empty(t, decode[cartDTO](t, body).Items)

	resp, _ = c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: " "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCart_SeparatePerSession(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	alice := app.client(t)
	bob := app.client(t)

	alice.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "templates"})

	_, body := bob.doJSON(t, http.MethodGet, "/cart", nil)
	assert.Empty(t, decode[cartDTO](t, body).Items)
	_, body = alice.doJSON(t, http.MethodGet, "/cart", nil)
	assert.Len(t, decode[cartDTO](t, body).Items, 1)
	assert.Equal(t, 2, app.sessions.Len())
}

func TestCheckout_HappyPath(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(20*time.Millisecond))
	c := app.client(t)

	resp, _ := c.doJSON(t, http.MethodPost, "/checkout/open", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "empty cart cannot open checkout")

	c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "consultation"})

	resp, body := c.doJSON(t, http.MethodPost, "/checkout/open", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[checkoutDTO](t, body)
	assert.True(t, st.Open)
	assert.Equal(t, "idle", st.Status)

	resp, body = c.doJSON(t, http.MethodPatch, "/checkout/form", handler.UpdateFormRequest{Field: "name", Value: "Anna"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Anna", decode[checkoutDTO](t, body).Form.Name)

	email := "anna@example.com"
	_, body = c.doJSON(t, http.MethodPatch, "/checkout/form", handler.UpdateFormRequest{Email: &email})
	assert.Equal(t, email, decode[checkoutDTO](t, body).Form.Email)

	resp, _ = c.doJSON(t, http.MethodPatch, "/checkout/form", handler.UpdateFormRequest{Field: "zip", Value: "1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = c.doJSON(t, http.MethodPost, "/checkout/submit", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "processing", decode[checkoutDTO](t, body).Status)

	resp, _ = c.doJSON(t, http.MethodPost, "/checkout/submit", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "submit while processing")

	require.Eventually(t, func() bool {
		_, body := c.doJSON(t, http.MethodGet, "/checkout", nil)
		return decode[checkoutDTO](t, body).Status == "success"
	}, 2*time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		_, body := c.doJSON(t, http.MethodGet, "/checkout", nil)
		st := decode[checkoutDTO](t, body)
		return !st.Open && st.Status == "idle" && st.LastReceipt != nil
	}, 2*time.Second, 5*time.Millisecond)

	_, body = c.doJSON(t, http.MethodGet, "/cart", nil)
	assert.Empty(t, decode[cartDTO](t, body).Items)

	_, body = c.doJSON(t, http.MethodGet, "/notifications", nil)
	n := decode[notificationsDTO](t, body)
	require.Len(t, n.Items, 1)
	assert.Equal(t, "Order placed!", n.Items[0].Title)
	assert.Equal(t, "default", n.Items[0].Variant)

	_, body = c.doJSON(t, http.MethodGet, "/notifications", nil)
	assert.Empty(t, decode[notificationsDTO](t, body).Items)
}

func TestCheckout_MissingFields(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	c := app.client(t)

	c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "ebooks"})
	c.doJSON(t, http.MethodPost, "/checkout/open", nil)
	c.doJSON(t, http.MethodPatch, "/checkout/form", handler.UpdateFormRequest{Field: "name", Value: "   "})

	resp, body := c.doJSON(t, http.MethodPost, "/checkout/submit", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	st := decode[checkoutDTO](t, body)
	assert.Equal(t, "idle", st.Status)
	assert.Equal(t, usecase.MsgFillRequired, st.ErrorKey)

	_, body = c.doJSON(t, http.MethodGet, "/notifications", nil)
	n := decode[notificationsDTO](t, body)
	require.Len(t, n.Items, 1)
	assert.Equal(t, "destructive", n.Items[0].Variant)

	_, body = c.doJSON(t, http.MethodGet, "/cart", nil)
	assert.Len(t, decode[cartDTO](t, body).Items, 1, "cart kept after failed validation")
}

func TestCheckout_DismissBeforeOpen(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	c := app.client(t)

	resp, body := c.doJSON(t, http.MethodPost, "/checkout/dismiss", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[checkoutDTO](t, body).Open)

	resp, _ = c.doJSON(t, http.MethodPatch, "/checkout/form", handler.UpdateFormRequest{Field: "name", Value: "x"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestI18n_SetLocale(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	c := app.client(t)

	_, body := c.doJSON(t, http.MethodGet, "/i18n", nil)
	msgs := decode[handler.MessagesResponse](t, body)
	assert.Equal(t, i18n.EN, msgs.Locale)
	assert.Equal(t, "Your Cart", msgs.Messages["cart.title"])

	resp, _ := c.doJSON(t, http.MethodPut, "/session/locale", handler.SetLocaleRequest{Locale: "es"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.doJSON(t, http.MethodPut, "/session/locale", handler.SetLocaleRequest{Locale: "fr"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 選択した言語がAccept-Languageより優先
	_, body = c.doJSON(t, http.MethodGet, "/i18n", nil, "Accept-Language", "de")
	msgs = decode[handler.MessagesResponse](t, body)
	assert.Equal(t, i18n.FR, msgs.Locale)
	assert.Equal(t, "Votre panier", msgs.Messages["cart.title"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, payment.NewSimulatedGateway(0))
	c := app.client(t)

	c.doJSON(t, http.MethodPost, "/cart", handler.AddCartRequest{ProductID: "course"})

	resp, body := c.doJSON(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text := string(body)
	assert.True(t, strings.Contains(text, "storefront_cart_mutations_total"), text)
	assert.Contains(t, text, "storefront_active_sessions 1")
}
