package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/i18n"
	"storefront/internal/payment"
	"storefront/internal/session"
	"storefront/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =====================
// helper
// =====================

type sessionFixture struct {
	e     *echo.Echo
	codec *SessionCodec
	reg   *session.Registry
}

func newSessionFixture() *sessionFixture {
	tr := i18n.NewTranslator(i18n.EN)
	reg := session.NewRegistry(session.NewBuilder(session.Deps{
		Validator:  validator.NewCheckoutValidator(),
		Gateway:    payment.NewSimulatedGateway(0),
		Translator: tr,
		Log:        zap.NewNop(),
	}), time.Hour, zap.NewNop())
	codec := NewSessionCodec("test-secret", time.Hour)

	e := echo.New()
	e.Use(Session(codec, reg, tr, false))
	e.GET("/whoami", func(c echo.Context) error {
		s, ok := SessionFrom(c)
		if !ok {
			return c.String(http.StatusInternalServerError, "no session")
		}
		return c.JSON(http.StatusOK, map[string]string{"id": s.ID, "locale": string(LocaleFrom(c))})
	})
	return &sessionFixture{e: e, codec: codec, reg: reg}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// =====================
// tests
// =====================

func TestSession_NewVisitorGetsCookie(t *testing.T) {
	fx := newSessionFixture()

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	ck := sessionCookie(t, rec)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)

	id, err := fx.codec.Parse(ck.Value)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), id)
	assert.Equal(t, 1, fx.reg.Len())
}

func TestSession_ReusesSession(t *testing.T) {
	fx := newSessionFixture()

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	ck := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(ck)
	rec2 := httptest.NewRecorder()
	fx.e.ServeHTTP(rec2, req)

	assert.Equal(t, 1, fx.reg.Len())
	assert.Equal(t, rec.Body.String(), rec2.Body.String())
}

func TestSession_TamperedCookieStartsFresh(t *testing.T) {
	fx := newSessionFixture()

	other := NewSessionCodec("other-secret", time.Hour)
	forged, _, err := other.Issue("6f1c0ad2-1f7a-4b7e-9a62-1d0c1b7d0b11")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: forged})
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "6f1c0ad2")
}

func TestSessionCodec_RejectsNonUUIDAndOtherAlgs(t *testing.T) {
	codec := NewSessionCodec("s", time.Hour)

	signed, _, err := codec.Issue("not-a-uuid")
	require.NoError(t, err)
	_, err = codec.Parse(signed)
	assert.Error(t, err)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "6f1c0ad2-1f7a-4b7e-9a62-1d0c1b7d0b11"})
	raw, err := tok.SignedString([]byte("s"))
	require.NoError(t, err)
	_, err = codec.Parse(raw)
	assert.Error(t, err)
}

func TestSessionCodec_Expired(t *testing.T) {
	codec := NewSessionCodec("s", time.Minute)
	codec.now = func() time.Time { return time.Now().Add(-time.Hour) }

	signed, _, err := codec.Issue("6f1c0ad2-1f7a-4b7e-9a62-1d0c1b7d0b11")
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Parse(signed)
	assert.Error(t, err)
}

func TestSession_LocaleFromAcceptLanguage(t *testing.T) {
	fx := newSessionFixture()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Accept-Language", "de-AT,de;q=0.9")
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `"locale":"de"`)
}

func TestSession_ExplicitLocaleWins(t *testing.T) {
	fx := newSessionFixture()

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	ck := sessionCookie(t, rec)
	id, err := fx.codec.Parse(ck.Value)
	require.NoError(t, err)

	s, ok := fx.reg.Get(id)
	require.True(t, ok)
	s.SetLocale(i18n.FR)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Accept-Language", "de")
	req.AddCookie(ck)
	rec2 := httptest.NewRecorder()
	fx.e.ServeHTTP(rec2, req)

	assert.Contains(t, rec2.Body.String(), `"locale":"fr"`)
}
