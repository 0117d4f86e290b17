package middleware

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/i18n"
	"storefront/internal/session"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "sf_session"

	CtxSessionKey = "session" // *session.Session
	CtxLocaleKey  = "locale"  // i18n.Locale
)

// セッションIDを署名付きcookieにする（認証ではなく改ざん防止だけ）
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (c *SessionCodec) Issue(sessionID string) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(c.ttl)

	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// 検証してセッションIDを返す
func (c *SessionCodec) Parse(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid sub")
	}
	if _, err := uuid.Parse(sub); err != nil {
		return "", errors.New("invalid sub")
	}
	return sub, nil
}

// Session はcookieからセッションを引き当て（無ければ作り）、言語を決めてcontextに入れる。
// cookieは毎回発行し直して期限を延ばす。
func Session(codec *SessionCodec, reg *session.Registry, tr *i18n.Translator, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//cookieのセッションIDを取り出す（壊れていれば新規）
			var id string
			if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
				if sid, err := codec.Parse(ck.Value); err == nil {
					id = sid
				}
			}
			if id == "" {
				id = uuid.NewString()
			}

			s, _ := reg.GetOrCreate(id)

			signed, expiresAt, err := codec.Issue(id)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}
			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    signed,
				Path:     "/",
				Expires:  expiresAt,
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			//選択済みの言語 > Accept-Language
			l, explicit := s.Locale()
			if !explicit {
				l = tr.Negotiate(c.Request().Header.Get("Accept-Language"))
				s.UseLocale(l)
			}

			c.Set(CtxSessionKey, s)
			c.Set(CtxLocaleKey, l)
			return next(c)
		}
	}
}

func SessionFrom(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(CtxSessionKey).(*session.Session)
	return s, ok && s != nil
}

func LocaleFrom(c echo.Context) i18n.Locale {
	if l, ok := c.Get(CtxLocaleKey).(i18n.Locale); ok {
		return l
	}
	return i18n.EN
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
