package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/metrics"
	appmw "storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Options struct {
	FEURL   string
	Log     *zap.Logger
	Metrics *metrics.Metrics
	// /metrics で返す（nilなら出さない）
	MetricsHandler http.Handler
	Session        echo.MiddlewareFunc
}

// ルートとミドルウェアを組んだechoを返す
func New(h Handlers, opt Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	if opt.FEURL != "" {
		//フロントからcookie付きで呼ぶ
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{opt.FEURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowHeaders:     []string{echo.HeaderContentType, "Accept-Language"},
			AllowCredentials: true,
		}))
	}
	if opt.Log != nil {
		e.Use(appmw.RequestLogger(opt.Log))
	}
	if opt.Metrics != nil {
		e.Use(appmw.Metrics(opt.Metrics))
	}

	RegisterRoutes(e, h, opt.MetricsHandler, opt.Session)
	return e
}

// ctxが終わるまでサーブし、終わったらshutdownする
func Start(ctx context.Context, e *echo.Echo, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	log.Info("server started", zap.String("addr", addr))

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
