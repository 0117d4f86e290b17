package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/i18n"
	"storefront/internal/infra/db"
	"storefront/internal/infra/logging"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/notify"
	"storefront/internal/payment"
	repo "storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//カタログ
	productRepo, err := newCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("catalog", zap.Error(err))
	}

	//metrics（プロセス標準のcollectorも入れる）
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	//通知の送り先
	sinks := []notify.Sink{notify.NewLogSink(logger)}
	var kafkaSink *notify.KafkaSink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink = notify.NewKafkaSink(notify.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaNotifyTopic), logger)
		sinks = append(sinks, kafkaSink)
		logger.Info("kafka notifications enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaNotifyTopic))
	}

	tr := i18n.NewTranslator(cfg.DefaultLocale)

	//セッション
	build := session.NewBuilder(session.Deps{
		Validator:    validator.NewCheckoutValidator(),
		Gateway:      payment.NewSimulatedGateway(cfg.PaymentDelay),
		Translator:   tr,
		Clock:        usecase.RealClock{},
		SuccessDelay: cfg.SuccessDisplayDelay,
		Log:          logger,
		ExtraSinks:   sinks,
		OnCartChange: m.ObserveCart,
		OnTransition: m.ObserveTransition,
	})
	sessions := session.NewRegistry(build, cfg.SessionTTL, logger)
	sessions.OnCountChange = m.SetActiveSessions
	go sessions.Run(ctx, cfg.SessionSweepInterval)

	//Usecase, Handler
	productUC := usecase.NewProductUsecase(productRepo, tr)
	cartUC := usecase.NewCartUsecase(productRepo, tr)

	e := server.New(server.Handlers{
		Product:  handler.NewProductHandler(productUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(),
		Session:  handler.NewSessionHandler(tr),
	}, server.Options{
		FEURL:          cfg.FEURL,
		Log:            logger,
		Metrics:        m,
		MetricsHandler: metrics.Handler(reg),
		Session:        middleware.Session(middleware.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL), sessions, tr, cfg.IsProd()),
	})

	if err := server.Start(ctx, e, ":"+cfg.Port, logger); err != nil {
		logger.Error("server", zap.Error(err))
	}

	//進行中の決済・タイマーを止めてから通知を流しきる
	sessions.CloseAll()
	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			logger.Warn("kafka close", zap.Error(err))
		}
	}
	logger.Info("server exited")
}

func newCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) (repo.ProductRepository, error) {
	seed, err := infraRepo.LoadSeedCatalog()
	if err != nil {
		return nil, err
	}

	if cfg.CatalogSource != config.CatalogPostgres {
		r, err := infraRepo.NewProductMemoryRepository(seed)
		if err != nil {
			return nil, err
		}
		logger.Info("catalog ready", zap.String("source", config.CatalogMemory), zap.Int("products", len(seed)))
		return r, nil
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		return nil, err
	}

	r := infraRepo.NewProductGormRepository(gormDB)
	n, err := r.SeedIfEmpty(ctx, seed)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog ready", zap.String("source", cfg.CatalogSource), zap.Int("seeded", n))
	return r, nil
}
