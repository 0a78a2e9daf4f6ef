package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	consentservice "hiu/internal/consent/service"
	consentstore "hiu/internal/consent/store"
	"hiu/internal/consent/tasks"
	"hiu/internal/dataflow/keymaterial"
	dataflowservice "hiu/internal/dataflow/service"
	dataflowstore "hiu/internal/dataflow/store"
	"hiu/internal/gateway"
	"hiu/internal/patient"
	"hiu/internal/platform/cache"
	"hiu/internal/platform/config"
	"hiu/internal/platform/database"
	"hiu/internal/platform/health"
	"hiu/internal/platform/kafka"
	"hiu/internal/platform/kafka/consumer"
	"hiu/internal/platform/kafka/producer"
	"hiu/internal/platform/logger"
	"hiu/internal/platform/metrics"
	"hiu/internal/platform/redis"
	httptransport "hiu/internal/transport/http"
	"hiu/internal/user"

	consentmodels "hiu/internal/consent/models"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing hiu",
		"addr", cfg.Server.Addr,
		"hiu_id", cfg.HIU.ID,
	)

	m := metrics.New()

	// Storage: PostgreSQL when configured, in-memory otherwise.
	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.Database.URL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}

	var (
		consents consentstore.Store
		flows    dataflowstore.Store
		users    user.Store
	)
	if pool != nil {
		consents = consentstore.NewPostgres(pool.DB())
		flows = dataflowstore.NewPostgres(pool.DB())
		users = user.NewPostgresStore(pool.DB())
	} else {
		log.Warn("no database configured, using in-memory stores")
		consents = consentstore.NewMemory()
		flows = dataflowstore.NewMemory()
		users = user.NewMemoryStore()
	}

	// Caches: Redis when configured, in-memory otherwise.
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	var responseCache, patientRequestCache, patientCache cache.Adapter
	if redisClient != nil {
		responseCache = cache.NewRedis(redisClient.Client, "hiu:consent:response", config.CorrelationCacheTTL)
		patientRequestCache = cache.NewRedis(redisClient.Client, "hiu:consent:patient-request", config.CorrelationCacheTTL)
		patientCache = cache.NewRedis(redisClient.Client, "hiu:patient", config.PatientCacheTTL)
	} else {
		responseCache = cache.NewInMemory(config.CorrelationCacheTTL)
		patientRequestCache = cache.NewInMemory(config.CorrelationCacheTTL)
		patientCache = cache.NewInMemory(config.PatientCacheTTL)
	}

	// Queue boundary.
	prod, err := producer.New(producer.Config{Brokers: cfg.Kafka.Brokers}, log)
	if err != nil {
		log.Error("kafka producer init failed", "error", err)
		os.Exit(1)
	}
	defer prod.Close()

	requestPublisher := dataflowservice.NewRequestPublisher(prod, cfg.Kafka.DataFlowRequestTopic, cfg.HIU.DataPushURL, m, log)
	deletePublisher := dataflowservice.NewDeletePublisher(prod, cfg.Kafka.DataFlowDeleteTopic, m, log)
	retractionPublisher := dataflowservice.NewRetractionPublisher(prod, cfg.Kafka.HealthInfoTopic, log)

	// Gateway boundary.
	sessions := gateway.NewSessionClient(
		cfg.Gateway.BaseURL,
		cfg.Gateway.ClientID,
		cfg.Gateway.ClientSecret,
		cfg.Gateway.RequestTimeout,
	)
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, sessions, cfg.Gateway.RequestTimeout, log, gateway.WithMetrics(m))

	patients := patient.NewService(gatewayClient, patientCache, log)

	consentTasks := map[consentmodels.Status]consentservice.Task{
		consentmodels.StatusGranted: tasks.NewGrantedTask(consents, gatewayClient, responseCache, log),
		consentmodels.StatusDenied:  tasks.NewDeniedTask(consents, gatewayClient, log),
		consentmodels.StatusExpired: tasks.NewExpiredTask(consents, gatewayClient, deletePublisher, log),
		consentmodels.StatusRevoked: tasks.NewRevokedTask(consents, gatewayClient, retractionPublisher, log),
	}

	consentService := consentservice.NewService(consents, gatewayClient, consentservice.NewStaticConceptValidator(), log,
		consentservice.WithHIUID(cfg.HIU.ID),
		consentservice.WithPageSize(cfg.Consent.DefaultPageSize),
		consentservice.WithMetrics(m),
		consentservice.WithTasks(consentTasks),
		consentservice.WithResponseCache(responseCache),
		consentservice.WithPatientRequestCache(patientRequestCache),
		consentservice.WithPatients(patients),
		consentservice.WithDataFlow(requestPublisher),
	)

	// Data-flow pipeline consumer.
	keys := keymaterial.New(cfg.DataFlow.KeyExpiryOffsetDays)
	processor := dataflowservice.NewProcessor(keys, sessions, gatewayClient, flows, m, log)
	dataFlowConsumer, err := consumer.New(consumer.Config{
		Brokers:             cfg.Kafka.Brokers,
		GroupID:             cfg.Kafka.GroupID,
		Topics:              []string{cfg.Kafka.DataFlowRequestTopic},
		MaxDeliveryAttempts: cfg.Kafka.MaxDeliveryAttempts,
	}, processor, log, consumer.WithDeadLetter(deadLetter{prod}))
	if err != nil {
		log.Error("kafka consumer init failed", "error", err)
		os.Exit(1)
	}
	dataFlowConsumer.Start()

	// Requester accounts.
	tokenIssuer := user.NewTokenIssuer(cfg.Server.JWTSigningKey)
	userService := user.NewService(users, tokenIssuer, log)

	// Health checks.
	healthHandler := health.New(envName())
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})
	}
	kafkaHealth := kafka.NewHealthChecker(cfg.Kafka.Brokers)
	healthHandler.RegisterCheck("kafka", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return kafkaHealth.Check(ctx)
	})

	handler := httptransport.NewHandler(consentService, userService, log)
	router := httptransport.NewRouter(handler, httptransport.NewTokenValidator(tokenIssuer), healthHandler, promhttp.Handler(), log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Server.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := dataFlowConsumer.Stop(ctx); err != nil {
		log.Error("consumer shutdown failed", "error", err)
	}
	if pool != nil {
		_ = pool.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("server stopped")
}

// deadLetter adapts the platform producer to the consumer's dead-letter hook.
type deadLetter struct {
	p *producer.Producer
}

func (d deadLetter) Produce(ctx context.Context, topic string, key, value []byte) error {
	return d.p.Produce(ctx, &producer.Message{Topic: topic, Key: key, Value: value})
}

func envName() string {
	if env := os.Getenv("HIU_ENV"); env != "" {
		return env
	}
	return "development"
}
