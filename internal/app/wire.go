//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	deliveryEventsGateway "github.com/tarekkanon/nightshift-logistics/internal/gateway/kafka/delivery_events"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/auth_login_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/auth_logout_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/deliveries_get"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/deliveries_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_actions_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_get"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_photos_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_signature_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/tasks/outbox_cleanup"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/tasks/outbox_relay"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/config"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/factory/clock"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/factory/delivery_id"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/middlewares/driver_auth"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/token"

	deliveryRepo "github.com/tarekkanon/nightshift-logistics/internal/repository/delivery"
	outboxRepo "github.com/tarekkanon/nightshift-logistics/internal/repository/outbox"
	sessionRepo "github.com/tarekkanon/nightshift-logistics/internal/repository/session"
	statsRepo "github.com/tarekkanon/nightshift-logistics/internal/repository/stats"
	syncReceiptRepo "github.com/tarekkanon/nightshift-logistics/internal/repository/sync_receipt"

	authService "github.com/tarekkanon/nightshift-logistics/internal/service/auth"
	deliveryService "github.com/tarekkanon/nightshift-logistics/internal/service/delivery"
	outboxService "github.com/tarekkanon/nightshift-logistics/internal/service/outbox"
	statsService "github.com/tarekkanon/nightshift-logistics/internal/service/stats"
	syncService "github.com/tarekkanon/nightshift-logistics/internal/service/sync"

	"github.com/tarekkanon/nightshift-logistics/pkg/background"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
	"github.com/tarekkanon/nightshift-logistics/pkg/querier"
	"github.com/tarekkanon/nightshift-logistics/pkg/tx"
)

type (
	OutboxRelayInterval time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceDelivery   ServiceDelivery
	ServiceSync       *syncService.Sync
	ServiceOutbox     *outboxService.Outbox
	ServiceStats      *statsService.Stats
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	auth_login_post.Service
	auth_logout_post.Service
	driver_auth.Authenticator
}

type ServiceDelivery interface {
	deliveries_post.Service
	deliveries_get.Service
	delivery_get.Service
	delivery_actions_post.Service
	delivery_photos_post.Service
	delivery_signature_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOutboxRelayInterval,
		clock.New,
		delivery_id.New,

		provideDeliveryRepository,
		provideOutboxRepository,
		provideSyncReceiptRepository,
		provideStatsRepository,
		provideSessionRepository,
		provideTokenManager,
		provideDeliveryEventsPublisher,

		provideServiceAuth,
		provideServiceDelivery,
		provideServiceSync,
		provideServiceOutbox,
		provideServiceStats,

		provideOutboxRelayTask,
		provideOutboxCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(deliveryService.IDGenerator), new(*delivery_id.IDFactory)),
		wire.Bind(new(deliveryService.Clock), new(*clock.UTC)),
		wire.Bind(new(authService.SessionRepository), new(*sessionRepo.Repository)),
		wire.Bind(new(authService.TokenManager), new(*token.Manager)),
		wire.Bind(new(authService.IDGenerator), new(*delivery_id.IDFactory)),
		wire.Bind(new(authService.Clock), new(*clock.UTC)),
		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*deliveryEventsGateway.Publisher)),
		wire.Bind(new(outboxService.Clock), new(*clock.UTC)),
		wire.Bind(new(syncService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(syncService.ReceiptRepository), new(*syncReceiptRepo.Repository)),
		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(syncService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Service), new(*outboxService.Outbox)),
		wire.Bind(new(outbox_cleanup.Service), new(*outboxService.Outbox)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	StatsService *statsService.Stats
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-events)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideStatsRepository,
		provideServiceStats,

		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(statsService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideSyncReceiptRepository(querier *querier.Querier) *syncReceiptRepo.Repository {
	return syncReceiptRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideSessionRepository(client *redis.Client) *sessionRepo.Repository {
	return sessionRepo.New(client)
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.Auth.JWTSecret)
}

func provideDeliveryEventsPublisher(producer sarama.SyncProducer, cfg *config.Config) *deliveryEventsGateway.Publisher {
	return deliveryEventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceAuth(
	log logger.Logger,
	cfg *config.Config,
	sessions authService.SessionRepository,
	tokens authService.TokenManager,
	ids authService.IDGenerator,
	clock authService.Clock,
) (*authService.Auth, error) {
	pinHash, err := authService.HashPIN(cfg.Auth.DriverPIN, bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return authService.New(log, pinHash, cfg.Auth.SessionTTL, sessions, tokens, ids, clock), nil
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	outbox deliveryService.OutboxRepository,
	txManager deliveryService.TxManager,
	ids deliveryService.IDGenerator,
	clock deliveryService.Clock,
	cfg *config.Config,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		outbox,
		txManager,
		ids,
		clock,
		deliveryService.Limits{
			PhotoMaxBytes:       cfg.Capture.PhotoMaxBytes,
			PhotoMaxPerDelivery: cfg.Capture.PhotoMaxPerDelivery,
			SignatureMaxBytes:   cfg.Capture.SignatureMaxBytes,
		},
	)
}

func provideServiceSync(
	log logger.Logger,
	deliveries syncService.DeliveryService,
	receipts syncService.ReceiptRepository,
	txManager syncService.TxManager,
) *syncService.Sync {
	return syncService.New(log, deliveries, receipts, txManager)
}

func provideServiceOutbox(
	log logger.Logger,
	repository outboxService.Repository,
	publisher outboxService.Publisher,
	txManager outboxService.TxManager,
	clock outboxService.Clock,
	cfg *config.Config,
) (*outboxService.Outbox, error) {
	return outboxService.New(log, repository, publisher, txManager, clock, uint64(cfg.Tasks.OutboxBatchSize))
}

func provideServiceStats(repository statsService.Repository, txManager statsService.TxManager) *statsService.Stats {
	return statsService.New(repository, txManager)
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideOutboxRelayTask(
	log logger.Logger,
	outboxService outbox_relay.Service,
	interval OutboxRelayInterval,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, outboxService, time.Duration(interval))
}

func provideOutboxCleanupTask(
	log logger.Logger,
	outboxService outbox_cleanup.Service,
	cfg *config.Config,
) *outbox_cleanup.OutboxCleanup {
	return outbox_cleanup.NewOutboxCleanup(log, outboxService, cfg.Tasks.OutboxCleanupInterval, cfg.Tasks.OutboxRetention)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
	outboxCleanupTask *outbox_cleanup.OutboxCleanup,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
		outboxCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
