package cmd

import (
	"log/slog"
	"strconv"
	"time"

	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/filestore"
	"courier/internal/adapters/out/fixture"
	"courier/internal/adapters/out/memstore"
	"courier/internal/adapters/out/notifier"
	"courier/internal/adapters/out/postgres/ordersource"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/ports"

	"gorm.io/gorm"
)

// OrderSourcePostgres selects the database-backed order source.
const OrderSourcePostgres = "postgres"

type CompositionRoot struct {
	config       Config
	logger       *slog.Logger
	orderStore   *memstore.InMemoryOrderStore
	sessionStore *filestore.FileSessionStore
	orderSource  ports.OrderSource
	notifier     ports.Notifier
}

// NewCompositionRoot wires the adapters selected by the config. The gormDB
// argument is only used when the config selects the postgres order source
// and may be nil otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	sessionStore, err := filestore.NewFileSessionStore(config.SessionFile)
	if err != nil {
		return CompositionRoot{}, err
	}

	var orderSource ports.OrderSource
	if config.OrderSource == OrderSourcePostgres {
		source := ordersource.NewGormOrderSource(gormDB)
		if err = source.Migrate(); err != nil {
			return CompositionRoot{}, err
		}
		orderSource = source
	} else {
		orderSource = fixture.NewOrderSource(durationFromMillis(config.FetchDelayMS))
	}

	return CompositionRoot{
		config:       config,
		logger:       logger,
		orderStore:   memstore.NewInMemoryOrderStore(),
		sessionStore: sessionStore,
		orderSource:  orderSource,
		notifier:     notifier.NewSlogNotifier(logger),
	}, nil
}

// SessionStore exposes the session store for the HTTP guard.
func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessionStore
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(
		c.sessionStore,
		c.notifier,
		durationFromMillis(c.config.LoginDelayMS),
	)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderStore, c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderStore, c.notifier)
}

func (c *CompositionRoot) CreateSyncOrdersCommandHandler() commands.SyncOrdersCommandHandler {
	return commands.NewSyncOrdersCommandHandler(c.orderSource, c.orderStore)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderStore)
}

// CreateHTTPServer assembles the echo-facing server from the use case
// handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateLoginCommandHandler(),
		c.CreateLogoutCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

const defaultDelay = 800 * time.Millisecond

// durationFromMillis parses a millisecond count from the environment,
// falling back to the default simulated delay when unset and to zero when
// explicitly "0".
func durationFromMillis(value string) time.Duration {
	if value == "" {
		return defaultDelay
	}

	millis, err := strconv.Atoi(value)
	if err != nil || millis < 0 {
		return defaultDelay
	}

	return time.Duration(millis) * time.Millisecond
}
