package cmdutil

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/foodcourier/marketplace/internal/core/ports"
	"github.com/foodcourier/marketplace/internal/core/service"
	"github.com/foodcourier/marketplace/internal/infrastructure/config"
	"github.com/foodcourier/marketplace/internal/infrastructure/crypto"
	"github.com/foodcourier/marketplace/internal/infrastructure/db/memory"
	"github.com/foodcourier/marketplace/internal/infrastructure/db/mongo"
	"github.com/foodcourier/marketplace/internal/infrastructure/db/redis"
	"github.com/foodcourier/marketplace/pkg/logger"
)

// StoreBundle holds the storage adapters selected by DIRECTORY_DRIVER together
// with the connections backing them.
type StoreBundle struct {
	Directory ports.CustomerDirectory
	Places    ports.PlaceRepository
	Catalog   ports.CatalogWriter
	Orders    ports.OrderRepository

	// Mongo and Redis are nil when the backend is not in use.
	Mongo *gomongo.Database
	Redis *goredis.Client

	closers []func(context.Context) error
}

// Close releases every connection opened by OpenStores.
func (b *StoreBundle) Close(ctx context.Context) {
	if b == nil {
		return
	}
	for i := len(b.closers) - 1; i >= 0; i-- {
		_ = b.closers[i](ctx)
	}
}

// OpenStores connects the configured backends. With the memory driver nothing
// is dialled and every store lives in process.
func OpenStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*StoreBundle, error) {
	if cfg.Auth.DirectoryDriver == config.DriverMemory {
		log.Warn().Msg("using in-memory stores; data is lost on exit")
		places := memory.NewPlaceRepository()
		return &StoreBundle{
			Directory: memory.NewCustomerDirectory(),
			Places:    places,
			Catalog:   places,
			Orders:    memory.NewOrderRepository(),
		}, nil
	}

	b := &StoreBundle{}

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		return nil, err
	}
	b.Mongo = db
	b.closers = append(b.closers, client.Disconnect)
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		b.Close(ctx)
		return nil, err
	}

	var directory ports.CustomerDirectory = mongo.NewCustomerDirectory(db)
	if cfg.Redis.TokenCache {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			b.Close(ctx)
			return nil, err
		}
		b.Redis = rdb
		b.closers = append(b.closers, func(context.Context) error { return rdb.Close() })
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TokenCacheTTL).Msg("token cache enabled")

		directory = redis.NewCachedDirectory(directory, redis.NewTokenIndex(rdb, cfg.Redis.TokenCacheTTL), log)
	}

	b.Directory = directory
	places := mongo.NewPlaceRepository(db)
	b.Places = places
	b.Catalog = places
	b.Orders = mongo.NewOrderRepository(db)
	return b, nil
}

// Services is the set of core services built on top of a StoreBundle.
type Services struct {
	Authenticator *service.Authenticator
	Issuer        *service.TokenIssuer
	Customers     *service.CustomerService
	Places        *service.PlaceService
	Catalog       *service.CatalogService
	Orders        *service.OrderService
}

// NewServices wires the core services on top of the stores.
func NewServices(stores *StoreBundle, cfg *config.Config, log zerolog.Logger) (*Services, error) {
	if stores == nil || stores.Directory == nil {
		return nil, fmt.Errorf("services: stores not opened")
	}

	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	auth := service.NewAuthenticator(stores.Directory, hasher, log.With().Str("component", "authenticator").Logger())
	issuer := service.NewTokenIssuer(stores.Directory, cfg.Auth.TokenBytes, log.With().Str("component", "token_issuer").Logger())
	places := service.NewPlaceService(stores.Places, log.With().Str("component", "places").Logger())

	return &Services{
		Authenticator: auth,
		Issuer:        issuer,
		Customers:     service.NewCustomerService(stores.Directory, hasher, auth, issuer, log.With().Str("component", "customers").Logger()),
		Places:        places,
		Catalog:       service.NewCatalogService(stores.Catalog, log.With().Str("component", "catalog").Logger()),
		Orders:        service.NewOrderService(places, stores.Orders, log.With().Str("component", "orders").Logger()),
	}, nil
}

// OpenPersistent opens stores and services for a one-shot admin command. The
// memory driver is refused since its data would vanish when the command exits.
func OpenPersistent(ctx context.Context, command string) (*Services, func(), error) {
	cfg := MustConfig(ctx)
	if cfg.Auth.DirectoryDriver == config.DriverMemory {
		return nil, nil, fmt.Errorf("%s commands need a persistent directory (DIRECTORY_DRIVER=%s)", command, config.DriverMongo)
	}

	log := logger.Component("cli")
	stores, err := OpenStores(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	svc, err := NewServices(stores, cfg, log)
	if err != nil {
		stores.Close(ctx)
		return nil, nil, err
	}
	return svc, func() { stores.Close(context.Background()) }, nil
}
