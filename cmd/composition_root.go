package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	adapterhttp "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/postgres"
	"parcel/internal/adapters/out/postgres/parcelrepo"
	"parcel/internal/adapters/out/postgres/userrepo"
	adapterredis "parcel/internal/adapters/out/redis"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultTrackingCacheTTL = time.Minute

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	redisClient *redis.Client
	uowFactory  *postgres.GormUnitOfWorkFactory
	logger      *slog.Logger
}

func NewCompositionRoot(config Config) (CompositionRoot, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.StatusLogDTO{},
		&userrepo.UserDTO{},
		&userrepo.UserParcelDTO{},
	); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to migrate database: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		redisClient: redisClient,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateAuthMiddleware() echo.MiddlewareFunc {
	return adapterhttp.NewAuthMiddleware(c.config.JWTSecret, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateCancelParcelCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateRescheduleDeliveryCommandHandler(),
		c.CreateReturnParcelCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateToggleParcelBlockCommandHandler(),
		c.CreateGetMyParcelsQueryHandler(),
		c.CreateGetIncomingParcelsQueryHandler(),
		c.CreateGetDeliveryHistoryQueryHandler(),
		c.CreateGetAllParcelsQueryHandler(),
		c.CreateGetStatusLogQueryHandler(),
		c.CreateTrackParcelQueryHandler(),
	)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	registry := userrepo.NewGormUserRepository(c.gormDB)
	return commands.NewCreateParcelCommandHandler(c.createUoWFactory(), registry, c.logger)
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	return commands.NewCancelParcelCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRescheduleDeliveryCommandHandler() commands.RescheduleDeliveryCommandHandler {
	return commands.NewRescheduleDeliveryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateReturnParcelCommandHandler() commands.ReturnParcelCommandHandler {
	return commands.NewReturnParcelCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateToggleParcelBlockCommandHandler() commands.ToggleParcelBlockCommandHandler {
	return commands.NewToggleParcelBlockCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateGetMyParcelsQueryHandler() queries.GetMyParcelsQueryHandler {
	return queries.NewGetMyParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncomingParcelsQueryHandler() queries.GetIncomingParcelsQueryHandler {
	return queries.NewGetIncomingParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryHistoryQueryHandler() queries.GetDeliveryHistoryQueryHandler {
	return queries.NewGetDeliveryHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllParcelsQueryHandler() queries.GetAllParcelsQueryHandler {
	return queries.NewGetAllParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusLogQueryHandler() queries.GetStatusLogQueryHandler {
	return queries.NewGetStatusLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	ttl := defaultTrackingCacheTTL
	if parsed, err := time.ParseDuration(c.config.TrackingCacheTTL); err == nil && parsed > 0 {
		ttl = parsed
	}

	cache := adapterredis.NewTrackingCache(c.redisClient, ttl)
	return queries.NewTrackParcelQueryHandler(c.gormDB, cache, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
