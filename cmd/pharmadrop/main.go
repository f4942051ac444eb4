package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pharmadrop/config"
	"pharmadrop/internal/delivery"
	"pharmadrop/internal/delivery/http"
	"pharmadrop/internal/delivery/http/middleware"
	"pharmadrop/internal/delivery/http/router/handler"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/infra/auth"
	"pharmadrop/internal/infra/cache"
	"pharmadrop/internal/infra/geocode"
	logs "pharmadrop/internal/infra/log"
	"pharmadrop/internal/infra/notification"
	"pharmadrop/internal/infra/persistence/postgres"
	"pharmadrop/internal/infra/pubsub"
	"pharmadrop/internal/infra/qrcode"
	"pharmadrop/internal/infra/storage"
	"pharmadrop/internal/usecase"
	"pharmadrop/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultGeocodeTimeout = 5 * time.Second

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewAddressRepository,
			postgres.NewPharmacyRepository,
			postgres.NewOrderRepository,
			postgres.NewCourierRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			storage.New,
			pubsub.NewEventPublisher,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newGeocodeUsecase builds the provider chain: Google first when an API key
// is configured, Nominatim as the fallback, each behind the Redis cache.
func newGeocodeUsecase(cfg *config.Config, cacheClient redis.UniversalClient, logger *slog.Logger) usecase.GeocodeUsecase {
	if cfg.Geocoding == nil {
		return impl.NewGeocodeService(logger)
	}

	timeout := cfg.Geocoding.Timeout
	if timeout <= 0 {
		timeout = defaultGeocodeTimeout
	}

	var providers []service.Geocoder
	if cfg.Geocoding.GoogleAPIKey != "" {
		google := geocode.NewGoogleGeocoder(cfg.Geocoding.GoogleAPIKey, timeout)
		providers = append(providers, geocode.NewCachedGeocoder(google, cacheClient, cfg.Geocoding.CacheTTL, logger))
	}
	if cfg.Geocoding.NominatimBaseURL != "" {
		nominatim := geocode.NewNominatimGeocoder(cfg.Geocoding.NominatimBaseURL, cfg.Geocoding.NominatimUserAgent, timeout)
		providers = append(providers, geocode.NewCachedGeocoder(nominatim, cacheClient, cfg.Geocoding.CacheTTL, logger))
	}

	return impl.NewGeocodeService(logger, providers...)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newGeocodeUsecase,
			impl.NewAddressService,
			impl.NewPharmacyService,
			impl.NewOrderService,
			impl.NewCourierService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewAddressHandler,
			handler.NewPharmacyHandler,
			handler.NewCourierHandler,
			handler.NewCustomerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
