package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/tokenguard/internal/http"
	"github.com/allisson/tokenguard/internal/metrics"
	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	protectionHTTP "github.com/allisson/tokenguard/internal/protection/http"
	protectionService "github.com/allisson/tokenguard/internal/protection/service"
	protectionUseCase "github.com/allisson/tokenguard/internal/protection/usecase"
)

// readinessProbe is encoded and decoded by the readiness check.
var readinessProbe = []byte("tokenguard readiness probe")

// KMSService returns the KMS service used to unseal configured keys.
func (c *Container) KMSService() protectionService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = protectionService.NewKMSService()
	})
	return c.kmsService
}

// KeyResolver returns the resolver that turns key specs into key material.
func (c *Container) KeyResolver() (*protectionService.KeyResolver, error) {
	c.keyResolverInit.Do(func() {
		resolver, err := c.initKeyResolver()
		c.storeResult("keyResolver", err)
		c.keyResolver = resolver
	})
	if err := c.storedError("keyResolver"); err != nil {
		return nil, err
	}
	return c.keyResolver, nil
}

// TokenProtector returns the process-wide token protector. Configuration errors
// surface here so the process fails at startup.
func (c *Container) TokenProtector() (*protectionService.TokenProtector, error) {
	c.tokenProtectorInit.Do(func() {
		protector, err := c.initTokenProtector()
		c.storeResult("tokenProtector", err)
		c.tokenProtector = protector
	})
	if err := c.storedError("tokenProtector"); err != nil {
		return nil, err
	}
	return c.tokenProtector, nil
}

// ProtectionUseCase returns the protection use case, decorated with metrics when enabled.
func (c *Container) ProtectionUseCase() (protectionUseCase.ProtectionUseCase, error) {
	c.protectionUseCaseInit.Do(func() {
		useCase, err := c.initProtectionUseCase()
		c.storeResult("protectionUseCase", err)
		c.protectionUseCase = useCase
	})
	if err := c.storedError("protectionUseCase"); err != nil {
		return nil, err
	}
	return c.protectionUseCase, nil
}

// TokenHandler returns the HTTP handler for token and string endpoints.
func (c *Container) TokenHandler() (*protectionHTTP.TokenHandler, error) {
	c.tokenHandlerInit.Do(func() {
		useCase, err := c.ProtectionUseCase()
		c.storeResult("tokenHandler", err)
		if err == nil {
			c.tokenHandler = protectionHTTP.NewTokenHandler(useCase, c.Logger())
		}
	})
	if err := c.storedError("tokenHandler"); err != nil {
		return nil, fmt.Errorf("failed to get protection use case for token handler: %w", err)
	}
	return c.tokenHandler, nil
}

// CryptoHandler returns the HTTP handler for raw encrypt and decrypt endpoints.
func (c *Container) CryptoHandler() (*protectionHTTP.CryptoHandler, error) {
	c.cryptoHandlerInit.Do(func() {
		useCase, err := c.ProtectionUseCase()
		c.storeResult("cryptoHandler", err)
		if err == nil {
			c.cryptoHandler = protectionHTTP.NewCryptoHandler(useCase, c.Logger())
		}
	})
	if err := c.storedError("cryptoHandler"); err != nil {
		return nil, fmt.Errorf("failed to get protection use case for crypto handler: %w", err)
	}
	return c.cryptoHandler, nil
}

// ReadinessCheck returns a check that round-trips a probe token through the use case.
func (c *Container) ReadinessCheck() (http.ReadinessCheck, error) {
	useCase, err := c.ProtectionUseCase()
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		token, err := useCase.EncodeToken(ctx, readinessProbe, nil)
		if err != nil {
			return fmt.Errorf("readiness encode: %w", err)
		}
		if _, err := useCase.DecodeToken(ctx, token, nil); err != nil {
			return fmt.Errorf("readiness decode: %w", err)
		}
		return nil
	}, nil
}

func (c *Container) initKeyResolver() (*protectionService.KeyResolver, error) {
	seed, err := c.config.Seed()
	if err != nil {
		return nil, err
	}

	var kmsService protectionService.KMSService
	if c.config.KMSKeyURI != "" {
		kmsService = c.KMSService()
	}

	return protectionService.NewKeyResolver(kmsService, c.config.KMSKeyURI, seed), nil
}

// initTokenProtector resolves key material and builds the protector. Key bytes are
// wiped once the engines hold what they need.
func (c *Container) initTokenProtector() (*protectionService.TokenProtector, error) {
	protectorConfig, err := c.config.ProtectorConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid protection configuration: %w", err)
	}

	resolver, err := c.KeyResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to get key resolver: %w", err)
	}

	keys, err := resolver.Resolve(context.Background(), protectorConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve key material: %w", err)
	}

	protector, err := protectionService.NewTokenProtector(
		keys,
		protectorConfig.ValidationAlgorithm,
		protectorConfig.DecryptionAlgorithm,
		protectorConfig.IVType,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token protector: %w", err)
	}

	if err := c.registerPoolGauge(protector); err != nil {
		return nil, err
	}

	c.Logger().Info("token protector ready",
		slog.String("validation_algorithm", string(protectorConfig.ValidationAlgorithm)),
		slog.String("decryption_algorithm", string(protectorConfig.DecryptionAlgorithm)),
		slog.String("iv_type", string(protectorConfig.IVType)),
		slog.Bool("app_isolated", protectorConfig.AppIsolationID != ""),
	)

	return protector, nil
}

func (c *Container) registerPoolGauge(protector *protectionService.TokenProtector) error {
	provider, err := c.MetricsProvider()
	if err != nil {
		return fmt.Errorf("failed to get metrics provider for pool gauge: %w", err)
	}
	if provider == nil {
		return nil
	}

	return metrics.RegisterPoolGauge(provider.MeterProvider(), c.config.MetricsNamespace, poolSampler(protector))
}

// poolSampler reports the validation pools only when the validation cipher exists.
func poolSampler(protector *protectionService.TokenProtector) metrics.PoolSampler {
	purposes := []protectionDomain.Purpose{protectionDomain.PurposeContent}
	if protector.ValidationAlgorithm().RequiresConfidentiality() {
		purposes = append(purposes, protectionDomain.PurposeValidation)
	}
	directions := []protectionDomain.Direction{protectionDomain.DirectionEncrypt, protectionDomain.DirectionDecrypt}

	return func() []metrics.PoolSample {
		samples := make([]metrics.PoolSample, 0, len(purposes)*len(directions))
		for _, purpose := range purposes {
			for _, direction := range directions {
				samples = append(samples, metrics.PoolSample{
					Direction: direction.String(),
					Purpose:   purpose.String(),
					Idle:      protector.PoolSize(direction, purpose),
				})
			}
		}
		return samples
	}
}

func (c *Container) initProtectionUseCase() (protectionUseCase.ProtectionUseCase, error) {
	protector, err := c.TokenProtector()
	if err != nil {
		return nil, fmt.Errorf("failed to get token protector for protection use case: %w", err)
	}

	useCase := protectionUseCase.NewProtectionUseCase(protector)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for protection use case: %w", err)
	}

	return protectionUseCase.NewProtectionUseCaseWithMetrics(useCase, businessMetrics), nil
}
