//go:build !wireinject
// +build !wireinject

package di

import (
	"context"

	"go.uber.org/zap"

	"ejama-backend/application/services"
	"ejama-backend/infrastructure/config"
)

// InitializeContainer creates a fully wired container. Hand-maintained
// mirror of the wire build in wire.go.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	dynamoClient := ProvideDynamoDBClient(awsCfg)
	eventBridgeClient := ProvideEventBridgeClient(awsCfg)

	store := ProvideStore(dynamoClient, cfg, logger)
	bus := ProvideEventBus(eventBridgeClient, cfg, logger)
	policies := ProvideDynamic()

	supabaseClient, err := ProvideSupabaseClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	resolver, err := ProvideResolver(cfg, logger)
	if err != nil {
		return nil, err
	}
	accounts, err := ProvideAccounts(cfg, logger)
	if err != nil {
		return nil, err
	}
	sink := ProvideQuestionsSink(supabaseClient, cfg, logger)

	communityRepo := ProvideCommunityRepository(store)
	questionRepo := ProvideQuestionRepository(store)
	libraryRepo := ProvideLibraryRepository(store)
	periodRepo := ProvidePeriodRepository(store)
	feedbackRepo := ProvideFeedbackRepository(store)
	profileRepo := ProvideProfileRepository(store)

	container := &Container{
		Config:    cfg,
		Logger:    logger,
		Policies:  policies,
		Community: services.NewCommunityService(communityRepo, bus, policies, logger),
		QA:        services.NewQAService(questionRepo, bus, policies, logger),
		Library:   services.NewLibraryService(libraryRepo, logger),
		Period:    services.NewPeriodService(periodRepo, logger),
		Feedback:  services.NewFeedbackService(feedbackRepo, bus, logger),
		Account:   services.NewAccountService(accounts, profileRepo, logger),
		Questions: sink,
		Resolver:  resolver,
	}

	if cfg.PolicyFile != "" {
		watcher, err := config.NewPolicyWatcher(cfg.PolicyFile, policies, logger)
		if err != nil {
			logger.Error("policy watcher setup failed, using defaults",
				zap.String("path", cfg.PolicyFile),
				zap.Error(err),
			)
		} else {
			watcher.Start()
			container.PolicyWatcher = watcher
		}
	}

	return container, nil
}

// Shutdown releases container resources.
func (c *Container) Shutdown() {
	if c.PolicyWatcher != nil {
		c.PolicyWatcher.Stop()
	}
	_ = c.Logger.Sync()
}
