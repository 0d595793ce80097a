// Package di assembles the application. Providers are written for google/wire;
// the checked-in InitializeContainer mirrors what wire generates so the
// build does not depend on running the generator.
package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/google/wire"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/application/services"
	"ejama-backend/infrastructure/config"
	"ejama-backend/infrastructure/external/questions"
	"ejama-backend/infrastructure/identity"
	"ejama-backend/infrastructure/messaging"
	"ejama-backend/infrastructure/messaging/eventbridge"
	"ejama-backend/infrastructure/persistence"
	dynamostore "ejama-backend/infrastructure/persistence/dynamodb"
	"ejama-backend/infrastructure/persistence/memory"
	"ejama-backend/infrastructure/persistence/repos"
	apperrors "ejama-backend/pkg/errors"
)

// Container holds all application dependencies.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Policies *config.Dynamic

	Community *services.CommunityService
	QA        *services.QAService
	Library   *services.LibraryService
	Period    *services.PeriodService
	Feedback  *services.FeedbackService
	Account   *services.AccountService

	Questions questions.Sink
	Resolver  identity.Resolver

	// PolicyWatcher is nil when no policy file is configured.
	PolicyWatcher *config.PolicyWatcher
}

// SuperSet is the main provider set.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideStore,
	ProvideEventBus,
	ProvideDynamic,
	ProvideSupabaseClient,
	ProvideResolver,
	ProvideAccounts,
	ProvideQuestionsSink,
	ProvideCommunityRepository,
	ProvideQuestionRepository,
	ProvideLibraryRepository,
	ProvidePeriodRepository,
	ProvideFeedbackRepository,
	ProvideProfileRepository,
	services.NewCommunityService,
	services.NewQAService,
	services.NewLibraryService,
	services.NewPeriodService,
	services.NewFeedbackService,
	services.NewAccountService,
	wire.Struct(new(Container), "Config", "Logger", "Policies", "Community",
		"QA", "Library", "Period", "Feedback", "Account", "Questions", "Resolver"),
)

// ProvideLogger creates the process logger.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig loads the AWS SDK configuration.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
}

// ProvideDynamoDBClient creates a DynamoDB client.
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client.
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideStore selects the record store backend.
func ProvideStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) persistence.Store {
	if cfg.StoreBackend == "memory" {
		logger.Warn("using in-memory record store; data will not survive restarts")
		return memory.New()
	}
	return dynamostore.New(client, dynamostore.Config{TableName: cfg.DynamoDBTable}, logger)
}

// ProvideEventBus creates the event bus. Without a configured bus name the
// noop bus is used, so local runs publish nowhere.
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	if cfg.EventBusName == "" {
		return messaging.NewNoopBus(logger)
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideDynamic creates the runtime policy holder with defaults; the policy
// watcher, when configured, overwrites them on start.
func ProvideDynamic() *config.Dynamic {
	return config.NewDynamic(config.DefaultPolicies())
}

// ProvideSupabaseClient creates the Supabase client, nil when unconfigured.
func ProvideSupabaseClient(cfg *config.Config, logger *zap.Logger) (*supabase.Client, error) {
	if cfg.SupabaseURL == "" {
		return nil, nil
	}
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, apperrors.NewExternalError("supabase", err)
	}
	return client, nil
}

// ProvideResolver picks the identity resolver: Supabase when configured,
// otherwise locally-signed tokens for development.
func ProvideResolver(cfg *config.Config, logger *zap.Logger) (identity.Resolver, error) {
	if cfg.SupabaseURL != "" {
		return identity.NewSupabaseIdentity(cfg.SupabaseURL, cfg.SupabaseServiceKey, logger)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = "development-secret-change-in-production"
		logger.Warn("JWT_SECRET not set, using development secret")
	}
	return identity.NewTokenResolver(secret, cfg.JWTIssuer)
}

// ProvideAccounts picks the account provisioner. Without Supabase, signup is
// unavailable rather than silently local.
func ProvideAccounts(cfg *config.Config, logger *zap.Logger) (identity.Accounts, error) {
	if cfg.SupabaseURL != "" {
		return identity.NewSupabaseIdentity(cfg.SupabaseURL, cfg.SupabaseServiceKey, logger)
	}
	return unavailableAccounts{}, nil
}

type unavailableAccounts struct{}

func (unavailableAccounts) CreateUser(ctx context.Context, email, password, name string) (*identity.User, error) {
	return nil, apperrors.NewUnavailableError("signup requires a configured identity provider")
}

// ProvideQuestionsSink creates the relational questions sink, nil when no
// Supabase client exists. The router skips the routes in that case.
func ProvideQuestionsSink(client *supabase.Client, cfg *config.Config, logger *zap.Logger) questions.Sink {
	if client == nil {
		return nil
	}
	return questions.NewPostgrestSink(client, cfg.QuestionsTable, logger)
}

// ProvideCommunityRepository creates the community repository.
func ProvideCommunityRepository(store persistence.Store) ports.CommunityRepository {
	return repos.NewCommunityRepository(store)
}

// ProvideQuestionRepository creates the question repository.
func ProvideQuestionRepository(store persistence.Store) ports.QuestionRepository {
	return repos.NewQuestionRepository(store)
}

// ProvideLibraryRepository creates the library repository.
func ProvideLibraryRepository(store persistence.Store) ports.LibraryRepository {
	return repos.NewLibraryRepository(store)
}

// ProvidePeriodRepository creates the period repository.
func ProvidePeriodRepository(store persistence.Store) ports.PeriodRepository {
	return repos.NewPeriodRepository(store)
}

// ProvideFeedbackRepository creates the feedback repository.
func ProvideFeedbackRepository(store persistence.Store) ports.FeedbackRepository {
	return repos.NewFeedbackRepository(store)
}

// ProvideProfileRepository creates the profile repository.
func ProvideProfileRepository(store persistence.Store) ports.ProfileRepository {
	return repos.NewProfileRepository(store)
}
