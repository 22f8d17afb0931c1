//go:build wireinject
// +build wireinject

package main

import (
	"github.com/EmreNP/sendikaapp-sub000/internal/app"
	"github.com/EmreNP/sendikaapp-sub000/internal/conf"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/mongodb"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/identity"
	"github.com/EmreNP/sendikaapp-sub000/internal/limiter"
	"github.com/EmreNP/sendikaapp-sub000/internal/logger"
	"github.com/EmreNP/sendikaapp-sub000/internal/logic"
	"github.com/EmreNP/sendikaapp-sub000/internal/middleware/http"
	"github.com/EmreNP/sendikaapp-sub000/internal/provider"
	"github.com/EmreNP/sendikaapp-sub000/internal/service"
	"github.com/EmreNP/sendikaapp-sub000/pkg/snowflake"

	"github.com/google/wire"
)

// baseProviders holds infrastructure shared by every injector.
var baseProviders = wire.NewSet(
	wire.FieldsOf(new(*conf.AppConfig), "LogConfig", "MongodbConfig", "JwtConfig", "RedisConfig", "RateLimiterConfig"),
	provider.ProvideAppMode,
	logger.NewLogger,
	mongodb.NewMongoDB,
	provider.ProvideDatabase,
	provider.ProvideMachineID,
	provider.ProvideJwtManager,
	provider.ProvideRedisNamespace,
	provider.ProvideRedisClient,
	limiter.NewManager,
	snowflake.NewGenerator,
	mongodb.NewMembersDAO,
	wire.Bind(new(repository.MemberRepository), new(*mongodb.MembersDAO)),
	mongodb.NewBranchesDAO,
	wire.Bind(new(repository.BranchRepository), new(*mongodb.BranchesDAO)),
	mongodb.NewAuditLogDAO,
	wire.Bind(new(repository.AuditLogRepository), new(*mongodb.AuditLogDAO)),
	mongodb.NewPostsDAO,
	wire.Bind(new(repository.PostRepository), new(*mongodb.PostsDAO)),
	mongodb.NewOrderedDAO,
	wire.Bind(new(repository.OrderedRepository), new(*mongodb.OrderedDAO)),
	mongodb.NewIdentitiesDAO,
	wire.Bind(new(repository.IdentityRepository), new(*mongodb.IdentitiesDAO)),
	identity.NewProvider,
	logic.NewOrderingEngine,
	logic.MemberLogicProviderSet,
	logic.PostLogicProviderSet,
	logic.BulkLogicProviderSet,
)

func InitializeApp(appConfig *conf.AppConfig) (*app.App, func(), error) {
	wire.Build(
		baseProviders,
		wire.FieldsOf(new(*conf.AppConfig), "Port"),
		service.NewResponder,
		service.NewMembersHandler,
		service.NewPostsHandler,
		service.NewBulkHandler,
		http.NewAuthMiddleware,
		http.NewTokenMiddleware,
		app.NewRouter,
		app.NewApp,
	)
	return nil, nil, nil
}
