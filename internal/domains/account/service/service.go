package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"parkside/config"
	"parkside/infras/commerce"
	"parkside/infras/jwt"
	"parkside/infras/otel"
	"parkside/internal/domains/account/model"
	"parkside/internal/domains/account/model/dto"
	"parkside/shared"
	"parkside/shared/cache"
	"parkside/shared/constant"
	"parkside/shared/failure"

	"github.com/rs/zerolog/log"
)

const tokenKeyPrefix = "account:token"

type Account interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.LoginResponse, error)
	Me(ctx context.Context) (dto.CustomerResponse, error)
}

type serviceImpl struct {
	config   *config.Config
	commerce commerce.Commerce
	jwt      jwt.JWT
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(config *config.Config, commerce commerce.Commerce, jwtSvc jwt.JWT, cache cache.RedisCache, otel otel.Otel) Account {
	return &serviceImpl{
		config:   config,
		commerce: commerce,
		jwt:      jwtSvc,
		cache:    cache,
		otel:     otel,
	}
}

// Login exchanges storefront credentials for a platform access token, caches
// the platform token server side and issues our own JWT pair to the client.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err := s.commerce.CustomerLogin(ctx, req.Email, req.Password)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	customer, err := s.commerce.Customer(ctx, token.AccessToken)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	stored := model.StoredToken{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
	}

	err = s.cache.Save(ctx, shared.BuildCacheKey(tokenKeyPrefix, customer.ID), stored, s.config.JWT.RefreshExpireMin*constant.MinutesToSeconds)
	if err != nil {
		log.Error().Err(err).Str("customerID", customer.ID).Msg("[AccountService] Failed to cache platform token")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	pair, err := s.jwt.GenerateTokenPair(customer.ID, customer.Email)
	if err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	log.Info().Str("customerID", customer.ID).Msg("[AccountService] Customer logged in")

	return dto.LoginResponseFromPair(pair), nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	return dto.LoginResponseFromPair(pair), nil
}

// Me resolves the authenticated customer's profile through the cached platform
// token. A missing cached token means the platform session lapsed before our
// JWT did, so the client has to log in again.
func (s *serviceImpl) Me(ctx context.Context) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, ok := ctx.Value(constant.ContextKeyCustomerID).(string)
	if !ok || customerID == "" {
		return res, failure.Unauthorized("missing authentication") // nolint:wrapcheck
	}

	var stored model.StoredToken

	err = s.cache.Get(ctx, shared.BuildCacheKey(tokenKeyPrefix, customerID), &stored)
	if err != nil {
		return res, failure.Unauthorized("session expired, please log in again") // nolint:wrapcheck
	}

	customer, err := s.commerce.Customer(ctx, stored.AccessToken)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	return dto.CustomerResponseFromModel(customer), nil
}
