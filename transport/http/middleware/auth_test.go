package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"parkside/config"
	"parkside/infras/jwt"
	jwtMocks "parkside/infras/jwt/mocks"
	otelMocks "parkside/infras/otel/mocks"
	"parkside/shared/constant"
	"parkside/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	jwt *jwtMocks.MockJWT
	mw  middleware.Auth
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	jwtMock := jwtMocks.NewMockJWT(ctrl)

	return &authFixture{
		jwt: jwtMock,
		mw:  middleware.NewAuthMiddleware(jwtMock, otelMocks.NewOtel(), cfg),
	}
}

// guarded chains the middlewares the way the account routes mount them.
func (f *authFixture) guarded(final http.Handler) http.Handler {
	return f.mw.APIKey(f.mw.Auth(final))
}

func TestAPIKey(t *testing.T) {
	t.Run("a valid API key bypasses JWT auth", func(t *testing.T) {
		f := newAuthFixture(t)

		reached := false
		chain := f.guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/account/me", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "internal-key")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a wrong API key", func(t *testing.T) {
		f := newAuthFixture(t)

		chain := f.guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/account/me", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "not-the-key")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuth(t *testing.T) {
	t.Run("requires a token when no API key is sent", func(t *testing.T) {
		f := newAuthFixture(t)

		chain := f.guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/account/me", nil)
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("a valid bearer token sets the customer context", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("tok", jwt.AccessToken).
			Return(&jwt.Claims{CustomerID: "cust_1", Email: "riley@example.com", TokenID: "tid_1"}, nil)

		var gotCustomerID any
		chain := f.guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCustomerID = r.Context().Value(constant.ContextKeyCustomerID)
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/account/me", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cust_1", gotCustomerID)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("tok", jwt.AccessToken).
			Return(nil, jwt.ErrExpiredToken)

		chain := f.guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/account/me", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects claims without a customer", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("tok", jwt.AccessToken).
			Return(&jwt.Claims{Email: "riley@example.com"}, nil)

		chain := f.guarded(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/account/me", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
