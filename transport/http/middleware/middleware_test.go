package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reziro/config"
	"reziro/infras/jwt"
	otelMocks "reziro/infras/otel/mocks"
	"reziro/shared/cache"
	cacheMocks "reziro/shared/cache/mocks"
	"reziro/shared/constant"
	"reziro/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "reziro"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.AccessExpireMin = 60
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(userID))
	})
}

func TestAuth(t *testing.T) {
	cfg := testConfig()
	tokens := jwt.New(cfg, otelMocks.NewOtel())

	token, err := tokens.GenerateAccessToken("u-1", "owner@hotel.test")
	require.NoError(t, err)

	handler := middleware.NewAuthMiddleware(tokens, otelMocks.NewOtel()).Auth(echoUser())

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{name: "valid token", header: "Bearer " + token, code: http.StatusOK, body: "u-1"},
		{name: "missing header", code: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, code: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + token + "x", code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/v1/state", nil)
			if tt.header != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.code, recorder.Code)

			if tt.body != "" {
				assert.Equal(t, tt.body, recorder.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), testConfig(), redis)
	handler := app.RateLimit()(echoUser())

	accountRequest := func() *http.Request {
		request := httptest.NewRequest(http.MethodGet, "/v1/state", nil)

		return request.WithContext(context.WithValue(request.Context(), constant.ContextKeyUserID, "u-1"))
	}

	const key = "reziro:limiter:account:u-1"

	t.Run("first request opens the window", func(t *testing.T) {
		redis.EXPECT().Hit(gomock.Any(), key, 60).Return(int64(1), nil)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, accountRequest())

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "1", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		redis.EXPECT().Hit(gomock.Any(), key, 60).Return(int64(3), nil)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, accountRequest())

		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	})

	t.Run("cache outage lets the request through", func(t *testing.T) {
		redis.EXPECT().Hit(gomock.Any(), key, 60).Return(int64(0), errors.New("connection refused"))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, accountRequest())

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("disabled cache lets the request through", func(t *testing.T) {
		noop := middleware.NewAppMiddleware(otelMocks.NewOtel(), testConfig(), cache.NewNoopCache())

		recorder := httptest.NewRecorder()
		noop.RateLimit()(echoUser()).ServeHTTP(recorder, accountRequest())

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("anonymous requests count per client", func(t *testing.T) {
		clientKey := "reziro:limiter:client:10.0.0.1:curl"

		redis.EXPECT().Hit(gomock.Any(), clientKey, 60).Return(int64(1), nil)

		request := httptest.NewRequest(http.MethodGet, "/health", nil)
		request.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
		request.Header.Set(constant.RequestHeaderUserAgent, "curl")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
