package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"parkside/config"
	otelMocks "parkside/infras/otel/mocks"
	"parkside/shared/constant"
	"parkside/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "first hop of X-Forwarded-For wins",
			remoteAddr: "10.0.0.1:52341",
			headers:    map[string]string{constant.RequestHeaderForwardedFor: "203.0.113.7, 10.0.0.1"},
			want:       "203.0.113.7",
		},
		{
			name:       "X-Real-IP when no forwarded chain",
			remoteAddr: "10.0.0.1:52341",
			headers:    map[string]string{constant.RequestHeaderRealIP: "203.0.113.9"},
			want:       "203.0.113.9",
		},
		{
			name:       "RemoteAddr fallback drops the port",
			remoteAddr: "203.0.113.11:52341",
			want:       "203.0.113.11",
		},
		{
			name:       "RemoteAddr without a port is kept as is",
			remoteAddr: "203.0.113.11",
			want:       "203.0.113.11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			assert.Equal(t, tt.want, mw.ClientIP(req))
		})
	}
}
