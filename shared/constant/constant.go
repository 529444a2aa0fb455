package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyCustomerID    contextKey = "customer_id"
	ContextKeyCustomerEmail contextKey = "customer_email"
	ContextKeyTokenID       contextKey = "token_id"
)

const (
	RequestParamID      = "id"
	RequestParamDateKey = "date"
)

const (
	Empty = ""
)

const (
	DateFormat     = time.RFC3339
	DateKeyFormat  = "010206"
	DateOnlyFormat = "2006-01-02"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelEventScopeName    = "event"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderStorefrontToken    = "X-Storefront-Access-Token"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorRequestLimitExceeded = "Request limit exceeded. Please try again later."
	ResponseErrorPrepareShutdown      = "Server is preparing to shut down."
	ResponseErrorUnhealthy            = "Server is unhealthy."
)
