package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RequestParamID       = "id"
	RequestParamMonthKey = "monthKey"
)

const (
	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Postgres error codes raised when rows and the remote schema disagree.
const (
	PqErrorCodeUndefinedColumn    = "42703"
	PqErrorCodeUndefinedTable     = "42P01"
	PqErrorCodeInvalidTextRepr    = "22P02"
	PqErrorCodeDatatypeMismatch   = "42804"
	PqErrorCodeInvalidColumnRefer = "42P10"
)

const (
	DateOnlyFormat  = time.DateOnly
	MonthKeyFormat  = "2006-01"
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
	OtelTableAttributeKey = "table"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ResponseHeaderCacheControl = "Cache-Control"
	CacheControlNoStore        = "no-store"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
