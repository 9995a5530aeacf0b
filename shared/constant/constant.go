package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleClient = "client"
)

const (
	UserStatusActive  = "Active"
	UserStatusBlocked = "Blocked"
)

const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
	RoomTypeDeluxe = "Deluxe"

	RoomStatusAvailable   = "Available"
	RoomStatusBooked      = "Booked"
	RoomStatusMaintenance = "Maintenance"
)

const (
	BookingStatusPending   = "Pending"
	BookingStatusApproved  = "Approved"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"

	PaymentMethodUPI        = "UPI"
	PaymentMethodCard       = "Card"
	PaymentMethodCash       = "Cash"
	PaymentMethodNetBanking = "Net Banking"
)

const (
	// DemoAdminEmail is the only address accepted by sign-in when the
	// remote backend is not configured.
	DemoAdminEmail = "admin@dostapp.com"

	// PlaceholderImageURL stands in for an image whose upload failed.
	PlaceholderImageURL = "https://via.placeholder.com/400"

	// MaxRoomImages bounds the images attached to a room.
	MaxRoomImages = 5
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamSearch  = "q"
	RequestParamStatus  = "status"
	RequestParamFormat  = "format"
)

// FilterAll is the sentinel that disables a categorical filter.
const FilterAll = "All"

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeCSV               = "text/csv"
	ContentTypeXLSX              = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
