package constant

type ContextKey string

// RequestIDKey carries the per-request id set by the logging middleware.
const RequestIDKey ContextKey = "request_id"

const (
	UserTypeConsumer = "consumer"
	UserTypeProvider = "provider"
)

const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

const (
	MessageTypeText = "text"

	// AIChatID is the reserved chat partition for assistant conversations.
	AIChatID = "ai-assistant"
)

const (
	ServiceAvailable = "available"
)
