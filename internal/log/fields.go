package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldKind        = "kind"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldCount       = "count"
	FieldBackend     = "backend"
	FieldAction      = "action"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentBackend = "backend"
)

// Standard operation names.
const (
	OpAdd      = "add"
	OpDelete   = "delete"
	OpList     = "list"
	OpSave     = "save"
	OpLoad     = "load"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
