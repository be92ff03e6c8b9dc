package errors

// ErrorCode represents a standardized error code used throughout the pipeline
type ErrorCode string

// Event decoding error codes (EVENT_*)
const (
	EventMalformedEnvelope    ErrorCode = "EVENT_001"
	EventValidationFailed     ErrorCode = "EVENT_002"
	EventUnsupportedOperation ErrorCode = "EVENT_003"
)

// Owner error codes (OWNER_*)
const (
	OwnerNotFound ErrorCode = "OWNER_001"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound   ErrorCode = "CATEGORY_001"
	CategoryCrossOwner ErrorCode = "CATEGORY_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalid       ErrorCode = "TRANSACTION_001"
	TransactionNotFound      ErrorCode = "TRANSACTION_002"
	TransactionPersistFailed ErrorCode = "TRANSACTION_003"
)

// Automation rule error codes (RULE_*)
const (
	RuleEvaluationFailed ErrorCode = "RULE_001"
	RuleActionSkipped    ErrorCode = "RULE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError ErrorCode = "SYSTEM_001"
	SystemDatabaseError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	EventMalformedEnvelope:    "Inbound envelope could not be parsed",
	EventValidationFailed:     "Inbound payload failed validation",
	EventUnsupportedOperation: "Operation is not handled by this pipeline",

	OwnerNotFound: "Owner does not exist",

	CategoryNotFound:   "Category does not exist",
	CategoryCrossOwner: "Category belongs to a different owner",

	TransactionInvalid:       "Transaction violates a model invariant",
	TransactionNotFound:      "Transaction does not exist",
	TransactionPersistFailed: "Transaction could not be persisted",

	RuleEvaluationFailed: "Automation rule evaluation failed",
	RuleActionSkipped:    "Automation rule action was skipped",

	SystemInternalError: "An internal error occurred",
	SystemDatabaseError: "A database error occurred",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return errorMessages[SystemInternalError]
}

// IsValidErrorCode checks whether the code is part of the taxonomy
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
