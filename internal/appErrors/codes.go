package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodePostNotFound        ErrorCode = "POST_NOT_FOUND"
	CodeNoticeNotFound      ErrorCode = "NOTICE_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodePaymentRequired    ErrorCode = "PAYMENT_REQUIRED"
	CodeOfferAlreadySent   ErrorCode = "OFFER_ALREADY_SENT"
	CodeAdminOnly          ErrorCode = "ADMIN_ONLY"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
