package v1

// Messages
const (
	UnknownErrorMessage        = "Internal Server Error"
	InvalidCodeMessage         = "Invalid or expired code"
	AccountNotFoundMessage     = "Account not found"
	UnauthorizedMessage        = "Unauthorized"
	InvalidRequestBodyMessage  = "Invalid request body"
	SendCodeFailedMessage      = "Failed to send verification code"
	VerifyCodeFailedMessage    = "Error verifying code"
	ResetPasswordFailedMessage = "Failed to reset password"
	ListFailedMessage          = "Error fetching credentials"

	CodeSentMessage      = "Verification code sent successfully"
	CodeVerifiedMessage  = "Code verified successfully"
	PasswordResetMessage = "Password reset successfully"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
} // @name Response

type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}
