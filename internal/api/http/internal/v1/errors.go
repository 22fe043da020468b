package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InvalidEmailCode          = 1001
	InvalidEmailMessage       = "invalid email address"
	InvalidOtpFormatCode      = 1002
	InvalidOtpFormatMessage   = "otp must be 6 digits"
	InvalidCredentialsCode    = 1003
	InvalidCredentialsMessage = "invalid or expired otp"
	DeliveryFailedCode        = 1004
	DeliveryFailedMessage     = "failed to send otp email, please try again later"
	UnauthorizedCode          = 1005
	UnauthorizedMessage       = "unauthorized"

	UserNotFoundCode     = 2001
	UserNotFoundMessage  = "user not found"
	NegativeValueCode    = 2002
	NegativeValueMessage = "values cannot be negative"
	ValueTooLargeCode    = 2003
	ValueTooLargeMessage = "value is too large"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case InvalidEmailCode:
		errorStruct.ErrorCode = InvalidEmailCode
		errorStruct.ErrorMessage = InvalidEmailMessage
	case InvalidOtpFormatCode:
		errorStruct.ErrorCode = InvalidOtpFormatCode
		errorStruct.ErrorMessage = InvalidOtpFormatMessage
	case InvalidCredentialsCode:
		errorStruct.ErrorCode = InvalidCredentialsCode
		errorStruct.ErrorMessage = InvalidCredentialsMessage
	case DeliveryFailedCode:
		errorStruct.ErrorCode = DeliveryFailedCode
		errorStruct.ErrorMessage = DeliveryFailedMessage
	case UnauthorizedCode:
		errorStruct.ErrorCode = UnauthorizedCode
		errorStruct.ErrorMessage = UnauthorizedMessage
	case UserNotFoundCode:
		errorStruct.ErrorCode = UserNotFoundCode
		errorStruct.ErrorMessage = UserNotFoundMessage
	case NegativeValueCode:
		errorStruct.ErrorCode = NegativeValueCode
		errorStruct.ErrorMessage = NegativeValueMessage
	case ValueTooLargeCode:
		errorStruct.ErrorCode = ValueTooLargeCode
		errorStruct.ErrorMessage = ValueTooLargeMessage
	}

	return errorStruct
}
