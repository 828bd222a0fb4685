package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InvalidReferenceCode       = 1000
	InvalidReferenceMessage    = "invalid role or profession"
	UserAlreadyExistsCode      = 1001
	UserAlreadyExistsMessage   = "user already exists"
	UserNotFoundCode           = 1002
	UserNotFoundMessage        = "user not found"
	InvalidCredentialsCode     = 1003
	InvalidCredentialsMessage  = "invalid credentials"
	InternalServerErrorCode    = 1004
	InternalServerErrorMessage = "internal server error"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "invalid request data"
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
} // @name ValidationErrorStruct

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
	case InvalidReferenceCode:
		errorStruct.ErrorCode = InvalidReferenceCode
		errorStruct.ErrorMessage = InvalidReferenceMessage
	case UserAlreadyExistsCode:
		errorStruct.ErrorCode = UserAlreadyExistsCode
		errorStruct.ErrorMessage = UserAlreadyExistsMessage
	case UserNotFoundCode:
		errorStruct.ErrorCode = UserNotFoundCode
		errorStruct.ErrorMessage = UserNotFoundMessage
	case InvalidCredentialsCode:
		errorStruct.ErrorCode = InvalidCredentialsCode
		errorStruct.ErrorMessage = InvalidCredentialsMessage
	case InternalServerErrorCode:
		errorStruct.ErrorCode = InternalServerErrorCode
		errorStruct.ErrorMessage = InternalServerErrorMessage
	}

	return errorStruct
}
