package dto

// HandleValidationError converts a request binding error into a standard
// error detail
func HandleValidationError(err error) *ErrorDetail {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Invalid request payload")
	if err != nil {
		detail = detail.WithDetails(err.Error())
	}
	return detail
}
