package response

// Standard messages and error codes for the JSON envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong. Please try again later."

	InternalServerErrorCode = 500
)

// Wire format for DateTime values.
const DateTimeFormat = "2006-01-02 15:04:05"
