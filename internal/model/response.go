package model

// Response is the envelope used for non-document responses.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// NewErrorResponse builds a failure envelope. Detail may be empty.
func NewErrorResponse(message, detail string) Response {
	return Response{Success: false, Message: message, Detail: detail}
}

// NewSuccessResponse builds a success envelope around data.
func NewSuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}
