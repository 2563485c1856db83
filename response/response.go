package response

const (
	MsgOK    = "OK"
	MsgError = "An error occured"
)

type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Response {
	return Response{
		Message: MsgOK,
		Data:    data,
	}
}

func Error(err error) Response {
	return Response{
		Message: MsgError,
		Error:   err.Error(),
	}
}
