package httpapi

// Response is the envelope every operation returns. Success defaults to
// true and is set false only by error paths; Status, Msg, and Data are
// omitted when empty.
type Response struct {
	Success bool   `json:"success"`
	Status  int    `json:"status,omitempty"`
	Msg     string `json:"msg,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(data any) Response {
	return Response{Success: true, Status: 200, Data: data}
}

func fail(status int, msg string) Response {
	return Response{Success: false, Status: status, Msg: msg}
}
