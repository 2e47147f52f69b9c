package models

// Response status values used across all JSON envelopes.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ErrorResponse is the JSON body written for every non-2xx response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageResponse is a minimal success envelope for operations that
// return no payload, such as deletion.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SignupResponse is returned by POST /api/auth/signup on success.
type SignupResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
	ID       string `json:"id"`
}

// LoginResponse is returned by POST /api/auth/login on success.
type LoginResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// UserInfo is the public projection of a User embedded in LoginResponse.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TodoResponse wraps a single todo record.
type TodoResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    TodoData `json:"data"`
}

// TodoData is the data section of TodoResponse.
type TodoData struct {
	Todo Todo `json:"todo"`
}

// TodoListResponse wraps the full todo set of one user. Result holds the
// number of entries so the client can validate the response without
// iterating the slice.
type TodoListResponse struct {
	Status string       `json:"status"`
	Result int          `json:"result"`
	Data   TodoListData `json:"data"`
}

// TodoListData is the data section of TodoListResponse.
type TodoListData struct {
	Todos []Todo `json:"todos"`
}
