package client

// ApiResponse is the envelope the API wraps every successful payload in.
type ApiResponse[T any] struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
	StatusCode int    `json:"status_code"`
}

type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
}

// PaginatedResponse extends the envelope for collection endpoints.
type PaginatedResponse[T any] struct {
	ApiResponse[[]T]
	Pagination Pagination `json:"pagination"`
}
