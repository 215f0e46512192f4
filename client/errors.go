package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	CodeApiError     = "API_ERROR"
	CodeNetworkError = "NETWORK_ERROR"
	CodeRequestError = "REQUEST_ERROR"

	networkErrorMessage = "Network error - please check your connection"
)

// Messages holds the API's message field, which arrives as either a single
// string or an array of strings.
type Messages []string

func (m *Messages) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = Messages{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = many
	return nil
}

func (m Messages) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return json.Marshal(m[0])
	}
	return json.Marshal([]string(m))
}

func (m Messages) String() string {
	return strings.Join(m, "; ")
}

// ErrorResponse is the single normalized shape for every transport or API
// failure. It is one of the two error kinds a caller can see; validation
// failures use api.ValidationError instead.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    Messages `json:"message"`
	Code       string   `json:"error"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

func networkError() *ErrorResponse {
	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    Messages{networkErrorMessage},
		Code:       CodeNetworkError,
	}
}

func requestError(err error) *ErrorResponse {
	message := "Request configuration error"
	if err != nil {
		message = err.Error()
	}
	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    Messages{message},
		Code:       CodeRequestError,
	}
}

// responseError maps a non-2xx response to an ErrorResponse. The body's
// message and error fields win when present; otherwise messages are
// synthesized from the status.
func responseError(status int, body []byte) *ErrorResponse {
	out := &ErrorResponse{StatusCode: status, Code: CodeApiError}
	var parsed struct {
		Message Messages `json:"message"`
		Error   string   `json:"error"`
	}
	if len(body) > 0 {
		json.Unmarshal(body, &parsed)
	}
	if len(parsed.Message) > 0 {
		out.Message = parsed.Message
	} else {
		out.Message = Messages{fmt.Sprintf("HTTP %d Error", status)}
	}
	if parsed.Error != "" {
		out.Code = parsed.Error
	} else if text := http.StatusText(status); text != "" {
		out.Code = text
	}
	return out
}

// IsErrorResponse unwraps err as a normalized API error, if it is one.
func IsErrorResponse(err error) (*ErrorResponse, bool) {
	out, ok := err.(*ErrorResponse)
	return out, ok
}
