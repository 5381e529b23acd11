package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the provider. StatusCode is the HTTP
// status the provider answered with, Code its machine-readable error code
// when one was present, Message the human-readable description.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("supabase: http %d", e.StatusCode)
	}
	return fmt.Sprintf("supabase: %s (http %d)", e.Message, e.StatusCode)
}

// AsAPIError unwraps err into an *APIError when one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// errorBody covers the error payload shapes of both the auth endpoints
// ("msg"/"error_description") and the table endpoints ("message").
type errorBody struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
	ErrorField       string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

func newAPIError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Message = string(raw)
		return apiErr
	}

	switch {
	case body.Msg != "":
		apiErr.Message = body.Msg
	case body.Message != "":
		apiErr.Message = body.Message
	case body.ErrorDescription != "":
		apiErr.Message = body.ErrorDescription
	case body.ErrorField != "":
		apiErr.Message = body.ErrorField
	default:
		apiErr.Message = string(raw)
	}

	if body.ErrorCode != "" {
		apiErr.Code = body.ErrorCode
	} else if len(body.Code) > 0 {
		// PostgREST sends string codes, the auth API numeric ones.
		var s string
		if err := json.Unmarshal(body.Code, &s); err == nil {
			apiErr.Code = s
		}
	}

	return apiErr
}
