package oas

import (
	"strconv"

	"github.com/erraggy/oasdesc/oaserrors"
)

// StatusCode is a responses key: "100" through "599", or "default".
// Values should be obtained from ParseStatusCode or StatusCodeOf.
type StatusCode string

// StatusDefault is the catch-all response key.
const StatusDefault StatusCode = "default"

// Responses maps status codes to responses.
type Responses map[StatusCode]*Response

// ParseStatusCode validates a responses key. It accepts exactly three
// decimal digits in the range 100..599, or "default".
func ParseStatusCode(s string) (StatusCode, error) {
	if s == string(StatusDefault) {
		return StatusDefault, nil
	}
	if len(s) != 3 {
		return "", oaserrors.NewUnsupportedStatusCode(s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", oaserrors.NewUnsupportedStatusCode(s)
		}
	}
	n, _ := strconv.Atoi(s)
	if n < 100 || n > 599 {
		return "", oaserrors.NewUnsupportedStatusCode(s)
	}
	return StatusCode(s), nil
}

// StatusCodeOf converts an HTTP status such as http.StatusOK.
func StatusCodeOf(code int) (StatusCode, error) {
	if code < 100 || code > 599 {
		return "", oaserrors.NewUnsupportedStatusCode(strconv.Itoa(code))
	}
	return StatusCode(strconv.Itoa(code)), nil
}

// Set stores resp under the parsed key.
func (r Responses) Set(code string, resp *Response) error {
	sc, err := ParseStatusCode(code)
	if err != nil {
		return err
	}
	r[sc] = resp
	return nil
}

// Get returns the response for code, or nil when the slot is empty or the
// key is not a valid status code.
func (r Responses) Get(code string) *Response {
	sc, err := ParseStatusCode(code)
	if err != nil {
		return nil
	}
	return r[sc]
}
