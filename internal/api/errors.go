package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Errors is the displayable outcome of one failed request: an ordered list
// of human-readable messages. It is the only failure shape delivered to
// page code; transport, status, and decode failures all collapse into it at
// this boundary. A nil Errors means success.
type Errors []string

// errorsBody is the Conduit structured error payload:
// {"errors": {"email": ["has already been taken"]}}.
type errorsBody struct {
	Errors map[string][]string `json:"errors"`
}

// classifySendError maps a transport-level failure (the request never
// produced a response) to a single generic displayable line.
func classifySendError(err error) Errors {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return Errors{"server is taking too long to respond (timeout)"}
		}
		if urlErr.Op == "parse" {
			return Errors{"invalid server URL: " + urlErr.URL}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Errors{"server is taking too long to respond (timeout)"}
	}
	return Errors{"unable to reach the server"}
}

// classifyStatus maps a non-2xx response to displayable messages. A
// decodable structured error body yields its field-tagged messages
// verbatim; anything else is summarized from the status text.
func classifyStatus(resp *resty.Response) Errors {
	var body errorsBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && len(body.Errors) > 0 {
		fields := make([]string, 0, len(body.Errors))
		for field := range body.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		var out Errors
		for _, field := range fields {
			for _, msg := range body.Errors[field] {
				out = append(out, strings.TrimSpace(field+" "+msg))
			}
		}
		return out
	}

	text := http.StatusText(resp.StatusCode())
	if text == "" {
		text = "unexpected server response"
	}
	return Errors{"server error: " + text}
}

// classifyDecodeError maps a response-body decode failure to a message
// carrying the decoder's diagnostic. These messages are aimed at logs more
// than end users, but they still flow through the same banner path.
func classifyDecodeError(err error) Errors {
	return Errors{"unexpected response from server: " + err.Error()}
}
