package heroku

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
)

// ApiError is returned for any platform response other than 200. The
// decoded response body is carried for diagnostics.
type ApiError struct {
	StatusCode int
	Body       interface{}
}

func (e *ApiError) Error() string {
	if m, ok := e.Body.(map[string]interface{}); ok {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return fmt.Sprintf("response status %d: %s", e.StatusCode, msg)
		}
	}

	if e.Body != nil {
		return fmt.Sprintf("response status %d: %+v", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("response status %d", e.StatusCode)
}

func responseError(res *http.Response) error {
	if res.StatusCode == 200 {
		return nil
	}

	e := &ApiError{StatusCode: res.StatusCode}

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return e
	}

	var body interface{}

	if err := json.Unmarshal(data, &body); err != nil {
		body = strings.TrimSpace(string(data))
	}

	e.Body = body

	return e
}
