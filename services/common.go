package services

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"math"
	"net/http"
	"time"
)

// HttpRequest sends a JSON request and returns the raw response body.
func HttpRequest(method, url string, header map[string]string, data interface{}) ([]byte, error) {
	return HttpRequestWithTimeout(method, url, header, data, 0)
}

// HttpRequestWithTimeout is HttpRequest with a bounded client timeout; zero
// means no limit. External providers must always pass a limit.
func HttpRequestWithTimeout(method, url string, header map[string]string, data interface{}, timeout time.Duration) ([]byte, error) {

	var requestBody []byte
	var err error
	var req *http.Request

	if data != nil {
		if requestBody, err = json.Marshal(data); err != nil {
			return nil, err
		}
		if req, err = http.NewRequest(method, url, bytes.NewBuffer(requestBody)); err != nil {
			return nil, err
		}
	} else {
		if req, err = http.NewRequest(method, url, nil); err != nil {
			return nil, err
		}
	}

	client := &http.Client{Timeout: timeout}

	req.Header.Set("Content-Type", "application/json")
	for key, element := range header {
		req.Header.Set(key, element)
	}
	if resp, err := client.Do(req); err != nil {
		return nil, err
	} else {
		defer resp.Body.Close()
		if body, err := ioutil.ReadAll(resp.Body); err != nil {
			return nil, err
		} else {
			return body, nil
		}
	}
}

func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
