/* external.go
 * Contains the shared request logic for the schedule and Twitch APIs. Responses are decoded into
 * generic maps, the normalizers decide which parts of them matter
 * Authors: owl-scraper contributors
 */

package external

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// TransportError is returned for non 2xx responses. Network errors are returned as resty gives them
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// getJSON sends a GET request and decodes the JSON object in the body
// Preconditions: Receives a request with headers already applied, the path and the query params
// Postconditions: Returns the decoded body, or an error if the request failed or the body isn't an object
func getJSON(ctx context.Context, request *resty.Request, path string, params map[string]string) (map[string]interface{}, error) {
	response, err := request.
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if response.IsError() {
		return nil, &TransportError{
			URL:        response.Request.URL,
			StatusCode: response.StatusCode(),
			Body:       string(response.Body()),
		}
	}
	slog.DebugContext(ctx, "fetched", "url", response.Request.URL, "status", response.StatusCode(), "bytes", len(response.Body()))

	var root map[string]interface{}
	if err := json.Unmarshal(response.Body(), &root); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return root, nil
}
