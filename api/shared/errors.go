/* errors.go
 * Error kinds returned by the collectors. None of them are retried, callers are expected to abort
 * the current stage or video run when one is returned
 * Authors: owl-scraper contributors
 */

package shared

import (
	"fmt"
	"strings"
)

// ShapeError is returned when a required path is missing from an API response
type ShapeError struct {
	Path []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape: missing '%s'", strings.Join(e.Path, "."))
}

// DataError is returned when a match is present but can't be normalized, e.g. a competitor without a name
type DataError struct {
	MatchID string
	Reason  string
}

func (e *DataError) Error() string {
	if e.MatchID == "" {
		return fmt.Sprintf("malformed data: %s", e.Reason)
	}
	return fmt.Sprintf("malformed match %s: %s", e.MatchID, e.Reason)
}

// ConfigError is returned for missing or unknown configuration
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// UsageError is returned when a helper is called with invalid arguments
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}
