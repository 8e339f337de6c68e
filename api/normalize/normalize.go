/* normalize.go
 * Maps each season to the response shape the schedule API used for it, and contains the helpers
 * shared by both normalizers
 * Authors: owl-scraper contributors
 */

package normalize

import (
	"fmt"
	"sort"
	"strconv"

	"owl-scraper/api/shared"
)

// SchemaVersion identifies one of the schedule API response shapes
type SchemaVersion int

const (
	// SchemaV1 is the paginated table shape used by the 2018 and 2019 seasons
	SchemaV1 SchemaVersion = iota + 1
	// SchemaV2 is the event/venue nested shape used from 2020
	SchemaV2
)

func (v SchemaVersion) String() string {
	switch v {
	case SchemaV1:
		return "v1"
	case SchemaV2:
		return "v2"
	default:
		return "unknown"
	}
}

// Func converts one raw page into match records
type Func func(season string, page map[string]interface{}) ([]shared.MatchRecord, error)

type seasonConfig struct {
	schema SchemaVersion
	stages []string
}

// Stage indexes are the tabs on the schedule page, not stage names.
// 2018 skips preseason (index 1), 2019 skips all-stars (index 3)
var seasons = map[string]seasonConfig{
	"2018": {schema: SchemaV1, stages: []string{"2", "3", "4", "5", "6"}},
	"2019": {schema: SchemaV1, stages: []string{"1", "2", "4", "5", "6"}},
	"2020": {schema: SchemaV2, stages: []string{"regular_season"}},
}

// SchemaFor returns the schema version used by a season
func SchemaFor(season string) (SchemaVersion, error) {
	cfg, ok := seasons[season]
	if !ok {
		return 0, &shared.ConfigError{Key: "season", Reason: fmt.Sprintf("no schema registered for season %s", season)}
	}
	return cfg.schema, nil
}

// For returns the normalizer for a schema version
func For(version SchemaVersion) (Func, error) {
	switch version {
	case SchemaV1:
		return NormalizeV1, nil
	case SchemaV2:
		return NormalizeV2, nil
	default:
		return nil, &shared.ConfigError{Key: "schema", Reason: fmt.Sprintf("no normalizer for schema %s", version)}
	}
}

// Stages returns the stage ids collected for a season
func Stages(season string) ([]string, error) {
	cfg, ok := seasons[season]
	if !ok {
		return nil, &shared.ConfigError{Key: "season", Reason: fmt.Sprintf("no stages registered for season %s", season)}
	}
	return append([]string(nil), cfg.stages...), nil
}

// Seasons returns every configured season in ascending order
func Seasons() []string {
	keys := make([]string, 0, len(seasons))
	for k := range seasons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalPages reads the page count reported by a schedule page
// Postconditions: Returns the count and true, or false if the page doesn't report one
func TotalPages(page map[string]interface{}) (int, bool) {
	n, ok := shared.DigNumber(page, "content", "tableData", "pagination", "totalPages")
	if !ok {
		return 0, false
	}
	return int(n), true
}

// parseCompetitors gets the teams composite and competitor objects for a match.
// Preconditions: Receives the match id and the raw competitors value
// Postconditions: Returns nil if there aren't exactly two competitors, or a DataError if either is missing its abbreviated name
func parseCompetitors(id string, raw interface{}) (*string, []map[string]interface{}, error) {
	list, ok := raw.([]interface{})
	if !ok || len(list) != 2 {
		return nil, nil, nil
	}

	var names [2]string
	competitors := make([]map[string]interface{}, 2)
	for i := range list {
		competitor, ok := list[i].(map[string]interface{})
		if !ok {
			return nil, nil, &shared.DataError{MatchID: id, Reason: fmt.Sprintf("competitor %d is not an object", i+1)}
		}
		name, ok := competitor["abbreviatedName"].(string)
		if !ok {
			return nil, nil, &shared.DataError{MatchID: id, Reason: fmt.Sprintf("competitor %d has no abbreviated name", i+1)}
		}
		names[i] = name
		competitors[i] = competitor
	}

	teams := shared.JoinPair(names[0], names[1])
	return &teams, competitors, nil
}

// matchID reads a match id, which is numeric in older payloads and a string in newer ones
func matchID(match map[string]interface{}) string {
	switch id := match["id"].(type) {
	case string:
		return id
	case float64:
		return formatNumber(id)
	default:
		return ""
	}
}

// timestampFields reads an epoch millisecond field and derives the date and time columns
func timestampFields(match map[string]interface{}, key string) (*int64, *string, *string) {
	n, ok := match[key].(float64)
	if !ok {
		return nil, nil, nil
	}
	millis := int64(n)
	date, clock := splitTimestamp(millis)
	return &millis, &date, &clock
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
