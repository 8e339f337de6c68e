/* v1.go
 * Normalizer for the 2018/2019 schedule response. Matches sit in a single paginated table and any
 * homestand (host/venue) info is shared by the whole page
 * Authors: owl-scraper contributors
 */

package normalize

import (
	"strings"

	"owl-scraper/api/shared"
)

const (
	defaultVenue     = "Blizzard Arena"
	ticketSalePrefix = "Buy Tickets: "
)

var v1MatchesPath = []string{"content", "tableData", "data", "matches"}

// NormalizeV1 converts a legacy schedule page into match records
// Preconditions: Receives the season and the decoded page
// Postconditions: Returns one record per match, a ShapeError if the matches list is missing,
// or a DataError if a two team match is missing a team name
func NormalizeV1(season string, page map[string]interface{}) ([]shared.MatchRecord, error) {
	ok, err := shared.HasPath(page, v1MatchesPath...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &shared.ShapeError{Path: v1MatchesPath}
	}
	data, _ := shared.DigMap(page, "content", "tableData", "data")
	matches, ok := data["matches"].([]interface{})
	if !ok {
		return nil, &shared.ShapeError{Path: v1MatchesPath}
	}

	stageName, _ := data["stage"].(string)
	stage := strings.TrimSpace(strings.ReplaceAll(stageName, "stage", ""))
	var pageName *string
	if name, ok := data["name"].(string); ok {
		pageName = shared.StrPtr(name)
	}
	host, venue := parseHomestand(data)

	records := make([]shared.MatchRecord, 0, len(matches))
	for _, raw := range matches {
		match, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &shared.DataError{Reason: "match is not an object"}
		}
		id := matchID(match)

		teams, competitors, err := parseCompetitors(id, match["competitors"])
		if err != nil {
			return nil, err
		}
		var scores *string
		if competitors != nil {
			scores = shared.StrPtr(shared.JoinPair(competitorScore(competitors[0]), competitorScore(competitors[1])))
		}

		ts, date, clock := timestampFields(match, "startDateTS")
		status, _ := match["status"].(string)

		records = append(records, shared.MatchRecord{
			ID:             id,
			Season:         season,
			Stage:          stage,
			PageName:       pageName,
			Host:           host,
			VenueName:      venue,
			StartTimestamp: ts,
			Date:           date,
			Time:           clock,
			Status:         status,
			Teams:          teams,
			Scores:         scores,
		})
	}
	return records, nil
}

// StageLabelV1 returns the stage name a legacy page reports, used to name output files
func StageLabelV1(page map[string]interface{}) (string, bool) {
	return shared.DigString(page, "content", "tableData", "data", "stage")
}

// parseHomestand reads the page level homestand block. Without one the match is at the league's own arena
func parseHomestand(data map[string]interface{}) (*string, *string) {
	homestand, ok := shared.DigMap(data, "events", "homestand")
	if !ok {
		return nil, shared.StrPtr(defaultVenue)
	}

	var host *string
	if name, ok := shared.DigString(homestand, "hostingTeam", "shortName"); ok {
		host = shared.StrPtr(name)
	}

	venue := defaultVenue
	if title, ok := homestand["title"].(string); ok && strings.TrimSpace(title) != "" {
		venue = strings.TrimSpace(strings.TrimPrefix(title, ticketSalePrefix))
	}
	return host, &venue
}

func competitorScore(competitor map[string]interface{}) string {
	score, ok := competitor["score"].(float64)
	if !ok {
		return "0"
	}
	return formatNumber(score)
}
