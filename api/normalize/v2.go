/* v2.go
 * Normalizer for the 2020 schedule response. Matches are grouped into events, and each event carries
 * its own banner with the hosting team and venue
 * Authors: owl-scraper contributors
 */

package normalize

import (
	"owl-scraper/api/shared"
)

// 2020 has no stages, every match is regular season
const regularSeason = "regular_season"

var v2EventsPath = []string{"content", "tableData", "events"}

// NormalizeV2 converts a current schedule page into match records
// Preconditions: Receives the season and the decoded page
// Postconditions: Returns one record per match across all events, a ShapeError if the events list is
// missing, or a DataError if a two team match is missing a team name
func NormalizeV2(season string, page map[string]interface{}) ([]shared.MatchRecord, error) {
	ok, err := shared.HasPath(page, v2EventsPath...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &shared.ShapeError{Path: v2EventsPath}
	}
	events, ok := shared.DigList(page, v2EventsPath...)
	if !ok {
		return nil, &shared.ShapeError{Path: v2EventsPath}
	}

	var pageName *string
	if name, ok := shared.DigString(page, "content", "tableData", "name"); ok {
		pageName = shared.StrPtr(name)
	}

	var records []shared.MatchRecord
	for _, rawEvent := range events {
		event, ok := rawEvent.(map[string]interface{})
		if !ok {
			return nil, &shared.DataError{Reason: "event is not an object"}
		}
		banner := parseEventBanner(event)

		matches, _ := event["matches"].([]interface{})
		for _, rawMatch := range matches {
			match, ok := rawMatch.(map[string]interface{})
			if !ok {
				return nil, &shared.DataError{Reason: "match is not an object"}
			}
			id := matchID(match)

			teams, _, err := parseCompetitors(id, match["competitors"])
			if err != nil {
				return nil, err
			}
			ts, date, clock := timestampFields(match, "startDate")
			status, _ := match["status"].(string)

			records = append(records, shared.MatchRecord{
				ID:             id,
				Season:         season,
				Stage:          regularSeason,
				PageName:       pageName,
				Host:           banner.host,
				VenueName:      banner.venueName,
				VenueAddress:   banner.venueAddress,
				VenueLink:      banner.venueLink,
				StartTimestamp: ts,
				Date:           date,
				Time:           clock,
				Status:         status,
				Teams:          teams,
				Scores:         shared.StrPtr(parseScores(match["scores"])),
			})
		}
	}
	return records, nil
}

type eventBanner struct {
	host         *string
	venueName    *string
	venueAddress *string
	venueLink    *string
}

// parseEventBanner reads host and venue info for an event. Missing fields stay nil
func parseEventBanner(event map[string]interface{}) eventBanner {
	var banner eventBanner
	raw, ok := shared.DigMap(event, "eventBanner")
	if !ok {
		return banner
	}
	if name, ok := shared.DigString(raw, "hostingTeam", "shortName"); ok {
		banner.host = shared.StrPtr(name)
	}
	if title, ok := shared.DigString(raw, "venue", "title"); ok {
		banner.venueName = shared.StrPtr(title)
	}
	if location, ok := shared.DigString(raw, "venue", "location"); ok {
		banner.venueAddress = shared.StrPtr(location)
	}
	if link, ok := shared.DigString(raw, "venue", "link"); ok {
		banner.venueLink = shared.StrPtr(link)
	}
	return banner
}

// parseScores builds the scores composite. Matches that haven't been played report fewer than two scores
func parseScores(raw interface{}) string {
	list, ok := raw.([]interface{})
	if !ok || len(list) < 2 {
		return shared.JoinPair("0", "0")
	}
	var scores [2]string
	for i := 0; i < 2; i++ {
		n, ok := list[i].(float64)
		if !ok {
			return shared.JoinPair("0", "0")
		}
		scores[i] = formatNumber(n)
	}
	return shared.JoinPair(scores[0], scores[1])
}
