/* schedule.go
 * Client for the league schedule API. The API only answers requests that look like they came from the
 * schedule page, so every request carries its referer
 * Authors: owl-scraper contributors
 */

package external

import (
	"context"
	"strconv"

	"owl-scraper/api/normalize"

	"github.com/go-resty/resty/v2"
)

const (
	ScheduleBaseURL = "https://wzavfvwgfk.execute-api.us-east-2.amazonaws.com/production/owl/paginator"
	ScheduleReferer = "https://www.overwatchleague.com/en-us/schedule"
	schedulePath    = "/schedule"
	legacyPageSize  = "30" // more than any stage has on one page
	scheduleLocale  = "en-us"
)

// ScheduleClient fetches schedule pages
type ScheduleClient struct {
	http *resty.Client
}

// NewScheduleClient creates a client for the schedule API at baseURL
func NewScheduleClient(baseURL string) *ScheduleClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("referer", ScheduleReferer)
	return &ScheduleClient{http: client}
}

// FetchPage gets one page of matches for a season and stage.
// stageID is the tab index on the schedule page, not the stage's name
// Preconditions: Receives season (e.g. 2019), stage id and page number starting at 1
// Postconditions: Returns the decoded page or an error if the request fails
func (c *ScheduleClient) FetchPage(ctx context.Context, season string, stageID string, page int) (map[string]interface{}, error) {
	params := map[string]string{
		"stage":  stageID,
		"page":   strconv.Itoa(page),
		"season": season,
	}

	schema, err := normalize.SchemaFor(season)
	if err != nil {
		return nil, err
	}
	switch schema {
	case normalize.SchemaV1:
		params["per_page"] = legacyPageSize
	case normalize.SchemaV2:
		params["locale"] = scheduleLocale
	}

	return getJSON(ctx, c.http.R(), schedulePath, params)
}
