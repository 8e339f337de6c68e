/* mocks_test.go
 * Contains mock fetchers for testing the collectors without a network
 * Authors: owl-scraper contributors
 */

package collector

import (
	"context"
	"fmt"
)

type pageCall struct {
	Season  string
	StageID string
	Page    int
}

// MockPageFetcher serves canned schedule pages keyed by stage and page number
type MockPageFetcher struct {
	Pages map[string]map[int]map[string]interface{}
	Calls []pageCall

	// Error injection, returned when this page is requested
	FailOn  *pageCall
	FailErr error
}

func (m *MockPageFetcher) FetchPage(ctx context.Context, season string, stageID string, page int) (map[string]interface{}, error) {
	call := pageCall{Season: season, StageID: stageID, Page: page}
	m.Calls = append(m.Calls, call)
	if m.FailOn != nil && *m.FailOn == call {
		return nil, m.FailErr
	}
	stage, ok := m.Pages[stageID]
	if !ok {
		return nil, fmt.Errorf("no pages for stage %s", stageID)
	}
	raw, ok := stage[page]
	if !ok {
		return nil, fmt.Errorf("no page %d for stage %s", page, stageID)
	}
	return raw, nil
}

// MockVideoFetcher serves canned video pages keyed by the cursor that requests them
type MockVideoFetcher struct {
	Pages   map[string]map[string]interface{}
	Cursors []string
	Err     error
}

func (m *MockVideoFetcher) FetchVideos(ctx context.Context, cursor string) (map[string]interface{}, error) {
	m.Cursors = append(m.Cursors, cursor)
	if m.Err != nil {
		return nil, m.Err
	}
	page, ok := m.Pages[cursor]
	if !ok {
		return nil, fmt.Errorf("no page for cursor %q", cursor)
	}
	return page, nil
}

func legacyPage(stageName string, totalPages float64, matchIDs ...float64) map[string]interface{} {
	matches := make([]interface{}, 0, len(matchIDs))
	for _, id := range matchIDs {
		matches = append(matches, map[string]interface{}{
			"id":          id,
			"startDateTS": 1549580400000.0,
			"status":      "CONCLUDED",
			"competitors": []interface{}{
				map[string]interface{}{"abbreviatedName": "SHD", "score": 3.0},
				map[string]interface{}{"abbreviatedName": "DAL", "score": 1.0},
			},
		})
	}
	return map[string]interface{}{
		"content": map[string]interface{}{
			"tableData": map[string]interface{}{
				"data": map[string]interface{}{
					"stage":   stageName,
					"name":    "Week",
					"matches": matches,
				},
				"pagination": map[string]interface{}{"totalPages": totalPages},
			},
		},
	}
}

func currentPage(totalPages float64, matchIDs ...string) map[string]interface{} {
	matches := make([]interface{}, 0, len(matchIDs))
	for _, id := range matchIDs {
		matches = append(matches, map[string]interface{}{"id": id, "startDate": 1581033600000.0, "status": "PENDING"})
	}
	return map[string]interface{}{
		"content": map[string]interface{}{
			"tableData": map[string]interface{}{
				"events":     []interface{}{map[string]interface{}{"matches": matches}},
				"pagination": map[string]interface{}{"totalPages": totalPages},
			},
		},
	}
}

func videoPage(cursor string, titles ...string) map[string]interface{} {
	data := make([]interface{}, 0, len(titles))
	for _, title := range titles {
		data = append(data, map[string]interface{}{"id": title, "title": title, "url": "https://www.twitch.tv/videos/" + title})
	}
	pagination := map[string]interface{}{}
	if cursor != "" {
		pagination["cursor"] = cursor
	}
	return map[string]interface{}{"data": data, "pagination": pagination}
}
