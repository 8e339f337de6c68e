/* video.go
 * Collects the league channel's full match VODs. Unlike schedules, the output file is replaced on every run
 * Authors: owl-scraper contributors
 */

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"owl-scraper/api/shared"
	"owl-scraper/api/store"
)

const (
	DefaultVideoFilename = "twitch_fullmatch_vods.csv"
	fullMatchPrefix      = "Full Match"
	allStarMarker        = "All-Star Game"
)

var videoDataPath = []string{"data"}

// VideoFetcher gets one page of videos
type VideoFetcher interface {
	FetchVideos(ctx context.Context, cursor string) (map[string]interface{}, error)
}

// VideoCollector writes full match VODs to a CSV file under OutputDir
type VideoCollector struct {
	Fetcher   VideoFetcher
	OutputDir string
}

// NewVideoCollector creates a collector writing to outputDir ("" means the working directory)
func NewVideoCollector(fetcher VideoFetcher, outputDir string) *VideoCollector {
	if outputDir == "" {
		outputDir = "."
	}
	return &VideoCollector{Fetcher: fetcher, OutputDir: outputDir}
}

// IsFullMatch reports if a VOD title is a full match that isn't an all-star game
func IsFullMatch(title string) bool {
	return strings.HasPrefix(title, fullMatchPrefix) && !strings.Contains(title, allStarMarker)
}

// CollectFullMatchVideos pages through every video on the channel and writes the full matches, oldest first
// Preconditions: Receives the file to write. If filename is "" DefaultVideoFilename is used
// Postconditions: filename is replaced with the full match videos, or returns an error and leaves it untouched
func (c *VideoCollector) CollectFullMatchVideos(ctx context.Context, filename string) error {
	var videos []interface{}
	cursor := ""
	for {
		page, err := c.Fetcher.FetchVideos(ctx, cursor)
		if err != nil {
			return fmt.Errorf("error fetching videos: %w", err)
		}
		data, ok := page["data"].([]interface{})
		if !ok {
			return &shared.ShapeError{Path: videoDataPath}
		}
		videos = append(videos, data...)
		slog.DebugContext(ctx, "fetched video page", "videos", len(data), "total", len(videos))

		next, _ := shared.DigString(page, "pagination", "cursor")
		if next == "" {
			break
		}
		if next == cursor {
			return fmt.Errorf("video cursor %q did not advance", cursor)
		}
		cursor = next
	}

	// API returns newest first
	slices.Reverse(videos)

	var records []shared.VideoRecord
	for _, raw := range videos {
		record, ok := parseFullMatchVideo(raw)
		if ok {
			records = append(records, record)
		}
	}

	if filename == "" {
		filename = DefaultVideoFilename
	}
	path := filename
	if !filepath.IsAbs(filename) {
		path = filepath.Join(c.OutputDir, filename)
	}
	if err := store.Overwrite(path, shared.VideoFields, records); err != nil {
		return err
	}
	slog.InfoContext(ctx, "collected videos", "fetched", len(videos), "fullMatches", len(records), "file", path)
	return nil
}

// parseFullMatchVideo returns the video record if raw is a full match VOD
func parseFullMatchVideo(raw interface{}) (shared.VideoRecord, bool) {
	video, ok := raw.(map[string]interface{})
	if !ok {
		return shared.VideoRecord{}, false
	}
	title, _ := video["title"].(string)
	if !IsFullMatch(title) {
		return shared.VideoRecord{}, false
	}
	id, _ := video["id"].(string)
	url, _ := video["url"].(string)
	return shared.VideoRecord{Title: title, ID: id, URL: url}, true
}
