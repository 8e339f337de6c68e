/* api.go
 * This file contains the public methods for running collections. main should only call into this package,
 * not the collector or external sub packages directly
 * Authors: owl-scraper contributors
 */

package api

import (
	"context"
	"fmt"

	"owl-scraper/api/collector"
	"owl-scraper/api/external"
	"owl-scraper/api/logic"
	"owl-scraper/api/normalize"
)

// Config holds everything needed to build an API
type Config struct {
	OutputDir       string
	ScheduleBaseURL string // defaults to external.ScheduleBaseURL
	TwitchBaseURL   string // defaults to external.TwitchBaseURL
	CollectVideos   bool
}

// API runs schedule and video collections
type API struct {
	Schedule *collector.ScheduleCollector
	Videos   *collector.VideoCollector // nil unless videos are collected
}

// NewAPI creates a new API instance with the provided configuration
// Preconditions: Receives Config. If CollectVideos is set, TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET must be in the environment
// Postconditions: Returns the API, or a ConfigError if the Twitch credentials are missing
func NewAPI(cfg Config) (*API, error) {
	if cfg.ScheduleBaseURL == "" {
		cfg.ScheduleBaseURL = external.ScheduleBaseURL
	}
	if cfg.TwitchBaseURL == "" {
		cfg.TwitchBaseURL = external.TwitchBaseURL
	}

	a := &API{
		Schedule: collector.NewScheduleCollector(external.NewScheduleClient(cfg.ScheduleBaseURL), cfg.OutputDir),
	}

	if cfg.CollectVideos {
		creds, err := external.LoadTwitchCredentials()
		if err != nil {
			return nil, fmt.Errorf("failed to load twitch credentials: %w", err)
		}
		twitch, err := external.NewTwitchClient(cfg.TwitchBaseURL, creds)
		if err != nil {
			return nil, err
		}
		a.Videos = collector.NewVideoCollector(twitch, cfg.OutputDir)
	}
	return a, nil
}

// SelectSeasons turns the -seasons flag into the seasons to collect
// Preconditions: Receives the raw flag value, "" selects every configured season
// Postconditions: Returns seasons in the order given, or an error naming any unknown season
func SelectSeasons(input string) ([]string, error) {
	requested, err := logic.ParseSeasonList(input)
	if err != nil {
		return nil, err
	}
	return logic.ResolveSeasons(requested, normalize.Seasons())
}

// CollectSchedules writes each season's regular season matches to "{season}.csv"
// Preconditions: Receives the seasons to collect
// Postconditions: Returns the files written, or the first error. Files for seasons before the error are kept
func (a *API) CollectSchedules(ctx context.Context, seasons []string) ([]string, error) {
	var written []string
	for _, season := range seasons {
		filename := season + ".csv"
		if err := a.Schedule.CollectSeason(ctx, season, filename); err != nil {
			return written, fmt.Errorf("failed to collect season %s: %w", season, err)
		}
		written = append(written, filename)
	}
	return written, nil
}

// CollectVideos writes the full match VODs to collector.DefaultVideoFilename
// Postconditions: Returns the file written, "" if video collection is disabled, or an error
func (a *API) CollectVideos(ctx context.Context) (string, error) {
	if a.Videos == nil {
		return "", nil
	}
	if err := a.Videos.CollectFullMatchVideos(ctx, collector.DefaultVideoFilename); err != nil {
		return "", fmt.Errorf("failed to collect videos: %w", err)
	}
	return collector.DefaultVideoFilename, nil
}
