/* schedule.go
 * Collects a season's schedule page by page and appends every normalized match to a CSV file. Rows are
 * written as soon as a page is normalized, so a failure part way through a stage leaves the earlier pages
 * on disk. Rerunning a stage appends the same rows again
 * Authors: owl-scraper contributors
 */

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"owl-scraper/api/normalize"
	"owl-scraper/api/shared"
	"owl-scraper/api/store"
)

// PageFetcher gets one raw schedule page
type PageFetcher interface {
	FetchPage(ctx context.Context, season string, stageID string, page int) (map[string]interface{}, error)
}

// ScheduleCollector writes schedule pages to CSV files under OutputDir
type ScheduleCollector struct {
	Fetcher   PageFetcher
	OutputDir string
}

// NewScheduleCollector creates a collector writing to outputDir ("" means the working directory)
func NewScheduleCollector(fetcher PageFetcher, outputDir string) *ScheduleCollector {
	if outputDir == "" {
		outputDir = "."
	}
	return &ScheduleCollector{Fetcher: fetcher, OutputDir: outputDir}
}

// CollectStage fetches every page of a stage and appends its matches to filename
// Preconditions: Receives season, stage id and the file to append to. If filename is "" it is named
// after the season and the stage the first page reports
// Postconditions: Every page up to the reported page count has been written, or returns the first error.
// Pages written before the error stay in the file
func (c *ScheduleCollector) CollectStage(ctx context.Context, season string, stageID string, filename string) error {
	schema, err := normalize.SchemaFor(season)
	if err != nil {
		return err
	}
	normalizeFn, err := normalize.For(schema)
	if err != nil {
		return err
	}

	page := 1       // the API starts counting at 1
	totalPages := 1 // so we always get the first page
	for page <= totalPages {
		raw, err := c.Fetcher.FetchPage(ctx, season, stageID, page)
		if err != nil {
			return fmt.Errorf("error fetching %s stage %s page %d: %w", season, stageID, page, err)
		}

		records, err := normalizeFn(season, raw)
		if err != nil {
			return fmt.Errorf("error normalizing %s stage %s page %d: %w", season, stageID, page, err)
		}

		if filename == "" {
			filename = defaultStageFilename(season, stageID, schema, raw)
		}
		if err := store.Append(c.path(filename), shared.MatchFields, records); err != nil {
			return err
		}

		if n, ok := normalize.TotalPages(raw); ok {
			totalPages = n
		}
		slog.InfoContext(ctx, "collected schedule page",
			"season", season, "stage", stageID, "page", page, "totalPages", totalPages, "matches", len(records), "file", filename)
		page++
	}
	return nil
}

// CollectSeason collects every configured stage of a season into one file
// Preconditions: Receives season and the file to append to. If filename is "" it is named after the season
// Postconditions: Returns the first error from any stage, later stages are not collected
func (c *ScheduleCollector) CollectSeason(ctx context.Context, season string, filename string) error {
	stages, err := normalize.Stages(season)
	if err != nil {
		return err
	}
	if filename == "" {
		filename = season + ".csv"
	}

	for _, stageID := range stages {
		slog.InfoContext(ctx, "collecting stage", "season", season, "stage", stageID)
		if err := c.CollectStage(ctx, season, stageID, filename); err != nil {
			return err
		}
	}
	return nil
}

func (c *ScheduleCollector) path(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(c.OutputDir, filename)
}

// defaultStageFilename names a stage file "{season}_{stage}.csv". Legacy pages report a stage name,
// newer ones don't so the stage id is used instead
func defaultStageFilename(season string, stageID string, schema normalize.SchemaVersion, raw map[string]interface{}) string {
	label := stageID
	if schema == normalize.SchemaV1 {
		if name, ok := normalize.StageLabelV1(raw); ok && name != "" {
			label = name
		}
	}
	return fmt.Sprintf("%s_%s.csv", season, label)
}
