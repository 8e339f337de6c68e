/* main.go
 * Entry point for the scraper. Collects the regular season schedule for every configured season, then the
 * full match VODs from the league's Twitch channel
 * Usage: go run . -seasons="2018 2019" -videos=true -out=data
 * Authors: owl-scraper contributors
 */

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"owl-scraper/api/api"

	"github.com/joho/godotenv"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Credentials can also come from the real environment, so a missing .env is fine
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "err", err)
	}

	//Flags
	seasonsPtr := flag.String("seasons", "", "Space separated seasons to collect, e.g. \"2018 2019\". Defaults to every configured season")
	videosPtr := flag.String("videos", "true", "Collect full match VODs from Twitch: takes true or false as argument")
	outPtr := flag.String("out", ".", "Directory to write csv files to")
	summaryPtr := flag.String("summary", "false", "Print the number of rows in each written file: takes true or false as argument")
	flag.Parse()

	collectVideos, err := parseBoolFlag("videos", *videosPtr)
	if err != nil {
		fatal("invalid flag", err)
	}
	printSummary, err := parseBoolFlag("summary", *summaryPtr)
	if err != nil {
		fatal("invalid flag", err)
	}
	seasons, err := api.SelectSeasons(*seasonsPtr)
	if err != nil {
		fatal("invalid flag", err)
	}

	if err := os.MkdirAll(*outPtr, 0755); err != nil {
		fatal("failed to create output directory", err)
	}

	// Credentials are checked here, before any schedule requests, so a bad config fails fast
	scraper, err := api.NewAPI(api.Config{OutputDir: *outPtr, CollectVideos: collectVideos})
	if err != nil {
		fatal("failed to initialize API", err)
	}

	ctx := context.Background()
	slog.Info("scraping regular season matches", "seasons", seasons)
	written, err := scraper.CollectSchedules(ctx, seasons)
	if err != nil {
		fatal("schedule collection failed", err)
	}

	if collectVideos {
		slog.Info("scraping full match videos")
		file, err := scraper.CollectVideos(ctx)
		if err != nil {
			fatal("video collection failed", err)
		}
		written = append(written, file)
	}

	if printSummary {
		summarize(*outPtr, written)
	}
	slog.Info("done")
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
