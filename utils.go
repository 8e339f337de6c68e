/* utils.go
 * Utility functions used by the entry point
 * Authors: owl-scraper contributors
 */

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"owl-scraper/api/shared"
	"owl-scraper/api/store"
)

// parseBoolFlag converts a true/false flag value into a boolean
// Preconditions: Receives the flag name and its value, either true or false (case insensitive)
// Postconditions: Returns boolean value or an error naming the flag if the value is not true or false
func parseBoolFlag(name string, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid %q flag %q: should be true or false", name, value)
}

// Columns holding two comma joined values
var pairColumns = []string{"teams", "scores"}

// summarize logs how many rows each written file holds, and warns about any teams or scores cell that
// doesn't hold exactly two values
func summarize(dir string, files []string) map[string]int {
	counts := make(map[string]int, len(files))
	for _, file := range files {
		path := filepath.Join(dir, file)
		rows, err := store.Read(path)
		if err != nil {
			slog.Warn("failed to read output file", "file", path, "err", err)
			continue
		}
		counts[file] = len(rows)
		slog.Info("output file", "file", path, "rows", len(rows), "malformedPairs", checkPairs(path, rows))
	}
	return counts
}

// checkPairs splits every non-empty pair cell of rows
// Preconditions: Receives the file the rows came from (for logging) and its rows
// Postconditions: Logs a warning per malformed cell and returns how many there were
func checkPairs(path string, rows []map[string]string) int {
	malformed := 0
	for i, row := range rows {
		for _, column := range pairColumns {
			value, ok := row[column]
			if !ok || value == "" {
				continue
			}
			if _, _, err := shared.SplitPair(value); err != nil {
				malformed++
				slog.Warn("malformed pair cell", "file", path, "row", i+1, "id", row["id"], "column", column, "value", value, "err", err)
			}
		}
	}
	return malformed
}
