/* seasons.go
 * Contains the logic for turning the -seasons flag into the list of seasons to collect
 * Authors: owl-scraper contributors
 */

package logic

import (
	"fmt"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParseSeasonList splits the -seasons flag on spaces. Quoted values are kept together
// Preconditions: Receives the raw flag value
// Postconditions: Returns the non-empty values in order, or an error if the quotes are unbalanced
func ParseSeasonList(input string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(input)
	if err != nil {
		return nil, fmt.Errorf("invalid season list %q: %w", input, err)
	}

	var seasons []string
	for _, part := range parts {
		part = strings.TrimSpace(strings.Trim(part, "\""))
		if part != "" {
			seasons = append(seasons, part)
		}
	}
	return seasons, nil
}

// ResolveSeasons checks requested seasons against the configured ones.
// Preconditions: receives the requested seasons and the configured seasons
// Postconditions: returns the seasons to collect in the order requested, or an error naming the unknown
// seasons along with the closest configured season for each
func ResolveSeasons(requested []string, valid []string) ([]string, error) {
	if len(requested) == 0 {
		return append([]string(nil), valid...), nil
	}

	known := make(map[string]bool, len(valid))
	for _, season := range valid {
		known[season] = true
	}

	var resolved []string
	var invalid []string
	seen := make(map[string]bool)
	for _, season := range requested {
		if !known[season] {
			invalid = append(invalid, describeUnknown(season, valid))
			continue
		}
		if seen[season] {
			continue
		}
		seen[season] = true
		resolved = append(resolved, season)
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("unknown seasons: %s (valid seasons: %s)", strings.Join(invalid, ", "), strings.Join(valid, " "))
	}
	return resolved, nil
}

// describeUnknown formats an unknown season with a suggestion when one is close, e.g. "'209' (did you mean 2019?)"
func describeUnknown(season string, valid []string) string {
	ranks := fuzzy.RankFind(season, valid)
	if len(ranks) == 0 {
		return fmt.Sprintf("'%s'", season)
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return fmt.Sprintf("'%s' (did you mean %s?)", season, best.Target)
}
