/* models.go
 * This file contains the normalized record types that are shared between sub packages, along with the
 * column order each one is written in
 * Authors: owl-scraper contributors
 */

package shared

import (
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
)

// Column order for schedule output files. Must not change between runs, files are appended to
var MatchFields = []string{
	"id",
	"season",
	"stage",
	"page_name",
	"host",
	"venue_name",
	"venue_address",
	"venue_link",
	"start_timestamp",
	"date",
	"time",
	"status",
	"teams",
	"scores",
}

// Column order for video output files
var VideoFields = []string{"title", "id", "url"}

// MatchRecord is a single normalized match. Pointer fields are nullable and are written as empty cells
type MatchRecord struct {
	ID             string
	Season         string
	Stage          string
	PageName       *string
	Host           *string
	VenueName      *string
	VenueAddress   *string
	VenueLink      *string
	StartTimestamp *int64 // epoch millis
	Date           *string
	Time           *string
	Status         string
	Teams          *string // "AAA,BBB"
	Scores         *string // "1,3"
}

// Values returns the record keyed by column name
func (m MatchRecord) Values() map[string]string {
	var ts string
	if m.StartTimestamp != nil {
		ts = strconv.FormatInt(*m.StartTimestamp, 10)
	}
	return map[string]string{
		"id":              m.ID,
		"season":          m.Season,
		"stage":           m.Stage,
		"page_name":       deref(m.PageName),
		"host":            deref(m.Host),
		"venue_name":      deref(m.VenueName),
		"venue_address":   deref(m.VenueAddress),
		"venue_link":      deref(m.VenueLink),
		"start_timestamp": ts,
		"date":            deref(m.Date),
		"time":            deref(m.Time),
		"status":          m.Status,
		"teams":           deref(m.Teams),
		"scores":          deref(m.Scores),
	}
}

// VideoRecord is a full match VOD
type VideoRecord struct {
	Title string
	ID    string
	URL   string
}

// Values returns the record keyed by column name
func (v VideoRecord) Values() map[string]string {
	return map[string]string{
		"title": v.Title,
		"id":    v.ID,
		"url":   v.URL,
	}
}

// StrPtr returns a pointer to a copy of s
func StrPtr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// JoinPair builds the two value composite used for the teams and scores columns
func JoinPair(first string, second string) string {
	return strings.Join([]string{first, second}, ",")
}

// SplitPair splits a teams or scores composite back into its two values
// Preconditions: Receives string of the form "a,b". Values may be double quoted if they contain a comma
// Postconditions: Returns both values, or an error if the composite does not hold exactly two values
func SplitPair(composite string) (string, string, error) {
	commaSplitter, err := splitter.NewSplitter(',', splitter.DoubleQuotes)
	if err != nil {
		return "", "", err
	}
	parts, err := commaSplitter.Split(composite)
	if err != nil {
		return "", "", err
	}
	if len(parts) != 2 {
		return "", "", &DataError{Reason: "composite requires exactly 2 values, recieved " + strconv.Itoa(len(parts))}
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
