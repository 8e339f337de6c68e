/* twitch.go
 * Client for the Twitch Helix videos endpoint, used to list the league channel's VODs
 * Authors: owl-scraper contributors
 */

package external

import (
	"context"
	"os"

	"owl-scraper/api/shared"

	"github.com/go-resty/resty/v2"
)

const (
	TwitchBaseURL   = "https://api.twitch.tv/helix"
	videosPath      = "/videos"
	leagueChannelID = "137512364"
	videosPerPage   = "100" // Max allowed by the API
)

// TwitchCredentials are the app credentials issued by the Twitch developer console
type TwitchCredentials struct {
	ClientID     string
	ClientSecret string
}

// LoadTwitchCredentials reads TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET from the environment
// Postconditions: Returns the credentials, or a ConfigError naming the first missing variable
func LoadTwitchCredentials() (TwitchCredentials, error) {
	creds := TwitchCredentials{
		ClientID:     os.Getenv("TWITCH_CLIENT_ID"),
		ClientSecret: os.Getenv("TWITCH_CLIENT_SECRET"),
	}
	if creds.ClientID == "" {
		return TwitchCredentials{}, &shared.ConfigError{Key: "TWITCH_CLIENT_ID", Reason: "not set"}
	}
	if creds.ClientSecret == "" {
		return TwitchCredentials{}, &shared.ConfigError{Key: "TWITCH_CLIENT_SECRET", Reason: "not set"}
	}
	return creds, nil
}

// TwitchClient fetches pages of videos for the league channel
type TwitchClient struct {
	http *resty.Client
}

// NewTwitchClient creates a client for the Helix API at baseURL
func NewTwitchClient(baseURL string, creds TwitchCredentials) (*TwitchClient, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, &shared.ConfigError{Key: "twitch credentials", Reason: "client id and secret are required"}
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Client-ID", creds.ClientID)
	return &TwitchClient{http: client}, nil
}

// FetchVideos gets up to 100 videos, newest first
// Preconditions: Receives the cursor from the previous page, or "" for the first page
// Postconditions: Returns the decoded page or an error if the request fails
func (c *TwitchClient) FetchVideos(ctx context.Context, cursor string) (map[string]interface{}, error) {
	params := map[string]string{
		"user_id": leagueChannelID,
		"first":   videosPerPage,
	}
	if cursor != "" {
		params["after"] = cursor
	}
	return getJSON(ctx, c.http.R(), videosPath, params)
}
