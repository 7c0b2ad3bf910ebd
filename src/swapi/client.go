// Package swapi is the client for the public Star Wars API used to resolve
// how many films a planet appears in.
package swapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/GMartinho/star-wars-api/pkg/logger"
)

const DefaultBaseURL = "https://swapi.dev/api"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against baseURL. A zero timeout means the
// request may wait on the upstream indefinitely.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type planetResult struct {
	Name  string   `json:"name"`
	Films []string `json:"films"`
}

type searchResponse struct {
	Results []planetResult `json:"results"`
}

// MovieAppearances returns the film count of the planet whose name matches
// exactly among the search results, or 0 when nothing matches or the payload
// is inconsistent. Transport failures and non-2xx statuses are returned as
// errors.
func (c *Client) MovieAppearances(name string) (int, error) {
	searchURL := fmt.Sprintf("%s/planets/?search=%s", c.baseURL, url.QueryEscape(name))

	resp, err := c.httpClient.Get(searchURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("swapi: unexpected status %d from %s", resp.StatusCode, searchURL)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Default().Warnf("The response from %s was inconsistent. The number of appearances in movies was set to default.", c.baseURL)
		return 0, nil
	}

	for _, result := range payload.Results {
		if result.Name == name {
			return len(result.Films), nil
		}
	}

	return 0, nil
}
