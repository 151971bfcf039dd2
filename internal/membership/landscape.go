// Package membership verifies companies against the CNCF end-user
// member list published in the landscape.
package membership

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LandscapeURL is the public CNCF landscape data endpoint.
const LandscapeURL = "https://landscape.cncf.io/api/data.json"

const fetchTimeout = 30 * time.Second

// FetchError indicates the landscape data could not be retrieved or parsed.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// landscapeData mirrors the subset of the landscape JSON we need.
type landscapeData struct {
	Data struct {
		Categories []struct {
			Name          string `json:"name"`
			Subcategories []struct {
				Name  string `json:"name"`
				Items []struct {
					Name string `json:"name"`
				} `json:"items"`
			} `json:"subcategories"`
		} `json:"categories"`
	} `json:"data"`
}

// Client fetches member lists from the CNCF landscape.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a landscape client with a default HTTP timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		url:        LandscapeURL,
	}
}

// NewClientWithURL creates a client against a custom endpoint, used in tests.
func NewClientWithURL(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		url:        url,
	}
}

// EndUserMembers fetches the landscape and extracts the names of
// CNCF end-user member companies.
func (c *Client) EndUserMembers(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{Message: "failed to build landscape request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: "failed to fetch CNCF landscape data", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Message: fmt.Sprintf("landscape request returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Message: "failed to read landscape response", Cause: err}
	}

	return ExtractEndUserMembers(body)
}

// ExtractEndUserMembers parses landscape JSON and returns the names under
// the "CNCF Members" / "End User" subcategory.
func ExtractEndUserMembers(raw []byte) ([]string, error) {
	var data landscapeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &FetchError{Message: "failed to parse landscape data", Cause: err}
	}

	var members []string
	for _, category := range data.Data.Categories {
		if category.Name != "CNCF Members" {
			continue
		}
		for _, sub := range category.Subcategories {
			if sub.Name != "End User" {
				continue
			}
			for _, item := range sub.Items {
				if item.Name != "" {
					members = append(members, item.Name)
				}
			}
		}
	}
	return members, nil
}
