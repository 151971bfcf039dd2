// Package fetch retrieves YouTube video metadata and transcripts.
package fetch

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"casestudypilot/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CaseStudyPilot/1.0)"

// videoIDPatterns match the URL shapes YouTube links come in.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
}

// Error represents a failure fetching video data.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
func ExtractVideoID(rawURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", &Error{URL: rawURL, Message: "could not extract video ID from URL"}
}

// FormatDuration converts seconds to H:MM:SS or M:SS.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// Client fetches video pages and caption tracks.
type Client struct {
	httpClient    *http.Client
	userAgent     string
	watchBase     string
	timedtextBase string
}

// NewClient builds a client with default timeouts against youtube.com.
func NewClient() *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		userAgent:     DefaultUserAgent,
		watchBase:     "https://www.youtube.com/watch",
		timedtextBase: "https://video.google.com/timedtext",
	}
}

// NewClientWithBases builds a client against custom endpoints, used in tests.
func NewClientWithBases(watchBase, timedtextBase string) *Client {
	c := NewClient()
	c.watchBase = watchBase
	c.timedtextBase = timedtextBase
	return c
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return body, nil
}

// Metadata scrapes title, description, and channel name from the watch page.
func (c *Client) Metadata(ctx context.Context, videoID string) (*types.VideoData, error) {
	pageURL := fmt.Sprintf("%s?v=%s", c.watchBase, url.QueryEscape(videoID))
	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "failed to parse watch page", Cause: err}
	}

	data := &types.VideoData{
		VideoID: videoID,
		URL:     pageURL,
	}
	data.Title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
	data.Description, _ = doc.Find(`meta[property="og:description"]`).Attr("content")
	if data.Description == "" {
		data.Description, _ = doc.Find(`meta[name="description"]`).Attr("content")
	}
	data.ChannelName, _ = doc.Find(`link[itemprop="name"]`).Attr("content")
	if data.Title == "" {
		data.Title = fmt.Sprintf("Video %s", videoID)
	}
	return data, nil
}

// timedtextDoc is the caption XML returned by the timedtext endpoint.
type timedtextDoc struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start    float64 `xml:"start,attr"`
		Duration float64 `xml:"dur,attr"`
		Body     string  `xml:",chardata"`
	} `xml:"text"`
}

// Transcript fetches the English caption track for a video.
func (c *Client) Transcript(ctx context.Context, videoID string) (*types.Transcript, error) {
	captionURL := fmt.Sprintf("%s?lang=en&v=%s", c.timedtextBase, url.QueryEscape(videoID))
	body, err := c.get(ctx, captionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript for video %s: %w", videoID, err)
	}
	if len(body) == 0 {
		return nil, &Error{URL: captionURL, Message: fmt.Sprintf("no captions available for video %s", videoID)}
	}

	var doc timedtextDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, &Error{URL: captionURL, Message: "failed to parse caption XML", Cause: err}
	}

	transcript := &types.Transcript{}
	for _, t := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		if text == "" {
			continue
		}
		transcript.Segments = append(transcript.Segments, types.Segment{
			Start:    t.Start,
			Duration: t.Duration,
			Text:     text,
		})
	}
	if len(transcript.Segments) == 0 {
		return nil, &Error{URL: captionURL, Message: fmt.Sprintf("no captions available for video %s", videoID)}
	}
	return transcript, nil
}

// VideoData fetches metadata and transcript for one video URL.
func (c *Client) VideoData(ctx context.Context, rawURL string) (*types.VideoData, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	data, err := c.Metadata(ctx, videoID)
	if err != nil {
		return nil, err
	}
	data.URL = rawURL

	transcript, err := c.Transcript(ctx, videoID)
	if err != nil {
		return nil, err
	}

	data.Segments = transcript.Segments
	data.Transcript = transcript.FullText()
	data.DurationSeconds = transcript.Duration()
	data.DurationFormatted = FormatDuration(data.DurationSeconds)
	data.Success = true
	return data, nil
}
