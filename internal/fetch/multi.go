package fetch

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"casestudypilot/internal/types"
)

// BatchStats summarizes a multi-video fetch.
type BatchStats struct {
	Total       int     `json:"total"`
	Succeeded   int     `json:"succeeded"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// BatchResult holds per-video results in input order plus summary stats.
type BatchResult struct {
	Videos []types.VideoData `json:"videos"`
	Stats  BatchStats        `json:"stats"`
}

// MultiVideoData fetches several videos concurrently, bounded to avoid
// rate limits. Individual failures are recorded per video and never
// abort the batch.
func (c *Client) MultiVideoData(ctx context.Context, urls []string, maxConcurrent int) *BatchResult {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	result := &BatchResult{
		Videos: make([]types.VideoData, len(urls)),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, rawURL := range urls {
		i, rawURL := i, rawURL
		g.Go(func() error {
			data, err := c.VideoData(ctx, rawURL)
			if err != nil {
				videoID, idErr := ExtractVideoID(rawURL)
				if idErr != nil {
					videoID = rawURL
				}
				data = &types.VideoData{
					VideoID: videoID,
					URL:     rawURL,
					Title:   "Video " + videoID,
					Error:   err.Error(),
				}
			}
			mu.Lock()
			result.Videos[i] = *data
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	result.Stats.Total = len(urls)
	for _, v := range result.Videos {
		if v.Success {
			result.Stats.Succeeded++
		} else {
			result.Stats.Failed++
		}
	}
	if len(urls) > 0 {
		result.Stats.SuccessRate = float64(result.Stats.Succeeded) / float64(len(urls))
	}
	return result
}

// Successful returns the videos that fetched cleanly, in input order.
func (r *BatchResult) Successful() []types.VideoData {
	var out []types.VideoData
	for _, v := range r.Videos {
		if v.Success {
			out = append(out, v)
		}
	}
	return out
}

// Failed returns the videos that did not fetch.
func (r *BatchResult) Failed() []types.VideoData {
	var out []types.VideoData
	for _, v := range r.Videos {
		if !v.Success {
			out = append(out, v)
		}
	}
	return out
}

// CombinedTranscript joins all successful transcripts with blank lines.
func (r *BatchResult) CombinedTranscript() string {
	var parts []string
	for _, v := range r.Successful() {
		if v.Transcript != "" {
			parts = append(parts, v.Transcript)
		}
	}
	return strings.Join(parts, "\n\n")
}

// TotalDuration sums the durations of all successful videos in seconds.
func (r *BatchResult) TotalDuration() float64 {
	var total float64
	for _, v := range r.Successful() {
		total += v.DurationSeconds
	}
	return total
}
