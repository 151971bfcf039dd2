package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"casestudypilot/internal/fetch"
)

var youtubeDataCmd = &cobra.Command{
	Use:   "youtube-data",
	Short: "Fetch video metadata and transcripts",
	Long:  "Fetches metadata and the English caption track for one or more YouTube videos and writes the result as JSON. Individual failures in a batch are recorded per video.",
	RunE:  runYoutubeData,
}

var (
	youtubeDataURLs       []string
	youtubeDataOutput     string
	youtubeDataConcurrent int
)

func init() {
	youtubeDataCmd.Flags().StringSliceVarP(&youtubeDataURLs, "url", "u", nil, "YouTube video URL (repeatable, required)")
	youtubeDataCmd.Flags().StringVarP(&youtubeDataOutput, "out", "o", "", "Path to output JSON file (required)")
	youtubeDataCmd.Flags().IntVar(&youtubeDataConcurrent, "max-concurrent", 3, "Maximum concurrent fetches for batches")

	if err := youtubeDataCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := youtubeDataCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(youtubeDataCmd)
}

func runYoutubeData(cmd *cobra.Command, _ []string) error {
	client := fetch.NewClient()
	ctx := cmd.Context()

	var payload any
	if len(youtubeDataURLs) == 1 {
		video, err := client.VideoData(ctx, youtubeDataURLs[0])
		if err != nil {
			return err
		}
		fmt.Printf("Fetched %q (%s, %d segments)\n", video.Title, video.DurationFormatted, len(video.Segments))
		payload = video
	} else {
		batch := client.MultiVideoData(ctx, youtubeDataURLs, youtubeDataConcurrent)
		fmt.Printf("Fetched %d/%d videos\n", batch.Stats.Succeeded, batch.Stats.Total)
		for _, failed := range batch.Failed() {
			fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", failed.URL, failed.Error)
		}
		payload = batch
	}

	return writeJSON(youtubeDataOutput, payload)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Output: %s\n", path)
	return nil
}
