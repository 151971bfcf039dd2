// Package ingestion parses content-generation requests out of GitHub
// issue bodies and labels.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"
)

// ContentType names the kind of document an issue asks for.
type ContentType string

const (
	ContentCaseStudy             ContentType = "case-study"
	ContentReferenceArchitecture ContentType = "reference-architecture"
)

// Request is the metadata extracted from an issue.
type Request struct {
	IssueNumber int         `json:"issue_number"`
	Title       string      `json:"title"`
	ContentType ContentType `json:"content_type"`
	VideoURL    string      `json:"video_url"`
	CompanyName string      `json:"company_name,omitempty"`
}

// ParseError indicates an issue body could not be turned into a request.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

var (
	standardURLRe = regexp.MustCompile(`https?://(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`)
	shortURLRe    = regexp.MustCompile(`https?://youtu\.be/([a-zA-Z0-9_-]+)`)
	companyRe     = regexp.MustCompile(`(?i)Company(?:\s+Name)?(?:\s+\(Optional\))?:\s*([^\n\r]+)`)
)

// ExtractYouTubeURL finds a YouTube URL in text and normalizes short
// youtu.be links to the standard watch format.
func ExtractYouTubeURL(text string) string {
	if m := standardURLRe.FindString(text); m != "" {
		return m
	}
	if m := shortURLRe.FindStringSubmatch(text); m != nil {
		return "https://www.youtube.com/watch?v=" + m[1]
	}
	return ""
}

// placeholderCompanies are values treated as "no company given".
var placeholderCompanies = map[string]bool{
	"":        true,
	"n/a":     true,
	"none":    true,
	"unknown": true,
}

// ExtractCompanyName pulls an optional "Company:" field out of an issue
// body. Placeholder values return empty.
func ExtractCompanyName(text string) string {
	m := companyRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	company := strings.TrimSpace(m[1])
	if placeholderCompanies[strings.ToLower(company)] {
		return ""
	}
	return company
}

// DetectContentType maps issue labels to a content type.
func DetectContentType(labels []string) (ContentType, error) {
	for _, label := range labels {
		switch ContentType(label) {
		case ContentCaseStudy:
			return ContentCaseStudy, nil
		case ContentReferenceArchitecture:
			return ContentReferenceArchitecture, nil
		}
	}
	return "", &ParseError{Message: fmt.Sprintf(
		"could not detect content type from labels %v: expected %q or %q label",
		labels, ContentCaseStudy, ContentReferenceArchitecture)}
}

// ParseIssue builds a Request from raw issue fields.
func ParseIssue(number int, title, body string, labels []string) (*Request, error) {
	contentType, err := DetectContentType(labels)
	if err != nil {
		return nil, err
	}

	videoURL := ExtractYouTubeURL(body)
	if videoURL == "" {
		return nil, &ParseError{Message: fmt.Sprintf(
			"no YouTube URL found in issue #%d: the issue body must contain a valid YouTube link", number)}
	}

	return &Request{
		IssueNumber: number,
		Title:       title,
		ContentType: contentType,
		VideoURL:    videoURL,
		CompanyName: ExtractCompanyName(body),
	}, nil
}
