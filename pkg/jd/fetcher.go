package jd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// fetchTimeout bounds how long a single fetch may take, including HTTP
// round trips.
const fetchTimeout = 30 * time.Second

// Fetch retrieves a job description from a file path, an http(s) URL, or
// standard input when input is "-".
func Fetch(input string) (content string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	content, err = FetchWithContext(ctx, input)
	return content, err
}

// FetchWithContext retrieves a job description, honoring ctx for HTTP
// fetches. The input source is resolved in order: "-" reads stdin, a
// parseable http(s) URL is fetched over the network, anything else is
// treated as a file path.
func FetchWithContext(ctx context.Context, input string) (content string, err error) {
	if input == "-" {
		content, err = fetchFromReader(os.Stdin)
		if err != nil {
			err = errors.Wrap(err, "failed to read job description from stdin")
			return content, err
		}

		return content, err
	}

	if isHTTPURL(input) {
		content, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch job description from URL: %s", input)
			return content, err
		}

		return content, err
	}

	content, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to read job description from file: %s", input)
		return content, err
	}

	return content, err
}

// isHTTPURL reports whether input parses as an absolute http or https URL.
func isHTTPURL(input string) (ok bool) {
	parsed, parseErr := url.Parse(input)
	if parseErr != nil {
		return false
	}

	ok = parsed.Scheme == "http" || parsed.Scheme == "https"
	return ok
}

// fetchFromReader slurps a job description from r.
func fetchFromReader(r io.Reader) (content string, err error) {
	var data []byte
	data, err = io.ReadAll(r)
	if err != nil {
		err = errors.Wrap(err, "read failed")
		return content, err
	}

	content = string(data)
	if strings.TrimSpace(content) == "" {
		err = errors.New("job description is empty")
		return content, err
	}

	return content, err
}

// fetchFromFile reads a job description from a file on disk.
func fetchFromFile(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return content, err
	}

	content = string(data)
	if strings.TrimSpace(content) == "" {
		err = errors.Errorf("file is empty: %s", path)
		return content, err
	}

	return content, err
}

// fetchFromURL retrieves a job description over HTTP and strips markup so
// downstream scoring sees plain text.
func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}

	req.Header.Set("User-Agent", "resume-review/1.0")

	client := &http.Client{
		Timeout: fetchTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	var bodyBytes []byte
	bodyBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return content, err
	}

	content = stripBasicHTML(string(bodyBytes))
	if strings.TrimSpace(content) == "" {
		err = errors.New("fetched content is empty after processing")
		return content, err
	}

	return content, err
}

// stripBasicHTML removes script and style blocks along with their content,
// then drops remaining tags. It is intentionally simple; job postings that
// need real HTML parsing should be saved to a file first.
func stripBasicHTML(html string) (text string) {
	text = removeTagAndContent(html, "script")
	text = removeTagAndContent(text, "style")

	var result strings.Builder
	inTag := false
	for _, char := range text {
		switch {
		case char == '<':
			inTag = true
		case char == '>':
			inTag = false
		case !inTag:
			result.WriteRune(char)
		}
	}

	text = result.String()
	return text
}

// removeTagAndContent strips every <tag>...</tag> block, case-insensitively.
func removeTagAndContent(html string, tag string) (text string) {
	text = html
	lowerTag := strings.ToLower(tag)

	for {
		lower := strings.ToLower(text)
		start := strings.Index(lower, "<"+lowerTag)
		if start == -1 {
			break
		}

		end := strings.Index(lower[start:], "</"+lowerTag+">")
		if end == -1 {
			// Unclosed block, drop through end of document.
			text = text[:start]
			break
		}

		text = text[:start] + text[start+end+len("</"+lowerTag+">"):]
	}

	return text
}
