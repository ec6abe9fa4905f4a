// Package dogapi fetches random dog images from dog.ceo.
package dogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://dog.ceo/api"

// ErrUpstream wraps every failure talking to the API so callers can treat
// upstream trouble uniformly.
var ErrUpstream = errors.New("dog api unavailable")

// Image is one random dog image with the breed parsed out of its URL.
type Image struct {
	URL   string
	Breed string
}

type Client struct {
	baseURL string
	client  *http.Client
}

func New() *Client {
	return NewWithBase(defaultBaseURL)
}

// NewWithBase points the client at an alternate API root. Used by tests.
func NewWithBase(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Random fetches one random image. There is no retry; a failed call is the
// handler's failure.
func (c *Client) Random(ctx context.Context) (Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/breeds/image/random", nil)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Image{}, fmt.Errorf("%w: http %d", ErrUpstream, resp.StatusCode)
	}

	var parsed struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if parsed.Message == "" {
		return Image{}, fmt.Errorf("%w: empty message", ErrUpstream)
	}

	return Image{URL: parsed.Message, Breed: BreedFromURL(parsed.Message)}, nil
}

// BreedFromURL pulls the breed segment out of an image URL, e.g.
// ".../breeds/hound-afghan/n02088094_1003.jpg" → "hound-afghan".
func BreedFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) > 4 {
		return parts[4]
	}
	return ""
}
