package nova

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultURL is the station page listing the recently played songs.
const DefaultURL = "https://www.nova.fr/radios/radio-nova/"

// Client fetches and extracts the station's recently played songs.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// ClientConfig holds the settings used by NewClient. Zero values select the
// defaults.
type ClientConfig struct {
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// NewClient creates a client configured with a 10 second timeout and a
// User-Agent identifying nova, unless cfg says otherwise.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "nova/1.0 (recently played listing)"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		logger:     cfg.Logger,
	}
}

// Fetch retrieves the page at url and returns it as text. The request is a
// POST with an empty body, which makes the station return its latest list
// rather than a cached page.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, http.NoBody)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("fetching playlist", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	c.logger.Debug("fetched playlist", "url", url, "status", resp.StatusCode, "bytes", len(body))

	text, err := decodeUTF8(body)
	if err != nil {
		return "", &DecodeError{URL: url, Err: err}
	}

	return text, nil
}

// Playlist fetches the page at url, extracts its songs and localizes their
// times into target shifted by offsetMinutes, taking now as the evaluation
// instant.
//
// Songs whose time cannot be localized are left out; the returned error then
// joins one error per such song, and the other songs are still returned.
func (c *Client) Playlist(ctx context.Context, url string, target *time.Location, offsetMinutes int, now time.Time) ([]Song, error) {
	text, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	raw := ExtractString(text)
	c.logger.Debug("extracted songs", "count", len(raw))

	return LocalizeSongs(raw, target, offsetMinutes, now)
}

// LocalizeSongs replaces each song's station time with its display time.
// Songs that fail are dropped and reported in the joined error.
func LocalizeSongs(songs []Song, target *time.Location, offsetMinutes int, now time.Time) ([]Song, error) {
	localized := make([]Song, 0, len(songs))
	var errs []error

	for _, song := range songs {
		display, err := Localize(song.Time, target, offsetMinutes, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s - %s: %w", song.Artist, song.Title, err))
			continue
		}
		song.Time = display
		localized = append(localized, song)
	}

	return localized, errors.Join(errs...)
}

// decodeUTF8 returns b as a string, failing on the first byte sequence that
// is not valid UTF-8.
func decodeUTF8(b []byte) (string, error) {
	text, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
