package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the Data Dragon CDN root.
const DefaultBaseURL = "https://ddragon.leagueoflegends.com"

// ErrSuperseded reports that a Refresh was overtaken by a newer one whose
// result has not been installed yet. The caller needs no retry: the newer
// request installs the roster it would have fetched.
var ErrSuperseded = errors.New("catalog: refresh superseded by a newer request")

// ddragonChampion is the wire shape of one champion entry.
type ddragonChampion struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Blurb string   `json:"blurb"`
	Tags  []string `json:"tags"`
	Info  struct {
		Difficulty int `json:"difficulty"`
	} `json:"info"`
	Image struct {
		Full string `json:"full"`
	} `json:"image"`
	Partype string `json:"partype"`
}

// ddragonIndex is the wire shape of the champion.json payload.
type ddragonIndex struct {
	Data map[string]ddragonChampion `json:"data"`
}

// Client fetches and caches the champion catalog. The cache is explicitly
// owned and explicitly invalidated; a generation counter makes in-flight
// fetches last-request-wins, so a slow superseded fetch can never overwrite
// a newer roster.
type Client struct {
	baseURL string
	locale  string
	httpc   *http.Client

	mu      sync.Mutex
	gen     int
	version string
	champs  []Champion
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the CDN root (tests point this at httptest).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithLocale sets the preferred catalog locale. en_US is always the
// fallback.
func WithLocale(locale string) ClientOption {
	return func(c *Client) { c.locale = locale }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = httpc }
}

// NewClient creates a Data Dragon client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		locale:  "en_US",
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestVersion fetches the newest Data Dragon version string.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", fmt.Errorf("catalog: fetch versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("catalog: empty version list")
	}
	return versions[0], nil
}

// Champions returns the cached roster, fetching it on first use. The
// version string identifies the Data Dragon release the roster came from.
func (c *Client) Champions(ctx context.Context) ([]Champion, string, error) {
	c.mu.Lock()
	if c.champs != nil {
		champs, version := c.champs, c.version
		c.mu.Unlock()
		return champs, version, nil
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh fetches the roster bypassing the cache. If a newer Refresh
// started while this one was in flight, the stale result is discarded: the
// superseded call returns the roster the newer call installed, or
// ErrSuperseded when the newer call has not finished installing yet.
func (c *Client) Refresh(ctx context.Context) ([]Champion, string, error) {
	c.mu.Lock()
	c.gen++
	token := c.gen
	c.mu.Unlock()

	version, err := c.LatestVersion(ctx)
	if err != nil {
		return nil, "", err
	}

	champs, err := c.fetchChampions(ctx, version)
	if err != nil {
		return nil, "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.gen {
		// Superseded by a later request; keep whatever it installed. An
		// empty cache means the winner is still in flight — say so rather
		// than hand back no roster with no error.
		if c.champs == nil {
			return nil, "", ErrSuperseded
		}
		return c.champs, c.version, nil
	}
	c.champs = champs
	c.version = version
	return champs, version, nil
}

// ClearCache drops the cached roster so the next Champions call refetches.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.champs = nil
	c.version = ""
}

// ImageURL returns the CDN URL for a champion's square portrait.
func (c *Client) ImageURL(version string, champ Champion) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s", c.baseURL, version, champ.ImageFile)
}

// fetchChampions pulls the champion index for a version, trying the
// configured locale first and falling back to en_US.
func (c *Client) fetchChampions(ctx context.Context, version string) ([]Champion, error) {
	locales := []string{c.locale}
	if c.locale != "en_US" {
		locales = append(locales, "en_US")
	}

	var lastErr error
	for _, locale := range locales {
		url := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.baseURL, version, locale)
		var index ddragonIndex
		if err := c.getJSON(ctx, url, &index); err != nil {
			lastErr = err
			continue
		}
		return convert(index), nil
	}
	return nil, fmt.Errorf("catalog: fetch champions: %w", lastErr)
}

func convert(index ddragonIndex) []Champion {
	champs := make([]Champion, 0, len(index.Data))
	for _, d := range index.Data {
		champs = append(champs, Champion{
			ID:           d.ID,
			Key:          d.Key,
			Name:         d.Name,
			Title:        d.Title,
			Blurb:        d.Blurb,
			Tags:         d.Tags,
			ResourceType: d.Partype,
			Difficulty:   d.Info.Difficulty,
			ImageFile:    d.Image.Full,
		})
	}
	// champion.json is keyed by id; make the slice order deterministic.
	slices.SortFunc(champs, func(a, b Champion) int {
		return strings.Compare(a.ID, b.ID)
	})
	return champs
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
