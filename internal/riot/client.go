// Package riot pulls champion play history from the Riot match API so the
// user can bulk-mark everything they are known to have played. The output
// is only ever fed to the reconcile pipeline as an untrusted id list; a
// failed sync mutates nothing.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Sentinel errors for the failure modes worth branching on.
var (
	ErrSummonerNotFound = errors.New("summoner not found")
	ErrInvalidAPIKey    = errors.New("invalid Riot API key")
	ErrRateLimited      = errors.New("Riot API rate limit exceeded")
)

// regionalFor maps a platform region (euw1, na1, ...) to the regional
// routing host the match API lives on.
var regionalFor = map[string]string{
	"euw1": "europe", "eun1": "europe", "tr1": "europe", "ru": "europe", "me1": "europe",
	"na1": "americas", "br1": "americas", "la1": "americas", "la2": "americas",
	"kr": "asia", "jp1": "asia",
	"oc1": "sea", "ph2": "sea", "sg2": "sea", "th2": "sea", "tw2": "sea", "vn2": "sea",
}

// Summoner identifies the synced account.
type Summoner struct {
	Name          string `json:"name"`
	PUUID         string `json:"puuid"`
	Level         int    `json:"summonerLevel"`
	ProfileIconID int    `json:"profileIconId"`
}

// Result is a successful history pull: the distinct champions the account
// played across the scanned matches, in first-seen order.
type Result struct {
	Champions []string
	Summoner  Summoner
	Scanned   int // matches actually inspected
}

// Client talks to the Riot API. The base URL pattern is overridable so
// tests can point every host at one httptest server.
type Client struct {
	apiKey  string
	httpc   *http.Client
	hostFmt string // e.g. "https://%s.api.riotgames.com"
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHostFormat overrides the API host pattern (tests).
func WithHostFormat(format string) ClientOption {
	return func(c *Client) { c.hostFmt = format }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = httpc }
}

// NewClient creates a Riot API client with the given key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		hostFmt: "https://%s.api.riotgames.com",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// History fetches up to matchCount recent matches for the named summoner
// and extracts the distinct champions they played. Individual match
// lookups that fail are skipped; only account-level failures abort.
func (c *Client) History(ctx context.Context, summonerName, region string, matchCount int) (Result, error) {
	regional, ok := regionalFor[region]
	if !ok {
		regional = "europe"
	}
	if matchCount <= 0 {
		matchCount = 100
	}

	summoner, err := c.summonerByName(ctx, region, summonerName)
	if err != nil {
		return Result{}, err
	}

	matchIDs, err := c.matchIDs(ctx, regional, summoner.PUUID, matchCount)
	if err != nil {
		return Result{}, err
	}

	res := Result{Summoner: summoner}
	seen := map[string]bool{}
	for _, id := range matchIDs {
		name, err := c.championInMatch(ctx, regional, id, summoner.PUUID)
		if err != nil {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			continue // one bad match should not sink the sync
		}
		res.Scanned++
		if name != "" && !seen[name] {
			seen[name] = true
			res.Champions = append(res.Champions, name)
		}
	}
	return res, nil
}

func (c *Client) summonerByName(ctx context.Context, region, name string) (Summoner, error) {
	var s Summoner
	u := fmt.Sprintf(c.hostFmt, region) +
		"/lol/summoner/v4/summoners/by-name/" + url.PathEscape(name)
	if err := c.getJSON(ctx, u, &s); err != nil {
		return Summoner{}, fmt.Errorf("riot: fetch summoner %q: %w", name, err)
	}
	return s, nil
}

func (c *Client) matchIDs(ctx context.Context, regional, puuid string, count int) ([]string, error) {
	var ids []string
	u := fmt.Sprintf(c.hostFmt, regional) +
		fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?count=%d", url.PathEscape(puuid), count)
	if err := c.getJSON(ctx, u, &ids); err != nil {
		return nil, fmt.Errorf("riot: fetch match history: %w", err)
	}
	return ids, nil
}

// matchPayload is the slice of the match detail we care about.
type matchPayload struct {
	Info struct {
		Participants []struct {
			PUUID        string `json:"puuid"`
			ChampionName string `json:"championName"`
		} `json:"participants"`
	} `json:"info"`
}

func (c *Client) championInMatch(ctx context.Context, regional, matchID, puuid string) (string, error) {
	var m matchPayload
	u := fmt.Sprintf(c.hostFmt, regional) + "/lol/match/v5/matches/" + url.PathEscape(matchID)
	if err := c.getJSON(ctx, u, &m); err != nil {
		return "", err
	}
	for _, p := range m.Info.Participants {
		if p.PUUID == puuid {
			return p.ChampionName, nil
		}
	}
	return "", nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrSummonerNotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return ErrInvalidAPIKey
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
