// internal/shodan/client.go
package shodan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gmh5225/ollama-hunter/internal/core"
	"github.com/gmh5225/ollama-hunter/internal/core/logger"
	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://api.shodan.io"

// PageSize is the number of matches Shodan returns per search page.
const PageSize = 100

var DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Searcher is the capability the discovery driver depends on, so tests can
// substitute a fake instead of hitting the live API.
type Searcher interface {
	Search(query string, page int) (*SearchResult, error)
}

// Location carries the geolocation fields of a search match.
type Location struct {
	CountryName string `json:"country_name"`
	CityName    string `json:"city_name"`
}

// HostMatch is one hit of a search page.
type HostMatch struct {
	IPStr     string   `json:"ip_str"`
	Port      int      `json:"port"`
	Location  Location `json:"location"`
	Org       string   `json:"org"`
	Hostnames []string `json:"hostnames"`
	Data      string   `json:"data"` // raw service banner
	Product   string   `json:"product"`
}

// SearchResult is one page of /shodan/host/search.
type SearchResult struct {
	Matches []HostMatch `json:"matches"`
	Total   int         `json:"total"`
}

// ServiceBanner is one captured service on a host detail lookup.
type ServiceBanner struct {
	Port   int    `json:"port"`
	Banner string `json:"data"`
}

// HostInfo is the /shodan/host/{ip} response.
type HostInfo struct {
	IPStr       string          `json:"ip_str"`
	CountryName string          `json:"country_name"`
	CityName    string          `json:"city_name"`
	Org         string          `json:"org"`
	ISP         string          `json:"isp"`
	OS          string          `json:"os"`
	Hostnames   []string        `json:"hostnames"`
	Ports       []int           `json:"ports"`
	Data        []ServiceBanner `json:"data"`
}

// APIInfo is the /api-info response.
type APIInfo struct {
	Plan         string `json:"plan"`
	QueryCredits int    `json:"query_credits"`
	ScanCredits  int    `json:"scan_credits"`
}

type apiError struct {
	Error string `json:"error"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	log        *logrus.Logger
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: DefaultHTTPClient,
		log:        logger.GetLogger(),
	}
}

// Search fetches one page of search results for query. Page numbering starts
// at 1, matching the Shodan API.
func (c *Client) Search(query string, page int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("key", c.APIKey)
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var result SearchResult
	if err := c.get("/shodan/host/search?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	c.log.Debugf("search %q page %d: %d matches (total %d)", query, page, len(result.Matches), result.Total)
	return &result, nil
}

// Host looks up the full Shodan record for a single IP.
func (c *Client) Host(ip string) (*HostInfo, error) {
	var info HostInfo
	if err := c.get("/shodan/host/"+url.PathEscape(ip)+"?key="+url.QueryEscape(c.APIKey), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// APIInfo returns the plan and remaining credits for the configured key.
func (c *Client) APIInfo() (*APIInfo, error) {
	var info APIInfo
	if err := c.get("/api-info?key="+url.QueryEscape(c.APIKey), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.HTTPClient.Get(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("shodan request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return classifyError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("shodan response decode failed: %w", err)
	}
	return nil
}

// classifyError maps API failures onto the core error taxonomy so callers can
// tell authentication problems and throttling apart from plain network noise.
func classifyError(status int, body []byte) error {
	var e apiError
	_ = json.Unmarshal(body, &e)
	msg := e.Error
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}

	lower := strings.ToLower(msg)
	switch {
	case status == http.StatusUnauthorized,
		strings.Contains(lower, "invalid api key"),
		strings.Contains(lower, "no api key"):
		return fmt.Errorf("%w: %s", core.ErrAuthentication, msg)
	case status == http.StatusTooManyRequests,
		strings.Contains(lower, "rate limit"),
		strings.Contains(lower, "request limit"):
		return fmt.Errorf("%w: %s", core.ErrRateLimited, msg)
	}
	return fmt.Errorf("shodan API error (HTTP %d): %s", status, msg)
}
