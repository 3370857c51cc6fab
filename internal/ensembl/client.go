// Package ensembl wraps the Ensembl REST API endpoints used for variant
// coordinate resolution: VEP consequence lookup, id/symbol lookup,
// CDS-to-genome mapping, and sequence retrieval.
package ensembl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/inodb/varlift/internal/cachestore"
)

// Sentinel errors for annotation service failures.
var (
	// ErrLookupFailed marks an error response from any service endpoint.
	ErrLookupFailed = errors.New("annotation lookup failed")

	// ErrAmbiguousMapping marks a CDS-to-genome mapping that returned
	// zero or more than one span.
	ErrAmbiguousMapping = errors.New("ambiguous CDS-to-genome mapping")
)

// Ensembl asks clients to stay under 15 requests per second.
const defaultRequestsPerSecond = 15

// Client is a rate-limited Ensembl REST client. It is stateless per
// request beyond the pooled connection and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      cachestore.Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewClient creates a client for the given reference assembly
// ("current", "37", "grch37", ...).
func NewClient(assembly string) (*Client, error) {
	baseURL, err := BaseURL(assembly)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
		logger:  zap.NewNop(),
	}, nil
}

// SetBaseURL overrides the service base URL. Used by tests to point the
// client at a local server.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetLogger sets the logger for request debug messages.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// SetCache attaches a response cache. Successful GET bodies are memoized
// under their URL for ttl.
func (c *Client) SetCache(cache cachestore.Cache, ttl time.Duration) {
	c.cache = cache
	c.cacheTTL = ttl
}

// SetRateLimit overrides the default request rate limit.
func (c *Client) SetRateLimit(requestsPerSecond float64, burst int) {
	if burst <= 0 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// VEPLookup returns the transcript consequence candidates for a
// protein-level HGVS string.
func (c *Client) VEPLookup(ctx context.Context, proteinHGVS, species string) ([]TranscriptCandidate, error) {
	u := fmt.Sprintf("%s/vep/%s/hgvs/%s?content-type=application/json",
		c.baseURL, url.PathEscape(species), url.PathEscape(proteinHGVS))

	var results []vepResult
	if err := c.getJSON(ctx, u, &results); err != nil {
		return nil, fmt.Errorf("VEP query for %s: %w", proteinHGVS, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("VEP query for %s: %w: empty response", proteinHGVS, ErrLookupFailed)
	}
	return results[0].TranscriptConsequences, nil
}

// IDLookup resolves a gene, transcript, or translation accession.
func (c *Client) IDLookup(ctx context.Context, id string, expand bool) (*LookupResult, error) {
	u := fmt.Sprintf("%s/lookup/id/%s?content-type=application/json",
		c.baseURL, url.PathEscape(id))
	if expand {
		u += ";expand=1"
	}

	var result LookupResult
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, fmt.Errorf("id lookup for %s: %w", id, err)
	}
	return &result, nil
}

// SymbolLookup resolves a gene symbol for a species.
func (c *Client) SymbolLookup(ctx context.Context, symbol, species string) (*LookupResult, error) {
	u := fmt.Sprintf("%s/lookup/symbol/%s/%s?content-type=application/json;expand=1",
		c.baseURL, url.PathEscape(species), url.PathEscape(symbol))

	var result LookupResult
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, fmt.Errorf("symbol lookup for %s: %w", symbol, err)
	}
	return &result, nil
}

// CDSToGenomeMap maps a CDS coordinate span on a transcript to genomic
// coordinates. Exactly one mapping span must be returned; a span crossing
// a splice boundary maps to multiple spans and is rejected.
func (c *Client) CDSToGenomeMap(ctx context.Context, transcriptID, start, stop string) (*Mapping, error) {
	u := fmt.Sprintf("%s/map/cds/%s/%s..%s?content-type=application/json",
		c.baseURL, url.PathEscape(transcriptID), url.PathEscape(start), url.PathEscape(stop))

	var result mapResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, fmt.Errorf("CDS map for %s: %w", transcriptID, err)
	}
	if len(result.Mappings) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one mapping for transcript %s, received %d",
			ErrAmbiguousMapping, transcriptID, len(result.Mappings))
	}
	return &result.Mappings[0], nil
}

// SequenceLookup returns the raw sequence for an accession.
func (c *Client) SequenceLookup(ctx context.Context, id string) (string, error) {
	u := fmt.Sprintf("%s/sequence/id/%s?content-type=application/json",
		c.baseURL, url.PathEscape(id))

	var result sequenceResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return "", fmt.Errorf("sequence lookup for %s: %w", id, err)
	}
	return result.Seq, nil
}

// getJSON performs a rate-limited, cache-aware GET and decodes the JSON
// body into v.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	key := cachestore.Key(rawURL)
	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			c.logger.Debug("response cache hit", zap.String("url", rawURL))
			return json.Unmarshal(body, v)
		}
	}

	// Only network-bound requests consume rate-limit tokens.
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrLookupFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrLookupFailed, resp.StatusCode, string(body))
	}

	if c.cache != nil {
		if err := c.cache.Set(key, body, c.cacheTTL); err != nil {
			c.logger.Warn("response cache write failed", zap.String("url", rawURL), zap.Error(err))
		}
	}

	return json.Unmarshal(body, v)
}
