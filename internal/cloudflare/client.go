// Package cloudflare implements the Cloudflare v4 API client used to manage
// DNS records: token verification, zone listing, and record CRUD.
//
// The client is deliberately thin. It holds a bearer token and an HTTP
// client, nothing else, so one instance is safe to share across concurrent
// callers. List endpoints paginate to completion, strictly sequentially, so
// rate-limit behavior stays predictable. Nothing is retried; every failure
// propagates immediately as one of the error kinds in errors.go.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.cloudflare.com/client/v4"

const (
	zonesPerPage   = 50
	recordsPerPage = 100
)

// Client issues authenticated calls against the Cloudflare API. The zero
// value is not usable; construct with New.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		for len(u) > 0 && u[len(u)-1] == '/' {
			u = u[:len(u)-1]
		}
		c.baseURL = u
	}
}

// New creates a client for the given API token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VerifyToken reports whether the token is valid and active. An inactive
// or disabled token is false, not an error; only transport and decode
// failures surface as errors.
func (c *Client) VerifyToken(ctx context.Context) (bool, error) {
	resp, err := request[tokenVerifyResult](ctx, c, http.MethodGet, "/user/tokens/verify", nil, nil)
	if err != nil {
		return false, err
	}
	return resp.Success && resp.Result != nil && resp.Result.Status == "active", nil
}

// ListZones returns every zone the token can see, paginated to completion
// in page order.
func (c *Client) ListZones(ctx context.Context) ([]Zone, error) {
	return listPaged[Zone](ctx, c, "/zones", zonesPerPage)
}

// ListDnsRecords returns every DNS record in the zone, paginated to
// completion in page order.
func (c *Client) ListDnsRecords(ctx context.Context, zoneID string) ([]DnsRecord, error) {
	path := fmt.Sprintf("/zones/%s/dns_records", url.PathEscape(zoneID))
	return listPaged[DnsRecord](ctx, c, path, recordsPerPage)
}

// CreateDnsRecord creates a record and returns it as echoed by the server.
func (c *Client) CreateDnsRecord(ctx context.Context, zoneID string, record CreateDnsRecord) (*DnsRecord, error) {
	path := fmt.Sprintf("/zones/%s/dns_records", url.PathEscape(zoneID))
	resp, err := request[DnsRecord](ctx, c, http.MethodPost, path, nil, record.sanitized())
	if err != nil {
		return nil, err
	}
	return singleResult(resp)
}

// UpdateDnsRecord applies a partial update; only the fields set in record
// are transmitted.
func (c *Client) UpdateDnsRecord(ctx context.Context, zoneID, recordID string, record UpdateDnsRecord) (*DnsRecord, error) {
	path := fmt.Sprintf("/zones/%s/dns_records/%s", url.PathEscape(zoneID), url.PathEscape(recordID))
	resp, err := request[DnsRecord](ctx, c, http.MethodPatch, path, nil, record.sanitized())
	if err != nil {
		return nil, err
	}
	return singleResult(resp)
}

// DeleteDnsRecord removes a record.
func (c *Client) DeleteDnsRecord(ctx context.Context, zoneID, recordID string) error {
	path := fmt.Sprintf("/zones/%s/dns_records/%s", url.PathEscape(zoneID), url.PathEscape(recordID))
	resp, err := request[deleteResult](ctx, c, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Message: resp.firstErrorMessage()}
	}
	return nil
}

// singleResult unwraps a one-record envelope, distinguishing a reported
// failure from a success that is missing its payload.
func singleResult(resp *apiResponse[DnsRecord]) (*DnsRecord, error) {
	if !resp.Success {
		return nil, &APIError{Message: resp.firstErrorMessage()}
	}
	if resp.Result == nil {
		return nil, ErrEmptyResult
	}
	return resp.Result, nil
}

// listPaged accumulates a list endpoint page by page. The last page is the
// one that comes back empty or whose page number reaches total_pages; a
// response without pagination metadata is unconditionally treated as the
// last page so a malformed server can never loop the client forever.
func listPaged[T any](ctx context.Context, c *Client, path string, perPage int) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(perPage))

		resp, err := request[[]T](ctx, c, http.MethodGet, path, query, nil)
		if err != nil {
			return nil, err
		}
		if !resp.Success {
			return nil, &APIError{Message: resp.firstErrorMessage()}
		}

		var items []T
		if resp.Result != nil {
			items = *resp.Result
		}
		all = append(all, items...)

		lastPage := len(items) == 0 ||
			resp.ResultInfo == nil ||
			page >= resp.ResultInfo.TotalPages
		if lastPage {
			return all, nil
		}
	}
}

// request performs one HTTP round trip and decodes the envelope. The
// success flag is left for the caller to interpret; HTTP status codes are
// not inspected because the API reports failure inside the envelope.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*apiResponse[T], error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var envelope apiResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &envelope, nil
}
