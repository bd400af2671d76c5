package isbndb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Astemirdum/isbndb-service/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://api2.isbndb.com"
	DefaultPageSize = 20
	maxBodySize     = 4 << 20 // 4 MB
)

// Agent is the generic find/search surface of the service.
type Agent interface {
	Find(ctx context.Context, kind Kind, id string) (*Resource, error)
	Search(ctx context.Context, kind Kind, args Args) (*Iterator, error)
}

var _ Agent = (*Client)(nil)

// Client talks to the ISBNdb REST API with a single access key.
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         circuit_breaker.CircuitBreaker
	pageSize   int
	log        *zap.Logger
}

type Option func(c *Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit caps outgoing requests per second. rps <= 0 disables it.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func WithCircuitBreaker(cb circuit_breaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.cb = cb
	}
}

func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient returns a client bound to accessKey.
func NewClient(accessKey string, opts ...Option) (*Client, error) {
	if accessKey == "" {
		return nil, ErrNoAccessKey
	}
	c := &Client{
		key:        accessKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cb:         circuit_breaker.New(100, time.Second, 0.2, 2),
		pageSize:   DefaultPageSize,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("isbndb")
	return c, nil
}

// Find fetches one resource. It returns nil and no error when the service
// has no such resource.
func (c *Client) Find(ctx context.Context, kind Kind, id string) (*Resource, error) {
	if !kind.Valid() {
		return nil, errors.Wrapf(ErrUnknownKind, "find %q", kind)
	}
	status, body, err := c.get(ctx, "/"+kind.Tag()+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, newAPIError(status, body)
	}
	return &Resource{Kind: kind, ID: id, Data: unwrap(body, kind.Tag())}, nil
}

// Search returns a lazy iterator; no request is made until the first Next.
func (c *Client) Search(_ context.Context, kind Kind, args Args) (*Iterator, error) {
	if !kind.Valid() {
		return nil, errors.Wrapf(ErrUnknownKind, "search %q", kind)
	}
	query := url.Values{}
	for k, v := range args {
		if k == ArgPage || k == ArgPageSize {
			return nil, errors.Wrapf(ErrReservedArg, "search %q", k)
		}
		query.Set(k, v)
	}
	pageSize := c.pageSize
	return NewIterator(pageSize, func(ctx context.Context, page int) (Page, error) {
		q := cloneValues(query)
		q.Set("page", strconv.Itoa(page))
		q.Set("pageSize", strconv.Itoa(pageSize))
		status, body, err := c.get(ctx, "/"+kind.Plural(), q)
		if err != nil {
			return Page{}, err
		}
		if status == http.StatusNotFound {
			return Page{}, nil
		}
		if status != http.StatusOK {
			return Page{}, newAPIError(status, body)
		}
		return decodePage(kind, body)
	}), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var (
		status int
		body   []byte
	)
	call := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
		if err != nil {
			return errors.Wrap(err, "isbndb: new request")
		}
		req.Header.Set("Authorization", c.key)
		req.Header.Set("Accept", "application/json")
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errors.Wrap(err, "isbndb: request failed")
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return errors.Wrap(err, "isbndb: read body")
		}
		status = resp.StatusCode
		if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
			return newAPIError(status, body)
		}
		return nil
	}

	var err error
	if c.cb != nil {
		err = c.cb.Call(call)
	} else {
		err = call()
	}
	c.log.Debug("request",
		zap.String("path", path),
		zap.Int("status", status),
		zap.Error(err),
	)
	if err != nil {
		return status, nil, err
	}
	return status, body, nil
}

func decodePage(kind Kind, body []byte) (Page, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Page{}, errors.Wrap(err, "isbndb: decode page")
	}
	var p Page
	if t, ok := raw["total"]; ok {
		if err := json.Unmarshal(t, &p.Total); err != nil {
			return Page{}, errors.Wrap(err, "isbndb: decode total")
		}
	}
	var items []json.RawMessage
	if list, ok := raw[kind.Plural()]; ok {
		if err := json.Unmarshal(list, &items); err != nil {
			return Page{}, errors.Wrapf(err, "isbndb: decode %s", kind.Plural())
		}
	}
	p.Items = make([]Resource, 0, len(items))
	for _, item := range items {
		p.Items = append(p.Items, Resource{Kind: kind, ID: idOf(item), Data: item})
	}
	return p, nil
}

var idKeys = [...]string{"id", "isbn13", "isbn", "name", "author", "publisher", "subject"}

func idOf(item json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return ""
	}
	for _, k := range idKeys {
		switch v := fields[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// unwrap strips a single {"<tag>": {...}} envelope if present.
func unwrap(body []byte, tag string) json.RawMessage {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil || len(env) != 1 {
		return json.RawMessage(body)
	}
	if inner, ok := env[tag]; ok {
		return inner
	}
	return json.RawMessage(body)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
