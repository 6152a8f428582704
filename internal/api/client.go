package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arenacode/arenactl/internal/pkg/logs"
)

// Client implements Arena API client.
//
// All methods are safe for concurrent use: the client keeps no mutable
// state besides the underlying http.Client.
type Client struct {
	endpoint string
	client   http.Client
	logger   *logs.Logger
	Headers  map[string]string
}

type ClientOption func(*Client)

func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.client.Transport = transport
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

func WithLogger(logger *logs.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient returns new Arena API client.
func NewClient(endpoint string, options ...ClientOption) *Client {
	c := Client{
		endpoint: endpoint,
		client: http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logs.NewLogger(),
	}
	for _, option := range options {
		option(&c)
	}
	return &c
}

func (c *Client) getURL(path string, args ...any) string {
	return c.endpoint + fmt.Sprintf(path, args...)
}

func (c *Client) doRequest(req *http.Request, code int, respData any) error {
	if len(req.Header.Get("Content-Type")) == 0 {
		req.Header.Add("Content-Type", "application/json")
	}
	for key, value := range c.Headers {
		req.Header.Add(key, value)
	}
	logger := c.logger.With(
		logs.Any("method", req.Method),
		logs.Any("url", req.URL.String()),
	)
	logger.Debug("api request")
	resp, err := c.client.Do(req)
	if err != nil {
		err := &TransportError{Err: err}
		logger.Warn("api error", err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != code {
		respErr := BackendError{Code: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(&respErr)
		logger.Warn("api error", &respErr)
		return &respErr
	}
	if respData != nil {
		if err := json.NewDecoder(resp.Body).Decode(respData); err != nil {
			err := &DecodeError{Err: err}
			logger.Warn("api error", err)
			return err
		}
	}
	return nil
}
