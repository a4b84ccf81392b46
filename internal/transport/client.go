package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cloudson/pagarme-go/internal/config"
	"github.com/cloudson/pagarme-go/request"
	"github.com/go-openapi/runtime"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const userAgent = "pagarme-go/1.0"

// Client sends request.Request values to the Pagar.me API.
type Client struct {
	config     config.ClientConfig
	httpClient *http.Client
	producer   runtime.Producer
	consumer   runtime.Consumer
	logger     *zap.Logger
}

// NewClient creates a new Pagar.me API client
func NewClient(cfg config.ClientConfig, logger *zap.Logger) *Client {
	cfg = cfg.Defaults()

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		producer: runtime.JSONProducer(),
		consumer: runtime.JSONConsumer(),
		logger:   logger,
	}
}

// WithHTTPClient replaces the underlying http.Client, mostly useful in tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Send executes req and decodes a successful response into out when out is
// not nil.
func (c *Client) Send(ctx context.Context, req request.Request, out any) error {
	resp, err := c.makeRequest(ctx, req)
	if err != nil {
		c.logger.Error("pagarme request failed",
			zap.String("method", req.Method()),
			zap.String("path", req.Path()),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}

	if err := c.consumer.Consume(resp.Body, out); err != nil {
		c.logger.Error("failed to decode pagarme response",
			zap.String("path", req.Path()),
			zap.Error(err),
		)
		return fmt.Errorf("decode response failed: %w", err)
	}

	return nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func hasBody(method string) bool {
	return method != request.HTTPGet && method != request.HTTPDelete
}

// encode splits req into the target URL and, for methods that carry one, the
// JSON body. The api key travels with the body, or in the query string when
// there is no body.
func (c *Client) encode(req request.Request) (string, []byte, error) {
	target := c.endpoint(req.Path())
	payload := req.Payload()

	if !hasBody(req.Method()) {
		query, err := encodeQuery(payload)
		if err != nil {
			return "", nil, err
		}
		query.Set("api_key", c.config.APIKey)

		return target + "?" + query.Encode(), nil, nil
	}

	body := lo.Assign(payload, map[string]any{"api_key": c.config.APIKey})

	var buf bytes.Buffer
	if err := c.producer.Produce(&buf, body); err != nil {
		return "", nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	return target, buf.Bytes(), nil
}

// encodeQuery accepts scalar values and string slices only.
func encodeQuery(payload map[string]any) (url.Values, error) {
	query := url.Values{}

	for key, value := range payload {
		switch v := value.(type) {
		case string:
			query.Set(key, v)
		case int:
			query.Set(key, strconv.Itoa(v))
		case int64:
			query.Set(key, strconv.FormatInt(v, 10))
		case float64:
			query.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			query.Set(key, strconv.FormatBool(v))
		case []string:
			for _, item := range v {
				query.Add(key, item)
			}
		default:
			return nil, fmt.Errorf("unsupported query value for %q: %T", key, value)
		}
	}

	return query, nil
}

// retryable reports whether a failed attempt may be sent again. Only GET and
// DELETE are repeated after a response or a broken connection; other methods
// are retried only when the connection was never established, since the API
// may already have created the resource.
func retryable(method string, err error) bool {
	if !hasBody(method) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// makeRequest performs the HTTP request with proper headers, logging and retries
func (c *Client) makeRequest(ctx context.Context, req request.Request) (*http.Response, error) {
	target, payloadBytes, err := c.encode(req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()

	c.logger.Debug("preparing pagarme request",
		zap.String("method", req.Method()),
		zap.String("path", req.Path()),
		zap.String("request_id", requestID),
		zap.Any("payload", req.Payload()),
	)

	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Info("retrying request",
				zap.String("path", req.Path()),
				zap.String("request_id", requestID),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
		}

		var body io.Reader
		if payloadBytes != nil {
			body = bytes.NewReader(payloadBytes)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method(), target, body)
		if err != nil {
			return nil, fmt.Errorf("create request failed: %w", err)
		}

		if payloadBytes != nil {
			httpReq.Header.Set("Content-Type", "application/json")
		}
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("User-Agent", userAgent)
		httpReq.Header.Set("X-Request-Id", requestID)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("request failed: %w", err)
			if !retryable(req.Method(), err) {
				return nil, lastErr
			}
			continue
		}

		// Don't retry on client errors (4xx)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, c.newAPIError(resp)
		}

		if resp.StatusCode >= 500 {
			apiErr := c.newAPIError(resp)
			if !hasBody(req.Method()) {
				lastErr = apiErr
				continue
			}
			return nil, apiErr
		}

		return resp, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// IsAPIError reports whether err carries an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
