package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pim/backend/internal/domain/shared"
	"golang.org/x/time/rate"
)

// maxResponseSize is the maximum allowed response size from the remote store (10MB)
const maxResponseSize = 10 * 1024 * 1024

// APIError is a non-2xx response from the WooCommerce REST API. The
// message comes from the remote error body when one is present.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("woocommerce: %s", e.Message)
}

// Client talks to a WooCommerce store over its REST API v3. Credentials
// travel as query parameters, matching the store-side HTTP basic auth
// fallback for key/secret pairs.
type Client struct {
	config     *Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new WooCommerce API client
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimitRPS), config.RateLimitBurst),
	}, nil
}

// TestConnection verifies credentials with a minimal request
func (c *Client) TestConnection(ctx context.Context) error {
	query := url.Values{}
	query.Set("per_page", "1")
	_, _, err := c.do(ctx, http.MethodGet, "products", query, nil)
	return err
}

// ListProducts fetches one page of products. The second return value is
// the total item count reported by the X-WP-Total header, or -1 when
// the store did not send it.
func (c *Client) ListProducts(ctx context.Context, page, perPage int) ([]Product, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("status", "publish,draft")
	// Fixed ascending id order keeps multi-page imports deterministic
	// while the remote catalog changes underneath
	query.Set("orderby", "id")
	query.Set("order", "asc")

	body, header, err := c.do(ctx, http.MethodGet, "products", query, nil)
	if err != nil {
		return nil, 0, err
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, 0, fmt.Errorf("woocommerce: failed to parse product list: %w", err)
	}

	return products, headerTotal(header), nil
}

// GetProduct fetches a single product by its remote ID
func (c *Client) GetProduct(ctx context.Context, remoteID int64) (*Product, error) {
	body, _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("products/%d", remoteID), nil, nil)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("woocommerce: failed to parse product: %w", err)
	}
	return &product, nil
}

// CreateProduct creates a product on the remote store and returns the
// stored representation, including the assigned remote ID
func (c *Client) CreateProduct(ctx context.Context, product *Product) (*Product, error) {
	body, _, err := c.do(ctx, http.MethodPost, "products", nil, product)
	if err != nil {
		return nil, err
	}

	var created Product
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("woocommerce: failed to parse created product: %w", err)
	}
	return &created, nil
}

// UpdateProduct updates an existing remote product
func (c *Client) UpdateProduct(ctx context.Context, remoteID int64, product *Product) (*Product, error) {
	body, _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("products/%d", remoteID), nil, product)
	if err != nil {
		return nil, err
	}

	var updated Product
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("woocommerce: failed to parse updated product: %w", err)
	}
	return &updated, nil
}

// ListCategories fetches one page of product categories
func (c *Client) ListCategories(ctx context.Context, page, perPage int) ([]Category, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	body, header, err := c.do(ctx, http.MethodGet, "products/categories", query, nil)
	if err != nil {
		return nil, 0, err
	}

	var categories []Category
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, 0, fmt.Errorf("woocommerce: failed to parse category list: %w", err)
	}

	return categories, headerTotal(header), nil
}

// CreateCategory creates a category on the remote store
func (c *Client) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	body, _, err := c.do(ctx, http.MethodPost, "products/categories", nil, category)
	if err != nil {
		return nil, err
	}

	var created Category
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("woocommerce: failed to parse created category: %w", err)
	}
	return &created, nil
}

// do executes one API request. Non-2xx responses become an APIError
// carrying the remote message field when the body provides one.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, payload interface{}) (json.RawMessage, http.Header, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("consumer_key", c.config.ConsumerKey)
	query.Set("consumer_secret", c.config.ConsumerSecret)

	requestURL := c.config.BaseURL + apiPrefix + endpoint + "?" + query.Encode()

	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("woocommerce: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("woocommerce: failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", shared.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, nil, fmt.Errorf("woocommerce: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    remoteErrorMessage(body, resp.StatusCode),
		}
	}

	return body, resp.Header, nil
}

// remoteErrorMessage pulls the message field out of a WooCommerce error
// body, falling back to the HTTP status
func remoteErrorMessage(body []byte, statusCode int) string {
	var remote struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &remote); err == nil && remote.Message != "" {
		return remote.Message
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}

// headerTotal reads the X-WP-Total pagination header, returning -1 when absent
func headerTotal(header http.Header) int {
	raw := header.Get("X-WP-Total")
	if raw == "" {
		return -1
	}
	total, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return total
}
