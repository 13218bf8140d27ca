// Package apiclient is a typed wrapper over the backend REST API that owns
// all medicine and bill records. The front-end never persists these itself.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"medimanager/m/domain"
)

// RequestError is a failed backend call: a transport failure (StatusCode 0)
// or a non-2xx response. Prior view state is preserved by callers; retries
// are left to the user.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the backend answered 404 for the resource.
func (e *RequestError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client calls the medicine and billing endpoints of the backend service.
type Client struct {
	base *url.URL
	http *http.Client
}

// New constructs a Client for the given base URL.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: u, http: httpClient}, nil
}

// Medicine endpoints

func (c *Client) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	var medicines []domain.Medicine
	if err := c.do(ctx, http.MethodGet, "/medicines", nil, nil, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (c *Client) AddMedicine(ctx context.Context, medicine domain.Medicine) (domain.Medicine, error) {
	var created domain.Medicine
	if err := c.do(ctx, http.MethodPost, "/medicines", nil, medicine, &created); err != nil {
		return domain.Medicine{}, err
	}
	return created, nil
}

func (c *Client) UpdateMedicine(ctx context.Context, id int64, medicine domain.Medicine) (domain.Medicine, error) {
	var updated domain.Medicine
	if err := c.do(ctx, http.MethodPut, "/medicines/"+strconv.FormatInt(id, 10), nil, medicine, &updated); err != nil {
		return domain.Medicine{}, err
	}
	return updated, nil
}

func (c *Client) DeleteMedicine(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/medicines/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) SearchMedicines(ctx context.Context, name string) ([]domain.Medicine, error) {
	query := url.Values{"name": {name}}
	var medicines []domain.Medicine
	if err := c.do(ctx, http.MethodGet, "/medicines/search", query, nil, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (c *Client) LowStock(ctx context.Context, threshold int64) ([]domain.Medicine, error) {
	query := url.Values{"threshold": {strconv.FormatInt(threshold, 10)}}
	var medicines []domain.Medicine
	if err := c.do(ctx, http.MethodGet, "/medicines/lowstock", query, nil, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (c *Client) ExpiringSoon(ctx context.Context, days int) ([]domain.Medicine, error) {
	query := url.Values{"days": {strconv.Itoa(days)}}
	var medicines []domain.Medicine
	if err := c.do(ctx, http.MethodGet, "/medicines/expiring", query, nil, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

// Billing endpoints

func (c *Client) CreateBill(ctx context.Context, items []domain.BillItem) (domain.Bill, error) {
	var created domain.Bill
	if err := c.do(ctx, http.MethodPost, "/billing", nil, items, &created); err != nil {
		return domain.Bill{}, err
	}
	return created, nil
}

func (c *Client) ListBills(ctx context.Context) ([]domain.Bill, error) {
	var bills []domain.Bill
	if err := c.do(ctx, http.MethodGet, "/billing", nil, nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (c *Client) GetBill(ctx context.Context, id int64) (domain.Bill, error) {
	var bill domain.Bill
	if err := c.do(ctx, http.MethodGet, "/billing/"+strconv.FormatInt(id, 10), nil, nil, &bill); err != nil {
		return domain.Bill{}, err
	}
	return bill, nil
}

// do performs one backend call. body is JSON-encoded when non-nil; the
// response body is decoded into out when non-nil. Non-2xx responses become
// *RequestError with the backend's message when one is present.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	u := c.base.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: err.Error()}
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RequestError{Message: "malformed response: " + err.Error()}
		}
	}
	return nil
}

func errorMessage(resp *http.Response) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
