package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"taskger/internal/logger"
)

// Client issues the four collection operations against the remote task
// resource. It carries no state beyond the base URL: no retries, no caching,
// no request deduplication.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

const defaultTimeout = 30 * time.Second

func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// List fetches every task in the collection.
func (c *Client) List(ctx context.Context) ([]Task, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	var tasks []Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, errors.Wrap(ErrServer, "decoding task list")
	}
	return tasks, nil
}

// Create posts a draft; the server assigns the id.
func (c *Client) Create(ctx context.Context, draft Draft) (Task, error) {
	return c.send(ctx, http.MethodPost, c.baseURL, draft)
}

// Update replaces every mutable field of the task with the draft's.
func (c *Client) Update(ctx context.Context, id int, draft Draft) (Task, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, id), draft)
}

// Delete removes the task.
func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", c.baseURL, id), nil)
	return err
}

func (c *Client) send(ctx context.Context, method, url string, draft Draft) (Task, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return Task{}, errors.Wrap(ErrValidation, "encoding draft")
	}
	body, err := c.do(ctx, method, url, payload)
	if err != nil {
		return Task{}, err
	}
	var t Task
	if err := json.Unmarshal(body, &t); err != nil {
		return Task{}, errors.Wrap(ErrServer, "decoding task")
	}
	return t, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, errors.Wrap(ErrNetwork, "building request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("request failed", "method", method, "url", url, "err", err)
		return nil, errors.Wrapf(ErrNetwork, "%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Debugw("reading response failed", "method", method, "url", url, "err", err)
		return nil, errors.Wrapf(ErrNetwork, "%s %s: reading body: %v", method, url, err)
	}

	c.log.Debugw("request done", "method", method, "url", url, "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}
