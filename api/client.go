package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator"
)

const (
	header_content_type   = "Content-Type"
	header_content_length = "Content-Length"
	header_authorization  = "Authorization"
	header_mime_json      = "application/json"
)

// Client talks to the Python API.
type Client struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client

	validate *validator.Validate
}

// New creates a client for the given base url. An empty token sends unauthenticated requests.
func New(baseURL, accessToken string) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		AccessToken: accessToken,
		// generating quizzes from big PDFs takes a while
		HTTPClient: &http.Client{Timeout: 5 * time.Minute},
		validate:   validator.New(),
	}
}

// newRequest prepares a request against the Python API with the common headers set.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.AccessToken != "" {
		req.Header.Add(header_authorization, fmt.Sprintf("Bearer %s", c.AccessToken))
	}
	return req, nil
}

// newJSONRequest marshals payload as the request body.
func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("Failed to marshal request body: %v\n", err)
		return nil, err
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}
	req.Header.Add(header_content_type, header_mime_json)
	req.Header.Add(header_content_length, strconv.Itoa(len(b)))
	return req, nil
}

// do sends the request and decodes a JSON body into out.
// Any status outside of 2xx is turned into an ErrResponse.
func (c *Client) do(req *http.Request, out any) error {
	log.Debug("Sending request", "method", req.Method, "url", req.URL.String())
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Errorf("Failed to make http request to the Python API: %v\n", err)
		return err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		log.Errorf("Failed to read response body: %v\n", err)
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var resBody errorResponse
		if err := json.Unmarshal(b, &resBody); err != nil || resBody.Error == "" {
			resBody.Error = strings.TrimSpace(string(b))
		}
		return ErrResponse{StatusCode: res.StatusCode, Message: resBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
