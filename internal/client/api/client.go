// Package api is a thin HTTP client for the account service's envelope API,
// used by the accountctl operator tool.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/amankou/farmauth/internal/common"
)

const requestTimeout = 10 * time.Second

// Envelope mirrors the server's response shape.
type Envelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status,omitempty"`
	Msg     string          `json:"msg,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) post(ctx context.Context, path string, body any) (*Envelope, *http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	envelope := &Envelope{}
	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return nil, nil, fmt.Errorf("error decoding response: %w", err)
	}

	return envelope, resp, nil
}

// Register creates an account on the server.
func (c *Client) Register(ctx context.Context, username, password string) (*Envelope, error) {
	envelope, _, err := c.post(ctx, "/register", credentials{Username: username, Password: password})
	return envelope, err
}

// Login authenticates and returns the envelope plus the session token from
// the server-set cookie (empty when login failed).
func (c *Client) Login(ctx context.Context, username, password string) (*Envelope, string, error) {
	envelope, resp, err := c.post(ctx, "/login", credentials{Username: username, Password: password})
	if err != nil {
		return nil, "", err
	}

	var token string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == common.SessionCookieName {
			token = cookie.Value
		}
	}

	return envelope, token, nil
}
