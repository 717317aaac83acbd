package dim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// API endpoint paths.
const (
	pathLogin  = "/api/v1/auth/login"
	pathWhoami = "/api/v1/auth/whoami"
)

// Client is a lightweight HTTP client for the Dim media server API.
// Dim has no generated Go SDK, so requests are issued with net/http directly.
type Client struct {
	baseURL    string
	token      string
	deviceID   string
	httpClient *http.Client
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

// NewClient creates a Dim API client. deviceID identifies this install and is
// sent with authentication requests.
func NewClient(serverURL, deviceID string) *Client {
	return &Client{
		baseURL:  normalizeURL(serverURL),
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetToken installs a previously obtained auth token.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string     { return c.token }
func (c *Client) ServerURL() string { return c.baseURL }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// Login authenticates against the server and stores the returned token on the
// client for subsequent requests.
func (c *Client) Login(username, password string) error {
	var result loginResponse
	if err := c.post(pathLogin, loginRequest{Username: username, Password: password}, &result); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if result.Error != "" {
		return fmt.Errorf("login: %s", result.Error)
	}
	if result.Token == "" {
		return fmt.Errorf("login: server returned no token")
	}
	c.token = result.Token
	return nil
}

// Whoami validates the stored token against the server.
func (c *Client) Whoami() error {
	var result struct {
		Username string `json:"username"`
	}
	if err := c.get(pathWhoami, &result); err != nil {
		return fmt.Errorf("whoami: %w", err)
	}
	return nil
}

// get performs an authenticated GET request and decodes the JSON response into dst.
func (c *Client) get(path string, dst interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	// Dim expects the raw token as the Authorization header value.
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

// post performs a POST request with a JSON body and decodes the response into dst.
func (c *Client) post(path string, body interface{}, dst interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	if dst != nil {
		return json.NewDecoder(resp.Body).Decode(dst)
	}
	return nil
}
