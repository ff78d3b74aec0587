package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"checkers/internal/core"
)

// Error is a non-2xx response from the server
type Error struct {
	Status int
	core.ErrorResponse
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.ErrorResponse.Error, e.Code, e.Details)
	}
	return e.ErrorResponse.Error
}

// IsRejection reports whether the server refused a click under the game rules
func (e *Error) IsRejection() bool {
	return core.IsRuleError(e.Code)
}

// RequestTimeout bounds every request, long polls included
const RequestTimeout = 40 * time.Second

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Trace      io.Writer // when set, each request line is written here
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// SetBaseURL updates the API base URL for the client
func (c *Client) SetBaseURL(url string) {
	c.BaseURL = strings.TrimRight(url, "/")
}

func (c *Client) doRequest(method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Trace != nil {
		fmt.Fprintf(c.Trace, "[API] %s %s\n", method, path)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, &apiErr.ErrorResponse); err != nil || apiErr.ErrorResponse.Error == "" {
			apiErr.ErrorResponse = core.ErrorResponse{
				Error: http.StatusText(resp.StatusCode),
				Code:  core.ErrInternalError,
			}
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Health() (map[string]any, error) {
	var result map[string]any
	err := c.doRequest(http.MethodGet, "/health", nil, &result)
	return result, err
}

func (c *Client) CreateGame(req core.CreateGameRequest) (*core.GameResponse, error) {
	var result core.GameResponse
	if err := c.doRequest(http.MethodPost, "/api/v1/games", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetGame(gameID string) (*core.GameResponse, error) {
	var result core.GameResponse
	if err := c.doRequest(http.MethodGet, "/api/v1/games/"+gameID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WaitGame long-polls until the game moves past version or the server times out
func (c *Client) WaitGame(gameID string, version int) (*core.GameResponse, error) {
	var result core.GameResponse
	path := "/api/v1/games/" + gameID + "?wait=true&version=" + strconv.Itoa(version)
	if err := c.doRequest(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SubmitAction(gameID string, position int) (*core.ActionResponse, error) {
	var result core.ActionResponse
	req := core.ActionRequest{Position: position}
	if err := c.doRequest(http.MethodPost, "/api/v1/games/"+gameID+"/actions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetBoard(gameID string) (*core.BoardResponse, error) {
	var result core.BoardResponse
	if err := c.doRequest(http.MethodGet, "/api/v1/games/"+gameID+"/board", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteGame(gameID string) error {
	return c.doRequest(http.MethodDelete, "/api/v1/games/"+gameID, nil, nil)
}
