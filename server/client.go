package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"yahtzee/game"
)

// Client drives one environment session on a Server.
type Client struct {
	serverURL string
	http      *http.Client
	id        string
}

func NewClient(serverURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL: serverURL,
		http:      httpClient,
	}
}

func (c *Client) ID() string {
	return c.id
}

// Create opens a new session and returns its first observation.
func (c *Client) Create() (game.Observation, error) {
	var resp CreateResponse
	if err := c.do(http.MethodPost, "/envs", nil, http.StatusCreated, &resp); err != nil {
		return game.Observation{}, err
	}
	c.id = resp.ID
	return resp.Observation, nil
}

func (c *Client) Reset() (game.Observation, error) {
	var resp ResetResponse
	if err := c.do(http.MethodPost, c.path("/reset"), nil, http.StatusOK, &resp); err != nil {
		return game.Observation{}, err
	}
	return resp.Observation, nil
}

func (c *Client) Step(action game.Action) (StepResponse, error) {
	return c.step(StepRequest{Action: action})
}

// RerollKeeping rerolls the dice whose keep flag is false.
func (c *Client) RerollKeeping(keep [game.NumDice]bool) (StepResponse, error) {
	return c.step(StepRequest{Action: game.RerollAction, Keep: &keep})
}

func (c *Client) step(req StepRequest) (StepResponse, error) {
	var resp StepResponse
	err := c.do(http.MethodPost, c.path("/step"), req, http.StatusOK, &resp)
	return resp, err
}

func (c *Client) Render() (string, error) {
	resp, err := c.http.Get(c.serverURL + c.path("/render"))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("render returned status %d: %s", resp.StatusCode, out)
	}
	return string(bytes.TrimSpace(out)), nil
}

func (c *Client) Close() error {
	return c.do(http.MethodDelete, c.path(""), nil, http.StatusNoContent, nil)
}

func (c *Client) path(suffix string) string {
	return "/envs/" + c.id + suffix
}

func (c *Client) do(method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.serverURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr errorResponse
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{Code: resp.StatusCode, Message: apiErr.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// StatusError is a non-success response from the server.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}
