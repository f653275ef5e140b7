// FilePath: internal/device/client.go
package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/airsentry/hub/internal/config"
	"github.com/airsentry/hub/internal/errors"
	"github.com/airsentry/hub/internal/models"
)

// Action is a control instruction for a fan or buzzer peripheral.
type Action string

const (
	ActionOn   Action = "on"
	ActionOff  Action = "off"
	ActionAuto Action = "auto"
)

// ParseAction validates a raw action string from the API surface.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionOn, ActionOff, ActionAuto:
		return Action(raw), nil
	}
	return "", errors.NewValidationError(fmt.Sprintf("invalid action %q, want on|off|auto", raw), nil)
}

// Client talks to the air-quality device over its local HTTP interface.
type Client struct {
	http *resty.Client
}

// NewClient creates a device client with the configured base URL and a
// bounded request timeout shared by all three call sites.
func NewClient(cfg config.DeviceConfig) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout),
	}
}

// FetchReading issues one GET to the sensor endpoint and parses the response
// into an immutable Reading. All failures carry a typed kind: network,
// http_status, or parse.
func (c *Client) FetchReading(ctx context.Context) (*models.Reading, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/sensor")
	if err != nil {
		return nil, errors.NewNetworkError("sensor request failed", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.NewHTTPStatusError(
			fmt.Sprintf("sensor endpoint returned %d", resp.StatusCode()), nil)
	}

	reading, err := models.ParseReading(resp.Body())
	if err != nil {
		return nil, errors.NewParseError("malformed sensor payload", err)
	}
	return reading, nil
}

// SetFan sends one fan control command.
func (c *Client) SetFan(ctx context.Context, action Action) error {
	return c.command(ctx, "fan", action)
}

// SetBuzzer sends one buzzer control command.
func (c *Client) SetBuzzer(ctx context.Context, action Action) error {
	return c.command(ctx, "buzzer", action)
}

type commandResponse struct {
	Status string `json:"status"`
}

// command issues GET /<peripheral>/<action>. Success requires both HTTP 200
// and a "success" status field in the body; anything else is a typed failure
// for the caller to log and swallow.
func (c *Client) command(ctx context.Context, peripheral string, action Action) error {
	path := fmt.Sprintf("/%s/%s", peripheral, action)

	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return errors.NewNetworkError(fmt.Sprintf("%s command failed", peripheral), err)
	}
	if resp.StatusCode() != http.StatusOK {
		return errors.NewHTTPStatusError(
			fmt.Sprintf("%s endpoint returned %d", peripheral, resp.StatusCode()), nil)
	}

	var body commandResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return errors.NewParseError(fmt.Sprintf("malformed %s command response", peripheral), err)
	}
	if body.Status != "success" {
		return errors.NewCommandRejectedError(
			fmt.Sprintf("%s command %s rejected with status %q", peripheral, action, body.Status), nil)
	}
	return nil
}
