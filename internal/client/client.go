// Package client talks to a running calc API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/api/dto"
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
)

const defaultTimeout = 10 * time.Second

type Option func(client *Client)

type Client struct {
	base url.URL
	http *http.Client
}

func New(baseUrl string, opts ...Option) (*Client, error) {
	if baseUrl == "" {
		return nil, apperr.NewValidation("api url is required")
	}
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid api url", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, apperr.NewValidation(fmt.Sprintf("unsupported api url scheme: %q", base.Scheme))
	}

	client := &Client{
		base: *base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.http = httpClient
	}
}

// RemoteError is a non-2xx answer from the API.
// It unwraps to the apperr code reported by the server, if any.
type RemoteError struct {
	Status  int
	Message string
	Title   string
	Code    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Status)
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	if e.Code == "" {
		return nil
	}
	return apperr.Code(e.Code)
}

// Evaluate sends expression to POST /eval. When rpn is set the response carries the postfix form.
func (c *Client) Evaluate(ctx context.Context, expression string, rpn bool) (*dto.EvalResponse, error) {
	var resp dto.EvalResponse
	err := c.do(ctx, http.MethodPost, "/eval", dto.EvalRequest{Exp: &expression, RPN: rpn}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Echo checks that the API is reachable and speaks the eval protocol.
func (c *Client) Echo(ctx context.Context) (string, error) {
	cmd := dto.CmdEcho
	var resp dto.EchoResponse
	if err := c.do(ctx, http.MethodPost, "/eval", dto.EvalRequest{Cmd: &cmd}, &resp); err != nil {
		return "", err
	}
	if resp.Res != dto.CmdEcho {
		return "", fmt.Errorf("unexpected echo response: %q", resp.Res)
	}
	return resp.Res, nil
}

func (c *Client) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := c.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("request %s: %w", reqURL.Redacted(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		remote := &RemoteError{Status: resp.StatusCode}
		var body dto.ErrorResponse
		if json.Unmarshal(respBody, &body) == nil {
			remote.Message = body.Error
			remote.Title = body.Title
			remote.Code = body.Code
		}
		return remote
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
