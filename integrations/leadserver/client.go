// Package leadserver is a thin client for a server exposing a
// GET /leads endpoint, such as fakeleadserver. The CLI uses it when
// its input is a URL instead of a file.
package leadserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrUnexpectedResponse = errors.New("unexpected response code")

type Client struct {
	Server string
	APIKey string
}

func NewClient(server string) (*Client, error) {
	if server == "" {
		return nil, errors.New("empty server URL")
	}
	client := &Client{
		Server: strings.TrimSuffix(server, "/"),
	}
	return client, nil
}

// FetchLeads downloads the raw leads document. The body comes back
// unparsed; lead.Load handles it the same as a file.
func (c *Client) FetchLeads(ctx context.Context) ([]byte, error) {
	u := c.formatURL("/leads")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	}

	client := http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, ErrUnexpectedResponse
	}
	return io.ReadAll(res.Body)
}

func (c *Client) formatURL(path string) string {
	return c.Server + path
}
