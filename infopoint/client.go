// Package infopoint reads routes and public messages from an Avail InfoPoint
// REST API.
package infopoint

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/theoremus-urban-solutions/detour-board/upstream"
)

const (
	routesPath   = "Routes/GetAllRoutes"
	messagesPath = "PublicMessages/GetCurrentMessages"
)

// Client calls one InfoPoint deployment.
type Client struct {
	upstream *upstream.Client
	base     *url.URL
}

// NewClient creates a client for base, e.g.
// https://bustracker.pvta.com/InfoPoint/rest/. A trailing slash is added when
// missing so that endpoint paths resolve below the base.
func NewClient(up *upstream.Client, base string) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid infopoint url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid infopoint url %q: scheme must be http or https", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &Client{upstream: up, base: u}, nil
}

// Base returns the normalized base URL.
func (c *Client) Base() string { return c.base.String() }

func (c *Client) endpoint(path string) string {
	return c.base.ResolveReference(&url.URL{Path: path}).String()
}

func (c *Client) GetAllRoutes(ctx context.Context) ([]Route, error) {
	return upstream.GetJSON[[]Route](ctx, c.upstream, c.endpoint(routesPath))
}

func (c *Client) GetCurrentMessages(ctx context.Context) ([]PublicMessage, error) {
	return upstream.GetJSON[[]PublicMessage](ctx, c.upstream, c.endpoint(messagesPath))
}
