package infopoint

import (
	"context"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

// Source serves both board inputs from one InfoPoint deployment.
type Source struct {
	client *Client
}

var (
	_ board.RouteSource = (*Source)(nil)
	_ board.AlertSource = (*Source)(nil)
)

func NewSource(client *Client) *Source { return &Source{client: client} }

func (s *Source) Routes(ctx context.Context) ([]board.Route, error) {
	routes, err := s.client.GetAllRoutes(ctx)
	if err != nil {
		return nil, err
	}
	return AdaptRoutes(routes), nil
}

func (s *Source) Alerts(ctx context.Context) ([]board.Alert, error) {
	msgs, err := s.client.GetCurrentMessages(ctx)
	if err != nil {
		return nil, err
	}
	return AdaptMessages(msgs), nil
}
