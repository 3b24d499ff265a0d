// Package genres wraps the genre resource endpoints.
package genres

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/spotilike/go-client/api"
)

type Genre struct {
	ID          int64  `json:"id,omitempty"`          // Unique identifier for the genre
	Name        string `json:"name,omitempty"`        // Genre name
	Description string `json:"description,omitempty"` // Optional description
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[genres.NewService] api client is required")
	}
	return &Service{client: client}, nil
}

type listResponse struct {
	Data    []Genre `json:"data"`
	Message string  `json:"message"`
}

type detailResponse struct {
	Data    *Genre `json:"data"`
	Message string `json:"message"`
}

// GetAll returns every genre.
func (s *Service) GetAll(ctx context.Context) ([]Genre, error) {
	var resp listResponse
	if err := s.client.Get(ctx, "/genres", &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.GetAll] list genres")
	}
	return resp.Data, nil
}

// Update modifies the genre identified by id.
func (s *Service) Update(ctx context.Context, id int64, genre Genre) (*Genre, error) {
	var resp detailResponse
	if err := s.client.Put(ctx, fmt.Sprintf("/genres/%d", id), genre, &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Update] update genre")
	}
	return resp.Data, nil
}
