// Package artists wraps the artist resource endpoints.
package artists

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/spotilike/go-client/api"
	"github.com/spotilike/go-client/songs"
)

type Artist struct {
	ID    int64  `json:"id,omitempty"`    // Unique identifier for the artist
	Name  string `json:"name,omitempty"`  // Artist or band name
	Bio   string `json:"bio,omitempty"`   // Short biography
	Photo string `json:"photo,omitempty"` // Photo URL
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[artists.NewService] api client is required")
	}
	return &Service{client: client}, nil
}

type listResponse struct {
	Data    []Artist `json:"data"`
	Message string   `json:"message"`
}

type detailResponse struct {
	Data    *Artist `json:"data"`
	Message string  `json:"message"`
}

type songsResponse struct {
	Data    []songs.Song `json:"data"`
	Message string       `json:"message"`
}

// GetAll returns every artist in the catalog.
func (s *Service) GetAll(ctx context.Context) ([]Artist, error) {
	var resp listResponse
	if err := s.client.Get(ctx, "/artists", &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.GetAll] list artists")
	}
	return resp.Data, nil
}

// Songs returns every song of the artist identified by id.
func (s *Service) Songs(ctx context.Context, id int64) ([]songs.Song, error) {
	var resp songsResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/artists/%d/songs", id), &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Songs] list artist songs")
	}
	return resp.Data, nil
}

// Create adds a new artist.
func (s *Service) Create(ctx context.Context, artist Artist) (*Artist, error) {
	var resp detailResponse
	if err := s.client.Post(ctx, "/artists", artist, &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Create] create artist")
	}
	return resp.Data, nil
}

// Update modifies the artist identified by id.
func (s *Service) Update(ctx context.Context, id int64, artist Artist) (*Artist, error) {
	var resp detailResponse
	if err := s.client.Put(ctx, fmt.Sprintf("/artists/%d", id), artist, &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Update] update artist")
	}
	return resp.Data, nil
}

// Delete removes the artist identified by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/artists/%d", id), nil); err != nil {
		return errors.Wrap(err, "[Service.Delete] delete artist")
	}
	return nil
}
