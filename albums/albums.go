// Package albums wraps the album resource endpoints. Like the other catalog
// services it is a thin layer over the api client: URL templating and
// envelope decoding, nothing more.
package albums

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/spotilike/go-client/api"
	"github.com/spotilike/go-client/songs"
)

type Album struct {
	ID          int64  `json:"id,omitempty"`           // Unique identifier for the album
	Title       string `json:"title,omitempty"`        // Album title
	ArtistID    int64  `json:"artist_id,omitempty"`    // Artist the album belongs to
	Cover       string `json:"cover,omitempty"`        // Cover image URL
	ReleaseDate string `json:"release_date,omitempty"` // Release date as reported by the backend
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[albums.NewService] api client is required")
	}
	return &Service{client: client}, nil
}

type listResponse struct {
	Data    []Album `json:"data"`
	Message string  `json:"message"`
}

type detailResponse struct {
	Data    *Album `json:"data"`
	Message string `json:"message"`
}

type songsResponse struct {
	Data    []songs.Song `json:"data"`
	Message string       `json:"message"`
}

type songResponse struct {
	Data    *songs.Song `json:"data"`
	Message string      `json:"message"`
}

// GetAll returns every album in the catalog.
func (s *Service) GetAll(ctx context.Context) ([]Album, error) {
	var resp listResponse
	if err := s.client.Get(ctx, "/albums", &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.GetAll] list albums")
	}
	return resp.Data, nil
}

// Get returns the album identified by id.
func (s *Service) Get(ctx context.Context, id int64) (*Album, error) {
	var resp detailResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/albums/%d", id), &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Get] get album")
	}
	return resp.Data, nil
}

// Songs returns the songs of the album identified by id.
func (s *Service) Songs(ctx context.Context, id int64) ([]songs.Song, error) {
	var resp songsResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/albums/%d/songs", id), &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Songs] list album songs")
	}
	return resp.Data, nil
}

// Create adds a new album.
func (s *Service) Create(ctx context.Context, album Album) (*Album, error) {
	var resp detailResponse
	if err := s.client.Post(ctx, "/albums", album, &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Create] create album")
	}
	return resp.Data, nil
}

// AddSong adds a song to the album identified by id.
func (s *Service) AddSong(ctx context.Context, id int64, song songs.Song) (*songs.Song, error) {
	var resp songResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/albums/%d/songs", id), song, &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.AddSong] add song to album")
	}
	return resp.Data, nil
}

// Update modifies the album identified by id.
func (s *Service) Update(ctx context.Context, id int64, album Album) (*Album, error) {
	var resp detailResponse
	if err := s.client.Put(ctx, fmt.Sprintf("/albums/%d", id), album, &resp); err != nil {
		return nil, errors.Wrap(err, "[Service.Update] update album")
	}
	return resp.Data, nil
}

// Delete removes the album identified by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/albums/%d", id), nil); err != nil {
		return errors.Wrap(err, "[Service.Delete] delete album")
	}
	return nil
}
