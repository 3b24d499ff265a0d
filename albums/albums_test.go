package albums_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spotilike/go-client/albums"
	"github.com/spotilike/go-client/api"
	"github.com/spotilike/go-client/internal/config"
	"github.com/spotilike/go-client/songs"
	"github.com/spotilike/go-client/storage/repofake"
)

type testConfig struct {
	config.EnvVars
	config.HTTP
	baseURL string
}

func (c testConfig) GetAPIBaseURL() string { return c.baseURL }

type backendCall struct {
	method string
	path   string
	body   []byte
}

func setupService(t *testing.T, status int, body string) (*albums.Service, *backendCall) {
	t.Helper()

	call := &backendCall{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call.method = r.Method
		call.path = r.URL.Path
		call.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(backend.Close)

	client, err := api.New(testConfig{baseURL: backend.URL}, repofake.NewFakeStorageRepo())
	require.NoError(t, err)

	service, err := albums.NewService(client)
	require.NoError(t, err)
	return service, call
}

func TestGetAll(t *testing.T) {
	service, call := setupService(t, http.StatusOK,
		`{"data":[{"id":1,"title":"Discovery"},{"id":2,"title":"Homework"}]}`)

	list, err := service.GetAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, call.method)
	require.Equal(t, "/albums", call.path)
	require.Len(t, list, 2)
	require.Equal(t, "Discovery", list[0].Title)
}

func TestGet(t *testing.T) {
	service, call := setupService(t, http.StatusOK,
		`{"data":{"id":1,"title":"Discovery","artist_id":3}}`)

	album, err := service.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/albums/1", call.path)
	require.Equal(t, int64(3), album.ArtistID)
}

func TestSongs(t *testing.T) {
	service, call := setupService(t, http.StatusOK,
		`{"data":[{"id":10,"title":"One More Time","duration":320}]}`)

	list, err := service.Songs(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "/albums/1/songs", call.path)
	require.Len(t, list, 1)
	require.Equal(t, 320, list[0].Duration)
}

func TestAddSong(t *testing.T) {
	service, call := setupService(t, http.StatusCreated,
		`{"data":{"id":11,"title":"Aerodynamic","album_id":1}}`)

	song, err := service.AddSong(context.Background(), 1, songs.Song{Title: "Aerodynamic"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, call.method)
	require.Equal(t, "/albums/1/songs", call.path)
	require.Contains(t, string(call.body), `"title":"Aerodynamic"`)
	require.Equal(t, int64(11), song.ID)
}

func TestDelete(t *testing.T) {
	service, call := setupService(t, http.StatusNoContent, ``)

	require.NoError(t, service.Delete(context.Background(), 4))
	require.Equal(t, http.MethodDelete, call.method)
	require.Equal(t, "/albums/4", call.path)
}

func TestBackendErrorSurfaced(t *testing.T) {
	service, _ := setupService(t, http.StatusNotFound, `{"message":"Album introuvable"}`)

	_, err := service.Get(context.Background(), 99)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}
