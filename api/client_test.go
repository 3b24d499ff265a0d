package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spotilike/go-client/api"
	"github.com/spotilike/go-client/internal/config"
	interrors "github.com/spotilike/go-client/internal/errors"
	"github.com/spotilike/go-client/storage"
	"github.com/spotilike/go-client/storage/repofake"
)

type testConfig struct {
	config.EnvVars
	config.HTTP
	baseURL string
}

func (c testConfig) GetAPIBaseURL() string { return c.baseURL }

type testFixture struct {
	backend *httptest.Server
	storage *repofake.FakeStorageRepo
	client  *api.Client
	headers *http.Header
	status  int
	body    string
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		storage: repofake.NewFakeStorageRepo(),
		headers: &http.Header{},
		status:  http.StatusOK,
		body:    `{}`,
	}
	f.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*f.headers = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.backend.Close)

	client, err := api.New(testConfig{baseURL: f.backend.URL}, f.storage)
	require.NoError(t, err)
	f.client = client

	return f
}

func TestBearerHeaderInjectedWhenTokenStored(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.storage.Set(storage.TokenKey, "T"))

	require.NoError(t, f.client.Get(context.Background(), "/albums", nil))
	require.Equal(t, "Bearer T", f.headers.Get("Authorization"))
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.client.Get(context.Background(), "/albums", nil))
	require.Empty(t, f.headers.Get("Authorization"), "requests without a stored token go out unauthenticated")
}

func TestStandardHeadersSet(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.client.Post(context.Background(), "/albums", map[string]string{"title": "x"}, nil))

	require.Equal(t, "application/json", f.headers.Get("Content-Type"))
	require.Equal(t, "application/json", f.headers.Get("Accept"))

	_, err := uuid.Parse(f.headers.Get("X-Request-ID"))
	require.NoError(t, err)
}

func TestSuccessfulResponseDecoded(t *testing.T) {
	f := setupTestFixture(t)
	f.body = `{"data":[{"id":1}],"message":"ok"}`

	var out struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
		Message string `json:"message"`
	}
	require.NoError(t, f.client.Get(context.Background(), "/albums", &out))
	require.Len(t, out.Data, 1)
	require.Equal(t, int64(1), out.Data[0].ID)
	require.Equal(t, "ok", out.Message)
}

func TestRejectionCarriesStatusAndBackendMessage(t *testing.T) {
	f := setupTestFixture(t)
	f.status = http.StatusNotFound
	f.body = `{"message":"Album introuvable"}`

	err := f.client.Get(context.Background(), "/albums/99", nil)
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, interrors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "Album introuvable", apiErr.Message)
	require.False(t, apiErr.NoResponse())
}

func TestNoResponseReportedAsStatusZero(t *testing.T) {
	f := setupTestFixture(t)
	f.backend.Close()

	err := f.client.Get(context.Background(), "/albums", nil)
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, interrors.As(err, &apiErr))
	require.True(t, apiErr.NoResponse())
}

func TestNewValidatesDependencies(t *testing.T) {
	_, err := api.New(nil, repofake.NewFakeStorageRepo())
	require.Error(t, err)

	_, err = api.New(testConfig{baseURL: "http://localhost:0"}, nil)
	require.Error(t, err)
}
