package users

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/spotilike/go-client/api"
	interrors "github.com/spotilike/go-client/internal/errors"
)

// Service wraps the user resource endpoints that sit outside the
// authentication flow (signup, login and profile updates are handled by the
// auth service).
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[users.NewService] api client is required")
	}
	return &Service{client: client}, nil
}

// Delete removes the user identified by id. Requires a bearer token.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/users/%d", id), nil); err != nil {
		var apiErr *api.Error
		if interrors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return interrors.Wrapf(interrors.ErrNotFound, "user %d", id)
		}
		return errors.Wrap(err, "[Service.Delete] delete user")
	}
	return nil
}
