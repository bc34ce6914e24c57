package cms

import (
	"context"
	"net/http"

	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// CurrentUser resolves a session token to the authenticated user. The
// auth service owns sessions; an invalid or expired token is surfaced
// as ErrUnauthenticated.
func (c *Client) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, &apperrors.ErrUnauthenticated{}
	}

	var envelope struct {
		User domain.User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/users/me", nil, nil, &envelope, token)
	if err != nil {
		if isStatus(err, http.StatusUnauthorized) || isStatus(err, http.StatusForbidden) {
			return domain.User{}, &apperrors.ErrUnauthenticated{}
		}
		return domain.User{}, upstream("current user", err)
	}

	if envelope.User.ID == "" {
		return domain.User{}, &apperrors.ErrUnauthenticated{}
	}

	return envelope.User, nil
}
