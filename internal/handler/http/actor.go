package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/auth"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
)

// actorFromRequest builds the acting identity from the verified token claims.
// Handlers pass the actor explicitly to services; authorization decisions
// happen there, never here.
func actorFromRequest(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	roleClaim, ok := claims["role"].(string)
	if !ok || !user.Role(roleClaim).Valid() {
		return user.Actor{}, auth.ErrInvalidToken
	}

	return user.Actor{ID: userID, Role: user.Role(roleClaim)}, nil
}
