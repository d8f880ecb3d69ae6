package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
)

// tokenClaims pulls the identity claims out of a verified request.
func tokenClaims(r *http.Request) (userID, role, clientID string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", "", auth.ErrInvalidToken
	}
	role, ok = claims["role"].(string)
	if !ok || role == "" {
		return "", "", "", auth.ErrInvalidToken
	}
	clientID, _ = claims["client_id"].(string)
	return userID, role, clientID, nil
}

// resolveClientID returns the client company a request operates on:
// client accounts act on themselves, employee accounts carry their
// company in the token, and accountants name the client explicitly.
func resolveClientID(r *http.Request) (string, error) {
	userID, role, clientID, err := tokenClaims(r)
	if err != nil {
		return "", err
	}

	switch role {
	case auth.RoleClient:
		return userID, nil
	case auth.RoleEmployee:
		if clientID == "" {
			return "", auth.ErrInvalidToken
		}
		return clientID, nil
	default:
		if id := r.URL.Query().Get("client_id"); id != "" {
			return id, nil
		}
		return "", auth.ErrInvalidToken
	}
}
