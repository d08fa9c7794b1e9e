package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/repository"
	"gigledger-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// ActorResolver turns a request credential into the authenticated profile.
// It accepts a bearer token issued by the token manager or a bare
// profile_id header.
type ActorResolver struct {
	profiles repository.ProfileRepository
	tokens   security.TokenManager
}

func NewActorResolver(profiles repository.ProfileRepository, tokens security.TokenManager) *ActorResolver {
	return &ActorResolver{profiles: profiles, tokens: tokens}
}

// Middleware resolves the actor and stores it in the request context.
// Requests without a resolvable profile get 401.
func (a *ActorResolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := a.credentialProfileID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, false, "Missing or invalid credentials")
			return
		}

		actor, err := a.profiles.GetByID(r.Context(), profileID)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, false, "Profile not found")
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *ActorResolver) credentialProfileID(r *http.Request) (int64, bool) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		id, err := a.tokens.Validate(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			return 0, false
		}
		return id, true
	}
	if header := r.Header.Get("profile_id"); header != "" {
		id, err := strconv.ParseInt(header, 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// actorFrom returns the profile stored by the middleware.
func actorFrom(ctx context.Context) (*domain.Profile, bool) {
	actor, ok := ctx.Value(actorContextKey).(*domain.Profile)
	return actor, ok
}
