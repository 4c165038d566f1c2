package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andrecahu/desafio-pitang-api/internal/model"
	"github.com/andrecahu/desafio-pitang-api/pkg/apierror"
)

type tokenVerifier interface {
	ExtractBearer(header string) (string, bool)
	Verify(token string) (string, error)
}

type identityResolver interface {
	FindByLogin(ctx context.Context, login string) (model.User, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

// Decision is the authenticator's per-request outcome.
type Decision int

const (
	// DecisionRejected short-circuits the request: the handler is never
	// invoked and the filter writes the 401 envelope itself.
	DecisionRejected Decision = iota
	// DecisionAnonymous lets the request continue without an identity.
	// Handlers that require one must treat its absence as a hard failure.
	DecisionAnonymous
	// DecisionAuthenticated attaches the resolved identity to the request
	// context.
	DecisionAuthenticated
)

// AuthResult is the explicit three-way outcome of authenticating a request,
// interpreted by the Handler middleware. Keeping the decision separate from
// response writing keeps Authenticate free of HTTP concerns.
type AuthResult struct {
	Decision Decision
	Identity model.User
	Message  string
}

// PublicRoute names a route reachable without a token.
type PublicRoute struct {
	Method string
	Path   string
}

// Authenticator runs once per inbound request, before the route handler.
type Authenticator struct {
	tokens tokenVerifier
	users  identityResolver
	public map[PublicRoute]struct{}
}

func NewAuthenticator(tokens tokenVerifier, users identityResolver, public []PublicRoute) *Authenticator {
	allowed := make(map[PublicRoute]struct{}, len(public))
	for _, route := range public {
		allowed[route] = struct{}{}
	}

	return &Authenticator{tokens: tokens, users: users, public: allowed}
}

// Authenticate extracts the bearer token and decides the request's fate.
// An absent token is only acceptable on allow-listed routes. A present but
// invalid token degrades to anonymous rather than rejecting outright; routes
// that need an identity fail later when none is attached. A valid token whose
// subject no longer resolves is rejected.
func (a *Authenticator) Authenticate(r *http.Request) AuthResult {
	token, ok := a.tokens.ExtractBearer(r.Header.Get("Authorization"))
	if !ok {
		if a.isPublic(r.Method, r.URL.Path) {
			return AuthResult{Decision: DecisionAnonymous}
		}
		return AuthResult{Decision: DecisionRejected, Message: "Unauthorized"}
	}

	subject, err := a.tokens.Verify(token)
	if err != nil {
		return AuthResult{Decision: DecisionAnonymous}
	}

	user, err := a.users.FindByLogin(r.Context(), subject)
	if err != nil {
		return AuthResult{Decision: DecisionRejected, Message: "Unauthorized - invalid session"}
	}

	return AuthResult{Decision: DecisionAuthenticated, Identity: user}
}

// Handler interprets the AuthResult for the surrounding request pipeline.
func (a *Authenticator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := a.Authenticate(r)

		switch result.Decision {
		case DecisionRejected:
			writeRejection(w, result.Message)
		case DecisionAuthenticated:
			ctx := context.WithValue(r.Context(), identityContextKey, result.Identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (a *Authenticator) isPublic(method string, path string) bool {
	_, ok := a.public[PublicRoute{Method: method, Path: path}]
	return ok
}

// IdentityFromContext returns the authenticated user attached to the request,
// if any.
func IdentityFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(identityContextKey).(model.User)
	return user, ok
}

func writeRejection(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(apierror.New(message, http.StatusUnauthorized))
}
