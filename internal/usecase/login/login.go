package login

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/catalog-api/internal/audit"
	"github.com/BruksfildServices01/catalog-api/internal/auth"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/logger"
	"github.com/BruksfildServices01/catalog-api/internal/metrics"
	"github.com/BruksfildServices01/catalog-api/internal/validators"
)

const (
	MessageInvalidCredentials = "invalid credentials"
	MessageTooManyAttempts    = "too many failed login attempts, try again later"
)

// Input accepts "username" as an alias of "email".
type Input struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in Input) Identifier() string {
	if strings.TrimSpace(in.Email) != "" {
		return validators.NormalizeEmail(in.Email)
	}
	return validators.NormalizeEmail(in.Username)
}

type Result struct {
	Email string
	Roles []string
	Token string
}

type Login struct {
	credentials auth.CredentialValidator
	tokens      *auth.TokenManager
	throttle    auth.Throttle
	audit       audit.Recorder
}

func NewLogin(
	credentials auth.CredentialValidator,
	tokens *auth.TokenManager,
	throttle auth.Throttle,
	audit audit.Recorder,
) *Login {
	return &Login{
		credentials: credentials,
		tokens:      tokens,
		throttle:    throttle,
		audit:       audit,
	}
}

func (uc *Login) Execute(ctx context.Context, in Input) (*Result, error) {
	email := in.Identifier()
	if email == "" || in.Password == "" {
		metrics.ObserveLogin(metrics.LoginFailed)
		return nil, httperr.ErrUnauthenticated(MessageInvalidCredentials)
	}

	allowed, err := uc.throttle.Allowed(ctx, email)
	if err != nil {
		// Fail open while the throttle is unreachable.
		log := logger.Get()
		log.Warn().Err(err).Msg("login throttle unavailable")
		allowed = true
	}
	if !allowed {
		metrics.ObserveLogin(metrics.LoginThrottled)
		return nil, httperr.ErrTooManyRequests(MessageTooManyAttempts)
	}

	client, err := uc.credentials.Authenticate(ctx, email, in.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, err
		}

		if ferr := uc.throttle.Fail(ctx, email); ferr != nil {
			log := logger.Get()
			log.Warn().Err(ferr).Msg("login throttle unavailable")
		}
		metrics.ObserveLogin(metrics.LoginFailed)
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionLoginFailed,
			Entity:   audit.EntityClient,
			Metadata: map[string]string{"email": email},
		})
		return nil, httperr.ErrUnauthenticated(MessageInvalidCredentials)
	}

	token, err := uc.tokens.Issue(client)
	if err != nil {
		return nil, err
	}

	if rerr := uc.throttle.Reset(ctx, email); rerr != nil {
		log := logger.Get()
		log.Warn().Err(rerr).Msg("login throttle unavailable")
	}
	metrics.ObserveLogin(metrics.LoginSucceeded)
	uc.audit.Dispatch(audit.Event{
		ClientID: &client.ID,
		Action:   audit.ActionLoginSucceeded,
		Entity:   audit.EntityClient,
		EntityID: &client.ID,
	})

	return &Result{
		Email: client.Email,
		Roles: client.RoleList(),
		Token: token,
	}, nil
}
