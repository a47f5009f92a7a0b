package usecase

import (
	"context"

	"go-diettrack-backend/internal/domain"
	"go-diettrack-backend/pkg/apperror"
)

// ErrSignupFailed marks a sign-up the auth service accepted without
// issuing a user; the handler maps it to HTTP 400.
var ErrSignupFailed = apperror.BadRequest("Signup failed")

type authUsecase struct {
	identity domain.IdentityProvider
	profiles domain.ProfileRepository
}

func NewAuthUsecase(identity domain.IdentityProvider, profiles domain.ProfileRepository) domain.AuthUsecase {
	return &authUsecase{identity: identity, profiles: profiles}
}

func (u *authUsecase) Register(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.identity.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSignupFailed
	}

	// A stub profile row keyed by the new id; onboarding fills it in later.
	if err := u.profiles.CreateStub(ctx, user.ID); err != nil {
		return nil, err
	}

	return &domain.AuthResult{UserID: user.ID}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	session, err := u.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		// Transport or service failure, distinct from a rejected login.
		return nil, err
	}
	if session == nil || session.User == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	return &domain.AuthResult{
		UserID:      session.User.ID,
		AccessToken: session.AccessToken,
	}, nil
}

func (u *authUsecase) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}
