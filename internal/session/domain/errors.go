package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCredential      = errors.New("invalid or expired token")
	ErrExpiredCredential        = fmt.Errorf("%w", ErrMalformedCredential)
	ErrNoCredential             = errors.New("no token")
	ErrNoActiveSession          = errors.New("session expired")
	ErrInactiveSession          = errors.New("inactive")
	ErrRateLimited              = errors.New("rate limited")
	ErrInvalidIdentityAssertion = errors.New("identity token verification failed")
)

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrRequiresInvitation      = errors.New("user account not found, please complete your invitation first")
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationUsed          = errors.New("invitation already used")
	ErrInvitationExpired       = errors.New("invitation expired")
	ErrInvitationEmailMismatch = errors.New("invitation email does not match")
	ErrUserAlreadyExists       = errors.New("user already exists")
)
