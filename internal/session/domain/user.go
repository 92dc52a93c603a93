//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names UserDirectory=UserDirectory
package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
)

type (
	User struct {
		ID         uuid.UUID
		Email      string
		Name       string
		Role       string
		ExternalID string
		Active     bool
		CreatedAt  time.Time
	}

	Invitation struct {
		ID         uuid.UUID
		Token      string
		Email      string
		Role       string
		Status     InvitationStatus
		ExpiresAt  time.Time
		AcceptedAt *time.Time
	}

	InvitationStatus string

	// UserDirectory is the durable storage of users and invitations.
	UserDirectory interface {
		FindUser(ctx context.Context, email string) (*User, error)
		StoreUser(ctx context.Context, user *User) error
		CountUsers(ctx context.Context) (int, error)
		// FindInvitation locks the invitation until the surrounding transaction ends.
		FindInvitation(ctx context.Context, token string) (*Invitation, error)
		StoreInvitation(ctx context.Context, invitation *Invitation) error
	}
)

// SyncIdentity applies identity provider data to the user, reports whether anything changed.
func (u *User) SyncIdentity(externalID, name string, emailVerified bool) bool {
	changed := false
	if externalID != "" && u.ExternalID != externalID {
		u.ExternalID = externalID
		changed = true
	}
	if name != "" && u.Name != name {
		u.Name = name
		changed = true
	}
	if !emailVerified && u.Active {
		u.Active = false
		changed = true
	}

	return changed
}

func (i *Invitation) Accept(email string, now time.Time) error {
	if i.Status == InvitationStatusAccepted || i.AcceptedAt != nil {
		return ErrInvitationUsed
	}
	if now.After(i.ExpiresAt) {
		return ErrInvitationExpired
	}
	if !strings.EqualFold(strings.TrimSpace(i.Email), strings.TrimSpace(email)) {
		return ErrInvitationEmailMismatch
	}

	i.Status = InvitationStatusAccepted
	i.AcceptedAt = &now
	return nil
}
