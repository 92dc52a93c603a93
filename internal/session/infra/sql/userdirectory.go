package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgsql "github.com/klwxsrx/go-session-gate/pkg/sql"
)

const (
	userTable       = `"user"`
	invitationTable = "invitation"
)

type userDirectory struct {
	db pkgsql.Client
}

func NewUserDirectory(db pkgsql.Client) domain.UserDirectory {
	return userDirectory{db: db}
}

func (d userDirectory) FindUser(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := sq.
		Select("id", "email", "name", "role", "external_id", "active", "created_at").
		From(userTable).
		Where(sq.Eq{"lower(email)": normalizeEmail(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = d.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain(), nil
}

func (d userDirectory) StoreUser(ctx context.Context, user *domain.User) error {
	query, args, err := sq.
		Insert(userTable).
		Columns("id", "email", "name", "role", "external_id", "active", "created_at").
		Values(user.ID, user.Email, user.Name, user.Role, user.ExternalID, user.Active, user.CreatedAt).
		Suffix(`on conflict (id) do update set
			name = excluded.name,
			role = excluded.role,
			external_id = excluded.external_id,
			active = excluded.active,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = d.db.ExecContext(ctx, query, args...)
	return err
}

func (d userDirectory) CountUsers(ctx context.Context) (int, error) {
	query, args, err := sq.
		Select("count(*)").
		From(userTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	err = d.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (d userDirectory) FindInvitation(ctx context.Context, token string) (*domain.Invitation, error) {
	query, args, err := sq.
		Select("id", "token", "email", "role", "status", "expires_at", "accepted_at").
		From(invitationTable).
		Where(sq.Eq{"token": token}).
		Limit(1).
		Suffix("for update").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxInvitation
	err = d.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvitationNotFound
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain(), nil
}

func (d userDirectory) StoreInvitation(ctx context.Context, invitation *domain.Invitation) error {
	query, args, err := sq.
		Insert(invitationTable).
		Columns("id", "token", "email", "role", "status", "expires_at", "accepted_at").
		Values(
			invitation.ID,
			invitation.Token,
			invitation.Email,
			invitation.Role,
			string(invitation.Status),
			invitation.ExpiresAt,
			invitation.AcceptedAt,
		).
		Suffix(`on conflict (id) do update set
			status = excluded.status,
			accepted_at = excluded.accepted_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = d.db.ExecContext(ctx, query, args...)
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type sqlxUser struct {
	ID         uuid.UUID `db:"id"`
	Email      string    `db:"email"`
	Name       string    `db:"name"`
	Role       string    `db:"role"`
	ExternalID string    `db:"external_id"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

func (u sqlxUser) toDomain() *domain.User {
	return &domain.User{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		ExternalID: u.ExternalID,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
	}
}

type sqlxInvitation struct {
	ID         uuid.UUID  `db:"id"`
	Token      string     `db:"token"`
	Email      string     `db:"email"`
	Role       string     `db:"role"`
	Status     string     `db:"status"`
	ExpiresAt  time.Time  `db:"expires_at"`
	AcceptedAt *time.Time `db:"accepted_at"`
}

func (i sqlxInvitation) toDomain() *domain.Invitation {
	return &domain.Invitation{
		ID:         i.ID,
		Token:      i.Token,
		Email:      i.Email,
		Role:       i.Role,
		Status:     domain.InvitationStatus(i.Status),
		ExpiresAt:  i.ExpiresAt,
		AcceptedAt: i.AcceptedAt,
	}
}
