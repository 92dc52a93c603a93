//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names Publisher=Publisher
package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/go-session-gate/pkg/message"
)

const (
	EndReasonLogout   EndReason = "logout"
	EndReasonInactive EndReason = "inactive"
)

type (
	// Publisher delivers session lifecycle events in background, it never fails the caller.
	Publisher interface {
		Publish(ctx context.Context, evt message.Event)
	}

	EndReason string

	SessionStarted struct {
		EventID   uuid.UUID `json:"id"`
		Subject   string    `json:"subject"`
		Role      string    `json:"role"`
		StartedAt time.Time `json:"started_at"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	SessionRefreshed struct {
		EventID     uuid.UUID `json:"id"`
		Subject     string    `json:"subject"`
		RefreshedAt time.Time `json:"refreshed_at"`
		ExpiresAt   time.Time `json:"expires_at"`
	}

	SessionEnded struct {
		EventID uuid.UUID `json:"id"`
		Subject string    `json:"subject"`
		Reason  EndReason `json:"reason"`
		EndedAt time.Time `json:"ended_at"`
	}
)

func (e SessionStarted) ID() uuid.UUID         { return e.EventID }
func (e SessionStarted) Type() string          { return "SessionStarted" }
func (e SessionStarted) Key() string           { return e.Subject }
func (e SessionStarted) OccurredAt() time.Time { return e.StartedAt }

func (e SessionRefreshed) ID() uuid.UUID         { return e.EventID }
func (e SessionRefreshed) Type() string          { return "SessionRefreshed" }
func (e SessionRefreshed) Key() string           { return e.Subject }
func (e SessionRefreshed) OccurredAt() time.Time { return e.RefreshedAt }

func (e SessionEnded) ID() uuid.UUID         { return e.EventID }
func (e SessionEnded) Type() string          { return "SessionEnded" }
func (e SessionEnded) Key() string           { return e.Subject }
func (e SessionEnded) OccurredAt() time.Time { return e.EndedAt }
