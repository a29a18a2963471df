package engine

import (
	"context"

	"github.com/shridarpatil/dialogengine/internal/models"
)

// TurnRecord is one turn's audit trail entry.
type TurnRecord struct {
	MSISDN        string
	SessionID     string
	Channel       models.Channel
	USSDString    string
	ProcessedPath string
	Response      string
	Valid         bool
}

// TurnRecorder durably logs turns for replay/debugging. It is optional —
// a Controller with a nil Recorder simply skips this step. The concrete
// Postgres-backed implementation lives in internal/audit, kept out of this
// package so the core pipeline carries no hard dependency on gorm.
type TurnRecorder interface {
	RecordTurn(ctx context.Context, rec TurnRecord) error
}
