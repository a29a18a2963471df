// Package audit implements the optional turn-replay trail: a durable
// gorm/Postgres log of every turn the engine evaluates. It is not an
// analytics layer — just a flat append-only history useful for replaying
// what a session actually saw.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shridarpatil/dialogengine/internal/engine"
)

// TurnLog is one row of the audit trail: a durable twin of
// engine.TurnRecord, carrying its own primary key and timestamp.
type TurnLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	MSISDN        string    `gorm:"size:32;index;not null" json:"msisdn"`
	SessionID     string    `gorm:"size:64;index;not null" json:"session_id"`
	Channel       string    `gorm:"size:20;not null" json:"channel"`
	USSDString    string    `gorm:"type:text" json:"ussd_string"`
	ProcessedPath string    `gorm:"type:text" json:"processed_path"`
	Response      string    `gorm:"type:text" json:"response"`
	Valid         bool      `json:"valid"`
}

func (TurnLog) TableName() string { return "dialogengine_turn_logs" }

// Recorder persists engine.TurnRecord rows to Postgres via gorm.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder wraps an existing *gorm.DB. Migrate should be called once at
// boot to create the backing table.
func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Migrate creates/updates the dialogengine_turn_logs table.
func (r *Recorder) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&TurnLog{})
}

// RecordTurn implements engine.TurnRecorder.
func (r *Recorder) RecordTurn(ctx context.Context, rec engine.TurnRecord) error {
	row := &TurnLog{
		MSISDN:        rec.MSISDN,
		SessionID:     rec.SessionID,
		Channel:       string(rec.Channel),
		USSDString:    rec.USSDString,
		ProcessedPath: rec.ProcessedPath,
		Response:      rec.Response,
		Valid:         rec.Valid,
	}
	return r.db.WithContext(ctx).Create(row).Error
}

// RecentForSession returns the most recent turns for a session, newest
// first, capped at limit — the replay/debugging use case this package
// exists for.
func (r *Recorder) RecentForSession(ctx context.Context, msisdn, sessionID string, limit int) ([]TurnLog, error) {
	var rows []TurnLog
	err := r.db.WithContext(ctx).
		Where("msisdn = ? AND session_id = ?", msisdn, sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
