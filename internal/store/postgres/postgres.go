package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and
// verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Instructions() store.Instructions { return &instructions{db: s.db} }
func (s *pgStore) HelpRequests() store.HelpRequests { return &helpRequests{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureSchema creates the two resource tables when absent. Both tables are
// keyed by the business identifier, not a storage-native key, so records
// stay portable across store drivers.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS emergency_instructions (
            id                 TEXT PRIMARY KEY,
            type               TEXT NOT NULL,
            title              TEXT NOT NULL,
            description        TEXT NOT NULL,
            steps              JSONB NOT NULL,
            voice_instructions JSONB NOT NULL,
            severity           TEXT NOT NULL,
            duration_estimate  TEXT NOT NULL,
            when_to_call_911   TEXT NOT NULL,
            created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_emergency_instructions_type ON emergency_instructions (type)`,
		`CREATE TABLE IF NOT EXISTS help_requests (
            id                   TEXT PRIMARY KEY,
            emergency_type       TEXT NOT NULL,
            location_description TEXT NOT NULL,
            latitude             DOUBLE PRECISION,
            longitude            DOUBLE PRECISION,
            contact_phone        TEXT,
            additional_info      TEXT,
            status               TEXT NOT NULL,
            created_at           TIMESTAMPTZ NOT NULL,
            updated_at           TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_help_requests_status ON help_requests (status)`,
	}
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// --- Instructions ---

type instructions struct{ db *sql.DB }

func (i *instructions) Insert(ctx context.Context, ins *model.EmergencyInstruction) error {
	steps, err := json.Marshal(ins.Steps)
	if err != nil {
		return err
	}
	voice, err := json.Marshal(ins.VoiceInstructions)
	if err != nil {
		return err
	}
	_, err = i.db.ExecContext(ctx, `
        INSERT INTO emergency_instructions
            (id, type, title, description, steps, voice_instructions, severity, duration_estimate, when_to_call_911, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, ins.ID, ins.Type, ins.Title, ins.Description, steps, voice, ins.Severity, ins.DurationEstimate, ins.WhenToCall911, ins.CreatedAt)
	return err
}

func (i *instructions) List(ctx context.Context) ([]*model.EmergencyInstruction, error) {
	return i.query(ctx, `
        SELECT id, type, title, description, steps, voice_instructions, severity, duration_estimate, when_to_call_911, created_at
        FROM emergency_instructions
    `)
}

func (i *instructions) ListByType(ctx context.Context, t model.EmergencyType) ([]*model.EmergencyInstruction, error) {
	return i.query(ctx, `
        SELECT id, type, title, description, steps, voice_instructions, severity, duration_estimate, when_to_call_911, created_at
        FROM emergency_instructions WHERE type=$1
    `, t)
}

func (i *instructions) Count(ctx context.Context) (int64, error) {
	var n int64
	row := i.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM emergency_instructions`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (i *instructions) query(ctx context.Context, q string, args ...any) ([]*model.EmergencyInstruction, error) {
	rows, err := i.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var res []*model.EmergencyInstruction
	for rows.Next() {
		var ins model.EmergencyInstruction
		var steps, voice []byte
		if err := rows.Scan(&ins.ID, &ins.Type, &ins.Title, &ins.Description, &steps, &voice,
			&ins.Severity, &ins.DurationEstimate, &ins.WhenToCall911, &ins.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(steps, &ins.Steps); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(voice, &ins.VoiceInstructions); err != nil {
			return nil, err
		}
		res = append(res, &ins)
	}
	return res, rows.Err()
}

// --- HelpRequests ---

type helpRequests struct{ db *sql.DB }

const helpRequestCols = `id, emergency_type, location_description, latitude, longitude, contact_phone, additional_info, status, created_at, updated_at`

func (h *helpRequests) Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	_, err := h.db.ExecContext(ctx, `
        INSERT INTO help_requests (`+helpRequestCols+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, hr.ID, hr.EmergencyType, hr.LocationDescription, hr.Latitude, hr.Longitude,
		hr.ContactPhone, hr.AdditionalInfo, hr.Status, hr.CreatedAt, hr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	out := *hr
	return &out, nil
}

func (h *helpRequests) Get(ctx context.Context, id string) (*model.HelpRequest, error) {
	row := h.db.QueryRowContext(ctx, `
        SELECT `+helpRequestCols+` FROM help_requests WHERE id=$1
    `, id)
	return scanHelpRequest(row)
}

func (h *helpRequests) ListByStatus(ctx context.Context, s model.HelpRequestStatus) ([]*model.HelpRequest, error) {
	rows, err := h.db.QueryContext(ctx, `
        SELECT `+helpRequestCols+` FROM help_requests WHERE status=$1 ORDER BY created_at DESC
    `, s)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var res []*model.HelpRequest
	for rows.Next() {
		hr, err := scanHelpRequest(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, hr)
	}
	return res, rows.Err()
}

// UpdateStatus mutates status and updated_at in one statement so two
// concurrent updates cannot clobber each other's timestamps.
func (h *helpRequests) UpdateStatus(ctx context.Context, id string, s model.HelpRequestStatus, updatedAt time.Time) (*model.HelpRequest, error) {
	row := h.db.QueryRowContext(ctx, `
        UPDATE help_requests SET status=$2, updated_at=$3
        WHERE id=$1
        RETURNING `+helpRequestCols+`
    `, id, s, updatedAt)
	return scanHelpRequest(row)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanHelpRequest(row rowScanner) (*model.HelpRequest, error) {
	var hr model.HelpRequest
	err := row.Scan(&hr.ID, &hr.EmergencyType, &hr.LocationDescription, &hr.Latitude, &hr.Longitude,
		&hr.ContactPhone, &hr.AdditionalInfo, &hr.Status, &hr.CreatedAt, &hr.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hr, nil
}
