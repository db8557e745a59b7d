package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kexin8/multichat/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations. Safe to invoke on an already-initialized
// store.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS messages (
			message_id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			sender_role TEXT NOT NULL,
			modality TEXT NOT NULL,
			text_content TEXT,
			blob_content BLOB
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, message_id)`,
		`CREATE TABLE IF NOT EXISTS chat_sessions (
			session_id TEXT PRIMARY KEY,
			label TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendMessage inserts a message and, in the same transaction, registers the
// session label if the session is new. INSERT OR IGNORE makes the labeling
// idempotent: the first committed append wins and later appends never
// overwrite it, including concurrent first appends to the same session key.
func (s *SQLiteStore) AppendMessage(ctx context.Context, message *domain.Message) (int64, error) {
	var text sql.NullString
	var blob []byte
	if message.Modality == domain.ModalityText {
		text = sql.NullString{String: message.Text, Valid: true}
	} else {
		blob = message.Blob
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO messages (session_id, sender_role, modality, text_content, blob_content) VALUES (?, ?, ?, ?, ?)`,
		message.SessionID, message.Role, message.Modality, text, blob)
	if err != nil {
		return 0, fmt.Errorf("failed to insert message: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO chat_sessions (session_id, label) VALUES (?, ?)`,
		message.SessionID, message.Label()); err != nil {
		return 0, fmt.Errorf("failed to register session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read message id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit append: %w", err)
	}

	message.MessageID = id
	return id, nil
}

// GetMessages retrieves all messages for a session in ascending message_id
// order, all modalities included. Unknown sessions yield an empty slice.
func (s *SQLiteStore) GetMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, session_id, sender_role, modality, text_content, blob_content
		 FROM messages WHERE session_id = ? ORDER BY message_id ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// GetRecentTextMessages retrieves the most recent k text messages of a
// session, returned in ascending message_id order. k <= 0 yields an empty
// slice; image and audio rows are never included.
func (s *SQLiteStore) GetRecentTextMessages(ctx context.Context, sessionID string, k int) ([]domain.Message, error) {
	if k <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, session_id, sender_role, modality, text_content, blob_content
		 FROM messages
		 WHERE session_id = ? AND modality = ?
		 ORDER BY message_id DESC
		 LIMIT ?`,
		sessionID, domain.ModalityText, k)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query returns newest-first; callers expect chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ListSessions lists registry entries ordered by ascending session_id.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]domain.SessionInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, label FROM chat_sessions ORDER BY session_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.SessionInfo
	for rows.Next() {
		var info domain.SessionInfo
		if err := rows.Scan(&info.SessionID, &info.Label); err != nil {
			return nil, err
		}
		sessions = append(sessions, info)
	}
	return sessions, rows.Err()
}

// DeleteSession removes the registry row and all messages of a session in a
// single transaction. Deleting an unknown id is a silent no-op.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM chat_sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

func scanMessage(rows *sql.Rows) (domain.Message, error) {
	var msg domain.Message
	var text sql.NullString
	var blob []byte
	if err := rows.Scan(&msg.MessageID, &msg.SessionID, &msg.Role, &msg.Modality, &text, &blob); err != nil {
		return domain.Message{}, err
	}
	if text.Valid {
		msg.Text = text.String
	}
	if blob != nil {
		msg.Blob = blob
	}
	return msg, nil
}
