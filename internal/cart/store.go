package cart

import (
	"context"
	"database/sql"
	"encoding/json"
)

// Store persists session state as JSON, one row per user. Load at session
// start, Save after every mutation.
type Store interface {
	Load(ctx context.Context, userID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

type sessionRecord struct {
	Cart      Cart            `json:"cart"`
	Favorites map[string]bool `json:"favorites"`
	BuyLater  []Line          `json:"buy_later"`
}

// Load returns a fresh empty session when the user has no saved state yet.
func (st *store) Load(ctx context.Context, userID string) (*Session, error) {
	row := st.db.QueryRowContext(ctx, `
		SELECT state
		FROM session_states
		WHERE user_id = $1`,
		userID,
	)

	var raw []byte
	err := row.Scan(&raw)
	if err == sql.ErrNoRows {
		return NewSession(userID), nil
	}
	if err != nil {
		return nil, err
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	s := &Session{
		UserID:    userID,
		Cart:      rec.Cart,
		Favorites: rec.Favorites,
		BuyLater:  rec.BuyLater,
	}
	if s.Favorites == nil {
		s.Favorites = make(map[string]bool)
	}
	return s, nil
}

func (st *store) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(sessionRecord{
		Cart:      s.Cart,
		Favorites: s.Favorites,
		BuyLater:  s.BuyLater,
	})
	if err != nil {
		return err
	}

	_, err = st.db.ExecContext(ctx, `
		INSERT INTO session_states (user_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = NOW()`,
		s.UserID, raw,
	)
	return err
}
