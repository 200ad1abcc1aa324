package store

import (
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// InsertActor inserts an actor row and assigns its id.
func (s *Store) InsertActor(a *model.Actor) error {
	res, err := s.db.Exec(
		`INSERT INTO actors (name, kind) VALUES (?, ?)`, a.Name, string(a.Kind),
	)
	if err != nil {
		return fmt.Errorf("inserting actor: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading actor id: %w", err)
	}
	a.ID = id
	return nil
}

// Actors reads all actors ordered by name.
func (s *Store) Actors() ([]model.Actor, error) {
	rows, err := s.db.Query(`SELECT id, name, kind FROM actors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying actors: %w", err)
	}
	defer rows.Close()

	var out []model.Actor
	for rows.Next() {
		var a model.Actor
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind); err != nil {
			return nil, fmt.Errorf("scanning actor: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
