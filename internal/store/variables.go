package store

import "fmt"

// Variables is the process-wide key/value configuration store: an in-memory
// cache populated once at startup, written through to the variables table on
// every Set.
type Variables struct {
	st    *Store
	cache map[string]string
}

// Variables loads the variables table into a write-through cache.
func (s *Store) Variables() (*Variables, error) {
	rows, err := s.db.Query(`SELECT key, value FROM variables`)
	if err != nil {
		return nil, fmt.Errorf("querying variables: %w", err)
	}
	defer rows.Close()

	cache := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning variable: %w", err)
		}
		cache[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &Variables{st: s, cache: cache}, nil
}

// Get returns a variable from the cache.
func (v *Variables) Get(key string) (string, bool) {
	val, ok := v.cache[key]
	return val, ok
}

// Set writes a variable to durable storage and, on success, to the cache.
func (v *Variables) Set(key, value string) error {
	_, err := v.st.db.Exec(
		`INSERT INTO variables (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("setting variable %q: %w", key, err)
	}
	v.cache[key] = value
	return nil
}
