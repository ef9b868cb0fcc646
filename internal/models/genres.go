package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// GenreList is an ordered list of genre tags stored as a single
// comma-separated TEXT column, so the same model scans on both the
// Postgres and SQLite dialects.
type GenreList []string

func (g GenreList) Value() (driver.Value, error) {
	if len(g) == 0 {
		return "", nil
	}
	return strings.Join(g, ","), nil
}

func (g *GenreList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case string:
		*g = splitGenres(v)
		return nil
	case []byte:
		*g = splitGenres(string(v))
		return nil
	default:
		return fmt.Errorf("unsupported genres column type %T", src)
	}
}

// ParseGenres builds a GenreList from a comma-separated form value.
func ParseGenres(raw string) GenreList {
	return splitGenres(raw)
}

func splitGenres(raw string) GenreList {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(GenreList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (g GenreList) String() string {
	return strings.Join(g, ", ")
}
