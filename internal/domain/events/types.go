package events

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID es la representación canónica de cualquier identificador del store.
// El backend mezcla ids numéricos (7) y foreign keys en texto ("7"); ambos
// se normalizan a ID("7") al decodificar, así las comparaciones son ==.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

// ParseID normaliza texto de entrada (flags, query params, paths).
func ParseID(s string) ID {
	return ID(strings.TrimSpace(s))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ParseID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: expected string or number, got %s", string(b))
	}
	*id = canonicalNumber(n)
	return nil
}

// canonicalNumber escribe los enteros sin exponente ni decimales (7.0, 7e0 => "7"),
// igual que String(n) en el frontend. Lo demás queda como vino.
func canonicalNumber(n json.Number) ID {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return ID(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return ID(s)
	}
	return ID(strconv.FormatInt(int64(f), 10))
}

const maxSafeInteger = 1<<53 - 1

// MarshalJSON escribe número si el id es un entero base 10, texto si no.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isInteger() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) isInteger() bool {
	s := string(id)
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseIDs convierte una lista CSV ("1,2, 3") en ids, ignorando vacíos.
func ParseIDs(csv string) []ID {
	parts := strings.Split(csv, ",")
	out := make([]ID, 0, len(parts))
	for _, p := range parts {
		if id := ParseID(p); !id.IsZero() {
			out = append(out, id)
		}
	}
	return out
}
