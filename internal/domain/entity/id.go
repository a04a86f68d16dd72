package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID identificador opaco asignado por el servidor. Vacío mientras la entidad es un borrador.
// En JSON acepta tanto cadenas ("7", "a1b2-...") como números (7); siempre se serializa como cadena.
type ID string

// IsZero indica si la entidad aún no fue persistida.
func (id ID) IsZero() bool { return id == "" }

// String implementa fmt.Stringer.
func (id ID) String() string { return string(id) }

// UnmarshalJSON acepta string, número o null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: se esperaba cadena o número: %w", err)
	}
	*id = ID(n.String())
	return nil
}
