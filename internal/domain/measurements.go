package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Measurements holds named garment dimensions (length, chest, waist, ...).
// Values stay strings because the intake form allows them to be left empty.
// Stored as a JSON column.
type Measurements map[string]string

func (m Measurements) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Measurements) Scan(src interface{}) error {
	if src == nil {
		*m = Measurements{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scanning measurements: unsupported type %T", src)
	}

	if len(data) == 0 {
		*m = Measurements{}
		return nil
	}
	return json.Unmarshal(data, m)
}
