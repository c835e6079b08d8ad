package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FloorCount is one cell of the floor mapping: how many rooms of a type exist
// on a floor.
type FloorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RoomTypeCount is one row of the floor mapping matrix. Total must equal the
// sum of the per-floor counts; the edit session recomputes it after every
// count change.
type RoomTypeCount struct {
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Floors []FloorCount `json:"floors"`
}

// FloorMapping is the full room-type × floor matrix. All entries share the
// same ordered set of floor names (rectangular matrix); position, not name,
// is the join key for floor columns.
type FloorMapping []RoomTypeCount

// Value implements driver.Valuer for jsonb storage.
func (m FloorMapping) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(FloorMapping{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb storage.
func (m *FloorMapping) Scan(value interface{}) error {
	if value == nil {
		*m = FloorMapping{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type for FloorMapping: %T", value)
	}
}

// Rectangular reports whether every room type carries the same ordered floor
// columns as the first one.
func (m FloorMapping) Rectangular() bool {
	if len(m) == 0 {
		return true
	}
	first := m[0].Floors
	for _, rt := range m[1:] {
		if len(rt.Floors) != len(first) {
			return false
		}
		for i, f := range rt.Floors {
			if f.Name != first[i].Name {
				return false
			}
		}
	}
	return true
}

// RecomputeTotals sets every room type's total to the sum of its floor counts.
func (m FloorMapping) RecomputeTotals() {
	for i := range m {
		sum := 0
		for _, f := range m[i].Floors {
			sum += f.Count
		}
		m[i].Total = sum
	}
}
