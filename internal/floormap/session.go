// Package floormap maintains a floor-mapping matrix under structural edits.
// A Session is an explicit draft: it holds a working copy of the matrix plus
// an unsaved-changes flag, and callers decide when to persist a snapshot.
package floormap

import (
	"fmt"
	"strconv"
	"strings"

	"furnishing-portal-backend/internal/database/models"
)

// Session is an in-memory edit session over one project's floor mapping.
// Invalid edits are silent no-ops; valid edits keep the matrix rectangular,
// keep every total equal to the sum of its floor counts, and mark the
// session dirty until MarkSaved is called.
type Session struct {
	mapping models.FloorMapping
	dirty   bool
}

// NewSession starts an edit session over a deep copy of the given mapping.
func NewSession(m models.FloorMapping) *Session {
	return &Session{mapping: cloneMapping(m)}
}

// Snapshot returns a deep copy of the working matrix for persistence or
// display. Mutating the returned value does not affect the session.
func (s *Session) Snapshot() models.FloorMapping {
	return cloneMapping(s.mapping)
}

// Dirty reports whether the session holds unsaved edits.
func (s *Session) Dirty() bool {
	return s.dirty
}

// MarkSaved clears the unsaved-changes flag after the caller persisted a
// snapshot.
func (s *Session) MarkSaved() {
	s.dirty = false
}

// RenameFloor sets the floor label at the given column in every room type.
// Empty or whitespace-only names are rejected.
func (s *Session) RenameFloor(floorIndex int, newName string) {
	if strings.TrimSpace(newName) == "" {
		return
	}
	if len(s.mapping) == 0 || floorIndex < 0 || floorIndex >= len(s.mapping[0].Floors) {
		return
	}
	for i := range s.mapping {
		s.mapping[i].Floors[floorIndex].Name = newName
	}
	s.dirty = true
}

// RenameRoomType sets the label of one room type row. Empty or
// whitespace-only names are rejected.
func (s *Session) RenameRoomType(roomTypeIndex int, newName string) {
	if strings.TrimSpace(newName) == "" {
		return
	}
	if roomTypeIndex < 0 || roomTypeIndex >= len(s.mapping) {
		return
	}
	s.mapping[roomTypeIndex].Name = newName
	s.dirty = true
}

// SetCount sets one cell from raw user input and recomputes that room type's
// total. Non-numeric or negative input is rejected.
func (s *Session) SetCount(floorIndex, roomTypeIndex int, value string) {
	count, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || count < 0 {
		return
	}
	if roomTypeIndex < 0 || roomTypeIndex >= len(s.mapping) {
		return
	}
	rt := &s.mapping[roomTypeIndex]
	if floorIndex < 0 || floorIndex >= len(rt.Floors) {
		return
	}
	rt.Floors[floorIndex].Count = count

	// Recomputed after every count edit, unconditionally.
	sum := 0
	for _, f := range rt.Floors {
		sum += f.Count
	}
	rt.Total = sum
	s.dirty = true
}

// AddFloor appends a zero-count floor column with a synthesized unique name
// to every room type.
func (s *Session) AddFloor() {
	if len(s.mapping) == 0 {
		return
	}
	name := s.uniqueFloorName()
	for i := range s.mapping {
		s.mapping[i].Floors = append(s.mapping[i].Floors, models.FloorCount{Name: name, Count: 0})
	}
	s.dirty = true
}

// AddRoomType appends a room type row with the same floor columns as the
// existing rows, all counts zero.
func (s *Session) AddRoomType() {
	var floors []models.FloorCount
	if len(s.mapping) > 0 {
		for _, f := range s.mapping[0].Floors {
			floors = append(floors, models.FloorCount{Name: f.Name, Count: 0})
		}
	}
	s.mapping = append(s.mapping, models.RoomTypeCount{
		Name:   s.uniqueRoomTypeName(),
		Total:  0,
		Floors: floors,
	})
	s.dirty = true
}

// DeleteFloor removes one floor column from every room type and recomputes
// totals. The last remaining floor cannot be deleted.
func (s *Session) DeleteFloor(floorIndex int) {
	if len(s.mapping) == 0 || len(s.mapping[0].Floors) < 2 {
		return
	}
	if floorIndex < 0 || floorIndex >= len(s.mapping[0].Floors) {
		return
	}
	for i := range s.mapping {
		rt := &s.mapping[i]
		rt.Floors = append(rt.Floors[:floorIndex], rt.Floors[floorIndex+1:]...)
		sum := 0
		for _, f := range rt.Floors {
			sum += f.Count
		}
		rt.Total = sum
	}
	s.dirty = true
}

// DeleteRoomType removes one room type row. The last remaining room type
// cannot be deleted.
func (s *Session) DeleteRoomType(roomTypeIndex int) {
	if len(s.mapping) < 2 {
		return
	}
	if roomTypeIndex < 0 || roomTypeIndex >= len(s.mapping) {
		return
	}
	s.mapping = append(s.mapping[:roomTypeIndex], s.mapping[roomTypeIndex+1:]...)
	s.dirty = true
}

func (s *Session) uniqueFloorName() string {
	used := make(map[string]bool)
	for _, f := range s.mapping[0].Floors {
		used[f.Name] = true
	}
	for n := len(s.mapping[0].Floors) + 1; ; n++ {
		name := fmt.Sprintf("新樓層%d", n)
		if !used[name] {
			return name
		}
	}
}

func (s *Session) uniqueRoomTypeName() string {
	used := make(map[string]bool)
	for _, rt := range s.mapping {
		used[rt.Name] = true
	}
	for n := len(s.mapping) + 1; ; n++ {
		name := fmt.Sprintf("新房型%d", n)
		if !used[name] {
			return name
		}
	}
}

func cloneMapping(m models.FloorMapping) models.FloorMapping {
	out := make(models.FloorMapping, len(m))
	for i, rt := range m {
		floors := make([]models.FloorCount, len(rt.Floors))
		copy(floors, rt.Floors)
		out[i] = models.RoomTypeCount{Name: rt.Name, Total: rt.Total, Floors: floors}
	}
	return out
}
