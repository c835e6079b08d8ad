package aggregation

import (
	"strings"

	"furnishing-portal-backend/internal/database/models"
)

// DemandContribution is one room type's contribution to a projected furniture
// total: RoomCount units of the type, each furnished with PerUnit items.
type DemandContribution struct {
	RoomType  string `json:"room_type"`
	RoomCount int    `json:"room_count"`
	PerUnit   int    `json:"per_unit"`
}

// DemandRow is the building-wide projection for one furniture type.
type DemandRow struct {
	Type      string               `json:"type"`
	Projected int                  `json:"projected"`
	Breakdown []DemandContribution `json:"breakdown"`
}

// ProjectDemand answers "how many of each furniture type does the whole
// building need" by crossing the floor-mapping room-type totals with one
// sample room's furniture list per room type.
//
// A room with an explicit room-type assignment is matched by exact label
// (case-insensitive). Otherwise the room matches when its name contains the
// room-type label, case-insensitively. When several rooms match the same room
// type, the last one in room order wins; earlier matches are overwritten, not
// averaged. Room types whose matched sample has no count for a furniture type
// are left out of that row's breakdown.
//
// Rows follow the types enumeration; breakdown entries follow floor-mapping
// order and carry the room-type label lowercased.
func ProjectDemand(types []string, mapping models.FloorMapping, rooms []models.Room) []DemandRow {
	samples := make([]map[string]int, len(mapping))
	for i, rt := range mapping {
		samples[i] = sampleCounts(rt.Name, rooms)
	}

	result := make([]DemandRow, 0, len(types))
	for _, furnitureType := range types {
		row := DemandRow{Type: furnitureType}
		for i, rt := range mapping {
			perUnit := samples[i][furnitureType]
			if perUnit <= 0 {
				continue
			}
			row.Projected += rt.Total * perUnit
			row.Breakdown = append(row.Breakdown, DemandContribution{
				RoomType:  strings.ToLower(rt.Name),
				RoomCount: rt.Total,
				PerUnit:   perUnit,
			})
		}
		result = append(result, row)
	}
	return result
}

// sampleCounts collects the furniture counts of the sample room matched to a
// room-type label. Later matching rooms overwrite earlier ones wholesale.
func sampleCounts(roomTypeName string, rooms []models.Room) map[string]int {
	label := strings.ToLower(roomTypeName)
	counts := make(map[string]int)
	for _, room := range rooms {
		if !matchesRoomType(room, label) {
			continue
		}
		counts = make(map[string]int)
		for _, item := range room.Furniture {
			if item.Count > 0 {
				counts[item.Type] += item.Count
			}
		}
	}
	return counts
}

func matchesRoomType(room models.Room, lowerLabel string) bool {
	if room.RoomType != "" {
		return strings.ToLower(room.RoomType) == lowerLabel
	}
	return strings.Contains(strings.ToLower(room.Name), lowerLabel)
}
