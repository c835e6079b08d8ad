// Package aggregation derives summary views from in-memory project snapshots.
// All functions are pure and synchronous; callers fetch the data, the engine
// only folds it.
package aggregation

import (
	"furnishing-portal-backend/internal/database/models"
)

// FurnitureTotals maps furniture type label to the total count across all
// rooms. Items with a non-positive count contribute nothing but still
// register the type; rooms without furniture are skipped. The sum of the
// returned values always equals the sum of all item counts.
func FurnitureTotals(rooms []models.Room) map[string]int {
	totals := make(map[string]int)
	for _, room := range rooms {
		for _, item := range room.Furniture {
			count := item.Count
			if count < 0 {
				count = 0
			}
			totals[item.Type] += count
		}
	}
	return totals
}

// TypeOrder returns the furniture type labels in first-seen order across the
// room list. This is the canonical column enumeration for every derived view,
// since map iteration order is not stable.
func TypeOrder(rooms []models.Room) []string {
	seen := make(map[string]bool)
	var order []string
	for _, room := range rooms {
		for _, item := range room.Furniture {
			if !seen[item.Type] {
				seen[item.Type] = true
				order = append(order, item.Type)
			}
		}
	}
	return order
}

// TotalCount sums all values of a totals map.
func TotalCount(totals map[string]int) int {
	sum := 0
	for _, c := range totals {
		sum += c
	}
	return sum
}

// SharePercent returns the one-decimal percentage share of count within
// total, as rendered in the analysis table. A zero total yields 0.
func SharePercent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(int(float64(count)/float64(total)*1000+0.5)) / 10
}

// Breakdown is the room × furniture-type matrix backing the detail table.
// Rows follow room input order, columns follow the Types enumeration.
type Breakdown struct {
	RoomNames []string
	Types     []string
	Cells     [][]int
}

// RoomBreakdown builds the per-room count matrix. Missing types default to 0;
// duplicate type entries within one room are summed into the same cell.
func RoomBreakdown(rooms []models.Room, types []string) *Breakdown {
	index := make(map[string]int, len(types))
	for i, t := range types {
		index[t] = i
	}

	b := &Breakdown{
		RoomNames: make([]string, len(rooms)),
		Types:     types,
		Cells:     make([][]int, len(rooms)),
	}
	for i, room := range rooms {
		b.RoomNames[i] = room.Name
		row := make([]int, len(types))
		for _, item := range room.Furniture {
			if j, ok := index[item.Type]; ok && item.Count > 0 {
				row[j] += item.Count
			}
		}
		b.Cells[i] = row
	}
	return b
}
