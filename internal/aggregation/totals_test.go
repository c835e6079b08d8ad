package aggregation_test

import (
	"testing"

	"furnishing-portal-backend/internal/aggregation"
	"furnishing-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func item(furnitureType string, count int) models.FurnitureItem {
	return models.FurnitureItem{ID: uuid.New(), Type: furnitureType, Count: count}
}

func room(name string, items ...models.FurnitureItem) models.Room {
	return models.Room{Name: name, Furniture: items}
}

func TestFurnitureTotals(t *testing.T) {
	tests := []struct {
		name     string
		rooms    []models.Room
		expected map[string]int
	}{
		{
			name:     "no rooms",
			rooms:    nil,
			expected: map[string]int{},
		},
		{
			name: "rooms without furniture are skipped",
			rooms: []models.Room{
				room("empty room"),
				room("double room", item("Sofa", 2)),
			},
			expected: map[string]int{"Sofa": 2},
		},
		{
			name: "same type summed across rooms",
			rooms: []models.Room{
				room("double room", item("Sofa", 2), item("Desk", 1)),
				room("single room", item("Sofa", 1)),
			},
			expected: map[string]int{"Sofa": 3, "Desk": 1},
		},
		{
			name: "negative count contributes nothing but registers the type",
			rooms: []models.Room{
				room("double room", item("Sofa", -3), item("Desk", 2)),
			},
			expected: map[string]int{"Sofa": 0, "Desk": 2},
		},
		{
			name: "duplicate type entries within one room are summed",
			rooms: []models.Room{
				room("double room", item("Chair", 2), item("Chair", 3)),
			},
			expected: map[string]int{"Chair": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregation.FurnitureTotals(tt.rooms))
		})
	}
}

func TestTypeOrder_FirstSeen(t *testing.T) {
	rooms := []models.Room{
		room("a", item("Sofa", 1), item("Desk", 1)),
		room("b", item("Chair", 1), item("Sofa", 2)),
	}

	assert.Equal(t, []string{"Sofa", "Desk", "Chair"}, aggregation.TypeOrder(rooms))
}

func TestTypeOrder_Empty(t *testing.T) {
	assert.Empty(t, aggregation.TypeOrder(nil))
}

func TestTotalCount(t *testing.T) {
	assert.Equal(t, 0, aggregation.TotalCount(map[string]int{}))
	assert.Equal(t, 7, aggregation.TotalCount(map[string]int{"Sofa": 3, "Desk": 4}))
}

func TestSharePercent(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		total    int
		expected float64
	}{
		{"zero total", 5, 0, 0},
		{"whole share", 10, 10, 100},
		{"one decimal rounding", 1, 3, 33.3},
		{"rounds half up", 1, 8, 12.5},
		{"two thirds", 2, 3, 66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregation.SharePercent(tt.count, tt.total))
		})
	}
}

func TestRoomBreakdown(t *testing.T) {
	rooms := []models.Room{
		room("double room", item("Sofa", 2), item("Desk", 1)),
		room("single room", item("Sofa", 1)),
		room("empty room"),
	}
	types := aggregation.TypeOrder(rooms)

	b := aggregation.RoomBreakdown(rooms, types)

	assert.Equal(t, []string{"double room", "single room", "empty room"}, b.RoomNames)
	assert.Equal(t, []string{"Sofa", "Desk"}, b.Types)
	assert.Equal(t, [][]int{{2, 1}, {1, 0}, {0, 0}}, b.Cells)
}

func TestRoomBreakdown_DuplicateTypesSummedIntoOneCell(t *testing.T) {
	rooms := []models.Room{
		room("double room", item("Chair", 2), item("Chair", 3)),
	}

	b := aggregation.RoomBreakdown(rooms, []string{"Chair"})

	assert.Equal(t, [][]int{{5}}, b.Cells)
}
