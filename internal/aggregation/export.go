package aggregation

import (
	"strconv"
	"strings"
)

// exportHeader matches the column labels of the demand table rendering.
const exportHeader = `家具類型,總數量,明細`

// ExportCSV renders demand rows as delimited text: one row per furniture
// type, string fields quoted, numeric fields bare. Breakdown cells join each
// contributing room type as "<name>: <roomCount>×<perUnitCount>".
//
// encoding/csv quotes by content, which cannot reproduce this layout.
func ExportCSV(rows []DemandRow) string {
	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(quote(row.Type))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(row.Projected))
		b.WriteByte(',')
		b.WriteString(quote(breakdownText(row.Breakdown)))
		b.WriteByte('\n')
	}
	return b.String()
}

func breakdownText(contribs []DemandContribution) string {
	parts := make([]string, len(contribs))
	for i, c := range contribs {
		parts[i] = c.RoomType + ": " + strconv.Itoa(c.RoomCount) + "×" + strconv.Itoa(c.PerUnit)
	}
	return strings.Join(parts, ", ")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
