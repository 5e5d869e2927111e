package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel file from the given Data and returns the
// file contents as a byte slice.
func GenerateExcel(d Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 chars.
	sheetName := d.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "BOQ"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through I).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	lastCol := columns[len(columns)-1]

	widths := []float64{8, 44, 8, 10, 14, 14, 14, 14, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	tradeStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#EBEBEB"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create trade style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	subtotalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create subtotal style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(d.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge project: %w", err)
	}
	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(fmt.Sprintf("Project: %s (%s, %s)", d.ProjectType, d.Standard, d.Currency)))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+d.CreatedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	for i, h := range csvHeader {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, r := range d.Rows {
		rowStr := fmt.Sprintf("%d", row)

		switch r.Level {
		case LevelTradeHeader:
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, tradeStyle)

		case LevelItem:
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.ItemNo))
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
			f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Unit))
			f.SetCellValue(sheetName, "D"+rowStr, r.Quantity.InexactFloat64())
			f.SetCellValue(sheetName, "E"+rowStr, r.RateMaterial.InexactFloat64())
			f.SetCellValue(sheetName, "F"+rowStr, r.RateLabor.InexactFloat64())
			f.SetCellValue(sheetName, "G"+rowStr, r.Overhead.InexactFloat64())
			f.SetCellValue(sheetName, "H"+rowStr, r.FullRate.InexactFloat64())
			f.SetCellValue(sheetName, "I"+rowStr, r.Amount.InexactFloat64())
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)

		case LevelSubtotal:
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
			f.SetCellValue(sheetName, "I"+rowStr, r.Amount.InexactFloat64())
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, subtotalStyle)
		}

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	summaries := []struct {
		label string
		value float64
	}{
		{"Prime Cost:", d.PrimeCost.InexactFloat64()},
		{"Overhead & Profit:", d.OverheadTotal.InexactFloat64()},
		{"Grand Total:", d.GrandTotal.InexactFloat64()},
	}
	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "H"+rowStr, s.label)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "I"+rowStr, s.value)
		f.SetCellStyle(sheetName, "I"+rowStr, "I"+rowStr, summaryValueStyle)
		row++
	}

	// ── Assumptions ─────────────────────────────────────────────────────

	if len(d.Assumptions) > 0 {
		row++
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "B"+rowStr, "Assumptions")
		f.SetCellStyle(sheetName, "B"+rowStr, "B"+rowStr, summaryValueStyle)
		row++
		for _, a := range d.Assumptions {
			rowStr = fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(fmt.Sprintf("[%s] %s", a.Category, a.Text)))
			row++
		}
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
