package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a PDF document from the export data using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(d Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, d)
	addTableHeader(m)
	for _, r := range d.Rows {
		addTableRow(m, d, r)
	}
	addSummary(m, d)
	addAssumptions(m, d)
	addFooter(m, d)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addHeader adds the title, project and date to the PDF.
func addHeader(m core.Maroto, d Data) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(d.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Project: %s (%s)", d.ProjectType, d.Standard), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", d.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the table.
func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("No", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Material", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Labor", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("O&P", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single data row, styled by its level.
func addTableRow(m core.Maroto, d Data, r Row) {
	switch r.Level {
	case LevelTradeHeader:
		bg := &props.Color{Red: 235, Green: 235, Blue: 235}
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New(r.Description, props.Text{
						Size:  9,
						Style: fontstyle.Bold,
						Align: align.Left,
					}),
				).WithStyle(&props.Cell{BackgroundColor: bg}),
			),
		)
		return

	case LevelSubtotal:
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cell := &props.Cell{BackgroundColor: bg}
		bold := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
		m.AddRows(
			row.New(7).Add(
				col.New(10).Add(text.New(r.Description, bold)).WithStyle(cell),
				col.New(2).Add(text.New(d.money(r.Amount), bold)).WithStyle(cell),
			),
		)
		return
	}

	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.ItemNo, baseText)),
			col.New(3).Add(text.New(r.Description, leftText)),
			col.New(1).Add(text.New(r.Unit, baseText)),
			col.New(1).Add(text.New(r.Quantity.String(), rightText)),
			col.New(1).Add(text.New(d.money(r.RateMaterial), rightText)),
			col.New(1).Add(text.New(d.money(r.RateLabor), rightText)),
			col.New(1).Add(text.New(d.money(r.Overhead), rightText)),
			col.New(1).Add(text.New(d.money(r.FullRate), rightText)),
			col.New(2).Add(text.New(d.money(r.Amount), rightText)),
		),
	)
}

// addSummary adds the totals section at the bottom of the PDF.
func addSummary(m core.Maroto, d Data) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	lines := []struct {
		label string
		value string
	}{
		{"Prime Cost", d.money(d.PrimeCost)},
		{"Overhead & Profit", d.money(d.OverheadTotal)},
		{"Grand Total", d.money(d.GrandTotal)},
	}
	for _, line := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(line.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(line.value, labelStyle)).WithStyle(summaryCell),
			),
		)
	}
}

// addAssumptions lists the assumptions under the table.
func addAssumptions(m core.Maroto, d Data) {
	if len(d.Assumptions) == 0 {
		return
	}
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Assumptions", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)
	for _, a := range d.Assumptions {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("- [%s] %s", a.Category, a.Text), props.Text{
						Size:  8,
						Align: align.Left,
					}),
				),
			),
		)
	}
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, d Data) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", d.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
