package chart

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/plotkit/barplot/pkg/errors"
)

// decodeXLSX reads a worksheet laid out as a table: the first row holds
// the header, the first column holds category labels and every further
// column is one series whose header cell is its legend text. Empty cells
// are read as zero. The sheet name becomes the chart title.
func decodeXLSX(r io.Reader, sheet string) (*Definition, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open xlsx chart")
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidChart, "workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read sheet %q", sheet)
	}
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidChart, "sheet %q needs a header row and at least one data column", sheet)
	}

	header := rows[0]
	d := &Definition{Title: sheet, XLabel: strings.TrimSpace(header[0])}
	d.Series = make([]Series, len(header)-1)
	for col := 1; col < len(header); col++ {
		d.Series[col-1].Legend = strings.TrimSpace(header[col])
	}
	if len(d.Series) > 1 {
		d.Grouped = true
	}

	for i, row := range rows[1:] {
		category := ""
		if len(row) > 0 {
			category = strings.TrimSpace(row[0])
		}
		d.Categories = append(d.Categories, category)

		for col := 1; col < len(header); col++ {
			v := 0.0
			if col < len(row) && strings.TrimSpace(row[col]) != "" {
				v, err = strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
				if err != nil {
					cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
					return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "cell %s!%s is not a number", sheet, cell)
				}
			}
			d.Series[col-1].Values = append(d.Series[col-1].Values, v)
		}
	}
	return d, nil
}
