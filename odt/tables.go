package odt

import (
	"github.com/tsawler/opendoc/markup"
)

// Table is a table:table element. Rows holds the rows found directly under
// the table and inside its row groups, in document order.
type Table struct {
	Name      *string       `json:"name,omitempty"`
	StyleName *string       `json:"styleName,omitempty"`
	Columns   []TableColumn `json:"columns,omitempty"`
	Rows      []TableRow    `json:"rows,omitempty"`
}

func (*Table) Kind() Kind { return KindTable }
func (*Table) isBlock()   {}

// TableColumn is a table:table-column. Repeat is 0 when the column is not
// explicitly repeated.
type TableColumn struct {
	StyleName *string `json:"styleName,omitempty"`
	Repeat    uint32  `json:"repeat"`
}

// TableRow is a table:table-row. Header is set for rows of a
// table:table-header-rows group.
type TableRow struct {
	StyleName *string     `json:"styleName,omitempty"`
	Header    bool        `json:"header,omitempty"`
	Cells     []TableCell `json:"cells,omitempty"`
}

// TableCell is a table:table-cell, or a table:covered-table-cell when Covered
// is set. Spans are 0 when not given.
type TableCell struct {
	StyleName *string `json:"styleName,omitempty"`
	ColSpan   uint32  `json:"colSpan,omitempty"`
	RowSpan   uint32  `json:"rowSpan,omitempty"`
	Covered   bool    `json:"covered,omitempty"`
	Items     Blocks  `json:"items"`
}

// ColumnCount returns the number of physical columns described by the
// column definitions, expanding repeats.
func (t *Table) ColumnCount() int {
	count := 0
	for _, col := range t.Columns {
		count += spanOf(col.Repeat)
	}
	return count
}

// Span returns the number of physical columns the row occupies. Covered
// cells occupy one column each.
func (r TableRow) Span() int {
	count := 0
	for _, cell := range r.Cells {
		if cell.Covered {
			count++
			continue
		}
		count += spanOf(cell.ColSpan)
	}
	return count
}

// Width returns the widest extent of the table: the column definitions or
// the widest row, whichever is larger.
func (t *Table) Width() int {
	width := t.ColumnCount()
	for _, row := range t.Rows {
		if s := row.Span(); s > width {
			width = s
		}
	}
	return width
}

func spanOf(n uint32) int {
	if n < 1 {
		return 1
	}
	return int(n)
}

func (d *decoder) table(e *markup.Element) (*Table, error) {
	defer d.enter(e)()
	t := &Table{
		Name:      optional(e, "name"),
		StyleName: optional(e, "style-name"),
	}

	for _, c := range e.ChildElements() {
		switch c.Name.Local {
		case "table-column":
			col, err := d.tableColumn(c)
			if err != nil {
				return nil, err
			}
			t.Columns = append(t.Columns, col)
		case "table-columns", "table-header-columns", "table-column-group":
			cols, err := children(c, "table-column", d.tableColumn)
			if err != nil {
				return nil, err
			}
			t.Columns = append(t.Columns, cols...)
		case "table-row":
			row, err := d.tableRow(c, false)
			if err != nil {
				return nil, err
			}
			t.Rows = append(t.Rows, row)
		case "table-header-rows", "table-rows", "table-row-group":
			header := c.Name.Local == "table-header-rows"
			rows, err := children(c, "table-row", func(r *markup.Element) (TableRow, error) {
				return d.tableRow(r, header)
			})
			if err != nil {
				return nil, err
			}
			t.Rows = append(t.Rows, rows...)
		}
	}
	return t, nil
}

func (d *decoder) tableColumn(e *markup.Element) (TableColumn, error) {
	defer d.enter(e)()
	repeat, err := d.uintAttr(e, "number-columns-repeated", 0)
	if err != nil {
		return TableColumn{}, err
	}
	return TableColumn{StyleName: optional(e, "style-name"), Repeat: repeat}, nil
}

func (d *decoder) tableRow(e *markup.Element, header bool) (TableRow, error) {
	defer d.enter(e)()
	row := TableRow{StyleName: optional(e, "style-name"), Header: header}
	for _, c := range e.ChildElements() {
		switch c.Name.Local {
		case "table-cell", "covered-table-cell":
			cell, err := d.tableCell(c)
			if err != nil {
				return TableRow{}, err
			}
			row.Cells = append(row.Cells, cell)
		}
	}
	return row, nil
}

func (d *decoder) tableCell(e *markup.Element) (TableCell, error) {
	defer d.enter(e)()
	colSpan, err := d.uintAttr(e, "number-columns-spanned", 0)
	if err != nil {
		return TableCell{}, err
	}
	rowSpan, err := d.uintAttr(e, "number-rows-spanned", 0)
	if err != nil {
		return TableCell{}, err
	}
	items, err := elements(e, d.block)
	if err != nil {
		return TableCell{}, err
	}
	return TableCell{
		StyleName: optional(e, "style-name"),
		ColSpan:   colSpan,
		RowSpan:   rowSpan,
		Covered:   e.Name.Local == "covered-table-cell",
		Items:     items,
	}, nil
}
