package table

// Raw is one stats table as extracted from the markup, before any
// normalization. It exists only for the duration of one extraction pass.
type Raw struct {
	// Top holds the over-header labels for multi-level tables, expanded so
	// Top[i] is the group label above Header[i]. Empty for single-level
	// tables.
	Top []string

	// Header holds the column labels, one per position.
	Header []string

	// Rows holds the data rows in document order, repeated sub-header rows
	// already excluded. Each row has the same width as Header.
	Rows [][]string

	// RowIDs holds the player identifier extracted from each row's profile
	// link, parallel to Rows. An entry is "" when the row had no usable link.
	RowIDs []string

	// IDByName maps profile link text to player identifier, for the
	// name-based alignment fallback.
	IDByName map[string]string
}

// MultiLevel reports whether the table carried a two-level header.
func (r *Raw) MultiLevel() bool {
	return len(r.Top) > 0
}

// Row is one player-season record: canonical column name to raw string value.
type Row map[string]string

// Table is an ordered tabular record set. Columns fixes the column order;
// every Row holds values keyed by those names. Missing keys read as "".
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.Index(name) >= 0
}

// AddColumn appends a column if it is not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// DropColumn removes a column and its values from every row. Unknown names
// are a no-op.
func (t *Table) DropColumn(name string) {
	i := t.Index(name)
	if i < 0 {
		return
	}
	t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
	for _, row := range t.Rows {
		delete(row, name)
	}
}

// RenameColumn renames a column in place, carrying row values over. Renaming
// to an existing name overwrites that column's values. Unknown old names are
// a no-op.
func (t *Table) RenameColumn(oldName, newName string) {
	i := t.Index(oldName)
	if i < 0 || oldName == newName {
		return
	}
	if j := t.Index(newName); j >= 0 {
		t.Columns = append(t.Columns[:j], t.Columns[j+1:]...)
		if j < i {
			i--
		}
	}
	t.Columns[i] = newName
	for _, row := range t.Rows {
		if v, ok := row[oldName]; ok {
			row[newName] = v
			delete(row, oldName)
		}
	}
}

// Lead reorders columns so the given names come first, in the given order,
// with all remaining columns following in their prior order. Names not
// present are ignored.
func (t *Table) Lead(names ...string) {
	lead := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if t.HasColumn(n) && !seen[n] {
			lead = append(lead, n)
			seen[n] = true
		}
	}
	rest := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	t.Columns = append(lead, rest...)
}

// Values returns the named column's value for every row, in row order.
func (t *Table) Values(name string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out
}

// Append adds a row. Values for columns not in Columns are still stored and
// become visible if the column is added later.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}
