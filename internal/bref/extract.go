package bref

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/logger"
	"github.com/zjtippetts/NBA-Database/internal/table"
)

// ErrNoTable indicates the page held no recognizable stats table for the
// requested category.
var ErrNoTable = errors.New("no stats table found")

// Extract parses one league stat page and returns the category's table in raw
// form: header labels, data rows in document order, and the player identifier
// side-channel taken from each row's profile link. Repeated in-body header
// rows are skipped, the leading rank column is dropped, and rows are padded or
// truncated to the header width.
func Extract(r io.Reader, c category.Category) (*table.Raw, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	t := findStatsTable(doc, c.Slug)
	if t == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoTable, c.Key)
	}

	top, header := extractHeader(t)
	headerless := false
	if len(header) == 0 {
		// Tables without a thead publish the header as their first row
		if first := t.Find("tr").First(); first.Length() > 0 {
			header = expandHeaderRow(first)
			headerless = true
		}
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%w for %s: table has no header row", ErrNoTable, c.Key)
	}

	if multi := len(top) > 0; multi != c.MultiHeader {
		logger.Warn("header shape differs from category registry", logger.Fields{
			"category":    c.Key,
			"multi_level": multi,
		}, nil)
	}

	dropRank := hasRankColumn(t, header)
	if dropRank {
		header = header[1:]
		if len(top) > 0 {
			top = top[1:]
		}
	}

	raw := &table.Raw{
		Top:      top,
		Header:   header,
		IDByName: make(map[string]string),
	}

	width := len(header)
	repaired := 0
	dataRows(t).Each(func(i int, row *goquery.Selection) {
		if headerless && i == 0 {
			return
		}
		if row.HasClass("thead") {
			return
		}

		cells := cellTexts(row)
		if dropRank && len(cells) > 0 {
			cells = cells[1:]
		}
		if len(cells) == 0 {
			return
		}

		if len(cells) != width {
			logger.Debug("repairing row width", logger.Fields{
				"category": c.Key,
				"row":      i,
				"cells":    len(cells),
				"want":     width,
			})
			repaired++
			for len(cells) < width {
				cells = append(cells, "")
			}
			if len(cells) > width {
				cells = cells[:width]
			}
		}
		raw.Rows = append(raw.Rows, cells)

		link := row.Find(`a[href*="/players/"]`).First()
		id := ""
		if href, ok := link.Attr("href"); ok {
			id = ExtractPlayerID(href)
		}
		raw.RowIDs = append(raw.RowIDs, id)
		if id != "" {
			if name := strings.TrimSpace(link.Text()); name != "" {
				raw.IDByName[name] = id
			}
		}
	})

	if repaired > 0 {
		logger.Warn("repaired row widths", logger.Fields{
			"category": c.Key,
			"rows":     repaired,
			"width":    width,
		}, nil)
	}

	return raw, nil
}

// findStatsTable locates the category's table: by the category's id, by the
// id variant with a _stats suffix, then by the classes the site puts on every
// stats table, then the first table at all.
func findStatsTable(doc *goquery.Document, slug string) *goquery.Selection {
	selectors := []string{
		"table#" + slug,
		"table#" + slug + "_stats",
		"table.stats_table",
		"table.sortable",
		"table",
	}
	for _, sel := range selectors {
		if t := doc.Find(sel).First(); t.Length() > 0 {
			return t
		}
	}
	return nil
}

// extractHeader returns the over-header and header label rows. Single-row
// heads yield a nil over-header; heads with more than two rows keep only the
// last two.
func extractHeader(t *goquery.Selection) (top, header []string) {
	rows := t.Find("thead tr")
	n := rows.Length()
	switch {
	case n == 0:
		return nil, nil
	case n == 1:
		return nil, expandHeaderRow(rows.First())
	default:
		top = expandHeaderRow(rows.Eq(n - 2))
		header = expandHeaderRow(rows.Eq(n - 1))
		return top, header
	}
}

// expandHeaderRow reads one header row's cell labels, repeating a cell's
// label once per column it spans so positions line up with the data rows.
func expandHeaderRow(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		span := 1
		if v, ok := cell.Attr("colspan"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 1 {
				span = n
			}
		}
		text := strings.TrimSpace(cell.Text())
		for i := 0; i < span; i++ {
			cells = append(cells, text)
		}
	})
	return cells
}

// hasRankColumn reports whether the table leads with the presentation-only
// rank column.
func hasRankColumn(t *goquery.Selection, header []string) bool {
	if len(header) > 0 && header[0] == "Rk" {
		return true
	}
	stat, _ := t.Find("thead tr").Last().Find("th, td").First().Attr("data-stat")
	return stat == "ranker"
}

// dataRows returns the table's data rows. Tables without a tbody fall back to
// every row outside the head.
func dataRows(t *goquery.Selection) *goquery.Selection {
	rows := t.Find("tbody tr")
	if rows.Length() == 0 {
		rows = t.Find("tr").Not("thead tr")
	}
	return rows
}

// cellTexts returns a row's trimmed cell texts in document order.
func cellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}
