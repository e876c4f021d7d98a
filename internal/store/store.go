package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/normalize"
	"github.com/zjtippetts/NBA-Database/internal/table"
)

// cumulativeDir holds the per-category all-seasons tables.
const cumulativeDir = "all_years"

// Store handles persistence of stat tables under a data directory.
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{
		dataDir: dataDir,
	}, nil
}

// SeasonPath returns the per-season snapshot path for one category.
func (s *Store) SeasonPath(season int, c category.Category) string {
	return filepath.Join(s.dataDir, strconv.Itoa(season), c.Key+".csv")
}

// CumulativePath returns the all-seasons table path for one category.
func (s *Store) CumulativePath(c category.Category) string {
	return filepath.Join(s.dataDir, cumulativeDir, c.Key+"_all_years.csv")
}

// SaveSeason writes one season's snapshot for a category.
func (s *Store) SaveSeason(season int, c category.Category, tbl *table.Table) error {
	dir := filepath.Join(s.dataDir, strconv.Itoa(season))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating season directory: %w", err)
	}
	return writeCSV(s.SeasonPath(season, c), tbl)
}

// LoadSeason reads one season's snapshot for a category.
func (s *Store) LoadSeason(season int, c category.Category) (*table.Table, error) {
	return readCSV(s.SeasonPath(season, c))
}

// LoadCumulative reads a category's all-seasons table. A missing file yields
// an empty table so first-time ingestion needs no special case.
func (s *Store) LoadCumulative(c category.Category) (*table.Table, error) {
	tbl, err := readCSV(s.CumulativePath(c))
	if err != nil {
		if os.IsNotExist(err) {
			return table.New(), nil
		}
		return nil, err
	}
	return tbl, nil
}

// SaveCumulative writes a category's all-seasons table.
func (s *Store) SaveCumulative(c category.Category, tbl *table.Table) error {
	if err := os.MkdirAll(filepath.Join(s.dataDir, cumulativeDir), 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", cumulativeDir, err)
	}
	return writeCSV(s.CumulativePath(c), tbl)
}

// MergeSeason persists one season's snapshot and folds it into the category's
// all-seasons table, returning the merged table.
func (s *Store) MergeSeason(season int, c category.Category, tbl *table.Table) (*table.Table, error) {
	if err := s.SaveSeason(season, c, tbl); err != nil {
		return nil, fmt.Errorf("saving %s snapshot for %d: %w", c.Key, season, err)
	}

	prior, err := s.LoadCumulative(c)
	if err != nil {
		return nil, fmt.Errorf("loading cumulative %s: %w", c.Key, err)
	}

	merged := Merge(prior, tbl, season)
	if err := s.SaveCumulative(c, merged); err != nil {
		return nil, fmt.Errorf("saving cumulative %s: %w", c.Key, err)
	}
	return merged, nil
}

// Merge produces the new cumulative table for one category: prior rows from
// other seasons are preserved, prior rows for the incoming season are
// discarded, incoming rows are appended. The column set is the union, prior
// columns keeping their order and new columns appended; rows lacking a column
// read as empty, meaning unknown rather than zero.
func Merge(prior, incoming *table.Table, season int) *table.Table {
	seasonValue := strconv.Itoa(season)

	out := table.New(prior.Columns...)
	for _, col := range incoming.Columns {
		out.AddColumn(col)
	}

	for _, row := range prior.Rows {
		if row[normalize.SeasonColumn] == seasonValue {
			continue
		}
		out.Append(row)
	}
	for _, row := range incoming.Rows {
		out.Append(row)
	}

	out.Lead(normalize.IDColumn, normalize.SeasonColumn)
	return out
}

// RebuildCategory reconstructs one category's all-seasons table by re-merging
// every stored season snapshot in ascending season order. Returns the seasons
// merged and the resulting row count; a category with no snapshots is left
// untouched.
func (s *Store) RebuildCategory(c category.Category) ([]int, int, error) {
	seasons, err := s.CategorySeasons(c)
	if err != nil {
		return nil, 0, err
	}
	if len(seasons) == 0 {
		return nil, 0, nil
	}

	cumulative := table.New()
	for _, season := range seasons {
		snapshot, err := s.LoadSeason(season, c)
		if err != nil {
			return nil, 0, fmt.Errorf("loading %s snapshot for %d: %w", c.Key, season, err)
		}
		cumulative = Merge(cumulative, snapshot, season)
	}

	if err := s.SaveCumulative(c, cumulative); err != nil {
		return nil, 0, fmt.Errorf("saving cumulative %s: %w", c.Key, err)
	}
	return seasons, len(cumulative.Rows), nil
}

// Seasons lists the season directories present under the data directory,
// ascending. Non-season entries such as the cumulative directory are ignored.
func (s *Store) Seasons() ([]int, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	var seasons []int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		year, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		seasons = append(seasons, year)
	}
	sort.Ints(seasons)
	return seasons, nil
}

// CategorySeasons lists the seasons with a stored snapshot for one category,
// ascending.
func (s *Store) CategorySeasons(c category.Category) ([]int, error) {
	seasons, err := s.Seasons()
	if err != nil {
		return nil, err
	}

	var out []int
	for _, season := range seasons {
		if _, err := os.Stat(s.SeasonPath(season, c)); err == nil {
			out = append(out, season)
		}
	}
	return out, nil
}

// writeCSV writes a table as a header row plus one record per row.
func writeCSV(path string, tbl *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(tbl.Columns); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, len(tbl.Columns))
	for _, row := range tbl.Rows {
		for i, col := range tbl.Columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// readCSV reads a table written by writeCSV. The caller distinguishes a
// missing file via os.IsNotExist.
func readCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return table.New(), nil
	}

	tbl := table.New(records[0]...)
	for _, record := range records[1:] {
		row := make(table.Row, len(tbl.Columns))
		for i, col := range tbl.Columns {
			if i < len(record) && record[i] != "" {
				row[col] = record[i]
			}
		}
		tbl.Append(row)
	}
	return tbl, nil
}
