package sheet

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/forever-home/friends/pkg/types"
)

// dbFileName is the workbook database file inside DataDir.
const dbFileName = "workbook.db"

// Store implements the Workbook interface using SQLite. Unlike a
// cache, the database file is the system of record: Open never wipes
// it, and header rows are seeded only when a sheet is empty.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	sheets map[string]*sheetTable
}

var _ types.Workbook = (*Store)(nil)

// NewStore creates a new workbook store. The store is not open;
// call Open with a Config to initialize.
func NewStore() *Store {
	return &Store{
		sheets: make(map[string]*sheetTable),
	}
}

// Open connects the store to the SQLite database described by config.
// Creates DataDir if it does not exist, ensures the schema, and seeds
// header rows for any standard sheet that has no rows yet.
// Returns ErrAlreadyOpen if already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open workbook database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("ensure schema: %w", err)
	}

	if err := seedHeaders(db); err != nil {
		db.Close()
		return fmt.Errorf("seed headers: %w", err)
	}

	s.db = db
	s.config = config
	s.open = true

	for _, name := range types.StandardSheetNames {
		s.sheets[name] = &sheetTable{name: name, store: s}
	}

	return nil
}

// Close releases the database handle. Idempotent: closing a closed
// store succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.open = false
	s.sheets = make(map[string]*sheetTable)
	return err
}

// Sheet returns the Table for the given sheet name.
// Returns ErrSheetNotFound for a non-standard name and
// ErrWorkbookClosed when the store is not open.
func (s *Store) Sheet(name string) (types.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrWorkbookClosed
	}

	table, ok := s.sheets[name]
	if !ok {
		return nil, types.ErrSheetNotFound
	}
	return table, nil
}

// seedHeaders inserts the header row at position 1 for every standard
// sheet that currently has no rows.
func seedHeaders(db *sql.DB) error {
	for _, name := range types.StandardSheetNames {
		var count int
		err := db.QueryRow(
			"SELECT COUNT(*) FROM sheet_rows WHERE sheet = ?", name,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("count rows in %q: %w", name, err)
		}
		if count > 0 {
			continue
		}

		cells, err := json.Marshal(types.SheetHeader(name))
		if err != nil {
			return fmt.Errorf("encode header for %q: %w", name, err)
		}
		rowID, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating UUID v7: %w", err)
		}
		_, err = db.Exec(
			"INSERT INTO sheet_rows (row_id, sheet, pos, cells) VALUES (?, ?, 1, ?)",
			rowID.String(), name, string(cells),
		)
		if err != nil {
			return fmt.Errorf("insert header for %q: %w", name, err)
		}
	}
	return nil
}
