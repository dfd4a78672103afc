package breach

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// corpusFileName is the database file name inside the corpus directory.
const corpusFileName = "corpus.db"

// importBatchSize is the number of hashes inserted per transaction
// during a dump import. Larger batches amortize transaction overhead;
// smaller ones keep memory flat. 10k rows is a few hundred kilobytes.
const importBatchSize = 10000

// LocalCorpus is a SQLite-backed breach corpus for offline checking.
// It is populated from SHA-1 breach dumps in the HASH:COUNT line format
// and answers the same range queries as the remote oracle, so offline
// and online checks are interchangeable behind the Corpus interface.
//
// Design decision: We store the digest split into prefix and suffix
// columns rather than one 40-character hash because:
//  1. Range lookups become a single indexed equality on the prefix
//  2. The stored form mirrors the query protocol exactly
//  3. The full digest is never materialized at query time
type LocalCorpus struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// mu guards closed.
	mu sync.RWMutex

	// closed is set once Close has been called.
	closed bool
}

// LocalOptions configures a LocalCorpus.
type LocalOptions struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging, which speeds up dump
	// imports considerably. Recommended for most use cases.
	EnableWAL bool
}

// DefaultLocalOptions returns the default local corpus options.
func DefaultLocalOptions() LocalOptions {
	return LocalOptions{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// OpenLocal opens or creates a LocalCorpus in the specified directory.
// If CreateIfNotExists is false and no corpus exists there, an error is
// returned.
func OpenLocal(dir string, opts LocalOptions) (*LocalCorpus, error) {
	dbPath := filepath.Join(dir, corpusFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("breach corpus not found at %s (import a dump first)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check corpus path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create corpus directory: %w", err)
		}
	}

	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	lc := &LocalCorpus{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := lc.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create corpus schema: %w", err)
	}
	return lc, nil
}

// Path returns the path of the underlying database file.
func (lc *LocalCorpus) Path() string {
	return lc.dbPath
}

// Close closes the corpus. Subsequent lookups return ErrCorpusClosed.
func (lc *LocalCorpus) Close() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.closed {
		return nil
	}
	lc.closed = true
	return lc.db.Close()
}

// createTables creates the corpus schema if it doesn't exist.
func (lc *LocalCorpus) createTables() error {
	schema := `
	-- Breached password digests, split at the k-anonymity boundary.
	CREATE TABLE IF NOT EXISTS hashes (
		prefix TEXT NOT NULL,
		suffix TEXT NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (prefix, suffix)
	);

	-- Import history, for the stats subcommand.
	CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		line_count INTEGER NOT NULL
	);
	`
	_, err := lc.db.ExecContext(context.Background(), schema)
	return err
}

// LookupRange returns the stored suffix bucket for a digest prefix.
func (lc *LocalCorpus) LookupRange(ctx context.Context, prefix string) (map[string]int, error) {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	if lc.closed {
		return nil, ErrCorpusClosed
	}
	if !validPrefix(prefix) {
		return nil, ErrInvalidPrefix
	}

	rows, err := lc.db.QueryContext(ctx,
		"SELECT suffix, count FROM hashes WHERE prefix = ?", strings.ToUpper(prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus: %w", err)
	}
	defer rows.Close()

	bucket := make(map[string]int)
	for rows.Next() {
		var suffix string
		var count int
		if err := rows.Scan(&suffix, &count); err != nil {
			return nil, fmt.Errorf("failed to scan corpus row: %w", err)
		}
		bucket[suffix] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus rows: %w", err)
	}
	return bucket, nil
}

// ImportDump loads a breach dump into the corpus. The dump format is
// one entry per line, SHA1HEX:COUNT, as published by the Pwned
// Passwords downloadable corpus. Existing entries are replaced, so
// re-importing a newer dump updates counts in place. Returns the number
// of entries imported.
func (lc *LocalCorpus) ImportDump(ctx context.Context, r io.Reader) (int, error) {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	if lc.closed {
		return 0, ErrCorpusClosed
	}

	scanner := bufio.NewScanner(r)
	total := 0

	type entry struct {
		prefix, suffix string
		count          int
	}
	batch := make([]entry, 0, importBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		tx, err := lc.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin import transaction: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			"INSERT OR REPLACE INTO hashes (prefix, suffix, count) VALUES (?, ?, ?)")
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to prepare import statement: %w", err)
		}
		for _, e := range batch {
			if _, err := stmt.ExecContext(ctx, e.prefix, e.suffix, e.count); err != nil {
				_ = stmt.Close()
				_ = tx.Rollback()
				return fmt.Errorf("failed to insert hash: %w", err)
			}
		}
		if err := stmt.Close(); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to close import statement: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit import transaction: %w", err)
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		digest, countStr, ok := strings.Cut(line, ":")
		if !ok || len(digest) != 40 {
			return total, fmt.Errorf("%w: line %d", ErrMalformedRange, lineNo)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count < 0 {
			return total, fmt.Errorf("%w: line %d: bad count", ErrMalformedRange, lineNo)
		}

		digest = strings.ToUpper(digest)
		batch = append(batch, entry{
			prefix: digest[:prefixLen],
			suffix: digest[prefixLen:],
			count:  count,
		})
		if len(batch) == importBatchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return total, fmt.Errorf("failed to read dump: %w", err)
	}
	if err := flush(); err != nil {
		return total, err
	}

	if _, err := lc.db.ExecContext(ctx,
		"INSERT INTO imports (line_count) VALUES (?)", total); err != nil {
		return total, fmt.Errorf("failed to record import: %w", err)
	}
	return total, nil
}

// CorpusStats summarizes the local corpus contents.
type CorpusStats struct {
	// Hashes is the number of stored digests.
	Hashes int64

	// Prefixes is the number of distinct k-anonymity buckets populated.
	Prefixes int64

	// Imports is the number of completed dump imports.
	Imports int64
}

// Stats reports the size of the corpus.
func (lc *LocalCorpus) Stats(ctx context.Context) (CorpusStats, error) {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	if lc.closed {
		return CorpusStats{}, ErrCorpusClosed
	}

	var stats CorpusStats
	row := lc.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT prefix) FROM hashes")
	if err := row.Scan(&stats.Hashes, &stats.Prefixes); err != nil {
		return CorpusStats{}, fmt.Errorf("failed to count hashes: %w", err)
	}
	row = lc.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM imports")
	if err := row.Scan(&stats.Imports); err != nil {
		return CorpusStats{}, fmt.Errorf("failed to count imports: %w", err)
	}
	return stats, nil
}
