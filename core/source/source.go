package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dataset-reconciler/core/table"
	"dataset-reconciler/core/utils"
)

// Supported database/sql driver names.
const (
	DriverPostgres  = "postgres"
	DriverMySQL     = "mysql"
	DriverSQLServer = "sqlserver"
	DriverOracle    = "oracle"
)

// ErrNoDSN is returned when Open is called without a connection string.
var ErrNoDSN = errors.New("source: dsn is required")

// DetectDriver infers the driver name from the DSN shape. MySQL DSNs have no
// reliable marker, so mysql is the fallback.
func DetectDriver(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "sslmode="):
		return DriverPostgres
	case strings.HasPrefix(dsn, "oracle://"):
		return DriverOracle
	case strings.HasPrefix(dsn, "sqlserver://"),
		strings.Contains(dsn, "server="):
		return DriverSQLServer
	default:
		return DriverMySQL
	}
}

// Open connects to the configured database, inferring the driver from the
// DSN when the configuration does not name one, and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, ErrNoDSN
	}

	driver := cfg.Driver
	if driver == "" {
		driver = DetectDriver(cfg.DSN)
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s source: %w", driver, err)
	}
	return db, nil
}

// Pull runs the query and materializes the result as a snapshot table. The
// result's column names become the table schema. Every cell is read as text
// and SQL NULL becomes the empty string. onRow, when non-nil, is called with
// the running row count after each row.
func Pull(ctx context.Context, db *sql.DB, query string, onRow func(n int)) (table.Table, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return table.Table{}, fmt.Errorf("query source: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return table.Table{}, fmt.Errorf("read source columns: %w", err)
	}

	data := [][]string{}
	count := 0
	for rows.Next() {
		cells := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range cells {
			scan[i] = &cells[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return table.Table{}, fmt.Errorf("scan source row %d: %w", count+1, err)
		}

		row := make([]string, len(columns))
		for i, cell := range cells {
			row[i] = utils.ToString(cell)
		}
		data = append(data, row)

		count++
		if onRow != nil {
			onRow(count)
		}
	}
	if err := rows.Err(); err != nil {
		return table.Table{}, fmt.Errorf("iterate source rows: %w", err)
	}

	return table.New(columns, data)
}
