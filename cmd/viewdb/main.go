// Command viewdb dumps the payroll SQLite file table by table. It reads the
// file directly and never talks to a running server.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"hr-payroll/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbPath, table string

	cmd := &cobra.Command{
		Use:          "viewdb",
		Short:        "Print every table of the payroll database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), dbPath, table)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", defaultDBPath(), "path to the SQLite database file")
	cmd.Flags().StringVar(&table, "table", "", "only print this table")
	return cmd
}

// defaultDBPath takes the file part of DB_DSN when the app runs on SQLite.
func defaultDBPath() string {
	if strings.ToLower(config.GetEnv("DB_DRIVER", "sqlite")) != "sqlite" {
		return "payroll.db"
	}
	return dsnPath(config.GetEnv("DB_DSN", "payroll.db"))
}

// dsnPath strips the file: scheme and any query string from a SQLite DSN.
func dsnPath(dsn string) string {
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		dsn = dsn[:i]
	}
	return strings.TrimPrefix(dsn, "file:")
}

func run(w io.Writer, dbPath, only string) error {
	dbPath = dsnPath(dbPath)
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Fprintf(w, "Database not found at: %s\n", dbPath)
		return nil
	}

	db, err := sqlx.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var tables []string
	err = db.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	if len(tables) == 0 {
		fmt.Fprintln(w, "No tables found in the database.")
		return nil
	}

	fmt.Fprintln(w, "Available tables:", strings.Join(tables, ", "))

	for _, name := range tables {
		if only != "" && name != only {
			continue
		}
		if err := viewTable(w, db, name); err != nil {
			return err
		}
	}
	return nil
}

func viewTable(w io.Writer, db *sqlx.DB, table string) error {
	fmt.Fprintf(w, "\n=== %s Table ===\n", table)

	var columns []struct {
		CID        int     `db:"cid"`
		Name       string  `db:"name"`
		Type       string  `db:"type"`
		NotNull    int     `db:"notnull"`
		Default    *string `db:"dflt_value"`
		PrimaryKey int     `db:"pk"`
	}
	if err := db.Select(&columns, "PRAGMA table_info("+quoteIdent(table)+")"); err != nil {
		return fmt.Errorf("columns of %s: %w", table, err)
	}
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.Name)
	}
	fmt.Fprintln(w, "Columns:", strings.Join(names, ", "))

	rows, err := db.Queryx("SELECT * FROM " + quoteIdent(table))
	if err != nil {
		return fmt.Errorf("rows of %s: %w", table, err)
	}
	defer rows.Close()

	fmt.Fprintln(w, "\nData:")
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatRow(values))
	}
	return rows.Err()
}

func formatRow(values []interface{}) string {
	parts := make([]string, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			parts[i] = "NULL"
		case []byte:
			parts[i] = fmt.Sprintf("%q", string(val))
		case string:
			parts[i] = fmt.Sprintf("%q", val)
		default:
			parts[i] = fmt.Sprint(val)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
