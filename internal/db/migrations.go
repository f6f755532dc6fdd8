package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	embeddedmigrations "github.com/velmariner/rentora/migrations"
	"gorm.io/gorm"
)

var migrationNamePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)
var addColumnPattern = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+([^\s]+)\s+ADD\s+COLUMN\s+([^\s]+)\b`)

type migration struct {
	Version string
	Name    string
	SQL     string
}

// runMigrations applies every embedded migration that has not been recorded
// in schema_migrations yet, each inside its own transaction.
func runMigrations(database *gorm.DB) error {
	const ensureTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(ensureTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := collectMigrations()
	if err != nil {
		return err
	}

	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, entry := range pending {
		if _, done := applied[entry.Version]; done {
			continue
		}
		if err := applyMigration(database, entry); err != nil {
			return err
		}
	}
	return nil
}

func collectMigrations() ([]migration, error) {
	entries, err := fs.ReadDir(embeddedmigrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	found := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationNamePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		rawSQL, err := fs.ReadFile(embeddedmigrations.Files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		found = append(found, migration{
			Version: matches[1],
			Name:    entry.Name(),
			SQL:     string(rawSQL),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})
	return found, nil
}

type migrationVersionRow struct {
	Version string `gorm:"column:version"`
}

func appliedVersions(database *gorm.DB) (map[string]struct{}, error) {
	rows := make([]migrationVersionRow, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	versions := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		versions[row.Version] = struct{}{}
	}
	return versions, nil
}

func applyMigration(database *gorm.DB, entry migration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		statements := splitStatements(entry.SQL)
		if len(statements) == 0 {
			return errors.New("migration has no SQL statements")
		}

		for _, statement := range statements {
			skip, err := skipStatement(tx, statement)
			if err != nil {
				return fmt.Errorf("inspect migration %s: %w", entry.Name, err)
			}
			if skip {
				continue
			}

			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", entry.Name, statement, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			entry.Version,
			entry.Name,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", entry.Name, err)
		}
		return nil
	})
}

// skipStatement reports whether a statement is an ALTER TABLE ... ADD COLUMN
// for a column that already exists, which sqlite would reject.
func skipStatement(database *gorm.DB, statement string) (bool, error) {
	matches := addColumnPattern.FindStringSubmatch(strings.TrimSpace(statement))
	if len(matches) != 3 {
		return false, nil
	}
	return columnExists(database, trimIdentifier(matches[1]), trimIdentifier(matches[2]))
}

type tableInfoRow struct {
	Name string `gorm:"column:name"`
}

func columnExists(database *gorm.DB, tableName string, columnName string) (bool, error) {
	escapedTable := strings.ReplaceAll(tableName, `"`, `""`)
	columns := make([]tableInfoRow, 0)
	if err := database.Raw(fmt.Sprintf(`PRAGMA table_info("%s")`, escapedTable)).
		Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", tableName, err)
	}
	for _, column := range columns {
		if strings.EqualFold(strings.TrimSpace(column.Name), columnName) {
			return true, nil
		}
	}
	return false, nil
}

func trimIdentifier(identifier string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(identifier), "\"`[]"))
}

func splitStatements(sqlText string) []string {
	parts := strings.Split(sqlText, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		statement := strings.TrimSpace(part)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}
