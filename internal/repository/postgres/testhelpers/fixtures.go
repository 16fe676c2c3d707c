package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures выполняет SQL-файлы фикстур по очереди
func LoadFixtures(db *sql.DB, fixturesPath string, files ...string) error {
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(fixturesPath, file))
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}
	return nil
}
