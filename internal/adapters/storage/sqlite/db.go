package sqlite

import (
	"database/sql"
	"embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var ddl embed.FS

// Open abre (o crea) la base sqlite y aplica el schema embebido.
// Driver pure-Go (modernc): sin cgo, sirve igual para tests en memoria
// con path "file::memory:".
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}

	// sqlite serializa escrituras; una sola conexión evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}
