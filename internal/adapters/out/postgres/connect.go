package postgres

import (
	"database/sql"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MakeConnectionString builds a PostgreSQL DSN from individual settings.
func MakeConnectionString(host, port, user, password, dbName, sslMode string) string {
	return "host=" + host +
		" port=" + port +
		" user=" + user +
		" password=" + password +
		" dbname=" + dbName +
		" sslmode=" + sslMode
}

// Connect opens a GORM connection over a lib/pq database handle. Going
// through database/sql keeps driver errors as *pq.Error values, which the
// repositories rely on for constraint violation detection.
func Connect(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
}
