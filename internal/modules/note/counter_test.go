package note

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type downDriver struct{}

func (downDriver) Open(string) (driver.Conn, error) { return downConn{}, nil }

type downConn struct{}

func (downConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("storage down") }
func (downConn) Close() error                        { return nil }
func (downConn) Begin() (driver.Tx, error)           { return nil, errors.New("storage down") }

func init() { sql.Register("note_down", downDriver{}) }

func downDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("note_down", "")
	if err != nil {
		t.Fatalf("open stub driver: %v", err)
	}
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db
}

func TestAdjustNotesCountSurfacesStorageError(t *testing.T) {
	svc := NewService(downDB(t), nil)

	if err := svc.adjustNotesCount("user-1", +1); err == nil {
		t.Fatal("increment must surface the storage error, not swallow it")
	}
	if err := svc.adjustNotesCount("user-1", -1); err == nil {
		t.Fatal("decrement must surface the storage error, not swallow it")
	}
}
