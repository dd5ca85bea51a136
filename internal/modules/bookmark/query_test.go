package bookmark

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/noteflow/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopDriver struct{}

func (nopDriver) Open(string) (driver.Conn, error) { return nopConn{}, nil }

type nopConn struct{}

func (nopConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not implemented") }
func (nopConn) Close() error                        { return nil }
func (nopConn) Begin() (driver.Tx, error)           { return nil, errors.New("not implemented") }

func init() { sql.Register("bookmark_nop", nopDriver{}) }

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("bookmark_nop", "")
	if err != nil {
		t.Fatalf("open stub driver: %v", err)
	}
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db
}

// The visibility filter must live in the listing query itself so the pagination
// total counts only notes the viewer can still see.
func TestListQueryFiltersVisibilityInSQL(t *testing.T) {
	svc := NewService(dryRunDB(t), nil)

	var bookmarks []models.BookmarkModel
	tx := svc.listQuery("user-1", []string{"alice"}).Find(&bookmarks)

	got := tx.Statement.SQL.String()
	for _, want := range []string{
		"JOIN notes",
		"notes.deleted_at IS NULL",
		"bookmarks.user_id = ?",
		"notes.visibility",
		"notes.user_id IN",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("SQL %q missing %q", got, want)
		}
	}
}
