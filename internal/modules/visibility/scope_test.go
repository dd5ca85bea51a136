package visibility

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

func init() { sql.Register("visibility_nop", nopDriver{}) }

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("visibility_nop", "")
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

func TestScopeTableQualifiesColumns(t *testing.T) {
	db := dryRunDB(t)

	var notes []models.NoteModel
	tx := db.Model(&models.NoteModel{}).
		Scopes(ScopeTable("notes", "bob", []string{"alice"})).
		Find(&notes)

	got := tx.Statement.SQL.String()
	for _, want := range []string{"notes.visibility", "notes.user_id IN", "notes.user_id ="} {
		if !strings.Contains(got, want) {
			t.Fatalf("SQL %q missing %q", got, want)
		}
	}
}

func TestScopeAnonymousOnlyPublic(t *testing.T) {
	db := dryRunDB(t)

	var notes []models.NoteModel
	tx := db.Model(&models.NoteModel{}).
		Scopes(Scope("", nil)).
		Find(&notes)

	got := tx.Statement.SQL.String()
	if !strings.Contains(got, "visibility = ?") {
		t.Fatalf("SQL %q missing visibility filter", got)
	}
	if strings.Contains(got, "user_id") {
		t.Fatalf("anonymous scope must not reference the viewer: %q", got)
	}
}
