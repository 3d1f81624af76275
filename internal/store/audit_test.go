package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAppendAudit(t *testing.T) {
	st, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := st.AppendAudit(context.Background(), AuditEntry{
		ActorEmail: "rh@cadeco.cd",
		ActorRole:  "ADMIN",
		Action:     "application.status_change",
		Entity:     "application",
		EntityID:   "12",
		Metadata:   map[string]any{"from": "RECEIVED", "to": "INTERVIEW"},
		IP:         "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("AppendAudit: %v", err)
	}
	expectationsMet(t, mock)
}

func TestListAuditEntriesDefaultsLimit(t *testing.T) {
	st, mock := newTestStore(t)

	mock.ExpectQuery(`SELECT \* FROM "audit_logs" ORDER BY id desc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action"}).
			AddRow(int64(2), "admin.login").
			AddRow(int64(1), "admin.seed"))

	logs, err := st.ListAuditEntries(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListAuditEntries: %v", err)
	}
	if len(logs) != 2 || logs[0].Action != "admin.login" {
		t.Fatalf("unexpected entries: %+v", logs)
	}
	expectationsMet(t, mock)
}
