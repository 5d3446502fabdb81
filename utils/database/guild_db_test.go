package database

import (
	"path/filepath"
	"testing"

	"attendance-bot/model"
)

func newTestStores(t *testing.T) (*GuildStore, *AttendanceStore) {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewGuildStore(db), NewAttendanceStore(db)
}

func TestGuildStore_UnknownGuildHasEmptyConfig(t *testing.T) {
	guilds, _ := newTestStores(t)

	cfg, err := guilds.GetConfig(1)
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if cfg.FormConfigured() {
		t.Error("expected an unknown guild to have no form configured")
	}
	if cfg.Window != nil {
		t.Error("expected an unknown guild to have no window")
	}
}

func TestGuildStore_UpsertFormRoundTrip(t *testing.T) {
	guilds, _ := newTestStores(t)

	if err := guilds.UpsertForm(1, "https://docs.google.com/forms/d/e/TOKEN", "12345"); err != nil {
		t.Fatalf("UpsertForm failed: %v", err)
	}
	cfg, err := guilds.GetConfig(1)
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if !cfg.FormConfigured() {
		t.Fatal("expected the form to be configured")
	}
	if cfg.FormURL != "https://docs.google.com/forms/d/e/TOKEN" || cfg.EntryID != "12345" {
		t.Errorf("unexpected config %+v", cfg)
	}

	// Replacing keeps one row.
	if err := guilds.UpsertForm(1, "https://docs.google.com/forms/d/e/OTHER", "999"); err != nil {
		t.Fatalf("second UpsertForm failed: %v", err)
	}
	cfg, _ = guilds.GetConfig(1)
	if cfg.FormURL != "https://docs.google.com/forms/d/e/OTHER" || cfg.EntryID != "999" {
		t.Errorf("expected the config to be replaced, got %+v", cfg)
	}
}

func TestGuildStore_UpsertFormKeepsWindow(t *testing.T) {
	guilds, _ := newTestStores(t)
	w := model.AttendanceWindow{Day: 5, StartHour: 8, EndHour: 9}

	if err := guilds.UpsertWindow(1, w); err != nil {
		t.Fatalf("UpsertWindow failed: %v", err)
	}
	if err := guilds.UpsertForm(1, "url", "1"); err != nil {
		t.Fatalf("UpsertForm failed: %v", err)
	}

	cfg, _ := guilds.GetConfig(1)
	if cfg.Window == nil || cfg.Window.Day != 5 {
		t.Errorf("expected the window to survive a form update, got %+v", cfg.Window)
	}
}

func TestGuildStore_WindowLifecycle(t *testing.T) {
	guilds, _ := newTestStores(t)
	w := model.AttendanceWindow{Day: 3, StartHour: 14, StartMinute: 30, EndHour: 15, EndMinute: 30}

	if err := guilds.UpsertWindow(1, w); err != nil {
		t.Fatalf("UpsertWindow failed: %v", err)
	}
	got, err := guilds.GetWindow(1)
	if err != nil {
		t.Fatalf("GetWindow failed: %v", err)
	}
	if got == nil || *got != w {
		t.Errorf("expected %+v, got %+v", w, got)
	}

	if err := guilds.DeleteWindow(1); err != nil {
		t.Fatalf("DeleteWindow failed: %v", err)
	}
	got, err = guilds.GetWindow(1)
	if err != nil {
		t.Fatalf("GetWindow after delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no window after delete, got %+v", got)
	}
}

func TestGuildStore_OffsetLifecycle(t *testing.T) {
	guilds, _ := newTestStores(t)

	if _, set, err := guilds.GetOffsetMinutes(1); err != nil || set {
		t.Fatalf("expected no offset initially, got set=%v err=%v", set, err)
	}

	if err := guilds.SetOffsetMinutes(1, 7*60); err != nil {
		t.Fatalf("SetOffsetMinutes failed: %v", err)
	}
	offset, set, err := guilds.GetOffsetMinutes(1)
	if err != nil || !set || offset != 7*60 {
		t.Errorf("expected offset 420, got %d (set=%v err=%v)", offset, set, err)
	}

	if err := guilds.SetOffsetMinutes(1, -5*60); err != nil {
		t.Fatalf("replacing offset failed: %v", err)
	}
	offset, _, _ = guilds.GetOffsetMinutes(1)
	if offset != -5*60 {
		t.Errorf("expected offset -300, got %d", offset)
	}
}

func TestGuildStore_DeleteFormCascadesRecords(t *testing.T) {
	guilds, records := newTestStores(t)

	if err := guilds.UpsertForm(1, "url", "1"); err != nil {
		t.Fatalf("UpsertForm failed: %v", err)
	}
	if err := records.PutRecord(1, 42, "2026-08-28", "url"); err != nil {
		t.Fatalf("PutRecord failed: %v", err)
	}
	if err := records.PutRecord(2, 42, "2026-08-28", "other"); err != nil {
		t.Fatalf("PutRecord for other guild failed: %v", err)
	}

	if err := guilds.DeleteForm(1); err != nil {
		t.Fatalf("DeleteForm failed: %v", err)
	}

	cfg, _ := guilds.GetConfig(1)
	if cfg.FormConfigured() {
		t.Error("expected the form to be cleared")
	}
	if rec, _ := records.GetRecord(1, 42); rec != nil {
		t.Errorf("expected the guild's records to be removed, got %+v", rec)
	}
	if rec, _ := records.GetRecord(2, 42); rec == nil {
		t.Error("expected other guilds' records to survive")
	}
}
