package database

import "testing"

func TestAttendanceStore_GetMissingRecord(t *testing.T) {
	_, records := newTestStores(t)

	rec, err := records.GetRecord(1, 42)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for a missing record, got %+v", rec)
	}
}

func TestAttendanceStore_PutAndOverwrite(t *testing.T) {
	_, records := newTestStores(t)

	if err := records.PutRecord(1, 42, "2026-08-27", "url-a"); err != nil {
		t.Fatalf("PutRecord failed: %v", err)
	}
	rec, err := records.GetRecord(1, 42)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec == nil || rec.MarkedDate != "2026-08-27" || rec.FormURL != "url-a" {
		t.Fatalf("unexpected record %+v", rec)
	}

	// Next day's mark overwrites, never duplicates.
	if err := records.PutRecord(1, 42, "2026-08-28", "url-b"); err != nil {
		t.Fatalf("overwriting PutRecord failed: %v", err)
	}
	rec, _ = records.GetRecord(1, 42)
	if rec.MarkedDate != "2026-08-28" || rec.FormURL != "url-b" {
		t.Errorf("expected the record to be overwritten, got %+v", rec)
	}

	count, err := records.CountRecords()
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected one live record per pair, got %d", count)
	}
}

func TestAttendanceStore_PairsAreIndependent(t *testing.T) {
	_, records := newTestStores(t)

	records.PutRecord(1, 42, "2026-08-28", "u")
	records.PutRecord(1, 43, "2026-08-28", "u")
	records.PutRecord(2, 42, "2026-08-28", "u")

	count, err := records.CountRecords()
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 records, got %d", count)
	}
}
