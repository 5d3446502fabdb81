package attendance

import (
	"fmt"
	"log"
	"sync"

	"attendance-bot/model"
)

// LedgerStore is the persistent attendance record store. GetRecord returns
// nil when no record exists for the pair.
type LedgerStore interface {
	GetRecord(guildID, userID int64) (*model.AttendanceRecord, error)
	PutRecord(guildID, userID int64, markedDate, formURL string) error
}

// Ledger enforces at most one successful submission per user per guild-local
// day. The store's read-then-write sequence is not atomic, so the
// submit+commit step runs under a process-wide lock; the read-only precheck
// deliberately does not, to keep unrelated users from queueing behind a slow
// submission.
type Ledger struct {
	store LedgerStore
	mu    sync.Mutex
}

func NewLedger(store LedgerStore) *Ledger {
	return &Ledger{store: store}
}

// AlreadyMarked reports whether the user has a record for today. Used as the
// cheap precheck before any network work.
func (l *Ledger) AlreadyMarked(guildID, userID int64, today string) (bool, error) {
	rec, err := l.store.GetRecord(guildID, userID)
	if err != nil {
		return false, fmt.Errorf("reading attendance record: %w", err)
	}
	return rec != nil && rec.MarkedDate == today, nil
}

// Mark runs submit and, on success, commits today's record, all under the
// single-flight lock. The duplicate check is repeated inside the lock so two
// concurrent calls for the same user cannot both submit. Returns false with
// a nil error when the day was already taken, and never commits after a
// failed submission so the user can retry.
func (l *Ledger) Mark(guildID, userID int64, today, formURL string, submit func() error) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	marked, err := l.AlreadyMarked(guildID, userID, today)
	if err != nil {
		return false, err
	}
	if marked {
		return false, nil
	}

	if err := submit(); err != nil {
		return false, err
	}

	if err := l.store.PutRecord(guildID, userID, today, formURL); err != nil {
		// The upstream submission already happened; losing the record only
		// risks a duplicate submission tomorrow's check cannot see. Log for
		// manual reconciliation instead of failing the user.
		log.Printf("attendance: ledger write failed after successful submission (guild=%d user=%d): %v", guildID, userID, err)
	}
	return true, nil
}
