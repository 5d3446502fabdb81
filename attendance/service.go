package attendance

import (
	"fmt"
	"log"
	"time"

	"attendance-bot/gform"
	"attendance-bot/model"
)

// Outcome is the fixed set of results the presentation layer renders from.
type Outcome int

const (
	OutcomeRecorded Outcome = iota
	OutcomeOutsideWindow
	OutcomeAlreadyMarked
	OutcomeNotConfigured
	OutcomeUpstreamFailed
	OutcomeInternalError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRecorded:
		return "recorded"
	case OutcomeOutsideWindow:
		return "outside window"
	case OutcomeAlreadyMarked:
		return "already marked"
	case OutcomeNotConfigured:
		return "not configured"
	case OutcomeUpstreamFailed:
		return "upstream failed"
	}
	return "internal error"
}

// ConfigStore is the guild configuration store the service reads and writes.
type ConfigStore interface {
	GetConfig(guildID int64) (*model.GuildConfig, error)
	GetOffsetMinutes(guildID int64) (int, bool, error)
	UpsertForm(guildID int64, formURL, entryID string) error
	SetOffsetMinutes(guildID int64, minutes int) error
}

// FormClient is the Google Form pipeline the service drives.
type FormClient interface {
	Resolve(rawURL string) (string, error)
	FetchFieldIDs(base string) ([]int64, error)
	Submit(base string, fields map[string]string) error
}

// Service sequences the attendance pipeline: window evaluation, duplicate
// guarding and form submission per /hadir request, plus the
// configuration-time resolve/extract flow.
type Service struct {
	configs ConfigStore
	ledger  *Ledger
	forms   FormClient
	now     func() time.Time
}

func NewService(configs ConfigStore, ledger *Ledger, forms FormClient) *Service {
	return &Service{
		configs: configs,
		ledger:  ledger,
		forms:   forms,
		now:     time.Now,
	}
}

// MarkAttendance handles one "mark present" request. The cheap checks
// (configuration, window, duplicate precheck) run before any network call;
// the submit+commit pair runs under the ledger's single-flight lock.
func (s *Service) MarkAttendance(guildID, userID int64, displayName string) Outcome {
	cfg, err := s.configs.GetConfig(guildID)
	if err != nil {
		log.Printf("attendance: loading config for guild %d: %v", guildID, err)
		return OutcomeInternalError
	}
	if !cfg.FormConfigured() {
		return OutcomeNotConfigured
	}

	offset := s.offsetMinutes(guildID)
	now := s.now()
	if !InWindow(now, offset, cfg.Window) {
		return OutcomeOutsideWindow
	}
	today := LocalDate(now, offset)

	marked, err := s.ledger.AlreadyMarked(guildID, userID, today)
	if err != nil {
		log.Printf("attendance: precheck for guild %d user %d: %v", guildID, userID, err)
		return OutcomeInternalError
	}
	if marked {
		return OutcomeAlreadyMarked
	}

	admitted, err := s.ledger.Mark(guildID, userID, today, cfg.FormURL, func() error {
		return s.forms.Submit(cfg.FormURL, map[string]string{
			gform.EntryKey(cfg.EntryID): displayName,
		})
	})
	if err != nil {
		if _, ok := gform.KindOf(err); ok {
			log.Printf("attendance: submission for guild %d user %d: %v", guildID, userID, err)
			return OutcomeUpstreamFailed
		}
		log.Printf("attendance: marking for guild %d user %d: %v", guildID, userID, err)
		return OutcomeInternalError
	}
	if !admitted {
		return OutcomeAlreadyMarked
	}
	return OutcomeRecorded
}

// SetFormLink runs the configuration-time sub-flow: resolve the link,
// discover the field identifiers and persist endpoint and first field id as
// one unit. Nothing is persisted when any step fails; errors are returned
// verbatim for the administrator. A default timezone offset is seeded if the
// guild has none yet.
func (s *Service) SetFormLink(guildID int64, rawURL string) error {
	base, err := s.forms.Resolve(rawURL)
	if err != nil {
		return err
	}
	ids, err := s.forms.FetchFieldIDs(base)
	if err != nil {
		return err
	}

	if err := s.configs.UpsertForm(guildID, base, fmt.Sprintf("%d", ids[0])); err != nil {
		return fmt.Errorf("saving form configuration: %w", err)
	}

	if _, ok, err := s.configs.GetOffsetMinutes(guildID); err == nil && !ok {
		if err := s.configs.SetOffsetMinutes(guildID, model.DefaultOffsetMinutes); err != nil {
			log.Printf("attendance: seeding default offset for guild %d: %v", guildID, err)
		}
	}
	return nil
}

func (s *Service) offsetMinutes(guildID int64) int {
	offset, ok, err := s.configs.GetOffsetMinutes(guildID)
	if err != nil || !ok {
		return model.DefaultOffsetMinutes
	}
	return offset
}
