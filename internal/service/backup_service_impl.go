package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/streak"
)

type backupService struct {
	store    *Store
	observer UseCaseObserver
}

func NewBackupService(store *Store, observers ...UseCaseObserver) BackupService {
	return &backupService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *backupService) Export(ctx context.Context) (b *domain.BackupData, err error) {
	defer observe(ctx, s.observer, "export-backup", nil)(&err)

	err = s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.store.load(ctx, t)
		if err != nil {
			return err
		}
		b = &domain.BackupData{
			Version:    domain.SchemaVersion,
			ExportDate: s.store.now().UTC(),
			Data:       data,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *backupService) Restore(ctx context.Context, b *domain.BackupData) (err error) {
	defer observe(ctx, s.observer, "restore-backup", nil)(&err)

	if err = CheckBackup(b); err != nil {
		return err
	}
	return s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		if err := t.timer.Clear(ctx); err != nil {
			return err
		}
		markCounted(b.Data, domain.DateKey(s.store.now()))
		return t.data.Save(ctx, b.Data)
	})
}

// markCounted flags every qualifying log up to today as already part of the
// streak. Backups written before the flag existed would otherwise count
// today a second time.
func markCounted(data *domain.AppData, today string) {
	for date, log := range data.DailyLogs {
		if date <= today && streak.Qualifies(log) {
			log.StreakCounted = true
		}
	}
}

// CheckBackup verifies the version and the whole document.
func CheckBackup(b *domain.BackupData) error {
	if b == nil || b.Data == nil {
		return fmt.Errorf("%w: missing data", ErrInvalidBackup)
	}
	if b.Version != domain.SchemaVersion {
		return fmt.Errorf("%w: got %q, want %q", ErrIncompatibleBackup, b.Version, domain.SchemaVersion)
	}
	if b.Data.Version != "" && b.Data.Version != domain.SchemaVersion {
		return fmt.Errorf("%w: data version %q", ErrIncompatibleBackup, b.Data.Version)
	}
	if b.Data.DailyLogs == nil {
		b.Data.DailyLogs = make(map[string]*domain.DailyLog)
	}
	if b.Data.Version == "" {
		b.Data.Version = domain.SchemaVersion
	}
	// Older exports could hold a monthly bonus above the cap.
	if b.Data.StreakData.BacklogSavers > streak.MaxBacklogSavers {
		b.Data.StreakData.BacklogSavers = streak.MaxBacklogSavers
	}
	if err := validateStruct(b, ErrInvalidBackup); err != nil {
		return err
	}
	for key, log := range b.Data.DailyLogs {
		if log.Date != key {
			return fmt.Errorf("%w: log stored under %s is dated %s", ErrInvalidBackup, key, log.Date)
		}
	}
	return nil
}

// ParseBackup decodes a backup file. Unknown fields are ignored.
func ParseBackup(r io.Reader) (*domain.BackupData, error) {
	var b domain.BackupData
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := CheckBackup(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// WriteBackup encodes b as indented JSON.
func WriteBackup(w io.Writer, b *domain.BackupData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}
