package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dbehnke/dsd-go/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// Store wraps the GORM database connection backing the opt-in call
// log and CC-candidate cache.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

// Config holds store configuration.
type Config struct {
	Path string // path to the SQLite database file
}

type gormLogAdapter struct{ log *logger.Logger }

func (l *gormLogAdapter) Printf(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Open creates (or reuses) the sqlite-backed store at cfg.Path,
// running migrations for CallLogEntry and CCCandidate.
func Open(cfg Config, log *logger.Logger) (*Store, error) {
	if cfg.Path == "" {
		cfg.Path = "dsd-go.db"
	}
	dir := filepath.Dir(cfg.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	gormLog := gormlogger.New(
		&gormLogAdapter{log: log},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	dialector := sqlite.Dialector{DriverName: "sqlite", DSN: cfg.Path}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open store database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get store sql.DB: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := db.AutoMigrate(&CallLogEntry{}, &CCCandidate{}); err != nil {
		return nil, fmt.Errorf("migrate store schema: %w", err)
	}

	log.Info("telemetry store initialized", logger.String("path", cfg.Path))
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying sql.DB.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AppendCallLog inserts a finished call record.
func (s *Store) AppendCallLog(entry CallLogEntry) error {
	if entry.StartTime.IsZero() {
		entry.StartTime = time.Now()
	}
	return s.db.Create(&entry).Error
}

// RecentCallLog returns the most recent n call log entries, newest
// first.
func (s *Store) RecentCallLog(n int) ([]CallLogEntry, error) {
	var entries []CallLogEntry
	err := s.db.Order("start_time DESC").Limit(n).Find(&entries).Error
	return entries, err
}

// UpsertCCCandidate records (or refreshes) a control-channel
// candidate frequency for the given system key.
func (s *Store) UpsertCCCandidate(system string, freqHz uint64) error {
	var existing CCCandidate
	err := s.db.Where("system = ? AND freq_hz = ?", system, freqHz).First(&existing).Error
	if err == nil {
		existing.UpdatedAt = time.Now()
		return s.db.Save(&existing).Error
	}
	return s.db.Create(&CCCandidate{System: system, FreqHz: freqHz, UpdatedAt: time.Now()}).Error
}

// CCCandidates returns all learned frequencies for the given system
// key.
func (s *Store) CCCandidates(system string) ([]uint64, error) {
	var rows []CCCandidate
	if err := s.db.Where("system = ?", system).Find(&rows).Error; err != nil {
		return nil, err
	}
	freqs := make([]uint64, len(rows))
	for i, r := range rows {
		freqs[i] = r.FreqHz
	}
	return freqs, nil
}
