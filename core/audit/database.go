package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"prefix-list-updater/core/reconcile"

	"gorm.io/gorm"
)

const maxErrorLength = 1024

// Cycle is the row written per recorded cycle.
type Cycle struct {
	ID          uint      `gorm:"primaryKey"`
	CycleID     string    `gorm:"size:36;uniqueIndex"`
	ListID      string    `gorm:"size:64;index"`
	Outcome     string    `gorm:"size:16;index"`
	Address     string    `gorm:"size:45"`
	Added       string    `gorm:"size:64"`
	Removed     string    `gorm:"size:1024"`
	Attempts    int
	ReadVersion int64
	NewVersion  int64
	Error       string `gorm:"size:1024"`
	StartedAt   time.Time
	DurationMs  int64
}

// TableName overrides the table name used by Cycle.
func (Cycle) TableName() string {
	return "prefix_list_cycles"
}

// NewCycle converts a report into its row.
func NewCycle(report *reconcile.Report) Cycle {
	row := Cycle{
		CycleID:     report.CycleID,
		ListID:      report.ListID,
		Outcome:     string(report.Outcome),
		Address:     report.Address,
		Attempts:    report.Attempts,
		ReadVersion: report.ReadVersion,
		NewVersion:  report.NewVersion,
		Error:       report.Error,
		StartedAt:   report.StartedAt.UTC(),
		DurationMs:  report.Duration.Milliseconds(),
	}
	if d := report.Decision; d != nil {
		row.Added = d.Add()
		row.Removed = strings.Join(d.Remove, ",")
	}
	if len(row.Error) > maxErrorLength {
		row.Error = row.Error[:maxErrorLength]
	}
	return row
}

// DatabaseSink inserts one Cycle row per report.
type DatabaseSink struct {
	db *gorm.DB
}

// NewDatabaseSink creates a sink on db. Call Migrate before first use.
func NewDatabaseSink(db *gorm.DB) *DatabaseSink {
	return &DatabaseSink{db: db}
}

// Migrate creates or updates the prefix_list_cycles table.
func (s *DatabaseSink) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Cycle{}); err != nil {
		return fmt.Errorf("failed to migrate audit table: %w", err)
	}
	return nil
}

// Record implements reconcile.Recorder.
func (s *DatabaseSink) Record(ctx context.Context, report *reconcile.Report) error {
	row := NewCycle(report)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert cycle %s: %w", report.CycleID, err)
	}
	return nil
}
