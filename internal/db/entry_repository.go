package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EntryRepository provides the persistence operations shared by every
// trackable entry table. The timestamp column differs per type: consumed_at
// for food entries, occurred_at everywhere else.
type EntryRepository[T any] struct {
	database        *gorm.DB
	timestampColumn string
}

func NewEntryRepository[T any](database *gorm.DB, timestampColumn string) *EntryRepository[T] {
	return &EntryRepository[T]{database: database, timestampColumn: timestampColumn}
}

// ListRecent returns every entry newest first. Entries sharing a timestamp
// keep insertion order.
func (repo *EntryRepository[T]) ListRecent() ([]T, error) {
	entries := make([]T, 0)
	if err := repo.database.Order(repo.recentOrder()).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListOnDay returns entries whose timestamp falls inside [dayStart, dayEnd),
// newest first.
func (repo *EntryRepository[T]) ListOnDay(dayStart time.Time, dayEnd time.Time) ([]T, error) {
	entries := make([]T, 0)
	condition := fmt.Sprintf("%s >= ? AND %s < ?", repo.timestampColumn, repo.timestampColumn)
	if err := repo.database.
		Where(condition, dayStart, dayEnd).
		Order(repo.recentOrder()).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository[T]) Find(id uint) (T, bool, error) {
	var entry T
	result := repo.database.Limit(1).Find(&entry, "id = ?", id)
	if result.Error != nil {
		var zero T
		return zero, false, result.Error
	}
	if result.RowsAffected == 0 {
		var zero T
		return zero, false, nil
	}
	return entry, true, nil
}

func (repo *EntryRepository[T]) Create(entry *T) error {
	return repo.database.Create(entry).Error
}

func (repo *EntryRepository[T]) Save(entry *T) error {
	return repo.database.Save(entry).Error
}

func (repo *EntryRepository[T]) Delete(id uint) error {
	return repo.database.Delete(new(T), id).Error
}

func (repo *EntryRepository[T]) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *EntryRepository[T]) recentOrder() string {
	return fmt.Sprintf("%s DESC, id ASC", repo.timestampColumn)
}
