package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
)

type cooldownRepositoryImpl struct {
	db   *gorm.DB
	feed *ChangeFeed
}

func NewCooldownRepository(db *gorm.DB, feed *ChangeFeed) domain.CooldownRepository {
	return &cooldownRepositoryImpl{
		db:   db,
		feed: feed,
	}
}

func (r *cooldownRepositoryImpl) SetTarget(ctx context.Context, target domain.CooldownTarget) error {
	m := &ValueModel{
		Namespace: r.feed.Namespace(),
		Key:       PathCooldown,
		Value:     target.Seconds(),
		UpdatedAt: time.Now(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to write cooldown target",
			"seconds", target.Seconds(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.DebugContext(ctx, "cooldown target written",
		"seconds", target.Seconds(),
	)

	r.feed.Notify(ctx, PathCooldown)

	return nil
}

// GetTarget reads an unset cooldown as zero.
func (r *cooldownRepositoryImpl) GetTarget(ctx context.Context) (domain.CooldownTarget, error) {
	var m ValueModel

	err := r.db.WithContext(ctx).
		Where("namespace = ? AND key = ?", r.feed.Namespace(), PathCooldown).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CooldownTargetFromStore(0), nil
		}

		slog.ErrorContext(ctx, "failed to read cooldown target",
			"error", err,
		)

		return domain.CooldownTarget{}, err
	}

	return domain.CooldownTargetFromStore(m.Value), nil
}

func (r *cooldownRepositoryImpl) Watch(ctx context.Context) (domain.Watch[domain.CooldownTarget], error) {
	return startWatch(ctx, r.feed, PathCooldown, r.GetTarget)
}
