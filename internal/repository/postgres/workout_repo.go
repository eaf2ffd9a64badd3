package postgres

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository returns a WorkoutRepository on the workouts table.
// The identity column supplies unique, never reused ids.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	var rows []workoutRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Workout, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *workoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var row workoutRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	w := row.toDomain()
	return &w, nil
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	now := time.Now().UTC()
	workout.ID = 0
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Date.IsZero() {
		workout.Date = now
	}
	row := toWorkoutRow(workout)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	workout.ID = row.ID
	return row.ID, nil
}

// Update locks the row for the length of a transaction, so the mutator
// always sees the latest committed state.
func (r *workoutRepository) Update(ctx context.Context, id int64, mutate repository.WorkoutMutator) (*domain.Workout, error) {
	var updated domain.Workout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row workoutRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		current := row.toDomain()
		next := current.Clone()
		if err := mutate(&next); err != nil {
			return err
		}
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = time.Now().UTC()

		nextRow := toWorkoutRow(&next)
		if err := tx.Save(&nextRow).Error; err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete uses RETURNING so only the statement that actually removed the row
// gets it back.
func (r *workoutRepository) Delete(ctx context.Context, id int64) (*domain.Workout, error) {
	var rows []workoutRow
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	w := rows[0].toDomain()
	return &w, nil
}
