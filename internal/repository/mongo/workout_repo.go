// internal/repository/mongo/workout_repo.go
package mongo

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	workoutCollectionName = "workouts"
	counterCollectionName = "counters"
	workoutCounterID      = "workouts"
)

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
// Ids come from a counter document so they stay unique across processes.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
		counters:   db.Collection(counterCollectionName),
	}
}

// nextID atomically increments and returns the workout sequence.
func (r *mongoWorkoutRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": workoutCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// List returns all workouts. Ids are monotonic, so sorting by _id is insertion order.
func (r *mongoWorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}
	workout.ID = id
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Date.IsZero() {
		workout.Date = now
	}

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return 0, err
	}
	return id, nil
}

// Update reads the workout, applies mutate, and replaces the document.
// The replace is conditional on updatedAt so a concurrent writer is not
// silently overwritten; the loser sees ErrNotFound only if the record vanished.
func (r *mongoWorkoutRepository) Update(ctx context.Context, id int64, mutate repository.WorkoutMutator) (*domain.Workout, error) {
	for {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		next := current.Clone()
		if err := mutate(&next); err != nil {
			return nil, err
		}
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = time.Now().UTC()

		filter := bson.M{"_id": id, "updatedAt": current.UpdatedAt}
		result, err := r.collection.ReplaceOne(ctx, filter, next)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 1 {
			return &next, nil
		}
		// Someone else wrote in between; retry against the fresh copy.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
}

// Delete removes the workout; a missing id is not an error.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id int64) (*domain.Workout, error) {
	var removed domain.Workout
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &removed, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Grouping by day and filtering templates
			Keys:    bson.D{{Key: "day", Value: 1}, {Key: "isTemplate", Value: 1}},
			Options: options.Index(),
		},
		{
			// Recent workouts
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
