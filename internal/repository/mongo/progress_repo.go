package mongo

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	weightCollectionName = "weight_logs"
	mealCollectionName   = "meals"
)

type mongoWeightRepository struct {
	collection *mongo.Collection
}

// NewMongoWeightRepository creates a weight log repository backed by MongoDB.
func NewMongoWeightRepository(db *mongo.Database) repository.WeightRepository {
	return &mongoWeightRepository{collection: db.Collection(weightCollectionName)}
}

func (r *mongoWeightRepository) Create(ctx context.Context, entry *domain.WeightEntry) (string, error) {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if entry.Date.IsZero() {
		entry.Date = entry.CreatedAt
	}
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *mongoWeightRepository) ListByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	entries := []domain.WeightEntry{}
	if err := findAll(ctx, r.collection, userID, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type mongoMealRepository struct {
	collection *mongo.Collection
}

// NewMongoMealRepository creates a meal repository backed by MongoDB.
func NewMongoMealRepository(db *mongo.Database) repository.MealRepository {
	return &mongoMealRepository{collection: db.Collection(mealCollectionName)}
}

func (r *mongoMealRepository) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	meal.ID = uuid.NewString()
	meal.CreatedAt = time.Now().UTC()
	if _, err := r.collection.InsertOne(ctx, meal); err != nil {
		return "", err
	}
	return meal.ID, nil
}

func (r *mongoMealRepository) ListByUser(ctx context.Context, userID string) ([]domain.Meal, error) {
	meals := []domain.Meal{}
	if err := findAll(ctx, r.collection, userID, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mongoMealRepository) Delete(ctx context.Context, userID, mealID string) error {
	// Filter on both ids so one user cannot delete another's meal
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": mealID, "userId": userID})
	return err
}

// findAll decodes every document of a user, oldest first.
func findAll(ctx context.Context, collection *mongo.Collection, userID string, out interface{}) error {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		return err
	}
	return cursor.Err()
}

// EnsureUserScopedIndexes indexes userId+createdAt on a per-user collection.
func EnsureUserScopedIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index(),
	})
	return err
}

// NewSet wires the MongoDB backend against db.
func NewSet(db *mongo.Database) *repository.Set {
	return &repository.Set{
		Workouts: NewMongoWorkoutRepository(db),
		Users:    NewMongoUserRepository(db),
		Weights:  NewMongoWeightRepository(db),
		Meals:    NewMongoMealRepository(db),
	}
}

// EnsureIndexes creates every index the backend relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := EnsureWorkoutIndexes(ctx, db.Collection(workoutCollectionName)); err != nil {
		return err
	}
	if err := EnsureUserIndexes(ctx, db.Collection(userCollectionName)); err != nil {
		return err
	}
	if err := EnsureUserScopedIndexes(ctx, db.Collection(weightCollectionName)); err != nil {
		return err
	}
	return EnsureUserScopedIndexes(ctx, db.Collection(mealCollectionName))
}
