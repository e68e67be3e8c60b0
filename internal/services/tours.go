package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roam/internal/models"
)

// ErrTourNotFound is returned when no tour has the requested tourId.
var ErrTourNotFound = errors.New("tour not found")

// TourStore defines persistence operations on the tours collection.
type TourStore interface {
	Create(ctx context.Context, tour *models.Tour) error
	GetAll(ctx context.Context) ([]models.Tour, error)
	GetTitles(ctx context.Context) ([]models.TourTitle, error)
	GetByID(ctx context.Context, tourID int) (*models.Tour, error)
	Replace(ctx context.Context, tourID int, tour *models.Tour) (*models.Tour, error)
}

// MongoTourStore implements TourStore on MongoDB. tourId values come from
// an atomic counter document, so they are unique and strictly increasing
// even under concurrent creates.
type MongoTourStore struct {
	tours    *mongo.Collection
	counters *mongo.Collection
}

func NewMongoTourStore(db *mongo.Database) *MongoTourStore {
	return &MongoTourStore{
		tours:    db.Collection("tours"),
		counters: db.Collection("counters"),
	}
}

// nextTourID increments and returns the tourId counter.
func (s *MongoTourStore) nextTourID(ctx context.Context) (int, error) {
	filter := bson.M{"_id": "tourId"}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := s.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to advance tourId counter: %w", err)
	}
	return counter.Seq, nil
}

func (s *MongoTourStore) Create(ctx context.Context, tour *models.Tour) error {
	id, err := s.nextTourID(ctx)
	if err != nil {
		return err
	}
	tour.TourID = id

	if _, err := s.tours.InsertOne(ctx, tour); err != nil {
		return fmt.Errorf("failed to insert tour: %w", err)
	}
	return nil
}

func (s *MongoTourStore) GetAll(ctx context.Context) ([]models.Tour, error) {
	cursor, err := s.tours.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query tours: %w", err)
	}

	tours := []models.Tour{}
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}
	return tours, nil
}

func (s *MongoTourStore) GetTitles(ctx context.Context) ([]models.TourTitle, error) {
	opts := options.Find().SetProjection(bson.M{"title": 1, "_id": 0})
	cursor, err := s.tours.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query tour titles: %w", err)
	}

	titles := []models.TourTitle{}
	if err := cursor.All(ctx, &titles); err != nil {
		return nil, fmt.Errorf("failed to decode tour titles: %w", err)
	}
	return titles, nil
}

func (s *MongoTourStore) GetByID(ctx context.Context, tourID int) (*models.Tour, error) {
	var tour models.Tour
	err := s.tours.FindOne(ctx, bson.M{"tourId": tourID}).Decode(&tour)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tour %d: %w", tourID, err)
	}
	return &tour, nil
}

// Replace swaps the whole document for tourID with tour. Fields absent
// from tour are overwritten with their zero values; tourId is preserved.
func (s *MongoTourStore) Replace(ctx context.Context, tourID int, tour *models.Tour) (*models.Tour, error) {
	tour.TourID = tourID

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated models.Tour
	err := s.tours.FindOneAndReplace(ctx, bson.M{"tourId": tourID}, tour, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace tour %d: %w", tourID, err)
	}
	return &updated, nil
}
