package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clubcentral/pkg/utils"
)

// Collection names as they exist in the store.
const (
	ColPhotos        = "photos"
	ColEvents        = "events"
	ColMembers       = "members"
	ColDonations     = "donations"
	ColCollections   = "collections"
	ColExpenses      = "expenses"
	ColAchievements  = "achievements"
	ColNotifications = "notifications"
	ColAdminRequests = "adminRequests"
)

const (
	SortAsc  = 1
	SortDesc = -1
)

const storeTimeout = 10 * time.Second

// DocumentStore is the generic access layer the per-entity repositories
// compose: list with single-field ordering and equality filters, insert,
// partial update and delete against one named collection.
type DocumentStore interface {
	List(ctx context.Context, collection, orderField string, direction int, limit int64, results interface{}) error
	ListFiltered(ctx context.Context, collection string, filter bson.M, orderField string, direction int, limit int64, results interface{}) error
	FindOne(ctx context.Context, collection string, filter bson.M, result interface{}) error
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Update(ctx context.Context, collection, id string, partial bson.M) error
	Delete(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
}

type mongoStore struct {
	db *mongo.Database
}

func NewDocumentStore(db *mongo.Database) DocumentStore {
	return &mongoStore{db: db}
}

func (s *mongoStore) List(ctx context.Context, collection, orderField string, direction int, limit int64, results interface{}) error {
	return s.ListFiltered(ctx, collection, bson.M{}, orderField, direction, limit, results)
}

func (s *mongoStore) ListFiltered(ctx context.Context, collection string, filter bson.M, orderField string, direction int, limit int64, results interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	opts := options.Find()
	if orderField != "" {
		opts.SetSort(bson.D{{Key: orderField, Value: direction}})
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := cursor.All(ctx, results); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter bson.M, result interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.ErrNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", utils.ErrDatabaseError
	}
	return oid.Hex(), nil
}

func (s *mongoStore) Update(ctx context.Context, collection, id string, partial bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": partial})
	if err != nil {
		return utils.ErrDatabaseError
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return utils.ErrDatabaseError
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (s *mongoStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	count, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}
