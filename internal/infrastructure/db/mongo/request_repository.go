package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightweb/agency-api/internal/core/domain"
)

const requestsCollection = "service_requests"

type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

type mongoRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ServiceID string             `bson:"service_id"`
	FormData  map[string]any     `bson:"form_data"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mr mongoRequest) toDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ID:        mr.ID.Hex(),
		UserID:    mr.UserID,
		ServiceID: mr.ServiceID,
		FormData:  mr.FormData,
		Status:    domain.RequestStatus(mr.Status),
		CreatedAt: mr.CreatedAt.UTC(),
	}
}

func (r *RequestRepository) Insert(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	doc := mongoRequest{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		FormData:  req.FormData,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	created := *req
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var mr mongoRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return mr.toDomain(), nil
}

// ListByUser returns the user's requests, newest first.
func (r *RequestRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

// ListAll returns every request, newest first.
func (r *RequestRepository) ListAll(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, bson.M{})
}

func (r *RequestRepository) list(ctx context.Context, filter bson.M) ([]*domain.ServiceRequest, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.ServiceRequest
	for cur.Next(ctx) {
		var mr mongoRequest
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		out = append(out, mr.toDomain())
	}
	return out, cur.Err()
}

// UpdateStatus sets the status and returns the updated document.
// Concurrent writers race at the storage layer; last write wins.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var mr mongoRequest
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("update request status: %w", err)
	}
	return mr.toDomain(), nil
}

// EnsureIndexes creates the lookup indexes used by the list queries.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
