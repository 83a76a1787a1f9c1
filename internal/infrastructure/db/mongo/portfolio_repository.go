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

const portfolioCollection = "portfolio_items"

type PortfolioRepository struct {
	coll *mongo.Collection
}

func NewPortfolioRepository(db *mongo.Database) *PortfolioRepository {
	return &PortfolioRepository{coll: db.Collection(portfolioCollection)}
}

type mongoPortfolioItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"image_url"`
	Category    string             `bson:"category"`
	Client      string             `bson:"client,omitempty"`
	Challenge   string             `bson:"challenge,omitempty"`
	Strategy    string             `bson:"strategy,omitempty"`
	Results     string             `bson:"results,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (mi mongoPortfolioItem) toDomain() *domain.PortfolioItem {
	return &domain.PortfolioItem{
		ID:          mi.ID.Hex(),
		Title:       mi.Title,
		Description: mi.Description,
		ImageURL:    mi.ImageURL,
		Category:    mi.Category,
		Client:      mi.Client,
		Challenge:   mi.Challenge,
		Strategy:    mi.Strategy,
		Results:     mi.Results,
		CreatedAt:   mi.CreatedAt.UTC(),
	}
}

func (r *PortfolioRepository) Insert(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	doc := mongoPortfolioItem{
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		Client:      item.Client,
		Challenge:   item.Challenge,
		Strategy:    item.Strategy,
		Results:     item.Results,
		CreatedAt:   item.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert portfolio item: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PortfolioRepository) FindByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPortfolioItemNotFound
	}

	var mi mongoPortfolioItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPortfolioItemNotFound
		}
		return nil, fmt.Errorf("find portfolio item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *PortfolioRepository) FindByTitle(ctx context.Context, title string) (*domain.PortfolioItem, error) {
	var mi mongoPortfolioItem
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPortfolioItemNotFound
		}
		return nil, fmt.Errorf("find portfolio item by title: %w", err)
	}
	return mi.toDomain(), nil
}

// List returns all portfolio items, newest first.
func (r *PortfolioRepository) List(ctx context.Context) ([]*domain.PortfolioItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list portfolio items: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.PortfolioItem
	for cur.Next(ctx) {
		var mi mongoPortfolioItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode portfolio item: %w", err)
		}
		out = append(out, mi.toDomain())
	}
	return out, cur.Err()
}

func (r *PortfolioRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPortfolioItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete portfolio item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPortfolioItemNotFound
	}
	return nil
}
