package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

const (
	collectionMerchants      = "merchants"
	collectionMenuCategories = "menu_categories"
)

// PlaceRepository reads and writes merchants and their menu categories.
// Merchants and categories are keyed by ObjectID like customers are.
type PlaceRepository struct {
	merchants  *mongo.Collection
	categories *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) *PlaceRepository {
	return &PlaceRepository{
		merchants:  db.Collection(collectionMerchants),
		categories: db.Collection(collectionMenuCategories),
	}
}

type mongoMerchant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Address     string             `bson:"address"`
	Location    domain.Coordinates `bson:"location"`
}

func (m mongoMerchant) toDomain() *domain.Merchant {
	return &domain.Merchant{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Address:     m.Address,
		Location:    m.Location,
	}
}

type mongoMenuCategory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MerchantID primitive.ObjectID `bson:"merchant_id"`
	Name       string             `bson:"name"`
	Items      []domain.MenuItem  `bson:"items"`
}

func (c mongoMenuCategory) toDomain() *domain.MenuCategory {
	items := c.Items
	if items == nil {
		items = []domain.MenuItem{}
	}
	return &domain.MenuCategory{
		ID:         c.ID.Hex(),
		MerchantID: c.MerchantID.Hex(),
		Name:       c.Name,
		Items:      items,
	}
}

// objectID parses an id taken from a URL or request body. Ids that are not
// valid ObjectIDs can never match and are reported as missing.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func (r *PlaceRepository) ListMerchants(ctx context.Context) ([]*domain.Merchant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.merchants.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find merchants: %w", err)
	}
	var docs []mongoMerchant
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode merchants: %w", err)
	}
	merchants := make([]*domain.Merchant, 0, len(docs))
	for _, d := range docs {
		merchants = append(merchants, d.toDomain())
	}
	return merchants, nil
}

func (r *PlaceRepository) FindMerchant(ctx context.Context, id string) (*domain.Merchant, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrMerchantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoMerchant
	if err := r.merchants.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("find merchant: %w", err)
	}
	return m.toDomain(), nil
}

func (r *PlaceRepository) MenuCategories(ctx context.Context, merchantID string) ([]*domain.MenuCategory, error) {
	oid, ok := objectID(merchantID)
	if !ok {
		return []*domain.MenuCategory{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.categories.Find(ctx, bson.M{"merchant_id": oid})
	if err != nil {
		return nil, fmt.Errorf("find menu categories: %w", err)
	}
	var docs []mongoMenuCategory
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode menu categories: %w", err)
	}
	categories := make([]*domain.MenuCategory, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, d.toDomain())
	}
	return categories, nil
}

func (r *PlaceRepository) CreateMerchant(ctx context.Context, m *domain.Merchant) error {
	doc := mongoMerchant{
		Name:        m.Name,
		Description: m.Description,
		Address:     m.Address,
		Location:    m.Location,
	}
	if m.ID != "" {
		oid, ok := objectID(m.ID)
		if !ok {
			return fmt.Errorf("%w: id %q is not an ObjectID", domain.ErrInvalidMerchant, m.ID)
		}
		doc.ID = oid
	} else {
		doc.ID = primitive.NewObjectID()
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.merchants.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	m.ID = doc.ID.Hex()
	return nil
}

func (r *PlaceRepository) CreateMenuCategory(ctx context.Context, c *domain.MenuCategory) error {
	merchantID, ok := objectID(c.MerchantID)
	if !ok {
		return domain.ErrMerchantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.merchants.CountDocuments(ctx, bson.M{"_id": merchantID})
	if err != nil {
		return fmt.Errorf("find merchant: %w", err)
	}
	if n == 0 {
		return domain.ErrMerchantNotFound
	}

	doc := mongoMenuCategory{
		ID:         primitive.NewObjectID(),
		MerchantID: merchantID,
		Name:       c.Name,
		Items:      c.Items,
	}
	if c.ID != "" {
		oid, ok := objectID(c.ID)
		if !ok {
			return fmt.Errorf("%w: category id %q is not an ObjectID", domain.ErrInvalidMerchant, c.ID)
		}
		doc.ID = oid
	}
	if _, err := r.categories.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert menu category: %w", err)
	}
	c.ID = doc.ID.Hex()
	return nil
}

func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "merchant_id", Value: 1}},
	})
	return err
}
