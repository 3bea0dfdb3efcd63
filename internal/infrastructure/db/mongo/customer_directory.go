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

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

const customersCollection = "customers"

// CustomerDirectory implements ports.CustomerDirectory on the customers
// collection. Single-document updates are atomic in MongoDB, which serialises
// concurrent token issuance for one customer.
type CustomerDirectory struct {
	coll *mongo.Collection
}

func NewCustomerDirectory(db *mongo.Database) *CustomerDirectory {
	return &CustomerDirectory{coll: db.Collection(customersCollection)}
}

type mongoCustomer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Login       string             `bson:"login"`
	Hash        string             `bson:"hash"`
	AccessToken string             `bson:"access_token"`
}

func (m mongoCustomer) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Login:        m.Login,
		PasswordHash: m.Hash,
		AccessToken:  m.AccessToken,
	}
}

// FindByID treats ids that are not valid ObjectIDs as absent.
func (r *CustomerDirectory) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CustomerDirectory) FindOneWhere(ctx context.Context, field ports.Field, value string) (*domain.Customer, error) {
	switch field {
	case ports.FieldLogin, ports.FieldAccessToken:
	default:
		return nil, fmt.Errorf("find customer: unsupported field %q", field)
	}
	return r.findOne(ctx, bson.M{string(field): value})
}

func (r *CustomerDirectory) findOne(ctx context.Context, filter bson.M) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCustomer
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CustomerDirectory) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCustomer{
		Name:        c.Name,
		Login:       c.Login,
		Hash:        c.PasswordHash,
		AccessToken: c.AccessToken,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCustomerExists
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert customer: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *CustomerDirectory) Update(ctx context.Context, c *domain.Customer) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         c.Name,
		"login":        c.Login,
		"hash":         c.PasswordHash,
		"access_token": c.AccessToken,
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// SetAccessTokenIfEmpty matches records whose token is empty or missing, so
// only one of several concurrent first logins can write.
func (r *CustomerDirectory) SetAccessTokenIfEmpty(ctx context.Context, id, token string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrCustomerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "access_token": bson.M{"$in": bson.A{"", nil}}}
	update := bson.M{"$set": bson.M{"access_token": token}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("set access token: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return false, fmt.Errorf("set access token: %w", err)
		}
		if n == 0 {
			return false, domain.ErrCustomerNotFound
		}
		return false, nil
	}
	return true, nil
}

// EnsureIndexes enforces login uniqueness and indexes token lookups.
func (r *CustomerDirectory) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "login", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "access_token", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
