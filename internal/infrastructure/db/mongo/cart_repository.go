package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickshop/store-api/internal/core/domain"
)

const cartsCollection = "carts"

// CartRepository persists carts. Every filter pairs the cart id with the
// owner, so a cart belonging to someone else is indistinguishable from a
// missing one at this layer.
type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type mongoCart struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Owner string             `bson:"owner"`
	Items []string           `bson:"items"`
}

func (mc mongoCart) toDomain() *domain.Cart {
	items := mc.Items
	if items == nil {
		items = []string{}
	}
	return &domain.Cart{ID: mc.ID.Hex(), Owner: mc.Owner, Items: items}
}

func cartFilter(owner, cartID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		return nil, domain.ErrCartNotFound
	}
	return bson.M{"_id": oid, "owner": owner}, nil
}

func (r *CartRepository) Create(ctx context.Context, owner string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCart{Owner: owner, Items: []string{}}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CartRepository) FindByID(ctx context.Context, owner, cartID string) (*domain.Cart, error) {
	filter, err := cartFilter(owner, cartID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCart
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CartRepository) AddItem(ctx context.Context, owner, cartID, productID string) error {
	return r.updateItems(ctx, owner, cartID, bson.M{"$push": bson.M{"items": productID}})
}

func (r *CartRepository) RemoveItem(ctx context.Context, owner, cartID, productID string) error {
	return r.updateItems(ctx, owner, cartID, bson.M{"$pull": bson.M{"items": productID}})
}

func (r *CartRepository) ClearItems(ctx context.Context, owner, cartID string) error {
	return r.updateItems(ctx, owner, cartID, bson.M{"$set": bson.M{"items": []string{}}})
}

func (r *CartRepository) Delete(ctx context.Context, owner, cartID string) error {
	filter, err := cartFilter(owner, cartID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}

func (r *CartRepository) updateItems(ctx context.Context, owner, cartID string, update bson.M) error {
	filter, err := cartFilter(owner, cartID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update cart: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}
