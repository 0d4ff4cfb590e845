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

	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

const collectionVendors = "vendors"

type VendorRepository struct {
	col *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{col: db.Collection(collectionVendors)}
}

type vendorDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	City      string             `bson:"city"`
	Phone     string             `bson:"phone,omitempty"`
	Email     string             `bson:"email,omitempty"`
	LogoURL   string             `bson:"logo_url,omitempty"`
	About     string             `bson:"about,omitempty"`
	Featured  bool               `bson:"featured"`
	CreatedAt int64              `bson:"created_at"`
}

func (d vendorDoc) toDomain() *domain.Vendor {
	return &domain.Vendor{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Category:  d.Category,
		City:      d.City,
		Phone:     d.Phone,
		Email:     d.Email,
		LogoURL:   d.LogoURL,
		About:     d.About,
		Featured:  d.Featured,
		CreatedAt: unixToTime(d.CreatedAt),
	}
}

// FindByID retrieves a vendor by its hex object ID.
func (r *VendorRepository) FindByID(ctx context.Context, id string) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVendorNotFound
	}

	var doc vendorDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns a page of vendors matching filter plus the total count.
func (r *VendorRepository) List(ctx context.Context, filter ports.ListVendorsFilter) ([]*domain.Vendor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.Featured {
		query["featured"] = true
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors: %w", err)
	}
	defer cur.Close(ctx)

	var vendors []*domain.Vendor
	for cur.Next(ctx) {
		var doc vendorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode vendor: %w", err)
		}
		vendors = append(vendors, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate vendors: %w", err)
	}

	return vendors, total, nil
}

// EnsureIndexes creates the indexes the directory queries rely on.
func (r *VendorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
