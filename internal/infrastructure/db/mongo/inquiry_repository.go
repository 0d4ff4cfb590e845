package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

const collectionInquiries = "inquiries"

type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

type inquiryDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	VendorID   string             `bson:"vendor_id"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone,omitempty"`
	Message    string             `bson:"message"`
	ReceivedAt int64              `bson:"received_at"`
}

// Create persists an inquiry and fills in its generated ID.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := inquiryDoc{
		VendorID:   inquiry.VendorID,
		Name:       inquiry.Name,
		Email:      inquiry.Email,
		Phone:      inquiry.Phone,
		Message:    inquiry.Message,
		ReceivedAt: inquiry.ReceivedAt.Unix(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		inquiry.ID = oid.Hex()
	}
	return nil
}
