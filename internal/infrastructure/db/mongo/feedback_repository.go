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

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

const feedbacksCollection = "feedbacks"

// FeedbackRepository persists feedback entries in MongoDB.
type FeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{coll: db.Collection(feedbacksCollection)}
}

type feedbackResponseDoc struct {
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"created_at"`
	AdminID   string    `bson:"admin_id"`
}

type feedbackDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Email     string               `bson:"email,omitempty"`
	Message   string               `bson:"message"`
	Type      string               `bson:"type"`
	Status    string               `bson:"status"`
	CreatedAt time.Time            `bson:"created_at"`
	UserID    string               `bson:"user_id,omitempty"`
	Likes     int                  `bson:"likes"`
	LikedBy   []string             `bson:"liked_by,omitempty"`
	Response  *feedbackResponseDoc `bson:"response,omitempty"`
}

func (d *feedbackDoc) toDomain() *domain.Feedback {
	f := &domain.Feedback{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Message:   d.Message,
		Type:      domain.FeedbackType(d.Type),
		Status:    domain.FeedbackStatus(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
		UserID:    d.UserID,
		Likes:     d.Likes,
		LikedBy:   d.LikedBy,
	}
	if d.Response != nil {
		f.Response = &domain.FeedbackResponse{
			Text:      d.Response.Text,
			CreatedAt: d.Response.CreatedAt.UTC(),
			AdminID:   d.Response.AdminID,
		}
	}
	return f
}

func (r *FeedbackRepository) Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := feedbackDoc{
		Name:      f.Name,
		Email:     f.Email,
		Message:   f.Message,
		Type:      string(f.Type),
		Status:    string(f.Status),
		CreatedAt: f.CreatedAt,
		UserID:    f.UserID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	created := *f
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc feedbackDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Feedback
	for cur.Next(ctx) {
		var doc feedbackDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// SetLike adds or removes userID from the liked-by set. $addToSet and
// $pull keep the operation idempotent under concurrent toggles.
func (r *FeedbackRepository) SetLike(ctx context.Context, id, userID string, liked bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFeedbackNotFound
	}

	update := bson.M{
		"$pull": bson.M{"liked_by": userID},
		"$inc":  bson.M{"likes": -1},
	}
	if liked {
		update = bson.M{
			"$addToSet": bson.M{"liked_by": userID},
			"$inc":      bson.M{"likes": 1},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("set like: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepository) SetResponse(ctx context.Context, id string, resp domain.FeedbackResponse) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"response": feedbackResponseDoc{
		Text:      resp.Text,
		CreatedAt: resp.CreatedAt,
		AdminID:   resp.AdminID,
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("set response: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepository) SetStatus(ctx context.Context, id string, status domain.FeedbackStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}
