package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localjobs/localjobs-web/internal/domain/model"
)

// MongoNotificationRepo stores notifications as documents in a MongoDB collection.
// Documents use string UUID ids and server-side timestamps ($currentDate).
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a repository over the given collection.
func NewMongoNotificationRepo(coll *mongo.Collection) *MongoNotificationRepo {
	return &MongoNotificationRepo{coll: coll}
}

// EnsureIndexes creates the single-field owner index used by List.
func (r *MongoNotificationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("notifications_user_id"),
	})
	if err != nil {
		return classifyMongoErr("create notification index", err)
	}
	return nil
}

// List returns every notification owned by userID in storage order.
func (r *MongoNotificationRepo) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, classifyMongoErr("list notifications", err)
	}
	var docs []model.Notification
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, classifyMongoErr("decode notifications", err)
	}

	res := make([]*model.Notification, len(docs))
	for i := range docs {
		res[i] = &docs[i]
	}
	return res, nil
}

// Create inserts a notification. createdAt is stamped by the server through an upsert.
func (r *MongoNotificationRepo) Create(
	ctx context.Context,
	req *model.CreateNotificationRequest,
) (*model.Notification, error) {
	if req == nil {
		return nil, ErrCreateRequestRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := bson.M{
		"userId":  req.UserID,
		"message": req.Message,
		"type":    req.Type,
		"read":    false,
		"readAt":  nil,
	}
	if req.Link != nil {
		fields["link"] = *req.Link
	}
	update := bson.M{
		"$setOnInsert": fields,
		"$currentDate": bson.M{"createdAt": true},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out model.Notification
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": uuid.NewString()}, update, opts).Decode(&out)
	if err != nil {
		return nil, classifyMongoErr("create notification", err)
	}
	return &out, nil
}

// MarkRead sets read=true and stamps readAt with the server clock.
func (r *MongoNotificationRepo) MarkRead(ctx context.Context, id string) error {
	return r.toggle(ctx, id, bson.M{
		"$set":         bson.M{"read": true},
		"$currentDate": bson.M{"readAt": true},
	})
}

// MarkUnread sets read=false and stores an explicit null readAt.
func (r *MongoNotificationRepo) MarkUnread(ctx context.Context, id string) error {
	return r.toggle(ctx, id, bson.M{
		"$set": bson.M{"read": false, "readAt": nil},
	})
}

func (r *MongoNotificationRepo) toggle(ctx context.Context, id string, update bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return classifyMongoErr("update notification", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func classifyMongoErr(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotificationNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return unavailable(fmt.Errorf("%s: %w", op, err))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
