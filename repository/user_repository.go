package repository

import (
	"context"
	"errors"
	"time"

	"safeher/customerrors"
	"safeher/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the document-store boundary for user records. FindByPhone
// returns (nil, nil) when no record exists. The write methods are atomic
// conditional operations so concurrent registrations or friend additions for
// the same phone number cannot both succeed.
type UserRepository interface {
	FindByPhone(ctx context.Context, phoneNumber string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) error
	SetPin(ctx context.Context, phoneNumber, pinHash string) error
	SetName(ctx context.Context, phoneNumber, name string) error
	AppendFriend(ctx context.Context, phoneNumber string, friend model.Friend) error
	Friends(ctx context.Context, phoneNumber string) ([]model.Friend, error)
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		collection: db.Collection("users"),
	}
}

func (r *MongoUserRepository) FindByPhone(ctx context.Context, phoneNumber string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"_id": phoneNumber}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Insert creates the record if and only if the phone number is unused. The
// unique index on _id turns a lost existence-check race into a duplicate-key
// error instead of a silent overwrite.
func (r *MongoUserRepository) Insert(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Friends == nil {
		user.Friends = []model.Friend{}
	}

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return customerrors.ErrUserAlreadyExists
	}
	return err
}

func (r *MongoUserRepository) SetPin(ctx context.Context, phoneNumber, pinHash string) error {
	return r.setFields(ctx, phoneNumber, bson.M{"pin": pinHash})
}

func (r *MongoUserRepository) SetName(ctx context.Context, phoneNumber, name string) error {
	return r.setFields(ctx, phoneNumber, bson.M{"name": name})
}

func (r *MongoUserRepository) setFields(ctx context.Context, phoneNumber string, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": phoneNumber}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return customerrors.ErrUserNotFound
	}
	return nil
}

// AppendFriend pushes the friend in a single guarded update: the filter only
// matches when no entry with the same phone number is present, which keeps
// the list duplicate-free even under concurrent adds.
func (r *MongoUserRepository) AppendFriend(ctx context.Context, phoneNumber string, friend model.Friend) error {
	filter := bson.M{
		"_id":                 phoneNumber,
		"friends.phoneNumber": bson.M{"$ne": friend.PhoneNumber},
	}
	update := bson.M{
		"$push": bson.M{"friends": friend},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		user, err := r.FindByPhone(ctx, phoneNumber)
		if err != nil {
			return err
		}
		if user == nil {
			return customerrors.ErrUserNotFound
		}
		return customerrors.ErrDuplicateFriend
	}
	return nil
}

func (r *MongoUserRepository) Friends(ctx context.Context, phoneNumber string) ([]model.Friend, error) {
	user, err := r.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, customerrors.ErrUserNotFound
	}
	if user.Friends == nil {
		return []model.Friend{}, nil
	}
	return user.Friends, nil
}
