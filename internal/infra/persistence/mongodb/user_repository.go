package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipebook/internal/domain/entity"
	"recipebook/internal/domain/repository"
	"recipebook/internal/errors"
	"recipebook/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface on the users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(model.UserCollection)}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return model.ToUserEntity(&userM), nil
}

// Create inserts the user. The unique email index turns a concurrent duplicate into ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserEntity(user)
	if userM.ID.IsZero() {
		userM.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, userM); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// Delete removes the user.
func (repo *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
