package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"recipebook/internal/domain/entity"
	"recipebook/internal/domain/repository"
	"recipebook/internal/errors"
	"recipebook/internal/infra/persistence/model"
)

// profileRepository implements the domain.ProfileRepository interface on the profiles collection.
type profileRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{
		coll:  db.Collection(model.ProfileCollection),
		users: db.Collection(model.UserCollection),
	}
}

// withOwner builds the read pipeline joining the owner's name and avatar into "owner".
func withOwner(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.UserCollection,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$owner", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{"owner.email": 0, "owner.password": 0, "owner.date": 0}}},
	}
}

func (repo *profileRepository) aggregate(ctx context.Context, match bson.M) ([]model.ProfileModel, error) {
	cursor, err := repo.coll.Aggregate(ctx, withOwner(match))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query profiles")
	}

	var profiles []model.ProfileModel
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, errors.Wrap(err, "failed to decode profiles")
	}

	return profiles, nil
}

// FindByUserID returns the profile of userID with the owner joined.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	profiles, err := repo.aggregate(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return model.ToProfileEntity(&profiles[0]), nil
}

// List returns every profile with its owner joined.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	profilesM, err := repo.aggregate(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, 0, len(profilesM))
	for i := range profilesM {
		profiles = append(profiles, model.ToProfileEntity(&profilesM[i]))
	}

	return profiles, nil
}

// Upsert creates or updates the profile of userID in one find-and-modify.
// Website is only written when supplied; recipes start empty on insert.
func (repo *profileRepository) Upsert(ctx context.Context, userID primitive.ObjectID, fields entity.ProfileFields) (*entity.Profile, error) {
	set := bson.M{"status": fields.Status}
	if fields.Website != nil {
		set["website"] = *fields.Website
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"recipes": bson.A{}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var profileM model.ProfileModel
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(&profileM)
	if isDuplicateKey(err) {
		// Two first-time upserts raced on the unique user index; the loser now sees the winner's document.
		err = repo.coll.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(&profileM)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert profile")
	}

	return repo.attachOwner(ctx, &profileM)
}

// DeleteByUserID removes the profile of userID.
func (repo *profileRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"user": userID}); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}

// PrependRecipeEntry pushes entry to position 0 of the recipes array.
func (repo *profileRepository) PrependRecipeEntry(ctx context.Context, userID primitive.ObjectID, entry *entity.RecipeEntry) (*entity.Profile, error) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}

	update := bson.M{"$push": bson.M{"recipes": bson.M{
		"$each":     bson.A{model.FromRecipeEntryEntity(entry)},
		"$position": 0,
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profileM model.ProfileModel
	if err := repo.coll.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(&profileM); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to add recipe entry")
	}

	return repo.attachOwner(ctx, &profileM)
}

// RemoveRecipeEntry pulls the entry with entryID. The filter requires the entry to exist,
// so a missing entry never modifies the document.
func (repo *profileRepository) RemoveRecipeEntry(ctx context.Context, userID, entryID primitive.ObjectID) (*entity.Profile, error) {
	filter := bson.M{"user": userID, "recipes._id": entryID}
	update := bson.M{"$pull": bson.M{"recipes": bson.M{"_id": entryID}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profileM model.ProfileModel
	err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&profileM)
	if err == nil {
		return repo.attachOwner(ctx, &profileM)
	}
	if !isNoDocuments(err) {
		return nil, errors.Wrap(err, "failed to remove recipe entry")
	}

	found, err := exists(ctx, repo.coll, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrProfileNotFound
	}

	return nil, repository.ErrRecipeEntryNotFound
}

// attachOwner fills the owner's name and avatar on a profile returned by a write.
func (repo *profileRepository) attachOwner(ctx context.Context, profileM *model.ProfileModel) (*entity.Profile, error) {
	var owner model.OwnerModel
	opts := options.FindOne().SetProjection(bson.M{"name": 1, "avatar": 1})
	err := repo.users.FindOne(ctx, bson.M{"_id": profileM.User}, opts).Decode(&owner)
	switch {
	case err == nil:
		profileM.Owner = &owner
	case !isNoDocuments(err):
		return nil, errors.Wrap(err, "failed to load profile owner")
	}

	return model.ToProfileEntity(profileM), nil
}
