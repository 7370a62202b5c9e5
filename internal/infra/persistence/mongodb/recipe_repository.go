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

// recipeRepository implements the domain.RecipeRepository interface on the recipes collection.
type recipeRepository struct {
	coll *mongo.Collection
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *mongo.Database) repository.RecipeRepository {
	return &recipeRepository{coll: db.Collection(model.RecipeCollection)}
}

func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := model.FromRecipeEntity(recipe)
	if recipeM.ID.IsZero() {
		recipeM.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, recipeM); err != nil {
		return errors.Wrap(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID

	return nil
}

func (repo *recipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipeM); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return model.ToRecipeEntity(&recipeM), nil
}

// List returns all recipes, newest first.
func (repo *recipeRepository) List(ctx context.Context) ([]*entity.Recipe, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	var recipesM []model.RecipeModel
	if err := cursor.All(ctx, &recipesM); err != nil {
		return nil, errors.Wrap(err, "failed to decode recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipesM))
	for i := range recipesM {
		recipes = append(recipes, model.ToRecipeEntity(&recipesM[i]))
	}

	return recipes, nil
}

func (repo *recipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete recipe")
	}
	if res.DeletedCount == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

func (repo *recipeRepository) DeleteByAuthor(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := repo.coll.DeleteMany(ctx, bson.M{"user": userID})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete recipes by author")
	}

	return res.DeletedCount, nil
}

// AddLike pushes the like only when the user has none yet.
func (repo *recipeRepository) AddLike(ctx context.Context, recipeID primitive.ObjectID, like *entity.Like) ([]entity.Like, error) {
	if like.ID.IsZero() {
		like.ID = primitive.NewObjectID()
	}

	filter := bson.M{"_id": recipeID, "likes.user": bson.M{"$ne": like.User}}
	update := bson.M{"$push": bson.M{"likes": bson.M{
		"$each":     bson.A{model.FromLikeEntity(like)},
		"$position": 0,
	}}}

	recipeM, err := repo.updateOne(ctx, filter, update, "likes")
	if err != nil {
		return nil, repo.explainMiss(ctx, recipeID, err, repository.ErrAlreadyLiked)
	}

	return model.ToLikeEntities(recipeM.Likes), nil
}

// RemoveLike pulls the like of userID when one exists.
func (repo *recipeRepository) RemoveLike(ctx context.Context, recipeID, userID primitive.ObjectID) ([]entity.Like, error) {
	filter := bson.M{"_id": recipeID, "likes.user": userID}
	update := bson.M{"$pull": bson.M{"likes": bson.M{"user": userID}}}

	recipeM, err := repo.updateOne(ctx, filter, update, "likes")
	if err != nil {
		return nil, repo.explainMiss(ctx, recipeID, err, repository.ErrNotLiked)
	}

	return model.ToLikeEntities(recipeM.Likes), nil
}

func (repo *recipeRepository) AddComment(ctx context.Context, recipeID primitive.ObjectID, comment *entity.Comment) ([]entity.Comment, error) {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}

	update := bson.M{"$push": bson.M{"comments": bson.M{
		"$each":     bson.A{model.FromCommentEntity(comment)},
		"$position": 0,
	}}}

	recipeM, err := repo.updateOne(ctx, bson.M{"_id": recipeID}, update, "comments")
	if err != nil {
		return nil, repo.explainMiss(ctx, recipeID, err, repository.ErrRecipeNotFound)
	}

	return model.ToCommentEntities(recipeM.Comments), nil
}

// RemoveComment pulls the comment only while it still exists and belongs to authorID.
func (repo *recipeRepository) RemoveComment(ctx context.Context, recipeID, commentID, authorID primitive.ObjectID) ([]entity.Comment, error) {
	filter := bson.M{
		"_id":      recipeID,
		"comments": bson.M{"$elemMatch": bson.M{"_id": commentID, "user": authorID}},
	}
	update := bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}}

	recipeM, err := repo.updateOne(ctx, filter, update, "comments")
	if err != nil {
		return nil, repo.explainMiss(ctx, recipeID, err, repository.ErrCommentNotFound)
	}

	return model.ToCommentEntities(recipeM.Comments), nil
}

// updateOne applies update to the document matching filter and returns the
// post-update document projected to field.
func (repo *recipeRepository) updateOne(ctx context.Context, filter, update bson.M, field string) (*model.RecipeModel, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{field: 1})

	var recipeM model.RecipeModel
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&recipeM); err != nil {
		return nil, err
	}

	return &recipeM, nil
}

// explainMiss turns a failed conditional update into a domain error: ErrRecipeNotFound
// when the recipe is gone, otherwise conditionErr.
func (repo *recipeRepository) explainMiss(ctx context.Context, recipeID primitive.ObjectID, err, conditionErr error) error {
	if !isNoDocuments(err) {
		return errors.Wrap(err, "failed to update recipe")
	}

	found, err := exists(ctx, repo.coll, bson.M{"_id": recipeID})
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrRecipeNotFound
	}

	return conditionErr
}
