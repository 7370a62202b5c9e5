package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"recipebook/config"
	"recipebook/internal/domain/entity"
	"recipebook/internal/domain/repository"
	"recipebook/internal/errors"
)

func setupDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("recipebook_test")
	require.NoError(t, EnsureIndexes(ctx, db))

	return db
}

func createUser(t *testing.T, users repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Ann", Email: email, PasswordHash: "hash", Avatar: "https://avatar", CreatedAt: time.Now()}
	require.NoError(t, users.Create(context.Background(), user))

	return user
}

func TestMongoRepositories(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	recipes := NewRecipeRepository(db)

	t.Run("users enforce unique email", func(t *testing.T) {
		createUser(t, users, "dup@example.com")

		err := users.Create(ctx, &entity.User{Name: "Bob", Email: "dup@example.com"})
		assert.True(t, errors.Is(err, repository.ErrDuplicateEmail))

		_, err = users.FindByEmail(ctx, "nobody@example.com")
		assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	})

	t.Run("profile upsert, entries and owner join", func(t *testing.T) {
		owner := createUser(t, users, "chef@example.com")
		website := "https://chef.example.com"

		created, err := profiles.Upsert(ctx, owner.ID, entity.ProfileFields{Website: &website, Status: "Chef"})
		require.NoError(t, err)
		assert.Equal(t, "Ann", created.User.Name)
		assert.Empty(t, created.Recipes)

		updated, err := profiles.Upsert(ctx, owner.ID, entity.ProfileFields{Status: "Head chef"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, website, updated.Website)
		assert.Equal(t, "Head chef", updated.Status)

		first := &entity.RecipeEntry{Title: "Soup", IngredientName: "water", IngredientCount: 1, IngredientUnit: "l", Instruction: "boil", PublishDate: time.Now()}
		second := &entity.RecipeEntry{Title: "Bread", IngredientName: "flour", IngredientCount: 500, IngredientUnit: "g", Instruction: "bake", PublishDate: time.Now()}
		_, err = profiles.PrependRecipeEntry(ctx, owner.ID, first)
		require.NoError(t, err)
		withBoth, err := profiles.PrependRecipeEntry(ctx, owner.ID, second)
		require.NoError(t, err)
		require.Len(t, withBoth.Recipes, 2)
		assert.Equal(t, "Bread", withBoth.Recipes[0].Title)

		_, err = profiles.RemoveRecipeEntry(ctx, owner.ID, primitive.NewObjectID())
		assert.True(t, errors.Is(err, repository.ErrRecipeEntryNotFound))

		afterRemove, err := profiles.RemoveRecipeEntry(ctx, owner.ID, first.ID)
		require.NoError(t, err)
		require.Len(t, afterRemove.Recipes, 1)
		assert.Equal(t, second.ID, afterRemove.Recipes[0].ID)

		read, err := profiles.FindByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://avatar", read.User.Avatar)

		_, err = profiles.PrependRecipeEntry(ctx, primitive.NewObjectID(), first)
		assert.True(t, errors.Is(err, repository.ErrProfileNotFound))
	})

	t.Run("like then like again then unlike", func(t *testing.T) {
		author := createUser(t, users, "author@example.com")
		fan := primitive.NewObjectID()

		recipe := &entity.Recipe{User: author.ID, Name: author.Name, Text: "Pancakes", Date: time.Now()}
		require.NoError(t, recipes.Create(ctx, recipe))

		likes, err := recipes.AddLike(ctx, recipe.ID, &entity.Like{User: fan})
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, fan, likes[0].User)

		_, err = recipes.AddLike(ctx, recipe.ID, &entity.Like{User: fan})
		assert.True(t, errors.Is(err, repository.ErrAlreadyLiked))

		likes, err = recipes.RemoveLike(ctx, recipe.ID, fan)
		require.NoError(t, err)
		assert.Empty(t, likes)

		_, err = recipes.RemoveLike(ctx, recipe.ID, fan)
		assert.True(t, errors.Is(err, repository.ErrNotLiked))

		_, err = recipes.AddLike(ctx, primitive.NewObjectID(), &entity.Like{User: fan})
		assert.True(t, errors.Is(err, repository.ErrRecipeNotFound))
	})

	t.Run("comments are removed by id and author", func(t *testing.T) {
		author := primitive.NewObjectID()
		other := primitive.NewObjectID()
		recipe := &entity.Recipe{User: author, Text: "Stew", Date: time.Now()}
		require.NoError(t, recipes.Create(ctx, recipe))

		older := &entity.Comment{User: other, Text: "first", Date: time.Now()}
		newer := &entity.Comment{User: author, Text: "second", Date: time.Now()}
		_, err := recipes.AddComment(ctx, recipe.ID, older)
		require.NoError(t, err)
		comments, err := recipes.AddComment(ctx, recipe.ID, newer)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, newer.ID, comments[0].ID)

		_, err = recipes.RemoveComment(ctx, recipe.ID, older.ID, author)
		assert.True(t, errors.Is(err, repository.ErrCommentNotFound))

		comments, err = recipes.RemoveComment(ctx, recipe.ID, older.ID, other)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, newer.ID, comments[0].ID)
	})

	t.Run("account deletion cascades without transactions", func(t *testing.T) {
		owner := createUser(t, users, "leaving@example.com")
		_, err := profiles.Upsert(ctx, owner.ID, entity.ProfileFields{Status: "bye"})
		require.NoError(t, err)
		require.NoError(t, recipes.Create(ctx, &entity.Recipe{User: owner.ID, Text: "x", Date: time.Now()}))

		tm := NewTransactionManager(db, &config.Config{Mongo: &config.MongoConfig{}})
		err = tm.Execute(ctx, func(txCtx context.Context, f repository.RepositoryFactory) error {
			if err := f.ProfileRepo().DeleteByUserID(txCtx, owner.ID); err != nil {
				return err
			}
			if _, err := f.RecipeRepo().DeleteByAuthor(txCtx, owner.ID); err != nil {
				return err
			}

			return f.UserRepo().Delete(txCtx, owner.ID)
		})
		require.NoError(t, err)

		_, err = users.FindByID(ctx, owner.ID)
		assert.True(t, errors.Is(err, repository.ErrUserNotFound))
		_, err = profiles.FindByUserID(ctx, owner.ID)
		assert.True(t, errors.Is(err, repository.ErrProfileNotFound))
		removed, err := recipes.DeleteByAuthor(ctx, owner.ID)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}
