package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/config"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/errors"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	userID := primitive.NewObjectID()

	token, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, time.Hour, jwtService.TokenTTL())
}

func TestJWTService_TokenCarriesUserClaim(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	token, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	user, ok := claims["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.Hex(), user["id"])
	assert.Contains(t, claims, "exp")
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("another_secret_key", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	token, err := impl.GenerateToken(primitive.NewObjectID())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsNonObjectIDSubject(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]any{"id": "not-hex"},
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
