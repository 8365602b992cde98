package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const selectUserByEmail = `SELECT \* FROM "users" WHERE email = \$1`

func newTestAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock, PasswordHasher) {
	t.Helper()
	db, mock := newMockDB(t)
	hasher := NewBcryptHasher(bcrypt.MinCost)
	tokens, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	return NewAuthService(db, hasher, tokens), mock, hasher
}

func userRows(id uuid.UUID, email, hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}).
		AddRow(id.String(), email, hash, time.Now(), time.Now())
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, mock, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{Password: "pw123456"})
	assert.ErrorIs(t, err, ErrMissingFields)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mock, _ := newTestAuthService(t)

	mock.ExpectQuery(selectUserByEmail).
		WillReturnRows(userRows(uuid.New(), "a@b.com", "$2a$04$hash"))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	svc, mock, _ := newTestAuthService(t)

	mock.ExpectQuery(selectUserByEmail).WillReturnError(errors.New("db down"))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.Contains(t, err.Error(), "db down")
}

func TestAuthService_VerifyCredentials(t *testing.T) {
	svc, mock, hasher := newTestAuthService(t)
	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	id := uuid.New()

	// unknown email
	mock.ExpectQuery(selectUserByEmail).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = svc.VerifyCredentials(context.Background(), "nobody@b.com", "pw123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// wrong password
	mock.ExpectQuery(selectUserByEmail).WillReturnRows(userRows(id, "a@b.com", hash))
	_, err = svc.VerifyCredentials(context.Background(), "a@b.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// correct password
	mock.ExpectQuery(selectUserByEmail).WillReturnRows(userRows(id, "a@b.com", hash))
	user, err := svc.VerifyCredentials(context.Background(), "a@b.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NotEqual(t, "pw123456", user.Password)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_IssuesVerifiableToken(t *testing.T) {
	svc, mock, hasher := newTestAuthService(t)
	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	id := uuid.New()

	mock.ExpectQuery(selectUserByEmail).WillReturnRows(userRows(id, "a@b.com", hash))

	tok, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	claims, err := svc.tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrMissingFields)
}
