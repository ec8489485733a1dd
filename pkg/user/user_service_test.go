package user

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"context"

	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User // keyed by ID
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsers(_ context.Context, _, _ int) ([]*entities.User, int64, error) {
	var result []*entities.User
	for _, user := range f.users {
		result = append(result, user)
	}
	return result, int64(len(result)), nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	for id, existing := range f.users {
		if existing.Email == user.Email && id != user.ID.String() {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo)

	res, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "sam@example.com",
		Password: "correct-horse",
		Name:     "Sam",
	})
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", res.Email)
	assert.Equal(t, "Sam", res.Name)

	stored := repo.users[res.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo)

	_, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "sam@example.com",
		Password: "correct-horse",
		Name:     "Sam",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "sam@example.com",
		Password: "battery-staple",
		Name:     "Other Sam",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestUpdateUserMergesNonEmptyFields(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo)

	created, err := service.Register(context.Background(), domain.RegisterUserRequest{
		Email:    "sam@example.com",
		Password: "correct-horse",
		Name:     "Sam",
	})
	require.NoError(t, err)

	updated, err := service.UpdateUser(context.Background(), created.ID, domain.UpdateUserRequest{
		Name: "Samantha",
	})
	require.NoError(t, err)
	assert.Equal(t, "Samantha", updated.Name)
	assert.Equal(t, "sam@example.com", updated.Email)
}

func TestUpdateUserNotFound(t *testing.T) {
	service := NewUserService(newFakeUserRepository())

	_, err := service.UpdateUser(context.Background(), uuid.NewString(), domain.UpdateUserRequest{
		Name: "Nobody",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUserNotFound(t *testing.T) {
	service := NewUserService(newFakeUserRepository())

	err := service.DeleteUser(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
