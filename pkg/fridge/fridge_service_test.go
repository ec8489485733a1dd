package fridge

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"context"

	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFridgeRepository struct {
	fridges  map[string]*entities.Fridge
	mappings map[string]*entities.FridgeUser
}

func newFakeFridgeRepository() *fakeFridgeRepository {
	return &fakeFridgeRepository{
		fridges:  map[string]*entities.Fridge{},
		mappings: map[string]*entities.FridgeUser{},
	}
}

func mappingKey(fridgeID, userID string) string {
	return fridgeID + "/" + userID
}

func (f *fakeFridgeRepository) CreateFridge(_ context.Context, fridge *entities.Fridge) error {
	f.fridges[fridge.ID.String()] = fridge
	return nil
}

func (f *fakeFridgeRepository) GetFridgeByID(_ context.Context, id string) (*entities.Fridge, error) {
	fridge, ok := f.fridges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return fridge, nil
}

func (f *fakeFridgeRepository) GetFridges(_ context.Context, _, _ int) ([]*entities.Fridge, int64, error) {
	var result []*entities.Fridge
	for _, fridge := range f.fridges {
		result = append(result, fridge)
	}
	return result, int64(len(result)), nil
}

func (f *fakeFridgeRepository) UpdateFridge(_ context.Context, fridge *entities.Fridge) error {
	f.fridges[fridge.ID.String()] = fridge
	return nil
}

func (f *fakeFridgeRepository) DeleteFridge(_ context.Context, id string) error {
	delete(f.fridges, id)
	return nil
}

func (f *fakeFridgeRepository) CreateFridgeUser(_ context.Context, mapping *entities.FridgeUser) error {
	key := mappingKey(mapping.FridgeID.String(), mapping.UserID.String())
	if _, ok := f.mappings[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.mappings[key] = mapping
	return nil
}

func (f *fakeFridgeRepository) GetFridgeUser(_ context.Context, fridgeID, userID string) (*entities.FridgeUser, error) {
	mapping, ok := f.mappings[mappingKey(fridgeID, userID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mapping, nil
}

func (f *fakeFridgeRepository) GetFridgeUsers(_ context.Context, fridgeID string) ([]*entities.FridgeUser, error) {
	var result []*entities.FridgeUser
	for _, mapping := range f.mappings {
		if mapping.FridgeID.String() == fridgeID {
			result = append(result, mapping)
		}
	}
	return result, nil
}

func (f *fakeFridgeRepository) DeleteFridgeUser(_ context.Context, fridgeID, userID string) error {
	key := mappingKey(fridgeID, userID)
	if _, ok := f.mappings[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.mappings, key)
	return nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
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

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsers(_ context.Context, _, _ int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, _ *entities.User) error { return nil }

func (f *fakeUserRepository) DeleteUser(_ context.Context, _ string) error { return nil }

type shareFixture struct {
	service  FridgeService
	repo     *fakeFridgeRepository
	fridgeID uuid.UUID
	userID   uuid.UUID
}

func newShareFixture(t *testing.T) shareFixture {
	t.Helper()

	fridgeID := uuid.New()
	userID := uuid.New()

	repo := newFakeFridgeRepository()
	repo.fridges[fridgeID.String()] = &entities.Fridge{ID: fridgeID, Name: "office"}

	users := &fakeUserRepository{users: map[string]*entities.User{
		userID.String(): {ID: userID, Email: "sam@example.com", Name: "Sam"},
	}}

	return shareFixture{
		service:  NewFridgeService(repo, users),
		repo:     repo,
		fridgeID: fridgeID,
		userID:   userID,
	}
}

func TestShareFridge(t *testing.T) {
	f := newShareFixture(t)

	res, err := f.service.ShareFridge(context.Background(), f.fridgeID.String(), domain.ShareFridgeRequest{
		UserID: f.userID.String(),
		Role:   domain.RoleViewer,
	})
	require.NoError(t, err)
	assert.Equal(t, f.fridgeID.String(), res.FridgeID)
	assert.Equal(t, f.userID.String(), res.UserID)
	assert.Equal(t, domain.RoleViewer, res.Role)
}

func TestShareFridgeDuplicate(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.ShareFridge(context.Background(), f.fridgeID.String(), domain.ShareFridgeRequest{
		UserID: f.userID.String(),
		Role:   domain.RoleViewer,
	})
	require.NoError(t, err)

	_, err = f.service.ShareFridge(context.Background(), f.fridgeID.String(), domain.ShareFridgeRequest{
		UserID: f.userID.String(),
		Role:   domain.RoleEditor,
	})
	assert.ErrorIs(t, err, domain.ErrShareAlreadyExists)
}

func TestShareFridgeUnknownFridge(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.ShareFridge(context.Background(), uuid.NewString(), domain.ShareFridgeRequest{
		UserID: f.userID.String(),
		Role:   domain.RoleOwner,
	})
	assert.ErrorIs(t, err, domain.ErrFridgeNotFound)
}

func TestShareFridgeUnknownUser(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.ShareFridge(context.Background(), f.fridgeID.String(), domain.ShareFridgeRequest{
		UserID: uuid.NewString(),
		Role:   domain.RoleOwner,
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUnshareFridge(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.ShareFridge(context.Background(), f.fridgeID.String(), domain.ShareFridgeRequest{
		UserID: f.userID.String(),
		Role:   domain.RoleViewer,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.UnshareFridge(context.Background(), f.fridgeID.String(), f.userID.String()))
	assert.Empty(t, f.repo.mappings)
}

func TestUnshareFridgeMissingMapping(t *testing.T) {
	f := newShareFixture(t)

	err := f.service.UnshareFridge(context.Background(), f.fridgeID.String(), f.userID.String())
	assert.ErrorIs(t, err, domain.ErrFridgeUserNotFound)
}

func TestGetFridgeSharesUnknownFridge(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.GetFridgeShares(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFridgeNotFound)
}

func TestUpdateFridgeNotFound(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.service.UpdateFridge(context.Background(), uuid.NewString(), domain.UpdateFridgeRequest{
		Name: "garage",
	})
	assert.ErrorIs(t, err, domain.ErrFridgeNotFound)
}
