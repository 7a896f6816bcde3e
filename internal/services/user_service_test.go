package services_test

import (
	"context"
	"testing"

	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHashesPassword(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewUserService(stores.Users)

	user, err := svc.Create(context.Background(), services.CreateUserInput{
		Username: "operator1",
		Password: "secret123",
		Email:    "op1@parking.local",
		FullName: "Operator One",
		Role:     models.RoleOperator,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestCreateUserUniqueness(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewUserService(stores.Users)

	_, err := svc.Create(context.Background(), services.CreateUserInput{
		Username: "operator1",
		Password: "secret123",
		Email:    "op1@parking.local",
		Role:     models.RoleOperator,
	})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), services.CreateUserInput{
		Username: "operator1",
		Password: "other",
		Email:    "different@parking.local",
		Role:     models.RoleOperator,
	})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	_, err = svc.Create(context.Background(), services.CreateUserInput{
		Username: "operator2",
		Password: "other",
		Email:    "op1@parking.local",
		Role:     models.RoleOperator,
	})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestUpdateUserLeavesPasswordAlone(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewUserService(stores.Users)

	user, err := svc.Create(context.Background(), services.CreateUserInput{
		Username: "manager1",
		Password: "secret123",
		Email:    "mgr@parking.local",
		Role:     models.RoleManager,
	})
	assert.NoError(t, err)
	originalHash := user.Password

	updated, err := svc.Update(context.Background(), user.ID, services.UpdateUserInput{
		FullName: "Manager One",
		Email:    "manager.one@parking.local",
		Role:     models.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Manager One", updated.FullName)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, originalHash, updated.Password)
}

func TestUpdatePasswordRehashes(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewUserService(stores.Users)

	user, err := svc.Create(context.Background(), services.CreateUserInput{
		Username: "operator1",
		Password: "oldpass1",
		Email:    "op1@parking.local",
		Role:     models.RoleOperator,
	})
	assert.NoError(t, err)

	updated, err := svc.UpdatePassword(context.Background(), user.ID, "newpass1")
	assert.NoError(t, err)
	assert.NotEqual(t, user.Password, updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("oldpass1")))
}

func TestUserNotFound(t *testing.T) {
	stores := setupTestStores(t)
	svc := services.NewUserService(stores.Users)

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestLogin(t *testing.T) {
	stores := setupTestStores(t)
	users := services.NewUserService(stores.Users)
	auth := services.NewAuthService(stores.Users)

	_, err := users.Create(context.Background(), services.CreateUserInput{
		Username: "admin",
		Password: "admin123",
		Email:    "admin@parking.local",
		Role:     models.RoleAdmin,
	})
	assert.NoError(t, err)

	token, user, err := auth.Login(context.Background(), "admin", "admin123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", user.Username)

	_, _, err = auth.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = auth.Login(context.Background(), "ghost", "admin123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
