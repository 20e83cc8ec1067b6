package repository

import (
	"testing"

	"github.com/planwise-dev/planwise-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.ProjectCollaborator{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, repo UserRepository, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, PasswordHash: "hashed"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserRepository_CreateDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, repo, "alice", "alice@example.com")

	err := repo.Create(&models.User{Username: "alice", Email: "other@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	err = repo.Create(&models.User{Username: "other", Email: "alice@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRepository_FindByLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	alice := createTestUser(t, repo, "alice", "alice@example.com")

	byUsername, err := repo.FindByLogin("alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byUsername.ID)

	byEmail, err := repo.FindByLogin("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byEmail.ID)

	_, err = repo.FindByLogin("nobody")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdateAllowList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	alice := createTestUser(t, repo, "alice", "alice@example.com")

	err := repo.Update(alice, map[string]any{
		"email":         "alice@new.example.com",
		"password_hash": "smuggled",
		"id":            999,
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, alice.ID).Error)
	require.Equal(t, "alice@new.example.com", stored.Email)
	require.Equal(t, "hashed", stored.PasswordHash)
}

func TestUserRepository_UpdateRejectsBadType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	alice := createTestUser(t, repo, "alice", "alice@example.com")

	err := repo.Update(alice, map[string]any{"username": 42})
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	alice := createTestUser(t, users, "alice", "alice@example.com")
	bob := createTestUser(t, users, "bob", "bob@example.com")

	owned := &models.Project{Title: "Alice's Project", OwnerID: alice.ID}
	require.NoError(t, db.Create(owned).Error)
	bobsProject := &models.Project{Title: "Bob's Project", OwnerID: bob.ID}
	require.NoError(t, db.Create(bobsProject).Error)

	require.NoError(t, db.Create(&models.Task{Title: "alice task", UserID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Task{Title: "in alice's project", UserID: bob.ID, ProjectID: &owned.ID}).Error)
	require.NoError(t, db.Create(&models.Task{Title: "bob task", UserID: bob.ID}).Error)

	require.NoError(t, db.Create(&models.ProjectCollaborator{UserID: bob.ID, ProjectID: owned.ID, Role: models.RoleMember}).Error)
	require.NoError(t, db.Create(&models.ProjectCollaborator{UserID: alice.ID, ProjectID: bobsProject.ID, Role: models.RoleViewer}).Error)

	require.NoError(t, users.Delete(alice.ID))

	// Alice, her owned project, every task in it, her own tasks and
	// her collaboration rows are all gone.
	_, err := users.FindByID(alice.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var projectCount int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	require.EqualValues(t, 1, projectCount)

	var tasks []models.Task
	require.NoError(t, db.Find(&tasks).Error)
	require.Len(t, tasks, 1)
	require.Equal(t, "bob task", tasks[0].Title)

	var collabCount int64
	require.NoError(t, db.Model(&models.ProjectCollaborator{}).Count(&collabCount).Error)
	require.EqualValues(t, 0, collabCount)

	// Bob is untouched.
	_, err = users.FindByID(bob.ID)
	require.NoError(t, err)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(12345)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
