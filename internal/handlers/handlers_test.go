package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/auth"
	"github.com/planwise-dev/planwise-api/internal/config"
	"github.com/planwise-dev/planwise-api/internal/database"
	"github.com/planwise-dev/planwise-api/internal/handlers"
	"github.com/planwise-dev/planwise-api/internal/models"
	"github.com/planwise-dev/planwise-api/internal/repository"
	"github.com/planwise-dev/planwise-api/internal/router"
	"github.com/planwise-dev/planwise-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenManager
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.ProjectCollaborator{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	collabRepo := repository.NewCollaboratorRepository(db)

	tokens := auth.NewTokenManager("test-secret", auth.DefaultTokenTTL)
	authService := services.NewAuthService(userRepo, tokens)

	cfg := &config.Config{CORSOrigins: []string{"http://localhost:3000"}}
	r := router.New(cfg, router.Deps{
		Tokens:        tokens,
		Auth:          handlers.NewAuthHandler(authService),
		Users:         handlers.NewUserHandler(userRepo),
		Tasks:         handlers.NewTaskHandler(taskRepo),
		Projects:      handlers.NewProjectHandler(projectRepo),
		Collaborators: handlers.NewCollaboratorHandler(collabRepo),
		ProjectRepo:   projectRepo,
		TaskRepo:      taskRepo,
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{db: db, router: r, tokens: tokens}
}

// signupUser registers a user through the API and returns the created
// user row and a valid token for them.
func (env testEnv) signupUser(t *testing.T, username, email, password string) (*models.User, string) {
	t.Helper()

	w := env.request(t, http.MethodPost, "/auth/signup", map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var user models.User
	require.NoError(t, env.db.First(&user, resp.User.ID).Error)
	return &user, resp.Token
}

// request performs an HTTP request against the test router. A non-empty
// token goes out as a bearer Authorization header.
func (env testEnv) request(t *testing.T, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
