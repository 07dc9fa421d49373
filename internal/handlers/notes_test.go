package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/natsukih/notes-api/internal/auth"
	"github.com/natsukih/notes-api/internal/database"
	"github.com/natsukih/notes-api/internal/dto"
	"github.com/natsukih/notes-api/internal/middleware"
	"github.com/natsukih/notes-api/internal/models"
	"github.com/natsukih/notes-api/internal/repository"
	"github.com/natsukih/notes-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noteTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupNoteTestEnv(t *testing.T, completion services.CompletionClient) noteTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.Chat{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	chatRepo := repository.NewChatRepository(db)

	jwtService := auth.NewJWTService("test-secret")
	authService := services.NewAuthService(userRepo)
	noteService := services.NewNoteService(noteRepo)
	chatService := services.NewChatService(chatRepo, completion)

	authHandler := NewAuthHandler(authService, jwtService)
	noteHandler := NewNoteHandler(noteService)
	chatHandler := NewChatHandler(chatService)

	r := gin.New()
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	notes := r.Group("/notes")
	notes.Use(middleware.RequireAuth(jwtService))
	{
		notes.GET("", noteHandler.ListNotes)
		notes.POST("", noteHandler.CreateNote)
		notes.GET("/:id", middleware.RequireNoteAccess(), noteHandler.GetNote)
		notes.PUT("/:id", middleware.RequireNoteAccess(), noteHandler.UpdateNote)
		notes.DELETE("/:id", middleware.RequireNoteAccess(), noteHandler.DeleteNote)
		notes.GET("/:id/chats", middleware.RequireNoteAccess(), chatHandler.ListChats)
		notes.POST("/:id/chats", middleware.RequireNoteAccess(), chatHandler.CreateChat)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return noteTestEnv{
		db:     db,
		router: r,
	}
}

func registerAndLogin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := postJSON(t, router, "/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response["access_token"])
	return response["access_token"]
}

func createNote(t *testing.T, router *gin.Engine, token, content string) uint64 {
	t.Helper()

	w := postJSON(t, router, "/notes", map[string]string{"content": content}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Message string `json:"message"`
		ID      uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	return response.ID
}

func getPath(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNoteHandler_CreateAndGet(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	token := registerAndLogin(t, env.router, "alice", "pw1")

	content := "hello 世界 🙂"
	noteID := createNote(t, env.router, token, content)

	w := getPath(t, env.router, fmt.Sprintf("/notes/%d", noteID), token)
	require.Equal(t, http.StatusOK, w.Code)

	var note dto.NoteDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	require.Equal(t, noteID, note.ID)
	require.Equal(t, content, note.Content)
}

func TestNoteHandler_Create_MissingContent(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	token := registerAndLogin(t, env.router, "alice", "pw1")

	w := postJSON(t, env.router, "/notes", map[string]string{"content": ""}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Missing content", response["message"])
}

func TestNoteHandler_List(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	token := registerAndLogin(t, env.router, "alice", "pw1")

	first := createNote(t, env.router, token, "first")
	second := createNote(t, env.router, token, "second")

	w := getPath(t, env.router, "/notes", token)
	require.Equal(t, http.StatusOK, w.Code)

	var notes []dto.NoteDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 2)
	require.Equal(t, first, notes[0].ID)
	require.Equal(t, "first", notes[0].Content)
	require.Equal(t, second, notes[1].ID)
	require.Equal(t, "second", notes[1].Content)
}

func TestNoteHandler_List_OnlyOwnNotes(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	aliceToken := registerAndLogin(t, env.router, "alice", "pw1")
	bobToken := registerAndLogin(t, env.router, "bob", "pw2")

	createNote(t, env.router, aliceToken, "alice's note")

	w := getPath(t, env.router, "/notes", bobToken)
	require.Equal(t, http.StatusOK, w.Code)

	var notes []dto.NoteDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Empty(t, notes)
}

func TestNoteHandler_Update(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	token := registerAndLogin(t, env.router, "alice", "pw1")
	noteID := createNote(t, env.router, token, "before")

	body := map[string]string{"content": "after"}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/notes/%d", noteID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// A subsequent read reflects only the latest value.
	w = getPath(t, env.router, fmt.Sprintf("/notes/%d", noteID), token)
	require.Equal(t, http.StatusOK, w.Code)

	var note dto.NoteDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	require.Equal(t, "after", note.Content)
}

func TestNoteHandler_Update_MissingContent(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	token := registerAndLogin(t, env.router, "alice", "pw1")
	noteID := createNote(t, env.router, token, "before")

	payload, err := json.Marshal(map[string]string{"content": ""})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/notes/%d", noteID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteHandler_Delete(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	token := registerAndLogin(t, env.router, "alice", "pw1")
	noteID := createNote(t, env.router, token, "doomed")

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/notes/%d", noteID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = getPath(t, env.router, fmt.Sprintf("/notes/%d", noteID), token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoteHandler_OwnershipNotLeaked(t *testing.T) {
	env := setupNoteTestEnv(t, nil)
	aliceToken := registerAndLogin(t, env.router, "alice", "pw1")
	bobToken := registerAndLogin(t, env.router, "bob", "pw2")

	noteID := createNote(t, env.router, aliceToken, "hello")

	// Another user's note and a missing note look identical.
	w := getPath(t, env.router, fmt.Sprintf("/notes/%d", noteID), bobToken)
	require.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Note not found", response["message"])

	w = getPath(t, env.router, "/notes/99999", bobToken)
	require.Equal(t, http.StatusNotFound, w.Code)

	var missing map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &missing))
	require.Equal(t, response, missing)

	payload, err := json.Marshal(map[string]string{"content": "hacked"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/notes/%d", noteID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bobToken)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/notes/%d", noteID), nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Alice still sees her note untouched.
	w = getPath(t, env.router, fmt.Sprintf("/notes/%d", noteID), aliceToken)
	require.Equal(t, http.StatusOK, w.Code)

	var note dto.NoteDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	require.Equal(t, "hello", note.Content)
}

func TestNoteHandler_RequiresToken(t *testing.T) {
	env := setupNoteTestEnv(t, nil)

	w := getPath(t, env.router, "/notes", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = getPath(t, env.router, "/notes", "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
