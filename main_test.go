package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizcert/config"
	"quizcert/database"
	"quizcert/middleware"
	"quizcert/models"
	certificateRoutes "quizcert/routers/certificateRoutes"
	quizRoutes "quizcert/routers/quizRoutes"
	resultRoutes "quizcert/routers/resultRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:       "test-secret",
		CertFontSize: 36,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled :memory: connection per goroutine would mean one database per
	// connection; keep a single one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Quiz{}, &models.Result{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	quizRoutes.SetupQuizRoutes(app)
	resultRoutes.SetupResultRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)

	return app
}

func createUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "hashed", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func createSampleQuiz(t *testing.T) models.Quiz {
	t.Helper()

	// Five questions whose correct indices are 0..4, passing score 70
	questions := make(models.QuestionList, 5)
	for i := range questions {
		questions[i] = models.Question{
			QuestionText:  fmt.Sprintf("Question %d", i+1),
			Options:       []string{"opt0", "opt1", "opt2", "opt3", "opt4"},
			CorrectAnswer: i,
		}
	}

	quiz := models.Quiz{
		Title:        "Sample Quiz",
		Description:  "Five questions",
		PassingScore: 70,
		Duration:     15,
		Questions:    questions,
	}
	require.NoError(t, database.Database.Db.Create(&quiz).Error)

	return quiz
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, raw
}

func submitAnswers(t *testing.T, app *fiber.App, token string, quizID uint, answers []int, timeSpent int) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, raw := doRequest(t, app, "POST", "/results/submit", token, fiber.Map{
		"quizId":    quizID,
		"answers":   answers,
		"timeSpent": timeSpent,
	})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func resultField(t *testing.T, body map[string]interface{}, field string) interface{} {
	t.Helper()

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object")
	result, ok := data["result"].(map[string]interface{})
	require.True(t, ok, "response has no result object")
	return result[field]
}

func TestQuizzes_RequireAuth(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "GET", "/quizzes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestQuizzes_ListWithoutQuestionBodies(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	resp, raw := doRequest(t, app, "GET", "/quizzes", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Quizzes []map[string]interface{} `json:"quizzes"`
			Total   int                      `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, 1, body.Data.Total)

	entry := body.Data.Quizzes[0]
	assert.Equal(t, quiz.Title, entry["title"])
	assert.Equal(t, float64(5), entry["totalQuestions"])
	assert.NotContains(t, entry, "questions")
	assert.NotContains(t, string(raw), "correctAnswer")
}

func TestQuizzes_SanitizedFetchNeverLeaksAnswerKey(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	resp, raw := doRequest(t, app, "GET", fmt.Sprintf("/quizzes/%d", quiz.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NotContains(t, string(raw), "correctAnswer")

	var body struct {
		Data struct {
			Duration  int `json:"duration"`
			Questions []map[string]interface{}
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 15, body.Data.Duration)
	require.Len(t, body.Data.Questions, 5)
	for _, q := range body.Data.Questions {
		assert.Contains(t, q, "questionText")
		assert.Contains(t, q, "options")
		assert.NotContains(t, q, "correctAnswer")
	}
}

func TestQuizzes_GetMissing(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")

	resp, _ := doRequest(t, app, "GET", "/quizzes/999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuizzes_AnswerKeyRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)
	_, userToken := createUser(t, "Alice", "alice@example.com", "USER")
	_, adminToken := createUser(t, "Root", "root@example.com", "ADMIN")
	quiz := createSampleQuiz(t)

	resp, _ := doRequest(t, app, "GET", fmt.Sprintf("/quizzes/%d/answers", quiz.ID), userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, raw := doRequest(t, app, "GET", fmt.Sprintf("/quizzes/%d/answers", quiz.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			QuizID         uint  `json:"quizId"`
			TotalQuestions int   `json:"totalQuestions"`
			CorrectAnswers []int `json:"correctAnswers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, quiz.ID, body.Data.QuizID)
	assert.Equal(t, 5, body.Data.TotalQuestions)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, body.Data.CorrectAnswers)
}

func TestSubmit_PassingScore(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	// One wrong answer with an out-of-range index: 4/5 correct
	resp, body := submitAnswers(t, app, token, quiz.ID, []int{0, 1, 2, 3, 9}, 120)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, float64(80), resultField(t, body, "score"))
	assert.Equal(t, float64(4), resultField(t, body, "correctAnswers"))
	assert.Equal(t, float64(5), resultField(t, body, "totalQuestions"))
	assert.Equal(t, true, resultField(t, body, "passed"))
	assert.Equal(t, float64(120), resultField(t, body, "timeSpent"))

	quizRef, ok := resultField(t, body, "quiz").(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, quiz.Title, quizRef["title"])
	assert.Equal(t, float64(70), quizRef["passingScore"])
}

func TestSubmit_FailingScore(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	resp, body := submitAnswers(t, app, token, quiz.ID, []int{1, 1, 1, 1, 1}, 60)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, float64(20), resultField(t, body, "score"))
	assert.Equal(t, float64(1), resultField(t, body, "correctAnswers"))
	assert.Equal(t, false, resultField(t, body, "passed"))
}

func TestSubmit_ShortAnswerSetIsGradedNotRejected(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	resp, body := submitAnswers(t, app, token, quiz.ID, []int{0, 1}, 30)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, float64(2), resultField(t, body, "correctAnswers"))
	assert.Equal(t, float64(40), resultField(t, body, "score"))
}

func TestSubmit_ClientScoreFieldsIgnored(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	// A tampering client claims a perfect score; the server recomputes.
	resp, raw := doRequest(t, app, "POST", "/results/submit", token, fiber.Map{
		"quizId":    quiz.ID,
		"answers":   []int{1, 1, 1, 1, 1},
		"timeSpent": 5,
		"score":     100,
		"passed":    true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(20), resultField(t, body, "score"))
	assert.Equal(t, false, resultField(t, body, "passed"))
}

func TestSubmit_MissingQuiz(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")

	resp, _ := submitAnswers(t, app, token, 999, []int{0}, 10)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmit_MissingAnswersRejected(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	resp, _ := doRequest(t, app, "POST", "/results/submit", token, fiber.Map{
		"quizId":    quiz.ID,
		"timeSpent": 10,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSubmit_RepeatedSubmissionsCreateIndependentResults(t *testing.T) {
	app := setupTestApp(t)
	user, token := createUser(t, "Alice", "alice@example.com", "USER")
	quiz := createSampleQuiz(t)

	resp, _ := submitAnswers(t, app, token, quiz.ID, []int{1, 1, 1, 1, 1}, 60)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = submitAnswers(t, app, token, quiz.ID, []int{0, 1, 2, 3, 4}, 90)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Result{}).Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestResults_UserHistoryNewestFirst(t *testing.T) {
	app := setupTestApp(t)
	user, token := createUser(t, "Alice", "alice@example.com", "USER")
	_, otherToken := createUser(t, "Bob", "bob@example.com", "USER")
	quiz := createSampleQuiz(t)

	// Force distinct timestamps via direct inserts
	first := models.Result{UserID: user.ID, QuizID: quiz.ID, Answers: []byte("[0]"), Score: 20, TotalQuestions: 5, CorrectAnswers: 1, TimeSpent: 10}
	require.NoError(t, database.Database.Db.Create(&first).Error)
	database.Database.Db.Model(&first).Update("created_at", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	second := models.Result{UserID: user.ID, QuizID: quiz.ID, Answers: []byte("[1]"), Score: 80, TotalQuestions: 5, CorrectAnswers: 4, Passed: true, TimeSpent: 20}
	require.NoError(t, database.Database.Db.Create(&second).Error)
	database.Database.Db.Model(&second).Update("created_at", time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))

	// Another user's result must not show up
	submitAnswers(t, app, otherToken, quiz.ID, []int{0, 1, 2, 3, 4}, 5)

	resp, raw := doRequest(t, app, "GET", "/results/user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Results []struct {
				ID    uint `json:"ID"`
				Score int  `json:"score"`
				Quiz  struct {
					Title string `json:"title"`
				} `json:"quiz"`
			} `json:"results"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, 2, body.Data.Total)
	assert.Equal(t, 80, body.Data.Results[0].Score)
	assert.Equal(t, 20, body.Data.Results[1].Score)
	assert.Equal(t, quiz.Title, body.Data.Results[0].Quiz.Title)
}

func TestResults_GetOwnedOnly(t *testing.T) {
	app := setupTestApp(t)
	_, aliceToken := createUser(t, "Alice", "alice@example.com", "USER")
	_, bobToken := createUser(t, "Bob", "bob@example.com", "USER")
	quiz := createSampleQuiz(t)

	_, body := submitAnswers(t, app, aliceToken, quiz.ID, []int{0, 1, 2, 3, 4}, 42)
	resultID := resultField(t, body, "id").(float64)

	resp, _ := doRequest(t, app, "GET", fmt.Sprintf("/results/%d", int(resultID)), aliceToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Foreign results are indistinguishable from missing ones
	resp, _ = doRequest(t, app, "GET", fmt.Sprintf("/results/%d", int(resultID)), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/results/999", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCertificate_GeneratedOnlyForPassedResults(t *testing.T) {
	app := setupTestApp(t)
	_, token := createUser(t, "Alice Lee", "alice@example.com", "USER")
	_, bobToken := createUser(t, "Bob", "bob@example.com", "USER")
	quiz := createSampleQuiz(t)

	_, failedBody := submitAnswers(t, app, token, quiz.ID, []int{1, 1, 1, 1, 1}, 60)
	failedID := int(resultField(t, failedBody, "id").(float64))

	_, passedBody := submitAnswers(t, app, token, quiz.ID, []int{0, 1, 2, 3, 4}, 60)
	passedID := int(resultField(t, passedBody, "id").(float64))

	// Failed result: rejected, no document
	resp, _ := doRequest(t, app, "GET", fmt.Sprintf("/certificates/generate/%d", failedID), token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Foreign result: 404
	resp, _ = doRequest(t, app, "GET", fmt.Sprintf("/certificates/generate/%d", passedID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Missing result: 404
	resp, _ = doRequest(t, app, "GET", "/certificates/generate/999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Passed result: a PNG download
	resp, raw := doRequest(t, app, "GET", fmt.Sprintf("/certificates/generate/%d", passedID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Certificate_Alice_Lee_Sample_Quiz.png")
	require.True(t, len(raw) > 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), raw[:8])
}
