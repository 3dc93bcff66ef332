package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/database"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/random"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/lshigami/trivia/internal/service"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router    *gin.Engine
	db        *gorm.DB
	questions repository.QuestionRepository
}

// newTestAPI wires the full stack over in-memory sqlite with the default
// categories and the given number of questions per category.
func newTestAPI(t *testing.T, perCategory int) *testAPI {
	t.Helper()

	db, err := database.Open(config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	categoryRepo := repository.NewCategoryRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	categorySvc := service.NewCategoryService(categoryRepo)
	if _, err := categorySvc.SeedDefaults(); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	for c := 1; c <= len(model.DefaultCategories); c++ {
		for i := 0; i < perCategory; i++ {
			q := model.Question{
				Question:   fmt.Sprintf("Question %d about category %d", i, c),
				Answer:     "answer",
				Category:   uint(c),
				Difficulty: 1 + i%5,
			}
			if err := questionRepo.Create(&q); err != nil {
				t.Fatalf("create question: %v", err)
			}
		}
	}

	ctrl := NewController(
		categorySvc,
		service.NewQuestionService(questionRepo, categoryRepo),
		service.NewQuizService(questionRepo, random.NewSeeded(99)),
	)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	ctrl.RegisterRoutes(router)

	return &testAPI{router: router, db: db, questions: questionRepo}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var data map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("%s %s: decode body %q: %v", method, path, rec.Body.String(), err)
	}
	return rec, data
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, data map[string]any, status int, message string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %v)", rec.Code, status, data)
	}
	if data["success"] != false {
		t.Fatalf("success = %v, want false", data["success"])
	}
	if data["error"] != float64(status) {
		t.Fatalf("error = %v, want %d", data["error"], status)
	}
	if data["message"] != message {
		t.Fatalf("message = %q, want %q", data["message"], message)
	}
}

func expectOK(t *testing.T, rec *httptest.ResponseRecorder, data map[string]any) {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", rec.Code, data)
	}
	if data["success"] != true {
		t.Fatalf("success = %v, want true", data["success"])
	}
}

func list(t *testing.T, data map[string]any, key string) []any {
	t.Helper()

	v, ok := data[key].([]any)
	if !ok {
		t.Fatalf("%s = %#v, want a list", key, data[key])
	}
	return v
}

func TestGetCategories(t *testing.T) {
	api := newTestAPI(t, 0)

	rec, data := api.do(t, http.MethodGet, "/categories", nil)
	expectOK(t, rec, data)
	if got := len(list(t, data, "categories")); got != 6 {
		t.Fatalf("len(categories) = %d, want 6", got)
	}
	if data["total_categories"] != float64(6) {
		t.Fatalf("total_categories = %v, want 6", data["total_categories"])
	}
	first := list(t, data, "categories")[0].(map[string]any)
	if first["id"] != float64(1) || first["type"] != "Science" {
		t.Fatalf("first category = %v", first)
	}
}

func TestGetCategoriesEmpty(t *testing.T) {
	api := newTestAPI(t, 0)
	if err := api.db.Exec("DELETE FROM categories").Error; err != nil {
		t.Fatalf("clear categories: %v", err)
	}

	rec, data := api.do(t, http.MethodGet, "/categories", nil)
	expectError(t, rec, data, http.StatusNotFound, "resource not found")
}

func TestGetQuestions(t *testing.T) {
	api := newTestAPI(t, 3) // 18 questions

	rec, data := api.do(t, http.MethodGet, "/questions", nil)
	expectOK(t, rec, data)
	questions := list(t, data, "questions")
	if len(questions) != 10 {
		t.Fatalf("len(questions) = %d, want 10", len(questions))
	}
	if data["total_questions"] != float64(18) {
		t.Fatalf("total_questions = %v, want 18", data["total_questions"])
	}
	if len(list(t, data, "categories")) != 6 {
		t.Fatal("expected all categories")
	}
	if v, ok := data["current_category"]; !ok || v != nil {
		t.Fatalf("current_category = %v (present %v), want null", v, ok)
	}
	q := questions[0].(map[string]any)
	for _, key := range []string{"id", "question", "answer", "category", "difficulty"} {
		if _, ok := q[key]; !ok {
			t.Fatalf("question missing %q: %v", key, q)
		}
	}
	if _, ok := q["created_at"]; ok {
		t.Fatalf("internal column leaked: %v", q)
	}

	rec, data = api.do(t, http.MethodGet, "/questions?page=2", nil)
	expectOK(t, rec, data)
	if got := len(list(t, data, "questions")); got != 8 {
		t.Fatalf("page 2: len(questions) = %d, want 8", got)
	}
}

func TestGetQuestionsInvalidPage(t *testing.T) {
	api := newTestAPI(t, 3)

	for _, path := range []string{"/questions?page=2000", "/questions?page=0"} {
		rec, data := api.do(t, http.MethodGet, path, nil)
		expectError(t, rec, data, http.StatusNotFound, "resource not found")
	}

	rec, data := api.do(t, http.MethodGet, "/questions?page=abc", nil)
	expectOK(t, rec, data)
}

func TestDeleteQuestion(t *testing.T) {
	api := newTestAPI(t, 2) // 12 questions

	rec, data := api.do(t, http.MethodDelete, "/questions/6", nil)
	expectOK(t, rec, data)
	if data["deleted"] != float64(6) {
		t.Fatalf("deleted = %v, want 6", data["deleted"])
	}
	if data["total_questions"] != float64(11) {
		t.Fatalf("total_questions = %v, want 11", data["total_questions"])
	}
	if len(list(t, data, "questions")) != 10 {
		t.Fatal("expected a full first page of remaining questions")
	}
	if _, err := api.questions.FindByID(6); err == nil {
		t.Fatal("question 6 still exists")
	}
}

func TestDeleteQuestionInvalidID(t *testing.T) {
	api := newTestAPI(t, 1)

	rec, data := api.do(t, http.MethodDelete, "/questions/5000", nil)
	expectError(t, rec, data, http.StatusUnprocessableEntity, "resource cannot be processed")

	rec, data = api.do(t, http.MethodDelete, "/questions/abc", nil)
	expectError(t, rec, data, http.StatusNotFound, "resource not found")
}

func TestCreateQuestion(t *testing.T) {
	api := newTestAPI(t, 1)

	// category and difficulty as strings, as older clients send them
	body := map[string]any{"question": "what is your favorite sport", "answer": "Badminton", "category": "6", "difficulty": "1"}
	rec, data := api.do(t, http.MethodPost, "/questions", body)
	expectOK(t, rec, data)

	created, ok := data["created"].(float64)
	if !ok || created <= 6 {
		t.Fatalf("created = %v, want a new id above 6", data["created"])
	}
	if data["total_questions"] != float64(7) {
		t.Fatalf("total_questions = %v, want 7", data["total_questions"])
	}

	stored, err := api.questions.FindByID(uint(created))
	if err != nil {
		t.Fatalf("find created: %v", err)
	}
	if stored.Answer != "Badminton" || stored.Category != 6 || stored.Difficulty != 1 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestCreateQuestionUnprocessable(t *testing.T) {
	api := newTestAPI(t, 1)

	tests := []struct {
		name string
		body any
	}{
		{name: "null question", body: map[string]any{"question": nil, "answer": "Badminton", "category": 6, "difficulty": 1}},
		{name: "missing answer", body: map[string]any{"question": "q", "category": 6, "difficulty": 1}},
		{name: "missing difficulty", body: map[string]any{"question": "q", "answer": "a", "category": 6}},
		{name: "non-numeric category", body: map[string]any{"question": "q", "answer": "a", "category": "sports", "difficulty": 1}},
		{name: "negative category", body: map[string]any{"question": "q", "answer": "a", "category": -2, "difficulty": 1}},
		{name: "malformed json", body: `{"question": `},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, data := api.do(t, http.MethodPost, "/questions", tc.body)
			expectError(t, rec, data, http.StatusUnprocessableEntity, "resource cannot be processed")
		})
	}

	all, err := api.questions.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("question count = %d, want 6", len(all))
	}
}

func TestSearchQuestions(t *testing.T) {
	api := newTestAPI(t, 2)

	rec, data := api.do(t, http.MethodPost, "/questions/search?search=CATEGORY%203", nil)
	expectOK(t, rec, data)
	questions := list(t, data, "questions")
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	for _, raw := range questions {
		if q := raw.(map[string]any); q["category"] != float64(3) {
			t.Fatalf("unexpected match %v", q)
		}
	}
	if data["total_questions"] != float64(2) {
		t.Fatalf("total_questions = %v, want match count 2", data["total_questions"])
	}

	rec, data = api.do(t, http.MethodPost, "/questions/search?search=volcano", nil)
	expectOK(t, rec, data)
	if len(list(t, data, "questions")) != 0 || data["total_questions"] != float64(0) {
		t.Fatalf("no-match search = %v", data)
	}

	for _, term := range []string{"%25", "_"} {
		rec, data = api.do(t, http.MethodPost, "/questions/search?search="+term, nil)
		expectOK(t, rec, data)
		if data["total_questions"] != float64(0) {
			t.Fatalf("search %q total_questions = %v, want 0", term, data["total_questions"])
		}
	}
}

func TestSearchQuestionsNonASCII(t *testing.T) {
	api := newTestAPI(t, 1)

	rec, data := api.do(t, http.MethodPost, "/questions", map[string]any{
		"question":   "Who painted Él Greco's works?",
		"answer":     "Doménikos Theotokópoulos",
		"category":   2,
		"difficulty": 3,
	})
	expectOK(t, rec, data)

	for _, term := range []string{"%C3%89l%20Greco", "greco"} {
		rec, data = api.do(t, http.MethodPost, "/questions/search?search="+term, nil)
		expectOK(t, rec, data)
		if data["total_questions"] != float64(1) {
			t.Fatalf("search %q total_questions = %v, want 1", term, data["total_questions"])
		}
	}
}

func TestSearchQuestionsMissingTerm(t *testing.T) {
	api := newTestAPI(t, 1)

	rec, data := api.do(t, http.MethodPost, "/questions/search", nil)
	expectError(t, rec, data, http.StatusNotFound, "resource not found")
}

func TestGetCategoryQuestions(t *testing.T) {
	api := newTestAPI(t, 3)

	rec, data := api.do(t, http.MethodGet, "/categories/2/questions", nil)
	expectOK(t, rec, data)
	if got := len(list(t, data, "questions")); got != 3 {
		t.Fatalf("len(questions) = %d, want 3", got)
	}
	if data["total_questions"] != float64(3) {
		t.Fatalf("total_questions = %v, want 3", data["total_questions"])
	}
	current := list(t, data, "current_category")
	if len(current) != 1 || current[0].(map[string]any)["type"] != "Art" {
		t.Fatalf("current_category = %v", current)
	}
}

func TestGetCategoryQuestionsNotFound(t *testing.T) {
	api := newTestAPI(t, 1)

	rec, data := api.do(t, http.MethodGet, "/categories/2000/questions", nil)
	expectError(t, rec, data, http.StatusNotFound, "resource not found")
}

func TestPlayQuiz(t *testing.T) {
	api := newTestAPI(t, 4) // category 5 holds ids 17..20

	for i := 0; i < 20; i++ {
		rec, data := api.do(t, http.MethodPost, "/quizzes", map[string]any{
			"previousQuestions": []int{17, 19},
			"quizCategory":      map[string]any{"id": "5"},
		})
		expectOK(t, rec, data)
		q, ok := data["question"].(map[string]any)
		if !ok {
			t.Fatalf("question = %v, want an object", data["question"])
		}
		if q["id"] == float64(17) || q["id"] == float64(19) {
			t.Fatalf("previously asked question returned: %v", q)
		}
		if q["category"] != float64(5) {
			t.Fatalf("category = %v, want 5", q["category"])
		}
	}
}

func TestPlayQuizAllCategories(t *testing.T) {
	api := newTestAPI(t, 1)

	rec, data := api.do(t, http.MethodPost, "/quizzes", map[string]any{
		"previousQuestions": []int{1, 2, 3, 4, 5},
		"quizCategory":      map[string]any{"id": 0, "type": "click"},
	})
	expectOK(t, rec, data)
	q := data["question"].(map[string]any)
	if q["id"] != float64(6) {
		t.Fatalf("id = %v, want the only remaining question 6", q["id"])
	}
}

func TestPlayQuizExhausted(t *testing.T) {
	api := newTestAPI(t, 2) // category 1 holds ids 1 and 2

	rec, data := api.do(t, http.MethodPost, "/quizzes", map[string]any{
		"previousQuestions": []int{1, 2},
		"quizCategory":      map[string]any{"id": 1},
	})
	expectOK(t, rec, data)
	if v, ok := data["question"]; !ok || v != nil {
		t.Fatalf("question = %v (present %v), want null", v, ok)
	}
}

func TestPlayQuizUnprocessable(t *testing.T) {
	api := newTestAPI(t, 1)

	tests := []struct {
		name string
		body any
	}{
		{name: "missing category", body: map[string]any{"previousQuestions": []int{}}},
		{name: "missing category id", body: map[string]any{"quizCategory": map[string]any{}}},
		{name: "malformed category id", body: map[string]any{"quizCategory": map[string]any{"id": "science"}}},
		{name: "empty body", body: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, data := api.do(t, http.MethodPost, "/quizzes", tc.body)
			expectError(t, rec, data, http.StatusUnprocessableEntity, "resource cannot be processed")
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t, 0)

	rec, data := api.do(t, http.MethodGet, "/nope", nil)
	expectError(t, rec, data, http.StatusNotFound, "resource not found")
}
