package service

import (
	"errors"
	"strings"

	"github.com/lshigami/trivia/internal/errorz"
	"github.com/lshigami/trivia/internal/model"
)

var errStorage = errors.New("storage unavailable")

type fakeQuestionRepo struct {
	questions []model.Question
	nextID    uint

	findErr   error
	createErr error
	deleteErr error
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{}
	for _, q := range questions {
		q := q
		r.Create(&q)
	}
	return r
}

func (r *fakeQuestionRepo) Create(q *model.Question) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	q.ID = r.nextID
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, q := range r.questions {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (r *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]model.Question(nil), r.questions...), nil
}

func (r *fakeQuestionRepo) FindByCategory(categoryID uint) ([]model.Question, error) {
	return r.filter(func(q model.Question) bool { return q.Category == categoryID })
}

func (r *fakeQuestionRepo) Search(term string) ([]model.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q model.Question) bool { return strings.Contains(strings.ToLower(q.Question), term) })
}

func (r *fakeQuestionRepo) FindQuizCandidates(categoryID uint, excludeIDs []uint) ([]model.Question, error) {
	excluded := make(map[uint]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	return r.filter(func(q model.Question) bool {
		return !excluded[q.ID] && (categoryID == 0 || q.Category == categoryID)
	})
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return errorz.ErrNotFound
}

func (r *fakeQuestionRepo) filter(keep func(model.Question) bool) ([]model.Question, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := []model.Question{}
	for _, q := range r.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories []model.Category
	err        error
}

func newFakeCategoryRepo(types ...string) *fakeCategoryRepo {
	r := &fakeCategoryRepo{}
	for i, t := range types {
		r.categories = append(r.categories, model.Category{ID: uint(i + 1), Type: t})
	}
	return r
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Category(nil), r.categories...), nil
}

func (r *fakeCategoryRepo) FindByID(id uint) (*model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (r *fakeCategoryRepo) Count() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) CreateAll(categories []model.Category) error {
	if r.err != nil {
		return r.err
	}
	for _, c := range categories {
		c.ID = uint(len(r.categories) + 1)
		r.categories = append(r.categories, c)
	}
	return nil
}

// fixedSource always returns the same index, clamped to n.
type fixedSource struct {
	index int
	calls int
}

func (s *fixedSource) IntN(n int) int {
	s.calls++
	if s.index >= n {
		return n - 1
	}
	return s.index
}

func makeQuestions(n int, category uint) []model.Question {
	out := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Question{
			Question:   "question",
			Answer:     "answer",
			Category:   category,
			Difficulty: 1,
		})
	}
	return out
}
