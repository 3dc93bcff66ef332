package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/errorz"
	"github.com/lshigami/trivia/internal/model"
	"github.com/lshigami/trivia/internal/pagination"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	ListQuestions(page int) (*dto.QuestionListResponse, error)
	DeleteQuestion(id uint, page int) (*dto.QuestionDeletedResponse, error)
	CreateQuestion(req dto.CreateQuestionRequest, page int) (*dto.QuestionCreatedResponse, error)
	SearchQuestions(term string, page int) (*dto.QuestionSearchResponse, error)
	ListQuestionsByCategory(categoryID uint, page int) (*dto.CategoryQuestionsResponse, error)
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuestionService {
	return &questionService{repo: repo, categoryRepo: categoryRepo}
}

func (s *questionService) ListQuestions(page int) (*dto.QuestionListResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load questions")
		return nil, fmt.Errorf("load questions: %w: %w", errorz.ErrInternal, err)
	}
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load categories")
		return nil, fmt.Errorf("load categories: %w: %w", errorz.ErrInternal, err)
	}

	current := pagination.Paginate(formatQuestions(questions), page)
	if len(current) == 0 {
		return nil, fmt.Errorf("page %d of %d questions: %w", page, len(questions), errorz.ErrNotFound)
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     formatCategories(categories),
	}, nil
}

// DeleteQuestion reports ErrNotFound for a missing id and ErrUnprocessable for storage failures.
func (s *questionService) DeleteQuestion(id uint, page int) (*dto.QuestionDeletedResponse, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			log.Warn().Uint("questionID", id).Msg("Delete requested for unknown question")
			return nil, fmt.Errorf("question %d: %w", id, errorz.ErrNotFound)
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to look up question for delete")
		return nil, fmt.Errorf("look up question %d: %w: %w", id, errorz.ErrUnprocessable, err)
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, errorz.ErrNotFound)
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return nil, fmt.Errorf("delete question %d: %w: %w", id, errorz.ErrUnprocessable, err)
	}

	remaining, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to reload questions after delete")
		return nil, fmt.Errorf("reload questions: %w: %w", errorz.ErrUnprocessable, err)
	}

	log.Info().Uint("questionID", id).Msg("Question deleted")
	return &dto.QuestionDeletedResponse{
		Success:        true,
		Deleted:        id,
		Questions:      pagination.Paginate(formatQuestions(remaining), page),
		TotalQuestions: len(remaining),
	}, nil
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest, page int) (*dto.QuestionCreatedResponse, error) {
	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		log.Warn().Msg("Create question request is missing required fields")
		return nil, fmt.Errorf("question, answer, category and difficulty are required: %w", errorz.ErrUnprocessable)
	}
	if *req.Category < 0 {
		return nil, fmt.Errorf("category %d: %w", *req.Category, errorz.ErrUnprocessable)
	}

	question := model.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   uint(*req.Category),
		Difficulty: int(*req.Difficulty),
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("create question: %w: %w", errorz.ErrUnprocessable, err)
	}

	questions, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to reload questions after create")
		return nil, fmt.Errorf("reload questions: %w: %w", errorz.ErrUnprocessable, err)
	}

	log.Info().Uint("questionID", question.ID).Uint("category", question.Category).Msg("Question created")
	return &dto.QuestionCreatedResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      pagination.Paginate(formatQuestions(questions), page),
		TotalQuestions: len(questions),
	}, nil
}

// SearchQuestions reports the number of matches, not the table size, in TotalQuestions.
func (s *questionService) SearchQuestions(term string, page int) (*dto.QuestionSearchResponse, error) {
	matches, err := s.repo.Search(term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("Failed to search questions")
		return nil, fmt.Errorf("search questions: %w: %w", errorz.ErrInternal, err)
	}

	return &dto.QuestionSearchResponse{
		Success:        true,
		Questions:      pagination.Paginate(formatQuestions(matches), page),
		TotalQuestions: len(matches),
	}, nil
}

func (s *questionService) ListQuestionsByCategory(categoryID uint, page int) (*dto.CategoryQuestionsResponse, error) {
	questions, err := s.repo.FindByCategory(categoryID)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to load questions for category")
		return nil, fmt.Errorf("load questions for category %d: %w: %w", categoryID, errorz.ErrUnprocessable, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("category %d has no questions: %w", categoryID, errorz.ErrNotFound)
	}

	current := []dto.CategoryResponse{}
	category, err := s.categoryRepo.FindByID(categoryID)
	switch {
	case err == nil:
		current = formatCategories([]model.Category{*category})
	case errors.Is(err, errorz.ErrNotFound):
		log.Warn().Uint("categoryID", categoryID).Msg("Questions reference a category that does not exist")
	default:
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to load category")
		return nil, fmt.Errorf("load category %d: %w: %w", categoryID, errorz.ErrUnprocessable, err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       pagination.Paginate(formatQuestions(questions), page),
		TotalQuestions:  len(questions),
		CurrentCategory: current,
	}, nil
}
