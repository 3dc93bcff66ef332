package repository

import (
	"errors"
	"strings"

	"github.com/lshigami/trivia/internal/errorz"
	"github.com/lshigami/trivia/internal/model"
	"gorm.io/gorm"
)

// likeEscaper makes LIKE treat % and _ in a search term literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindByCategory(categoryID uint) ([]model.Question, error)
	// Search matches term as a case-insensitive substring of the question text.
	Search(term string) ([]model.Question, error)
	// FindQuizCandidates returns questions not in excludeIDs; categoryID 0 means any category.
	FindQuizCandidates(categoryID uint, excludeIDs []uint) ([]model.Question, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategory(categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Search(term string) ([]model.Question, error) {
	var questions []model.Question
	// LOWER/LIKE instead of ILIKE so the query also runs on sqlite. Both sides
	// are folded by the database so non-ASCII text compares consistently.
	pattern := "%" + likeEscaper.Replace(term) + "%"
	if err := r.db.Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindQuizCandidates(categoryID uint, excludeIDs []uint) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Model(&model.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	// gorm renders an empty NOT IN as NOT IN (NULL), which matches nothing.
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorz.ErrNotFound
	}
	return nil
}
