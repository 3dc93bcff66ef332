package repository

import (
	"errors"

	"github.com/lshigami/trivia/internal/errorz"
	"github.com/lshigami/trivia/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	Count() (int64, error)
	CreateAll(categories []model.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Category{}).Count(&count).Error
	return count, err
}

func (r *categoryRepository) CreateAll(categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.Create(&categories).Error
}
