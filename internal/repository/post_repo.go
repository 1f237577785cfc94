package repository

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository post, like and comment data access interface
type PostRepository interface {
	Create(post *domain.Post) error
	FindByID(id uint) (*domain.Post, error)
	FindAll(page, limit int) ([]*domain.Post, int64, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	IncrementViews(id uint) error
	CountByAuthor(authorID uint) (int64, error)

	FindLike(postID, userID uint) (*domain.Like, error)
	CreateLike(like *domain.Like) error
	DeleteLike(id uint) error
	CountLikes(postID uint) (int64, error)
	LikedBy(postID, userID uint) (bool, error)

	CreateComment(comment *domain.Comment) error
	FindCommentByID(id uint) (*domain.Comment, error)
	FindComments(postID uint, limit int) ([]*domain.Comment, error)
	DeleteComment(id uint) error
	CountComments(postID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindAll pages the feed newest-first
func (r *postRepository) FindAll(page, limit int) ([]*domain.Post, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*domain.Post
	offset := (page - 1) * limit
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).Updates(fields).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Post{}, id).Error
}

// IncrementViews bumps the view counter atomically
func (r *postRepository) IncrementViews(id uint) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *postRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *postRepository) FindLike(postID, userID uint) (*domain.Like, error) {
	var like domain.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *postRepository) CreateLike(like *domain.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		if isDuplicateKey(err) {
			return common.ErrConflict
		}
		return err
	}
	return nil
}

func (r *postRepository) DeleteLike(id uint) error {
	return r.db.Delete(&domain.Like{}, id).Error
}

func (r *postRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *postRepository) LikedBy(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}

func (r *postRepository) CreateComment(comment *domain.Comment) error {
	return r.db.Create(comment).Error
}

func (r *postRepository) FindCommentByID(id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// FindComments returns the newest comments of a post; limit<=0 returns all
func (r *postRepository) FindComments(postID uint, limit int) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	q := r.db.Where("post_id = ?", postID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&comments).Error
	return comments, err
}

func (r *postRepository) DeleteComment(id uint) error {
	return r.db.Delete(&domain.Comment{}, id).Error
}

func (r *postRepository) CountComments(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
