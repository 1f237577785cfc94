package service

import (
	"errors"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/repository"
)

// recentCommentsLimit caps how many comments ride along with a feed entry
const recentCommentsLimit = 3

// PostService feed, like and comment business logic
type PostService interface {
	Create(authorID uint, req *domain.CreatePostRequest) (*domain.PostResponse, error)
	Get(viewerID, postID uint) (*domain.PostResponse, error)
	ListFeed(viewerID uint, page, limit int) ([]*domain.PostResponse, *common.Pagination, error)
	Update(userID, postID uint, req *domain.UpdatePostRequest) (*domain.PostResponse, error)
	Delete(userID, postID uint) error

	ToggleLike(userID, postID uint) (*domain.ToggleLikeResponse, error)

	AddComment(authorID, postID uint, req *domain.AddCommentRequest) (*domain.CommentResponse, error)
	ListComments(postID uint) ([]*domain.CommentResponse, error)
	DeleteComment(userID, commentID uint) error
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *postService) Create(authorID uint, req *domain.CreatePostRequest) (*domain.PostResponse, error) {
	post := &domain.Post{
		AuthorID: authorID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return s.toResponse(post, authorID, false)
}

// Get returns a single post with comments; viewing bumps its view counter
func (s *postService) Get(viewerID, postID uint) (*domain.PostResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementViews(postID); err != nil {
		return nil, err
	}
	post.ViewsCount++

	return s.toResponse(post, viewerID, true)
}

// ListFeed pages the global feed newest-first, each entry annotated with
// counts, the viewer's like state and a few recent comments
func (s *postService) ListFeed(viewerID uint, page, limit int) ([]*domain.PostResponse, *common.Pagination, error) {
	posts, total, err := s.postRepo.FindAll(page, limit)
	if err != nil {
		return nil, nil, err
	}

	items := make([]*domain.PostResponse, 0, len(posts))
	for _, post := range posts {
		item, err := s.toResponse(post, viewerID, true)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, common.NewPagination(page, limit, total), nil
}

// Update replaces a post's content. Author only.
func (s *postService) Update(userID, postID uint, req *domain.UpdatePostRequest) (*domain.PostResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, common.ErrForbidden
	}

	fields := map[string]interface{}{
		"content":   req.Content,
		"image_url": req.ImageURL,
		"video_url": req.VideoURL,
	}
	if err := s.postRepo.Update(postID, fields); err != nil {
		return nil, err
	}

	post, err = s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(post, userID, true)
}

// Delete removes a post. Author only.
func (s *postService) Delete(userID, postID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return common.ErrForbidden
	}
	return s.postRepo.Delete(postID)
}

// ToggleLike likes an unliked post and unlikes a liked one. The unique
// index on (post, user) keeps racing likes from doubling up; a duplicate
// insert is treated as already-liked and toggled off.
func (s *postService) ToggleLike(userID, postID uint) (*domain.ToggleLikeResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	like, err := s.postRepo.FindLike(postID, userID)
	if err == nil {
		if err := s.postRepo.DeleteLike(like.ID); err != nil {
			return nil, err
		}
		return &domain.ToggleLikeResponse{Liked: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	newLike := &domain.Like{PostID: postID, UserID: userID}
	if err := s.postRepo.CreateLike(newLike); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return &domain.ToggleLikeResponse{Liked: true}, nil
		}
		return nil, err
	}
	return &domain.ToggleLikeResponse{Liked: true}, nil
}

func (s *postService) AddComment(authorID, postID uint, req *domain.AddCommentRequest) (*domain.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.postRepo.CreateComment(comment); err != nil {
		return nil, err
	}

	summaries, err := s.userRepo.FindSummariesByIDs([]uint{authorID})
	if err != nil {
		return nil, err
	}
	return s.toCommentResponse(comment, summaries[authorID]), nil
}

func (s *postService) ListComments(postID uint) ([]*domain.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	comments, err := s.postRepo.FindComments(postID, 0)
	if err != nil {
		return nil, err
	}
	return s.toCommentResponses(comments)
}

// DeleteComment removes a comment. The comment's author or the post's
// author may delete.
func (s *postService) DeleteComment(userID, commentID uint) error {
	comment, err := s.postRepo.FindCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		post, err := s.postRepo.FindByID(comment.PostID)
		if err != nil {
			return err
		}
		if post.AuthorID != userID {
			return common.ErrForbidden
		}
	}
	return s.postRepo.DeleteComment(commentID)
}

func (s *postService) toResponse(post *domain.Post, viewerID uint, withComments bool) (*domain.PostResponse, error) {
	summaries, err := s.userRepo.FindSummariesByIDs([]uint{post.AuthorID})
	if err != nil {
		return nil, err
	}

	likes, err := s.postRepo.CountLikes(post.ID)
	if err != nil {
		return nil, err
	}
	commentsCount, err := s.postRepo.CountComments(post.ID)
	if err != nil {
		return nil, err
	}

	likedByMe := false
	if viewerID != 0 {
		likedByMe, err = s.postRepo.LikedBy(post.ID, viewerID)
		if err != nil {
			return nil, err
		}
	}

	resp := &domain.PostResponse{
		ID:            post.ID,
		Author:        summaries[post.AuthorID],
		Content:       post.Content,
		ImageURL:      post.ImageURL,
		VideoURL:      post.VideoURL,
		ViewsCount:    post.ViewsCount,
		LikesCount:    likes,
		CommentsCount: commentsCount,
		LikedByMe:     likedByMe,
		CreatedAt:     post.CreatedAt,
	}

	if withComments {
		comments, err := s.postRepo.FindComments(post.ID, recentCommentsLimit)
		if err != nil {
			return nil, err
		}
		resp.Comments, err = s.toCommentResponses(comments)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *postService) toCommentResponses(comments []*domain.Comment) ([]*domain.CommentResponse, error) {
	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID)
	}
	summaries, err := s.userRepo.FindSummariesByIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.CommentResponse, len(comments))
	for i, c := range comments {
		items[i] = s.toCommentResponse(c, summaries[c.AuthorID])
	}
	return items, nil
}

func (s *postService) toCommentResponse(c *domain.Comment, author *domain.UserSummary) *domain.CommentResponse {
	return &domain.CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    author,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
