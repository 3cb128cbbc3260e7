package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

type sampleUser struct {
	Name  string
	Email string
}

type sampleComment struct {
	Author  string // email
	Content string
	Replies []sampleComment
}

type samplePost struct {
	Title     string
	Excerpt   string
	Content   string
	Category  string
	Author    string // email
	Published bool
	Age       time.Duration
	LikedBy   []string
	Comments  []sampleComment
}

var sampleUsers = []sampleUser{
	{Name: "Jane Smith", Email: "jane@example.com"},
	{Name: "Alex Kim", Email: "alex@example.com"},
	{Name: "Maria Garcia", Email: "maria@example.com"},
}

var samplePosts = []samplePost{
	{
		Title:     "Getting Started with Go Services",
		Excerpt:   "A practical tour of building a small HTTP service in Go.",
		Content:   "<p>Go makes it pleasant to build small, fast HTTP services.</p>",
		Category:  "tech",
		Author:    "jane@example.com",
		Published: true,
		Age:       72 * time.Hour,
		LikedBy:   []string{"alex@example.com", "maria@example.com"},
		Comments: []sampleComment{
			{
				Author:  "alex@example.com",
				Content: "Great introduction, thanks!",
				Replies: []sampleComment{{Author: "jane@example.com", Content: "Glad it helped."}},
			},
			{Author: "maria@example.com", Content: "Would love a follow-up on testing."},
		},
	},
	{
		Title:     "A Week in Lisbon",
		Excerpt:   "Tiles, trams and far too many pastries.",
		Content:   "<p>Lisbon rewards slow walking and steep hills.</p>",
		Category:  "travel",
		Author:    "maria@example.com",
		Published: true,
		Age:       48 * time.Hour,
		LikedBy:   []string{"jane@example.com"},
		Comments: []sampleComment{
			{Author: "jane@example.com", Content: "Adding this to my list."},
		},
	},
	{
		Title:     "Remote Work Rituals",
		Excerpt:   "Small habits that keep a distributed team in sync.",
		Content:   "<p>Async first, meetings second.</p>",
		Category:  "work",
		Author:    "alex@example.com",
		Published: true,
		Age:       24 * time.Hour,
	},
	{
		Title:    "Sourdough Notes (draft)",
		Excerpt:  "Work in progress.",
		Content:  "<p>Starter, flour, water, patience.</p>",
		Category: "food",
		Author:   "jane@example.com",
		Age:      2 * time.Hour,
	},
}

// Result counts the rows inserted by Run
type Result struct {
	Users    int
	Posts    int
	Comments int
	Likes    int
}

// Seeder inserts sample users, posts, comments and likes
type Seeder struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	postLikeRepo repository.LikeRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewSeeder creates a Seeder on top of db
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		userRepo:     repository.NewUserRepository(db),
		postRepo:     repository.NewPostRepository(db),
		commentRepo:  repository.NewCommentRepository(db),
		postLikeRepo: repository.NewPostLikeRepository(db),
		logger:       logger,
		now:          time.Now,
	}
}

// Run inserts the sample data. Users are matched by email and posts by title,
// so running it again only fills in what is missing.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}
	users := make(map[string]uuid.UUID, len(sampleUsers))

	for _, su := range sampleUsers {
		id, created, err := s.ensureUser(ctx, su)
		if err != nil {
			return result, err
		}
		users[su.Email] = id
		if created {
			result.Users++
		}
	}

	now := s.now().UTC()
	for _, sp := range samplePosts {
		_, err := s.postRepo.FindByTitle(ctx, sp.Title)
		if err == nil {
			s.logger.Debug("Sample post already present", zap.String("title", sp.Title))
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("find post %q: %w", sp.Title, err)
		}

		createdAt := now.Add(-sp.Age)
		post := &domain.Post{
			BaseModel: domain.BaseModel{CreatedAt: createdAt, UpdatedAt: createdAt},
			Title:     sp.Title,
			Excerpt:   sp.Excerpt,
			Content:   sp.Content,
			Category:  sp.Category,
			AuthorID:  users[sp.Author],
			ReadTime:  domain.DefaultReadTime,
			Published: sp.Published,
		}
		if err := s.postRepo.Create(ctx, post); err != nil {
			return result, fmt.Errorf("create post %q: %w", sp.Title, err)
		}
		result.Posts++

		at := createdAt
		for _, sc := range sp.Comments {
			at = at.Add(time.Hour)
			parent, err := s.createComment(ctx, post.ID, users[sc.Author], nil, sc.Content, at)
			if err != nil {
				return result, err
			}
			result.Comments++

			for _, reply := range sc.Replies {
				at = at.Add(10 * time.Minute)
				if _, err := s.createComment(ctx, post.ID, users[reply.Author], &parent.ID, reply.Content, at); err != nil {
					return result, err
				}
				result.Comments++
			}
		}

		for _, email := range sp.LikedBy {
			if err := s.postLikeRepo.Create(ctx, post.ID, users[email]); err != nil && !repository.IsDuplicateKey(err) {
				return result, fmt.Errorf("like post %q: %w", sp.Title, err)
			}
			result.Likes++
		}
	}

	s.logger.Info("Sample data seeded",
		zap.Int("users", result.Users),
		zap.Int("posts", result.Posts),
		zap.Int("comments", result.Comments),
		zap.Int("likes", result.Likes),
	)
	return result, nil
}

func (s *Seeder) ensureUser(ctx context.Context, su sampleUser) (uuid.UUID, bool, error) {
	existing, err := s.userRepo.FindByEmail(ctx, su.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, fmt.Errorf("find user %s: %w", su.Email, err)
	}

	user := &domain.User{Name: su.Name, Email: su.Email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return uuid.Nil, false, fmt.Errorf("create user %s: %w", su.Email, err)
	}
	return user.ID, true, nil
}

func (s *Seeder) createComment(ctx context.Context, postID, authorID uuid.UUID, parentID *uuid.UUID, content string, at time.Time) (*domain.Comment, error) {
	comment := &domain.Comment{
		BaseModel: domain.BaseModel{CreatedAt: at, UpdatedAt: at},
		PostID:    postID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment on %s: %w", postID, err)
	}
	return comment, nil
}
