// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"forumapi/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data gets created.
type Options struct {
	Users             int
	ThreadsPerUser    int
	CommentsPerThread int
	RepliesPerComment int
	LikeRatio         float64 // chance a user likes any given comment
	MaxDays           int     // spread of created_at timestamps
	SkipBcrypt        bool    // store plaintext passwords for fast dev seeding
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		Users:             10,
		ThreadsPerUser:    2,
		CommentsPerThread: 3,
		RepliesPerComment: 1,
		LikeRatio:         0.3,
		MaxDays:           90,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pastTime returns a timestamp spread over the configured day range so feeds
// don't look like they were created in one burst.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		ID:       "user-" + uuid.NewString(),
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Fullname: gofakeit.Name(),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateThread constructs and persists a sample thread owned by the user.
func (f *Factory) CreateThread(owner *models.User, overrides ...func(*models.Thread)) (*models.Thread, error) {
	thread := &models.Thread{
		ID:        "thread-" + uuid.NewString(),
		Title:     gofakeit.Sentence(5),
		Body:      gofakeit.Paragraph(1, 3, 5, "\n"),
		OwnerID:   owner.ID,
		CreatedAt: f.pastTime(),
	}

	for _, override := range overrides {
		override(thread)
	}

	if err := f.db.Create(thread).Error; err != nil {
		return nil, err
	}
	return thread, nil
}

// CreateComment persists a top-level comment on the thread.
func (f *Factory) CreateComment(owner *models.User, thread *models.Thread) (*models.Comment, error) {
	comment := &models.Comment{
		ID:        "comment-" + uuid.NewString(),
		Content:   gofakeit.Sentence(12),
		OwnerID:   owner.ID,
		ThreadID:  thread.ID,
		CreatedAt: f.pastTime(),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply persists a reply under the given comment.
func (f *Factory) CreateReply(owner *models.User, parent *models.Comment) (*models.Comment, error) {
	parentID := parent.ID
	reply := &models.Comment{
		ID:             "reply-" + uuid.NewString(),
		Content:        gofakeit.Sentence(8),
		OwnerID:        owner.ID,
		ThreadID:       parent.ThreadID,
		ReplyCommentID: &parentID,
		CreatedAt:      f.pastTime(),
	}
	if err := f.db.Create(reply).Error; err != nil {
		return nil, err
	}
	return reply, nil
}

// LikeComment records a like and bumps the counter, matching the runtime
// toggle semantics.
func (f *Factory) LikeComment(user *models.User, comment *models.Comment) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		like := models.CommentLike{
			ThreadID:  comment.ThreadID,
			CommentID: comment.ID,
			UserID:    user.ID,
		}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
}

// Run populates the database with a full demo data set.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	comments := []*models.Comment{}
	for _, user := range users {
		for i := 0; i < opts.ThreadsPerUser; i++ {
			thread, err := f.CreateThread(user)
			if err != nil {
				return fmt.Errorf("seed thread: %w", err)
			}
			for j := 0; j < opts.CommentsPerThread; j++ {
				commenter := users[f.rng.Intn(len(users))]
				comment, err := f.CreateComment(commenter, thread)
				if err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
				comments = append(comments, comment)
				for k := 0; k < opts.RepliesPerComment; k++ {
					replier := users[f.rng.Intn(len(users))]
					if _, err := f.CreateReply(replier, comment); err != nil {
						return fmt.Errorf("seed reply: %w", err)
					}
				}
			}
		}
	}

	likes := 0
	for _, comment := range comments {
		for _, user := range users {
			if f.rng.Float64() < opts.LikeRatio {
				if err := f.LikeComment(user, comment); err != nil {
					return fmt.Errorf("seed like: %w", err)
				}
				likes++
			}
		}
	}

	slog.Info("Seeding complete",
		"users", len(users),
		"comments", len(comments),
		"likes", likes,
	)
	return nil
}
