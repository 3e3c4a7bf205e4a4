package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"
	"forumapi/internal/validation"

	"github.com/google/uuid"
)

// AddedThread is the response shape for a newly created thread.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadService handles thread creation and the thread detail view.
type ThreadService struct {
	threads repository.ThreadRepository
	newID   func() string
}

// NewThreadService returns a new ThreadService.
func NewThreadService(threads repository.ThreadRepository) *ThreadService {
	return &ThreadService{
		threads: threads,
		newID:   uuid.NewString,
	}
}

// AddThread validates the payload and persists a new thread owned by userID.
func (s *ThreadService) AddThread(ctx context.Context, userID string, payload map[string]any) (*AddedThread, error) {
	entity, err := validation.NewAddThread(payload)
	if err != nil {
		return nil, err
	}

	thread := models.Thread{
		ID:      "thread-" + s.newID(),
		Title:   entity.Title,
		Body:    entity.Body,
		OwnerID: userID,
	}
	if err := s.threads.Create(ctx, &thread); err != nil {
		return nil, err
	}

	observability.ThreadsCreated.Inc()

	return &AddedThread{
		ID:    thread.ID,
		Title: thread.Title,
		Owner: thread.OwnerID,
	}, nil
}

// GetThreadDetails returns the thread with its comments and nested replies.
// Soft-deleted content appears masked; a thread without comments returns an
// empty comments list.
func (s *ThreadService) GetThreadDetails(ctx context.Context, threadID string) (*models.ThreadDetail, error) {
	if err := s.threads.VerifyThreadExists(ctx, threadID); err != nil {
		return nil, err
	}

	rows, err := s.threads.GetThreadDetailRows(ctx, threadID)
	if err != nil {
		return nil, err
	}

	detail := models.ProjectThreadDetail(rows)
	return &detail, nil
}
