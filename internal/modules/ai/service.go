package ai

import (
	"context"
	"errors"
	"time"

	"github.com/noteflow/core/internal/models"
	"github.com/noteflow/core/internal/pkg/taskqueue"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const TaskTypeNoteMetadata = "ai:note_metadata"

var (
	ErrNotOwner  = errors.New("only the note owner may do this")
	ErrNoContent = errors.New("note has no content to analyze")
)

type Service struct {
	db       *gorm.DB
	tasks    *taskqueue.Service
	provider Provider
	logger   *zap.Logger
}

func NewService(db *gorm.DB, tasks *taskqueue.Service, provider Provider, logger *zap.Logger) *Service {
	return &Service{db: db, tasks: tasks, provider: provider, logger: logger}
}

// Get returns the cached metadata record for a note, or nil when absent.
func (s *Service) Get(noteID string) (*models.NoteAIModel, error) {
	var rec models.NoteAIModel
	if err := s.db.First(&rec, "note_id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Generate enqueues metadata generation for an owned note. Deduped on the note
// ID: a second request while one is in flight returns the in-flight task.
func (s *Service) Generate(ctx context.Context, noteID, actorID string) (*taskqueue.Task, error) {
	var note models.NoteModel
	if err := s.db.First(&note, "id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	if note.UserID != actorID {
		return nil, ErrNotOwner
	}
	if note.Content == "" {
		return nil, ErrNoContent
	}

	task, created, err := s.tasks.Enqueue(ctx, TaskTypeNoteMetadata, map[string]string{"note_id": noteID}, noteID)
	if err != nil {
		return nil, err
	}
	if created {
		go s.process(task.ID, &note)
	}
	return task, nil
}

// GetTask exposes task progress for polling clients.
func (s *Service) GetTask(ctx context.Context, id string) (*taskqueue.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *Service) process(taskID string, note *models.NoteModel) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_ = s.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskRunning, nil, "")

	meta, err := s.provider.GenerateMetadata(ctx, note.Title, note.Content)
	if err != nil {
		s.logger.Warn("note metadata generation failed",
			zap.String("note_id", note.ID), zap.Error(err))
		_ = s.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskFailed, nil, err.Error())
		return
	}

	rec := models.NoteAIModel{
		NoteID:      note.ID,
		Summary:     meta.Summary,
		Keywords:    meta.Keywords,
		Topics:      meta.Topics,
		QACache:     meta.QA,
		GeneratedBy: s.provider.Name(),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "note_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"summary", "keywords", "topics", "qa_cache", "generated_by", "updated_at",
		}),
	}).Create(&rec).Error
	if err != nil {
		_ = s.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskFailed, nil, err.Error())
		return
	}

	_ = s.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskCompleted, rec, "")
}
