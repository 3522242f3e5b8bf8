package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Errors surfaced by the pipeline.
var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyUpload   = errors.New("no file uploaded")
	ErrTooLarge      = errors.New("file too large")
	ErrPartialDelete = errors.New("file removed but record deletion failed")
)

// MatchedJob is the persisted match outcome for a record.
type MatchedJob struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	MatchedSkills []string `json:"matchedSkills"`
}

// Record хранит результат анализа одного загруженного резюме.
type Record struct {
	ID           uuid.UUID   `json:"id"`
	FileName     string      `json:"fileName"`
	OriginalName string      `json:"originalName"`
	Matched      *MatchedJob `json:"matchedJob,omitempty"`
	Snippet      string      `json:"snippet"`
	UserID       uuid.UUID   `json:"userId"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Repository — порт доступа к записям анализа.
// Every read and delete is scoped by the owning user id.
type Repository interface {
	Create(ctx context.Context, rec Record) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Record, error)
	GetByOwnerAndFile(ctx context.Context, ownerID uuid.UUID, fileName string) (Record, error)
	DeleteByOwnerAndFile(ctx context.Context, ownerID uuid.UUID, fileName string) error
}

// Extractor converts a stored binary document into plain text.
// Treated as a black box that can fail on malformed input.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// FileStore is the durable binary storage for uploaded documents.
type FileStore interface {
	Save(originalName string, data []byte) (string, error)
	Read(fileName string) ([]byte, error)
	Remove(fileName string) error
	Exists(fileName string) bool
}
