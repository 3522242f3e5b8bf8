package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/smartresume/pkg/matching"
)

// snippetLimit is the number of characters of extracted text kept on a record.
const snippetLimit = 500

// Analysis is the outcome of one analyze request.
type Analysis struct {
	TextLength int
	Snippet    string
	Match      *matching.Result
}

// Service runs the intake pipeline: store binary, extract text, score it,
// persist the record. It also serves history, file fetch and deletion.
type Service struct {
	files     FileStore
	extractor Extractor
	engine    *matching.Engine
	repo      Repository
}

func NewService(files FileStore, extractor Extractor, engine *matching.Engine, repo Repository) *Service {
	return &Service{files: files, extractor: extractor, engine: engine, repo: repo}
}

// Analyze ingests an uploaded document for the owner. Extraction runs
// strictly before any database write, so a failed extraction never leaves a
// half-created record; the stored binary is cleaned up on that path.
func (s *Service) Analyze(ctx context.Context, ownerID uuid.UUID, originalName string, data []byte) (Analysis, error) {
	if len(data) == 0 {
		return Analysis{}, ErrEmptyUpload
	}

	fileName, err := s.files.Save(originalName, data)
	if err != nil {
		return Analysis{}, err
	}

	text, err := s.extractor.Extract(originalName, data)
	if err != nil {
		_ = s.files.Remove(fileName)
		return Analysis{}, fmt.Errorf("extract text: %w", err)
	}

	match := s.engine.Match(text)
	snippet := truncate(text, snippetLimit)

	now := time.Now().UTC()
	rec := Record{
		ID:           uuid.New(),
		FileName:     fileName,
		OriginalName: originalName,
		Matched:      matchedJob(match),
		Snippet:      snippet,
		UserID:       ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Analysis{}, fmt.Errorf("save record: %w", err)
	}

	return Analysis{TextLength: len(text), Snippet: snippet, Match: match}, nil
}

// History returns the owner's records, newest first.
func (s *Service) History(ctx context.Context, ownerID uuid.UUID) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// FetchFile returns the stored bytes for an owned file. A file missing on
// disk is reported as not found irrespective of database state.
func (s *Service) FetchFile(ctx context.Context, ownerID uuid.UUID, fileName string) ([]byte, error) {
	if _, err := s.repo.GetByOwnerAndFile(ctx, ownerID, fileName); err != nil {
		return nil, err
	}
	return s.files.Read(fileName)
}

// Delete removes the binary and then the owning record. A missing binary is
// not found and the database is left untouched. If the record deletion fails
// after the binary is gone, the divergence surfaces as ErrPartialDelete.
func (s *Service) Delete(ctx context.Context, ownerID uuid.UUID, fileName string) error {
	if _, err := s.repo.GetByOwnerAndFile(ctx, ownerID, fileName); err != nil {
		return err
	}
	if !s.files.Exists(fileName) {
		return ErrNotFound
	}
	if err := s.files.Remove(fileName); err != nil {
		return err
	}
	if err := s.repo.DeleteByOwnerAndFile(ctx, ownerID, fileName); err != nil {
		return fmt.Errorf("%w: %v", ErrPartialDelete, err)
	}
	return nil
}

func matchedJob(m *matching.Result) *MatchedJob {
	if m == nil {
		return nil
	}
	return &MatchedJob{
		Title:         m.Job.Title,
		Description:   m.Job.Description,
		MatchedSkills: m.MatchedSkills,
	}
}

// truncate cuts s to at most limit characters without tearing a rune.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
