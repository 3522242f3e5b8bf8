package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/smartresume/api/http/presenter"
	"github.com/artem13815/smartresume/pkg/resume"
)

// MaxUploadBytes is the hard cap for a single resume upload (5 MiB).
const MaxUploadBytes = 5 << 20

type ResumeHandler struct {
	svc *resume.Service
}

func NewResumeHandler(svc *resume.Service) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Analyze принимает файл резюме, извлекает текст, подбирает вакансию
// и сохраняет результат в историю пользователя.
// @Summary Analyze resume
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "resume file (pdf or docx, max 5 MiB)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "no file uploaded")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	// The server-level body limit already rejects oversized requests; this
	// re-checks the cap on the file itself in case that limit is raised.
	data, err := readAtMost(file, MaxUploadBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.svc.Analyze(c.Context(), ownerID(c), fh.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrEmptyUpload):
			return presenter.Error(c, http.StatusBadRequest, "no file uploaded")
		default:
			log.Printf("analyze resume: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "failed to analyze resume")
		}
	}

	var jobMatch any
	if res.Match != nil {
		jobMatch = res.Match
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"textLength": res.TextLength,
		"snippet":    res.Snippet,
		"jobMatch":   jobMatch,
	})
}

// History возвращает записи пользователя, новые первыми.
// @Summary Resume history
// @Tags    resume
// @Produce json
// @Success 200 {array} resume.Record
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes/history [get]
func (h *ResumeHandler) History(c *fiber.Ctx) error {
	records, err := h.svc.History(c.Context(), ownerID(c))
	if err != nil {
		log.Printf("list history: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch history")
	}
	if records == nil {
		records = []resume.Record{}
	}
	return presenter.JSON(c, http.StatusOK, records)
}

// FetchFile отдаёт исходный файл, если он принадлежит пользователю.
// @Summary Download stored resume file
// @Tags    resume
// @Produce application/pdf
// @Param   filename path string true "stored file name"
// @Success 200 {file} file
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /file/{filename} [get]
func (h *ResumeHandler) FetchFile(c *fiber.Ctx) error {
	data, err := h.svc.FetchFile(c.Context(), ownerID(c), pathParam(c, "filename"))
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "file not found")
		}
		log.Printf("fetch file: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch file")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Status(http.StatusOK).Send(data)
}

// Delete удаляет файл и запись о нём.
// @Summary Delete stored resume
// @Tags    resume
// @Produce json
// @Param   filename path string true "stored file name"
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /delete/{filename} [delete]
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	err := h.svc.Delete(c.Context(), ownerID(c), pathParam(c, "filename"))
	switch {
	case err == nil:
		return presenter.Message(c, http.StatusOK, "deleted")
	case errors.Is(err, resume.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "file not found")
	case errors.Is(err, resume.ErrPartialDelete):
		log.Printf("delete resume: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, resume.ErrPartialDelete.Error())
	default:
		log.Printf("delete resume: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete file")
	}
}

func ownerID(c *fiber.Ctx) uuid.UUID {
	idStr, _ := c.Locals("userId").(string)
	id, _ := uuid.Parse(idStr)
	return id
}

// pathParam returns the URL-decoded route parameter.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", resume.ErrTooLarge, max)
	}
	return b, nil
}
