package handler

import (
	"bytes"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"examdocs/internal/bundle"
	"examdocs/internal/model"
	"examdocs/internal/service"
	"examdocs/internal/spreadsheet"
)

// BundleIDHeader carries the archive ID of a generated bundle.
const BundleIDHeader = "X-Bundle-ID"

// uploadedFile opens the multipart "file" field. The boolean is false once an error response was written.
func uploadedFile(c *fiber.Ctx) (multipart.File, bool, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, false, writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, false, writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	return f, true, nil
}

// CheckStudents compares the uploaded student count with the session's total capacity.
// @Summary Compare student count with room capacity
// @Tags exams
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "Student list (xlsx)"
// @Success 200 {object} service.CheckResult
// @Failure 400 {object} errorPayload
// @Router /sessions/{id}/check [post]
func CheckStudents(svc service.ExamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, ok, err := uploadedFile(c)
		if !ok {
			return err
		}
		defer f.Close()

		res, err := svc.Check(c.UserContext(), c.Params("id"), f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GenerateDocuments takes exam metadata form fields plus the student list and answers with the zip bundle.
// @Summary Generate exam documents
// @Tags exams
// @Accept multipart/form-data
// @Produce application/zip
// @Param id path string true "Session ID"
// @Param file formData file true "Student list (xlsx)"
// @Param university formData string true "University"
// @Param faculty formData string true "Faculty"
// @Param department formData string true "Department"
// @Param course formData string true "Course"
// @Param exam_type formData string true "Exam type"
// @Param instructor formData string true "Instructor"
// @Param date formData string true "Date"
// @Param time formData string true "Time"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /sessions/{id}/documents [post]
func GenerateDocuments(svc service.ExamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, ok, err := uploadedFile(c)
		if !ok {
			return err
		}
		defer f.Close()

		var info model.ExamInfo
		if err := c.BodyParser(&info); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse exam metadata")
		}

		res, err := svc.Generate(c.UserContext(), c.Params("id"), info, f)
		if err != nil {
			return writeServiceError(c, err)
		}

		if res.Bundle != nil {
			c.Set(BundleIDHeader, res.Bundle.ID)
		}
		c.Attachment(bundle.Filename)
		c.Set(fiber.HeaderContentType, bundle.ContentType)
		return c.Status(fiber.StatusOK).Send(res.Archive)
	}
}

// DownloadTemplate serves the empty student list workbook.
// @Summary Download student list template
// @Tags exams
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /template [get]
func DownloadTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := spreadsheet.Template(&buf); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Attachment(spreadsheet.TemplateFilename)
		c.Set(fiber.HeaderContentType, spreadsheet.ContentType)
		return c.Send(buf.Bytes())
	}
}
