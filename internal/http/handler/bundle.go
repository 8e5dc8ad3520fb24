package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"examdocs/internal/service"
)

const presignExpiry = 15 * time.Minute

// ListBundles lists archived bundles with limit & offset.
// @Summary List archived bundles
// @Tags bundles
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.BundleListResult
// @Router /bundles [get]
func ListBundles(svc service.BundleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func bundleID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	_, err := uuid.Parse(id)
	return id, err == nil
}

// GetBundle returns the metadata of one archived bundle.
// @Summary Get bundle
// @Tags bundles
// @Produce json
// @Param id path string true "Bundle ID"
// @Success 200 {object} model.Bundle
// @Failure 404 {object} errorPayload
// @Router /bundles/{id} [get]
func GetBundle(svc service.BundleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := bundleID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		b, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(b)
	}
}

// DownloadBundle streams the archived zip, or with ?presign=true returns a temporary storage URL.
// @Summary Download bundle
// @Tags bundles
// @Produce application/zip
// @Param id path string true "Bundle ID"
// @Param presign query bool false "Return a pre-signed URL instead"
// @Success 200 {file} file
// @Failure 404 {object} errorPayload
// @Router /bundles/{id}/download [get]
func DownloadBundle(svc service.BundleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := bundleID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if c.QueryBool("presign") {
			url, err := svc.DownloadURL(c.UserContext(), id, presignExpiry)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(fiber.Map{"url": url, "expires_in": int(presignExpiry.Seconds())})
		}

		rc, b, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Attachment(b.Filename)
		c.Set(fiber.HeaderContentType, b.ContentType)
		// fasthttp closes rc once the body is written.
		return c.SendStream(rc, int(b.Size))
	}
}

// DeleteBundle removes an archived bundle.
// @Summary Delete bundle
// @Tags bundles
// @Param id path string true "Bundle ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /bundles/{id} [delete]
func DeleteBundle(svc service.BundleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := bundleID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ArchiveDisabled answers every archive route when no object storage is configured.
func ArchiveDisabled() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeServiceError(c, service.ErrArchiveDisabled)
	}
}
