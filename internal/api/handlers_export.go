package api

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (handler *Handler) ExportRecords(c *fiber.Ctx) error {
	user, handled, err := handler.requireSessionUser(c)
	if handled || err != nil {
		return err
	}

	handler.ensureDependencies()
	var workbook bytes.Buffer
	if err := handler.exportService.WriteWorkbook(user.ID, &workbook); err != nil {
		handler.logger.Error("export workbook", zap.Uint("user_id", user.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to export records")
	}

	filename := fmt.Sprintf("mlimi-records-%s.xlsx", nowInLocation(handler.location).Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(workbook.Bytes())
}
