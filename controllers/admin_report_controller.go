package controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
	"github.com/tealeg/xlsx"
)

// GetOrdersReport exports the orders of the requested period as an xlsx
// spreadsheet. Supported periods are day, week and month.
func GetOrdersReport(c *gin.Context) {
	utils.LogInfo("GetOrdersReport called")

	period := c.DefaultQuery("period", "day")

	var since time.Time
	now := time.Now()
	switch period {
	case "day":
		since = now.AddDate(0, 0, -1)
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, -1, 0)
	default:
		utils.LogError("Unknown report period requested: %s", period)
		utils.BadRequest(c, "Invalid period. Use day, week or month", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("User").
		Where("created_at >= ?", since).Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for report: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create report sheet: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"Order ID", "Customer", "Status", "Total", "Created At"} {
		cell := header.AddCell()
		cell.Value = title
	}

	var grandTotal float64
	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().Value = order.User.Username
		row.AddCell().Value = order.Status
		row.AddCell().SetFloat(order.TotalAmount)
		row.AddCell().Value = order.CreatedAt.Format("2006-01-02 15:04")
		grandTotal += order.TotalAmount
	}

	summary := sheet.AddRow()
	summary.AddCell().Value = ""
	summary.AddCell().Value = ""
	summary.AddCell().Value = "Grand Total"
	summary.AddCell().SetFloat(grandTotal)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write report: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	utils.LogInfo("Orders report generated: period=%s, %d orders", period, len(orders))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders-%s-%s.xlsx", period, now.Format("20060102")))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
