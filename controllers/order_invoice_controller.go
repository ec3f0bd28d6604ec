package controllers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// GetOrderInvoice renders an order as a downloadable PDF invoice
func GetOrderInvoice(c *gin.Context) {
	utils.LogInfo("GetOrderInvoice called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID format", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderProducts").Preload("OrderProducts.Product").
		Preload("User").First(&order, id).Error; err != nil {
		utils.LogError("Order not found: %d", id)
		utils.NotFound(c, "Order not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(190, 12, "Invoice")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(95, 7, fmt.Sprintf("Order #%d", order.ID))
	pdf.Cell(95, 7, "Date: "+order.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(95, 7, "Customer: "+order.User.Username)
	pdf.Cell(95, 7, "Status: "+order.Status)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.OrderProducts {
		name := item.Product.Name
		if name == "" {
			name = fmt.Sprintf("Product #%d", item.ProductID)
		}
		pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.PriceAtOrderTime), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.PriceAtOrderTime*float64(item.Quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", order.TotalAmount), "1", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice for order %d: %v", id, err)
		utils.InternalServerError(c, "Failed to generate invoice", err.Error())
		return
	}

	utils.LogInfo("Invoice generated for order %d (%d bytes)", id, buf.Len())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", order.ID))
	c.Data(200, "application/pdf", buf.Bytes())
}
