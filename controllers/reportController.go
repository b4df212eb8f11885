package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-street-kiosk/ledger"
	"go-street-kiosk/models"
	"go-street-kiosk/reports"

	"github.com/gin-gonic/gin"
)

const noData = "no data"

// weekOrders loads the ledger a report is about. A failed read yields an
// empty snapshot together with the read error; views may render the empty
// snapshot, the raw export may not.
func (ctl *Controller) weekOrders(c *gin.Context) (time.Time, []models.Order, bool, error) {
	ctx, cancel := ctl.context(c)
	defer cancel()

	day, err := ctl.ledgerDay(ctx, c)
	if err != nil {
		var badRequest *badRequestError
		if errors.As(err, &badRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": badRequest.msg})
			return time.Time{}, nil, false, nil
		}
		ctl.logf("report date lookup failed: %v", err)
		day = ctl.now()
	}
	orders, err := ctl.Orders.LoadSnapshot(ctx, ledger.Resolve(day))
	if err != nil {
		ctl.logf("report read of %s failed: %v", ledger.Resolve(day), err)
		return day, []models.Order{}, true, err
	}
	return day, orders, true, nil
}

func noteFor(readErr error) string {
	if readErr != nil {
		return noData
	}
	return ""
}

type salesResponse struct {
	reports.Report
	Error string `json:"error,omitempty"`
}

func (ctl *Controller) GetSalesReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		day, orders, ok, readErr := ctl.weekOrders(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, salesResponse{Report: reports.Build(day, orders), Error: noteFor(readErr)})
	}
}

// ExportJSON downloads the raw weekly ledger as a backup. A ledger that
// cannot be read is an error, never an empty file.
func (ctl *Controller) ExportJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		day, orders, ok, readErr := ctl.weekOrders(c)
		if !ok {
			return
		}
		if readErr != nil {
			ctl.abortWithError(c, readErr)
			return
		}
		data, name, err := reports.ExportJSON(day, orders)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.attachment(c, name, "")
		c.Data(http.StatusOK, "application/json", data)
	}
}

func (ctl *Controller) ExportHTML() gin.HandlerFunc {
	return func(c *gin.Context) {
		day, orders, ok, readErr := ctl.weekOrders(c)
		if !ok {
			return
		}
		page, err := reports.RenderHTML(ctl.ShopName, reports.Build(day, orders))
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.attachment(c, reports.HTMLFileName(day), noteFor(readErr))
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}

func (ctl *Controller) attachment(c *gin.Context, name, note string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if note != "" {
		c.Header("X-Report-Error", note)
	}
}
