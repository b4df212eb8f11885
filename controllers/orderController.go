package controllers

import (
	"net/http"
	"strconv"

	"go-street-kiosk/helpers"
	"go-street-kiosk/ledger"
	"go-street-kiosk/models"

	"github.com/gin-gonic/gin"
)

// Checkout prices the cart against the current menu and appends the order
// to the active week's ledger.
func (ctl *Controller) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		var cart models.Cart
		if err := c.ShouldBindJSON(&cart); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&cart); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		cfg, err := ctl.Config.Load(ctx)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		if !cfg.IsOpen() {
			c.JSON(http.StatusForbidden, gin.H{"error": "the shop is closed"})
			return
		}
		menu, err := ctl.Menu.LoadMenu(ctx)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		soldOut, err := ctl.Menu.LoadSoldOut(ctx)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		items, err := cart.Price(menu, soldOut)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}

		now := ctl.now()
		day, err := cfg.ActiveDay(now, ctl.location())
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		key := ledger.Resolve(day)
		order := models.NewOrder(ctl.IDs.Next(), now, cart.DisplayName(), items)
		if err := ctl.Orders.Append(ctx, key, order); err != nil {
			ctl.abortWithError(c, err)
			return
		}

		response := gin.H{"ledger": key, "order": order}
		if cart.Phone != "" {
			response["notification"] = helpers.ConfirmationLink(ctl.ShopName, cart.Phone, order)
		}
		c.JSON(http.StatusCreated, response)
	}
}

func (ctl *Controller) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		day, err := ctl.ledgerDay(ctx, c)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		key := ledger.Resolve(day)
		orders, err := ctl.Orders.LoadSnapshot(ctx, key)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ledger": key, "orders": orders})
	}
}

func (ctl *Controller) FulfillOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be a number"})
			return
		}
		day, err := ctl.ledgerDay(ctx, c)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		key := ledger.Resolve(day)
		matched, err := ctl.Orders.UpdateStatus(ctx, key, orderID, models.StatusFulfilled)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "fulfil order %d in %s (matched=%t)", orderID, key, matched)
		response := gin.H{"ledger": key, "order_id": orderID, "matched": matched}
		if matched {
			response["status"] = models.StatusFulfilled
		}
		c.JSON(http.StatusOK, response)
	}
}

func (ctl *Controller) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id must be a number"})
			return
		}
		day, err := ctl.ledgerDay(ctx, c)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		key := ledger.Resolve(day)
		removed, err := ctl.Orders.DeleteByID(ctx, key, orderID)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "delete order %d from %s (matched=%t)", orderID, key, removed)
		c.JSON(http.StatusOK, gin.H{"ledger": key, "order_id": orderID, "matched": removed})
	}
}

func (ctl *Controller) GetLedgers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		keys, err := ctl.Orders.ListLedgers(ctx)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ledgers": keys})
	}
}
