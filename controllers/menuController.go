package controllers

import (
	"net/http"

	"go-street-kiosk/models"

	"github.com/gin-gonic/gin"
)

type menuEntry struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	SoldOut bool    `json:"sold_out"`
}

type priceRequest struct {
	Price *float64 `json:"price" validate:"required,gte=0"`
}

type renameRequest struct {
	NewName string `json:"new_name" validate:"required,max=80"`
}

// GetMenu lists the menu for the kiosk, sold-out items flagged.
func (ctl *Controller) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

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
		entries := make([]menuEntry, 0, len(menu))
		for _, name := range menu.Names() {
			entries = append(entries, menuEntry{Name: name, Price: menu[name], SoldOut: soldOut.Contains(name)})
		}
		c.JSON(http.StatusOK, gin.H{"items": entries, "sold_out": soldOut})
	}
}

// ReplaceMenu overwrites menu.json with the posted name to price map.
func (ctl *Controller) ReplaceMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		var menu models.Menu
		if err := c.ShouldBindJSON(&menu); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := menu.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := ctl.Menu.SaveMenu(ctx, menu); err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "replace menu with %d items", len(menu))
		c.JSON(http.StatusOK, gin.H{"menu": menu})
	}
}

func (ctl *Controller) SetItemPrice() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		var req priceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		menu, err := ctl.Menu.SetPrice(ctx, c.Param("name"), *req.Price)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "price %q at %.2f", c.Param("name"), *req.Price)
		c.JSON(http.StatusOK, gin.H{"menu": menu})
	}
}

func (ctl *Controller) DeleteItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		menu, err := ctl.Menu.RemoveItem(ctx, c.Param("name"))
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "remove %q from the menu", c.Param("name"))
		c.JSON(http.StatusOK, gin.H{"menu": menu})
	}
}

// RenameItem keeps the price. A sold-out flag on the old name stays behind
// until it is cleared through the sold-out endpoints.
func (ctl *Controller) RenameItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		var req renameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		menu, err := ctl.Menu.RenameItem(ctx, c.Param("name"), req.NewName)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "rename %q to %q", c.Param("name"), req.NewName)
		c.JSON(http.StatusOK, gin.H{"menu": menu})
	}
}

func (ctl *Controller) ReplaceSoldOut() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		var set models.SoldOut
		if err := c.ShouldBindJSON(&set); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := set.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := ctl.Menu.SaveSoldOut(ctx, set); err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "replace sold-out list with %d items", len(set))
		c.JSON(http.StatusOK, gin.H{"sold_out": set})
	}
}

func (ctl *Controller) MarkSoldOut() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		set, err := ctl.Menu.MarkSoldOut(ctx, c.Param("name"))
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "mark %q sold out", c.Param("name"))
		c.JSON(http.StatusOK, gin.H{"sold_out": set})
	}
}

func (ctl *Controller) MarkAvailable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		set, err := ctl.Menu.MarkAvailable(ctx, c.Param("name"))
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "mark %q available", c.Param("name"))
		c.JSON(http.StatusOK, gin.H{"sold_out": set})
	}
}
