package controllers

import (
	"net/http"

	"go-street-kiosk/models"

	"github.com/gin-gonic/gin"
)

// GetShopStatus is the public view of the config: opening hours and
// whether checkout is currently accepted.
func (ctl *Controller) GetShopStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		cfg, err := ctl.Config.Load(ctx)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"name":       ctl.ShopName,
			"open":       cfg.IsOpen(),
			"open_time":  cfg.OpenTime,
			"close_time": cfg.CloseTime,
		})
	}
}

func (ctl *Controller) GetConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		cfg, err := ctl.Config.Load(ctx)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

func (ctl *Controller) UpdateConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.context(c)
		defer cancel()

		var cfg models.ShopConfig
		if err := c.ShouldBindJSON(&cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&cfg); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if err := cfg.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := ctl.Config.Save(ctx, cfg); err != nil {
			ctl.abortWithError(c, err)
			return
		}
		ctl.audit(c, "update config (active date %q, open %s-%s)", cfg.ActiveDate, cfg.OpenTime, cfg.CloseTime)
		c.JSON(http.StatusOK, cfg)
	}
}
