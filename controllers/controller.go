package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"go-street-kiosk/database"
	"go-street-kiosk/helpers"
	"go-street-kiosk/ledger"
	"go-street-kiosk/middleware"
	"go-street-kiosk/models"
	"go-street-kiosk/shop"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

var validate = validator.New()

// Controller carries the collaborators every handler needs. Nothing about a
// customer or admin session is stored here; that lives on the request.
type Controller struct {
	Orders    *ledger.Service
	Config    *shop.ConfigStore
	Menu      *shop.MenuStore
	Tokens    *helpers.TokenHelper
	IDs       *helpers.OrderIDGenerator
	AdminHash string
	ShopName  string
	Location  *time.Location
	Now       func() time.Time
	Timeout   time.Duration
	Logger    *log.Logger
}

func (ctl *Controller) context(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := ctl.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

func (ctl *Controller) now() time.Time {
	if ctl.Now == nil {
		return time.Now().In(ctl.location())
	}
	return ctl.Now().In(ctl.location())
}

func (ctl *Controller) location() *time.Location {
	if ctl.Location == nil {
		return time.Local
	}
	return ctl.Location
}

func (ctl *Controller) logf(format string, args ...any) {
	logger := ctl.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(format, args...)
}

// audit logs a dashboard mutation with the session it came from.
func (ctl *Controller) audit(c *gin.Context, format string, args ...any) {
	role, issued := "unknown", "-"
	if value, ok := c.Get(middleware.ClaimsKey); ok {
		if claims, ok := value.(*helpers.SignedDetails); ok {
			role = claims.Role
			issued = time.Unix(claims.IssuedAt, 0).In(ctl.location()).Format(time.RFC3339)
		}
	}
	ctl.logf("%s (session issued %s) [%s]: %s", role, issued, c.GetString(middleware.RequestIDKey), fmt.Sprintf(format, args...))
}

// ledgerDay picks the week a request is about: the ?date= query when given,
// otherwise the shop's active date.
func (ctl *Controller) ledgerDay(ctx context.Context, c *gin.Context) (time.Time, error) {
	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation(models.DateLayout, raw, ctl.location())
		if err != nil {
			return time.Time{}, &badRequestError{msg: "date must be YYYY-MM-DD"}
		}
		return day, nil
	}
	cfg, err := ctl.Config.Load(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return cfg.ActiveDay(ctl.now(), ctl.location())
}

type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

// abortWithError answers with the status code that matches err.
func (ctl *Controller) abortWithError(c *gin.Context, err error) {
	code, msg := errorStatus(err)
	if code >= http.StatusInternalServerError {
		ctl.logf("%s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString(middleware.RequestIDKey), err)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

func errorStatus(err error) (int, string) {
	var (
		badRequest  *badRequestError
		decodeErr   *ledger.DecodeError
		unknownItem *models.UnknownItemError
		soldOut     *models.SoldOutError
		validation  validator.ValidationErrors
	)
	switch {
	case errors.Is(err, database.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "system unavailable, please try again"
	case errors.As(err, &decodeErr):
		return http.StatusInternalServerError, "stored data is corrupt: " + decodeErr.Key
	case errors.As(err, &badRequest), errors.As(err, &validation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ledger.ErrInvalidOrder), errors.Is(err, ledger.ErrInvalidTransition):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &unknownItem):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &soldOut), errors.Is(err, shop.ErrItemExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, shop.ErrItemNotFound), errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, database.ErrInvalidKey), errors.Is(err, shop.ErrInvalid):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
