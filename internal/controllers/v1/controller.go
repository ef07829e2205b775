// Package v1 implements the v1 API.
package v1

import (
	"errors"
	"net/http"

	"github.com/couplefin/backend/internal/calendar"
	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/internal/models"
	"github.com/couplefin/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Controller serves the API for one couple.
type Controller struct {
	Ledger   *ledger.Service
	Calendar *calendar.Calendar
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterRootRoutes(r)
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterRouletteRoutes(r.Group("/roulette"))
	co.RegisterJournalRoutes(r.Group("/journal"))
	co.RegisterCoupleRoutes(r.Group("/couple"))
	co.RegisterEventRoutes(r.Group("/events"))
	co.RegisterOverviewRoutes(r)
}

var (
	notFound = []error{
		models.ErrResourceNotFound,
		ledger.ErrTransactionNotFound,
		ledger.ErrBudgetNotFound,
		ledger.ErrGoalNotFound,
		ledger.ErrJournalEntryNotFound,
		calendar.ErrEventNotFound,
	}

	badRequest = []error{
		httputil.ErrInvalidBody,
		httputil.ErrRequestBodyEmpty,
		httputil.ErrInvalidUUID,
		httputil.ErrInvalidQuery,
		types.ErrInvalidMonth,
		types.ErrInvalidDay,
		types.ErrInvalidTimeOfDay,
		ledger.ErrInvalidAmount,
		ledger.ErrInvalidTransaction,
		ledger.ErrMissingPartner,
		ledger.ErrAmountMismatch,
		ledger.ErrInvalidBudget,
		ledger.ErrInvalidGoal,
		ledger.ErrInvalidContribution,
		ledger.ErrInsufficientBalance,
		ledger.ErrEmptyOption,
		ledger.ErrDuplicateOption,
		ledger.ErrNoOptions,
		ledger.ErrEmptyJournalEntry,
		ledger.ErrUnknownMood,
		ledger.ErrInvalidCoupleNames,
		calendar.ErrMissingTitle,
		errCleanupConfirmation,
	}
)

// status returns the appropriate status for an error.
//
// Everything that is not a known rejection is a server error.
func status(err error) int {
	for _, e := range notFound {
		if errors.Is(err, e) {
			return http.StatusNotFound
		}
	}

	for _, e := range badRequest {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// httpError writes the error response for err.
//
// Server errors are logged and replaced with a generic message.
func httpError(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = models.ErrGeneral
	}

	c.JSON(s, httputil.HTTPError{
		Error: err.Error(),
	})
}

// url returns the base URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.ContextURL))
}
