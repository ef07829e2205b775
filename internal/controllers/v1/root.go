package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", co.Options)

	r.GET("/export", co.Export)
	r.OPTIONS("/export", co.OptionsExport)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Balance      string `json:"balance" example:"https://example.com/api/v1/balance"`           // URL of the balance endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of Budget collection endpoint
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`               // URL of Goal collection endpoint
	Roulette     string `json:"roulette" example:"https://example.com/api/v1/roulette"`         // URL of the roulette
	Journal      string `json:"journal" example:"https://example.com/api/v1/journal"`           // URL of Journal collection endpoint
	Couple       string `json:"couple" example:"https://example.com/api/v1/couple"`             // URL of the couple endpoint
	Dashboard    string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`       // URL of the dashboard
	Advice       string `json:"advice" example:"https://example.com/api/v1/advice"`             // URL of the advice endpoint
	Events       string `json:"events" example:"https://example.com/api/v1/events"`             // URL of Event collection endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export"`             // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := baseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Balance:      url + "/v1/balance",
			Transactions: url + "/v1/transactions",
			Budgets:      url + "/v1/budgets",
			Goals:        url + "/v1/goals",
			Roulette:     url + "/v1/roulette",
			Journal:      url + "/v1/journal",
			Couple:       url + "/v1/couple",
			Dashboard:    url + "/v1/dashboard",
			Advice:       url + "/v1/advice",
			Events:       url + "/v1/events",
			Export:       url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// Cleanup resets the ledger first, then the calendar. The two snapshots are written
// separately: if the calendar write fails, the ledger stays reset, the events are kept
// and the request fails with 500. Repeating the request completes the cleanup.
//
// @Summary		Delete everything
// @Description	Permanently deletes all transactions, budgets, goals, journal entries and events and restores the default partner names and roulette options
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		httpError(c, errCleanupConfirmation)
		return
	}

	err = co.Ledger.Reset(c.Request.Context())
	if err != nil {
		httpError(c, err)
		return
	}

	err = co.Calendar.Reset(c.Request.Context())
	if err != nil {
		httpError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportData holds both snapshots exactly as they are stored.
type ExportData struct {
	Ledger json.RawMessage `json:"sarcasticFinanceAppCouple" swaggertype:"object"`
	Events json.RawMessage `json:"coupleCalendarEvents" swaggertype:"array,object"`
}

type ExportResponse struct {
	Version      string     `json:"version" example:"1.2.0"`                                 // Version of the backend that created the export
	CreationTime time.Time  `json:"creationTime" example:"2024-05-12T17:59:23.491514Z"`       // When the export was created
	Data         ExportData `json:"data"`                                                      // The snapshots
	Clues        string     `json:"clues" example:"Import this with the browser application"` // Hint for humans
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports both snapshots in the format they are persisted in
// @Tags			v1
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/export [get]
func (co Controller) Export(c *gin.Context) {
	state, err := co.Ledger.Export()
	if err != nil {
		httpError(c, err)
		return
	}

	events, err := co.Calendar.Export()
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      version,
		CreationTime: co.Ledger.Now(),
		Data: ExportData{
			Ledger: state,
			Events: events,
		},
		Clues: "data." + ledger.SnapshotKey + " and data.coupleCalendarEvents can be stored as they are",
	})
}
