package v1

import (
	"net/http"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterOverviewRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/balance", co.OptionsOverview)
	r.GET("/balance", co.GetBalance)

	r.OPTIONS("/dashboard", co.OptionsOverview)
	r.GET("/dashboard", co.GetDashboard)

	r.OPTIONS("/advice", co.OptionsOverview)
	r.GET("/advice", co.GetAdvice)
}

type Balance struct {
	Balance   decimal.Decimal      `json:"balance" example:"2950" swaggertype:"number"`
	Formatted string               `json:"formatted" example:"R$ 2.950,00"`
	Status    ledger.BalanceStatus `json:"status"`
}

type BalanceResponse struct {
	Data Balance `json:"data"`
}

type DashboardResponse struct {
	Data ledger.Dashboard `json:"data"`
}

type AdviceResponse struct {
	Data ledger.Advice `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Overview
// @Success		204
// @Router			/v1/balance [options]
// @Router			/v1/dashboard [options]
// @Router			/v1/advice [options]
func (co Controller) OptionsOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get balance
// @Description	Returns the shared balance and how worried the couple should be about it
// @Tags			Overview
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Router			/v1/balance [get]
func (co Controller) GetBalance(c *gin.Context) {
	balance := co.Ledger.State().Balance

	c.JSON(http.StatusOK, BalanceResponse{
		Data: Balance{
			Balance:   balance,
			Formatted: httputil.FormatBRL(balance),
			Status:    ledger.StatusFor(balance),
		},
	})
}

// @Summary		Get dashboard
// @Description	Returns the totals, all budgets and the expenses per category. Budgets count all expenses ever recorded.
// @Tags			Overview
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, DashboardResponse{
		Data: co.Ledger.State().Dashboard(),
	})
}

// @Summary		Get advice
// @Description	Returns financial advice nobody asked for
// @Tags			Overview
// @Produce		json
// @Success		200	{object}	AdviceResponse
// @Router			/v1/advice [get]
func (co Controller) GetAdvice(c *gin.Context) {
	c.JSON(http.StatusOK, AdviceResponse{
		Data: co.Ledger.State().Advice(),
	})
}
