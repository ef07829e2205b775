package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.UpsertBudget)
	}
	{
		r.OPTIONS("/:category", co.OptionsBudgetDetail)
		r.GET("/:category", co.GetBudget)
		r.DELETE("/:category", co.DeleteBudget)
	}
	{
		r.OPTIONS("/:category/payments", co.OptionsBudgetPayments)
		r.POST("/:category/payments", co.PayBudget)
	}
}

// BudgetEditable is the payload to set the limit of a category.
type BudgetEditable struct {
	Category string `json:"category" binding:"required" example:"Alimentação"`
	RawLimit string `json:"rawLimit" binding:"required,numeric" example:"10000"` // Limit in cents
}

type BudgetResponse struct {
	Data    ledger.BudgetStatus `json:"data"`
	Message string              `json:"message,omitempty" example:"Orçamento para \"Alimentação\" atualizado! Cuidado para não estourar."`
}

type BudgetListResponse struct {
	Data           []ledger.BudgetStatus `json:"data"`
	Month          *types.Month          `json:"month" swaggertype:"string" example:"2024-05"` // The month expenses are counted for. Null if all expenses are counted.
	TotalRemaining decimal.Decimal       `json:"totalRemaining" example:"50" swaggertype:"number"`
}

type BudgetPaymentResponse struct {
	Data    ledger.Transaction `json:"data"`
	Message string             `json:"message" example:"Despesa de R$ 100,00 registrada. A culpa é do(a) Alice!"`
}

type BudgetDeleteResponse struct {
	Message string `json:"message" example:"Orçamento para \"Alimentação\" removido. Vão gastar sem limites agora, né?"`
}

// BudgetQueryFilter selects which expenses are counted against the budgets.
type BudgetQueryFilter struct {
	Month   string `form:"month"`
	AllTime string `form:"allTime"`
}

// month returns the month to count expenses for. nil means all expenses.
func (f BudgetQueryFilter) month(current types.Month) (*types.Month, error) {
	if f.AllTime != "" {
		allTime, err := strconv.ParseBool(f.AllTime)
		if err != nil {
			return nil, fmt.Errorf("%w: allTime must be a boolean", httputil.ErrInvalidQuery)
		}

		if allTime {
			return nil, nil
		}
	}

	if f.Month == "" {
		return &current, nil
	}

	m, err := types.ParseMonth(f.Month)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (co Controller) budgetMonth(c *gin.Context) (*types.Month, error) {
	var query BudgetQueryFilter
	if err := c.Bind(&query); err != nil {
		return nil, fmt.Errorf("%w: %w", httputil.ErrInvalidQuery, err)
	}

	return query.month(co.Ledger.CurrentMonth())
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		404			{object}	httputil.HTTPError
// @Param			category	path		string	true	"Category of the budget"
// @Router			/v1/budgets/{category} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	if _, err := co.Ledger.State().Budget(c.Param("category")); err != nil {
		httpError(c, err)
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		404			{object}	httputil.HTTPError
// @Param			category	path		string	true	"Category of the budget"
// @Router			/v1/budgets/{category}/payments [options]
func (co Controller) OptionsBudgetPayments(c *gin.Context) {
	if _, err := co.Ledger.State().Budget(c.Param("category")); err != nil {
		httpError(c, err)
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets with what has been spent on them. By default, only expenses of the current month are counted.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Count expenses of this month, formatted as YYYY-MM"
// @Param			allTime	query		bool	false	"Count all expenses ever recorded"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	month, err := co.budgetMonth(c)
	if err != nil {
		httpError(c, err)
		return
	}

	statuses := co.Ledger.State().BudgetStatuses(month)
	c.JSON(http.StatusOK, BudgetListResponse{
		Data:           statuses,
		Month:          month,
		TotalRemaining: ledger.TotalRemaining(statuses),
	})
}

// @Summary		Get budget
// @Description	Returns the budget of a category with what has been spent on it
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Param			category	path		string	true	"Category of the budget"
// @Param			month		query		string	false	"Count expenses of this month, formatted as YYYY-MM"
// @Param			allTime		query		bool	false	"Count all expenses ever recorded"
// @Router			/v1/budgets/{category} [get]
func (co Controller) GetBudget(c *gin.Context) {
	month, err := co.budgetMonth(c)
	if err != nil {
		httpError(c, err)
		return
	}

	state := co.Ledger.State()
	b, err := state.Budget(c.Param("category"))
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: state.Status(b, month)})
}

// @Summary		Set budget
// @Description	Sets the monthly limit of a category. An existing budget for the category is replaced.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) UpsertBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httpError(c, err)
		return
	}

	b, err := co.Ledger.UpsertBudget(c.Request.Context(), editable.Category, editable.RawLimit)
	if err != nil {
		httpError(c, err)
		return
	}

	current := co.Ledger.CurrentMonth()
	c.JSON(http.StatusOK, BudgetResponse{
		Data:    co.Ledger.State().Status(b, &current),
		Message: fmt.Sprintf("Orçamento para %q atualizado! Cuidado para não estourar.", b.Category),
	})
}

// @Summary		Delete budget
// @Description	Removes the budget of a category. Deleting a budget that does not exist succeeds.
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetDeleteResponse
// @Failure		500			{object}	httputil.HTTPError
// @Param			category	path		string	true	"Category of the budget"
// @Router			/v1/budgets/{category} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	category := c.Param("category")

	if err := co.Ledger.DeleteBudget(c.Request.Context(), category); err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetDeleteResponse{
		Message: fmt.Sprintf("Orçamento para %q removido. Vão gastar sem limites agora, né?", category),
	})
}

// @Summary		Pay budget
// @Description	Records an expense of the full limit of the budget, attributed to the first partner
// @Tags			Budgets
// @Produce		json
// @Success		201			{object}	BudgetPaymentResponse
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			category	path		string	true	"Category of the budget"
// @Router			/v1/budgets/{category}/payments [post]
func (co Controller) PayBudget(c *gin.Context) {
	t, err := co.Ledger.PayBudget(c.Request.Context(), c.Param("category"))
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetPaymentResponse{
		Data:    t,
		Message: transactionMessage(t),
	})
}
