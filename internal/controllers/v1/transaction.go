package v1

import (
	"fmt"
	"net/http"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// TransactionCreate is the payload of a new transaction.
type TransactionCreate struct {
	Description        string                 `json:"description" binding:"required" example:"Pizza"`
	RawAmount          string                 `json:"rawAmount" binding:"required,numeric" example:"5000"` // Amount in cents, as typed into the currency input
	Type               ledger.TransactionType `json:"type" binding:"required,oneof=expense revenue" example:"expense"`
	ResponsiblePartner string                 `json:"responsiblePartner" binding:"required" example:"Alice"`
	Category           string                 `json:"category" example:"Alimentação"` // Defaults to "Outros"
}

type TransactionResponse struct {
	Data    ledger.Transaction `json:"data"`
	Message string             `json:"message,omitempty" example:"Despesa de R$ 50,00 registrada. A culpa é do(a) Alice!"`
}

type TransactionListResponse struct {
	Data []ledger.Transaction `json:"data"`
}

// TransactionQueryFilter are the query parameters of the transaction list.
type TransactionQueryFilter struct {
	Type        string `form:"type"`
	Partner     string `form:"partner"`
	Category    string `form:"category"`
	Month       string `form:"month"`
	Description string `form:"description"`
}

func (f TransactionQueryFilter) parse() (ledger.TransactionFilter, error) {
	filter := ledger.TransactionFilter{
		Type:        ledger.TransactionType(f.Type),
		Partner:     f.Partner,
		Category:    f.Category,
		Description: f.Description,
	}

	if f.Type != "" && !filter.Type.Valid() {
		return ledger.TransactionFilter{}, fmt.Errorf("%w: type must be one of expense, revenue", httputil.ErrInvalidQuery)
	}

	if f.Month != "" {
		month, err := types.ParseMonth(f.Month)
		if err != nil {
			return ledger.TransactionFilter{}, err
		}
		filter.Month = month
	}

	return filter, nil
}

// transactionMessage is the remark shown after a transaction was recorded.
func transactionMessage(t ledger.Transaction) string {
	amount := httputil.FormatBRL(t.Magnitude())
	if t.Type == ledger.Expense {
		return fmt.Sprintf("Despesa de %s registrada. A culpa é do(a) %s!", amount, t.ResponsiblePartner)
	}
	return fmt.Sprintf("Receita de %s registrada. Parabéns, %s!", amount, t.ResponsiblePartner)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	_, err = co.Ledger.State().Transaction(id)
	if err != nil {
		httpError(c, err)
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions in the order they were recorded
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	httputil.HTTPError
// @Router			/v1/transactions [get]
// @Param			type		query	string	false	"Filter by type, expense or revenue"
// @Param			partner		query	string	false	"Filter by responsible partner"
// @Param			category	query	string	false	"Filter by category"
// @Param			month		query	string	false	"Filter by month, formatted as YYYY-MM"
// @Param			description	query	string	false	"Filter by description. Accepts glob patterns like *pizza*, ignores case"
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.Bind(&query); err != nil {
		httpError(c, fmt.Errorf("%w: %w", httputil.ErrInvalidQuery, err))
		return
	}

	filter, err := query.parse()
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: co.Ledger.State().FilterTransactions(filter),
	})
}

// @Summary		Create transaction
// @Description	Records an expense or a revenue and updates the balance
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			transaction	body		TransactionCreate	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var create TransactionCreate
	if err := httputil.BindData(c, &create); err != nil {
		httpError(c, err)
		return
	}

	t, err := co.Ledger.AddTransaction(c.Request.Context(), create.Description, create.RawAmount, create.Type, create.ResponsiblePartner, create.Category)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{
		Data:    t,
		Message: transactionMessage(t),
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	t, err := co.Ledger.State().Transaction(id)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: t})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction and reverts its effect on the balance. When amount is set, it must match the amount of the transaction.
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			amount	query		string	false	"Signed amount the client expects the transaction to have"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	var amount *decimal.Decimal
	if raw := c.Query("amount"); raw != "" {
		a, err := decimal.NewFromString(raw)
		if err != nil {
			httpError(c, fmt.Errorf("%w: amount must be a number", httputil.ErrInvalidQuery))
			return
		}
		amount = &a
	}

	t, err := co.Ledger.DeleteTransaction(c.Request.Context(), id, amount)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{
		Data:    t,
		Message: "Lembrança dolorosa (ou alegre) apagada com sucesso!",
	})
}
