package v1

import (
	"fmt"
	"net/http"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsGoalList)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
	{
		r.OPTIONS("/:id/contributions", co.OptionsGoalContributions)
		r.POST("/:id/contributions", co.ContributeToGoal)
	}
}

// GoalEditable is the payload to create or edit a goal.
type GoalEditable struct {
	Name      string `json:"name" binding:"required" example:"Viagem para a praia"`
	RawTarget string `json:"rawTarget" binding:"required,numeric" example:"150000"` // Target in cents
}

// GoalContribution is the payload of a contribution to a goal.
type GoalContribution struct {
	RawAmount string `json:"rawAmount" binding:"required,numeric" example:"5000"` // Amount in cents
}

type GoalResponse struct {
	Data    ledger.GoalStatus `json:"data"`
	Message string            `json:"message,omitempty" example:"Meta atualizada! Rumo ao sofrimento (ou à alegria) conjunto!"`
}

type GoalListResponse struct {
	Data []ledger.GoalStatus `json:"data"`
}

type GoalDeleteResponse struct {
	Message string `json:"message" example:"Meta abandonada. Sabíamos que era ambicioso demais!"`
}

func (co Controller) goal(c *gin.Context) (ledger.Goal, bool) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return ledger.Goal{}, false
	}

	g, err := co.Ledger.State().Goal(id)
	if err != nil {
		httpError(c, err)
		return ledger.Goal{}, false
	}

	return g, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func (co Controller) OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	if _, ok := co.goal(c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id}/contributions [options]
func (co Controller) OptionsGoalContributions(c *gin.Context) {
	if _, ok := co.goal(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get goals
// @Description	Returns all goals with their progress
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	goals := co.Ledger.State().Goals

	data := make([]ledger.GoalStatus, 0, len(goals))
	for _, g := range goals {
		data = append(data, g.Status())
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Create goal
// @Description	Creates a new savings goal
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httpError(c, err)
		return
	}

	g, err := co.Ledger.CreateGoal(c.Request.Context(), editable.Name, editable.RawTarget)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{
		Data:    g.Status(),
		Message: "Meta atualizada! Rumo ao sofrimento (ou à alegria) conjunto!",
	})
}

// @Summary		Get goal
// @Description	Returns a specific goal with its progress
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	g, ok := co.goal(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: g.Status()})
}

// @Summary		Update goal
// @Description	Renames a goal and sets a new target. The saved amount is capped at the new target.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httpError(c, err)
		return
	}

	g, err := co.Ledger.EditGoal(c.Request.Context(), id, editable.Name, editable.RawTarget)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{
		Data:    g.Status(),
		Message: "Meta atualizada! Rumo ao sofrimento (ou à alegria) conjunto!",
	})
}

// @Summary		Delete goal
// @Description	Deletes a goal. The money contributed to it is not returned to the balance.
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalDeleteResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	if err := co.Ledger.DeleteGoal(c.Request.Context(), id); err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalDeleteResponse{
		Message: "Meta abandonada. Sabíamos que era ambicioso demais!",
	})
}

// @Summary		Contribute to goal
// @Description	Moves money from the balance to a goal. The full amount leaves the balance, the goal never exceeds its target.
// @Tags			Goals
// @Produce		json
// @Success		200				{object}	GoalResponse
// @Failure		400				{object}	httputil.HTTPError
// @Failure		404				{object}	httputil.HTTPError
// @Failure		500				{object}	httputil.HTTPError
// @Param			id				path		string				true	"ID formatted as string"
// @Param			contribution	body		GoalContribution	true	"Contribution"
// @Router			/v1/goals/{id}/contributions [post]
func (co Controller) ContributeToGoal(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	var contribution GoalContribution
	if err := httputil.BindData(c, &contribution); err != nil {
		httpError(c, err)
		return
	}

	g, err := co.Ledger.Contribute(c.Request.Context(), id, contribution.RawAmount)
	if err != nil {
		httpError(c, err)
		return
	}

	// ParseRawAmount already accepted the amount in Contribute
	amount, _ := ledger.ParseRawAmount(contribution.RawAmount)

	c.JSON(http.StatusOK, GoalResponse{
		Data:    g.Status(),
		Message: fmt.Sprintf("%s contribuídos para a meta! O futuro sorri (ou chora) para vocês!", httputil.FormatBRL(amount)),
	})
}
