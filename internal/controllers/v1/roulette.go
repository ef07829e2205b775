package v1

import (
	"fmt"
	"net/http"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (co Controller) RegisterRouletteRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsRoulette)
		r.GET("", co.GetRouletteOptions)
		r.POST("", co.AddRouletteOption)
	}
	{
		r.OPTIONS("/spin", co.OptionsRouletteSpin)
		r.POST("/spin", co.SpinRoulette)
	}
	{
		r.OPTIONS("/spin/stream", co.OptionsRouletteSpinStream)
		r.GET("/spin/stream", co.StreamRouletteSpin)
	}
	{
		r.OPTIONS("/:option", co.OptionsRouletteOption)
		r.DELETE("/:option", co.RemoveRouletteOption)
	}
}

type RouletteOptionCreate struct {
	Option string `json:"option" binding:"required" example:"Pizza"`
}

type RouletteResponse struct {
	Data    []string `json:"data" example:"Pizza,Miojo Gourmet"`
	Message string   `json:"message,omitempty" example:"\"Pizza\" adicionado à roleta. Mais uma opção para se arrepender!"`
}

type RouletteSpinResponse struct {
	Data    string `json:"data" example:"Pizza"`
	Message string `json:"message" example:"O destino decidiu: **Pizza**! Preparem-se para... o que vier."`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Roulette
// @Success		204
// @Router			/v1/roulette [options]
func (co Controller) OptionsRoulette(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Roulette
// @Success		204
// @Router			/v1/roulette/spin [options]
func (co Controller) OptionsRouletteSpin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Roulette
// @Success		204
// @Router			/v1/roulette/spin/stream [options]
func (co Controller) OptionsRouletteSpinStream(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Roulette
// @Success		204
// @Param			option	path	string	true	"The option"
// @Router			/v1/roulette/{option} [options]
func (co Controller) OptionsRouletteOption(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Get roulette options
// @Description	Returns the options of the dinner roulette
// @Tags			Roulette
// @Produce		json
// @Success		200	{object}	RouletteResponse
// @Router			/v1/roulette [get]
func (co Controller) GetRouletteOptions(c *gin.Context) {
	c.JSON(http.StatusOK, RouletteResponse{
		Data: co.Ledger.State().RouletteOptions,
	})
}

// @Summary		Add roulette option
// @Description	Adds an option to the dinner roulette. Options are unique.
// @Tags			Roulette
// @Produce		json
// @Success		201		{object}	RouletteResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			option	body		RouletteOptionCreate	true	"Option"
// @Router			/v1/roulette [post]
func (co Controller) AddRouletteOption(c *gin.Context) {
	var create RouletteOptionCreate
	if err := httputil.BindData(c, &create); err != nil {
		httpError(c, err)
		return
	}

	option, err := co.Ledger.AddOption(c.Request.Context(), create.Option)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RouletteResponse{
		Data:    co.Ledger.State().RouletteOptions,
		Message: fmt.Sprintf("%q adicionado à roleta. Mais uma opção para se arrepender!", option),
	})
}

// @Summary		Remove roulette option
// @Description	Removes an option from the dinner roulette. Removing an option that does not exist succeeds.
// @Tags			Roulette
// @Produce		json
// @Success		200		{object}	RouletteResponse
// @Failure		500		{object}	httputil.HTTPError
// @Param			option	path		string	true	"The option"
// @Router			/v1/roulette/{option} [delete]
func (co Controller) RemoveRouletteOption(c *gin.Context) {
	option := c.Param("option")

	if err := co.Ledger.RemoveOption(c.Request.Context(), option); err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, RouletteResponse{
		Data:    co.Ledger.State().RouletteOptions,
		Message: fmt.Sprintf("%q removido. Menos uma decisão para brigar!", option),
	})
}

// @Summary		Spin the roulette
// @Description	Picks one of the options at random. Spinning does not change anything.
// @Tags			Roulette
// @Produce		json
// @Success		200	{object}	RouletteSpinResponse
// @Failure		400	{object}	httputil.HTTPError
// @Router			/v1/roulette/spin [post]
func (co Controller) SpinRoulette(c *gin.Context) {
	option, err := co.Ledger.Spin()
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, RouletteSpinResponse{
		Data:    option,
		Message: spinMessage(option),
	})
}

func spinMessage(option string) string {
	return fmt.Sprintf("O destino decidiu: **%s**! Preparem-se para... o que vier.", option)
}

// @Summary		Spin the roulette slowly
// @Description	Streams the options the roulette passes as "tick" server-sent events and finishes with a "result" event once it settles
// @Tags			Roulette
// @Produce		text/event-stream
// @Success		200	{object}	RouletteSpinResponse	"Payload of the result event"
// @Failure		400	{object}	httputil.HTTPError
// @Router			/v1/roulette/spin/stream [get]
func (co Controller) StreamRouletteSpin(c *gin.Context) {
	if len(co.Ledger.State().RouletteOptions) == 0 {
		httpError(c, ledger.ErrNoOptions)
		return
	}

	option, err := co.Ledger.SpinAnimated(c.Request.Context(), func(o string) {
		c.SSEvent("tick", o)
		c.Writer.Flush()
	})
	if err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("roulette spin aborted")
		return
	}

	c.SSEvent("result", RouletteSpinResponse{
		Data:    option,
		Message: spinMessage(option),
	})
}
