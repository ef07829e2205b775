package v1

import (
	"net/http"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterCoupleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsCouple)
		r.GET("", co.GetCouple)
		r.PUT("", co.UpdateCouple)
	}
	{
		r.OPTIONS("/summary", co.OptionsCoupleSummary)
		r.GET("/summary", co.GetCoupleSummary)
	}
}

type CoupleEditable struct {
	Partner1 string `json:"partner1" binding:"required" example:"Alice"`
	Partner2 string `json:"partner2" binding:"required" example:"Bruno"`
}

type CoupleResponse struct {
	Data    ledger.CoupleNames `json:"data"`
	Message string             `json:"message,omitempty" example:"Nomes dos parceiros atualizados! Agora podem se culpar com mais propriedade."`
}

type CoupleSummaryResponse struct {
	Data ledger.CoupleSummary `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Couple
// @Success		204
// @Router			/v1/couple [options]
func (co Controller) OptionsCouple(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Couple
// @Success		204
// @Router			/v1/couple/summary [options]
func (co Controller) OptionsCoupleSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get couple
// @Description	Returns the names of both partners
// @Tags			Couple
// @Produce		json
// @Success		200	{object}	CoupleResponse
// @Router			/v1/couple [get]
func (co Controller) GetCouple(c *gin.Context) {
	c.JSON(http.StatusOK, CoupleResponse{
		Data: co.Ledger.State().CoupleNames,
	})
}

// @Summary		Update couple
// @Description	Renames the partners. Existing transactions keep the name they were recorded with.
// @Tags			Couple
// @Produce		json
// @Success		200		{object}	CoupleResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			couple	body		CoupleEditable	true	"Names of the partners"
// @Router			/v1/couple [put]
func (co Controller) UpdateCouple(c *gin.Context) {
	var editable CoupleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httpError(c, err)
		return
	}

	names, err := co.Ledger.SetCoupleNames(c.Request.Context(), ledger.CoupleNames{
		Partner1: editable.Partner1,
		Partner2: editable.Partner2,
	})
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, CoupleResponse{
		Data:    names,
		Message: "Nomes dos parceiros atualizados! Agora podem se culpar com mais propriedade.",
	})
}

// @Summary		Couple summary
// @Description	Compares what both partners spend and earn
// @Tags			Couple
// @Produce		json
// @Success		200	{object}	CoupleSummaryResponse
// @Router			/v1/couple/summary [get]
func (co Controller) GetCoupleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, CoupleSummaryResponse{
		Data: co.Ledger.State().CoupleSummary(),
	})
}
