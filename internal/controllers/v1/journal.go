package v1

import (
	"net/http"

	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterJournalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsJournal)
		r.GET("", co.GetJournalEntries)
		r.POST("", co.CreateJournalEntry)
	}
	{
		r.OPTIONS("/moods", co.OptionsMoods)
		r.GET("/moods", co.GetMoods)
	}
	{
		r.OPTIONS("/:id", co.OptionsJournalEntry)
		r.DELETE("/:id", co.DeleteJournalEntry)
	}
}

type JournalEntryCreate struct {
	Text string `json:"text" binding:"required" example:"Achamos 20 reais no casaco de inverno."`
	Mood string `json:"mood" example:"🥳"` // Defaults to 😐
}

type JournalEntryResponse struct {
	Data    ledger.JournalEntry `json:"data"`
	Message string              `json:"message" example:"Pensamentos sombrios (ou nem tanto) registrados!"`
}

type JournalListResponse struct {
	Data []ledger.JournalEntry `json:"data"`
}

type JournalDeleteResponse struct {
	Message string `json:"message" example:"Lembrança apagada. Melhor assim!"`
}

type MoodListResponse struct {
	Data []ledger.Mood `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Journal
// @Success		204
// @Router			/v1/journal [options]
func (co Controller) OptionsJournal(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Journal
// @Success		204
// @Router			/v1/journal/moods [options]
func (co Controller) OptionsMoods(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Journal
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/journal/{id} [options]
func (co Controller) OptionsJournalEntry(c *gin.Context) {
	if _, err := httputil.UUIDFromString(c.Param("id")); err != nil {
		httpError(c, err)
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get journal entries
// @Description	Returns all journal entries in the order they were written
// @Tags			Journal
// @Produce		json
// @Success		200	{object}	JournalListResponse
// @Router			/v1/journal [get]
func (co Controller) GetJournalEntries(c *gin.Context) {
	c.JSON(http.StatusOK, JournalListResponse{
		Data: co.Ledger.State().JournalEntries,
	})
}

// @Summary		Get moods
// @Description	Returns the moods a journal entry can have
// @Tags			Journal
// @Produce		json
// @Success		200	{object}	MoodListResponse
// @Router			/v1/journal/moods [get]
func (co Controller) GetMoods(c *gin.Context) {
	c.JSON(http.StatusOK, MoodListResponse{Data: ledger.Moods})
}

// @Summary		Create journal entry
// @Description	Writes a new journal entry
// @Tags			Journal
// @Produce		json
// @Success		201		{object}	JournalEntryResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			entry	body		JournalEntryCreate	true	"Journal entry"
// @Router			/v1/journal [post]
func (co Controller) CreateJournalEntry(c *gin.Context) {
	var create JournalEntryCreate
	if err := httputil.BindData(c, &create); err != nil {
		httpError(c, err)
		return
	}

	entry, err := co.Ledger.AddJournalEntry(c.Request.Context(), create.Text, create.Mood)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, JournalEntryResponse{
		Data:    entry,
		Message: "Pensamentos sombrios (ou nem tanto) registrados!",
	})
}

// @Summary		Delete journal entry
// @Description	Deletes a journal entry
// @Tags			Journal
// @Produce		json
// @Success		200	{object}	JournalDeleteResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/journal/{id} [delete]
func (co Controller) DeleteJournalEntry(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	if err := co.Ledger.DeleteJournalEntry(c.Request.Context(), id); err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, JournalDeleteResponse{
		Message: "Lembrança apagada. Melhor assim!",
	})
}
