package v1

import (
	"fmt"
	"net/http"

	"github.com/couplefin/backend/internal/calendar"
	"github.com/couplefin/backend/internal/httputil"
	"github.com/couplefin/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterEventRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsEventList)
		r.GET("", co.GetEvents)
		r.POST("", co.CreateEvent)
	}
	{
		r.OPTIONS("/upcoming", co.OptionsEventsUpcoming)
		r.GET("/upcoming", co.GetUpcomingEvents)
	}
	{
		r.OPTIONS("/days/:date", co.OptionsEventDay)
		r.GET("/days/:date", co.GetEventDay)
	}
	{
		r.OPTIONS("/:id", co.OptionsEventDetail)
		r.DELETE("/:id", co.DeleteEvent)
	}
}

type EventCreate struct {
	Date      string `json:"date" binding:"required" example:"2024-05-12"`
	Title     string `json:"title" binding:"required" example:"Jantar com a sogra"`
	StartTime string `json:"startTime" example:"19:00"` // Defaults to 09:00
	EndTime   string `json:"endTime" example:"22:00"`   // Defaults to 10:00
}

type EventResponse struct {
	Data calendar.Event `json:"data"`
}

type EventListResponse struct {
	Data []calendar.Event `json:"data"`
}

type EventDayResponse struct {
	Data calendar.Day `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func (co Controller) OptionsEventList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events/upcoming [options]
func (co Controller) OptionsEventsUpcoming(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Param			date	path		string	true	"Date formatted as YYYY-MM-DD"
// @Router			/v1/events/days/{date} [options]
func (co Controller) OptionsEventDay(c *gin.Context) {
	if _, err := types.ParseDay(c.Param("date")); err != nil {
		httpError(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/events/{id} [options]
func (co Controller) OptionsEventDetail(c *gin.Context) {
	if _, err := httputil.UUIDFromString(c.Param("id")); err != nil {
		httpError(c, err)
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get events
// @Description	Returns all events in the order they were added. With date set, returns all events of that day sorted by start time.
// @Tags			Events
// @Produce		json
// @Success		200		{object}	EventListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			date	query		string	false	"Only events on this date, formatted as YYYY-MM-DD"
// @Router			/v1/events [get]
func (co Controller) GetEvents(c *gin.Context) {
	var query struct {
		Date string `form:"date"`
	}
	if err := c.Bind(&query); err != nil {
		httpError(c, fmt.Errorf("%w: %w", httputil.ErrInvalidQuery, err))
		return
	}

	if query.Date == "" {
		c.JSON(http.StatusOK, EventListResponse{Data: co.Calendar.Events()})
		return
	}

	date, err := types.ParseDay(query.Date)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, EventListResponse{Data: co.Calendar.ForDay(date)})
}

// @Summary		Get upcoming events
// @Description	Returns the first events sorted by date and start time
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventListResponse
// @Router			/v1/events/upcoming [get]
func (co Controller) GetUpcomingEvents(c *gin.Context) {
	c.JSON(http.StatusOK, EventListResponse{Data: co.Calendar.Upcoming()})
}

// @Summary		Get day
// @Description	Returns the events shown for a day and how many more there are
// @Tags			Events
// @Produce		json
// @Success		200		{object}	EventDayResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			date	path		string	true	"Date formatted as YYYY-MM-DD"
// @Router			/v1/events/days/{date} [get]
func (co Controller) GetEventDay(c *gin.Context) {
	date, err := types.ParseDay(c.Param("date"))
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, EventDayResponse{Data: co.Calendar.Day(date)})
}

// @Summary		Create event
// @Description	Adds an event to the calendar. Overlapping events are allowed.
// @Tags			Events
// @Produce		json
// @Success		201		{object}	EventResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			event	body		EventCreate	true	"Event"
// @Router			/v1/events [post]
func (co Controller) CreateEvent(c *gin.Context) {
	var create EventCreate
	if err := httputil.BindData(c, &create); err != nil {
		httpError(c, err)
		return
	}

	e, err := co.Calendar.Add(c.Request.Context(), calendar.Event{
		Date:      create.Date,
		Title:     create.Title,
		StartTime: create.StartTime,
		EndTime:   create.EndTime,
	})
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, EventResponse{Data: e})
}

// @Summary		Delete event
// @Description	Removes an event from the calendar
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/events/{id} [delete]
func (co Controller) DeleteEvent(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httpError(c, err)
		return
	}

	if err := co.Calendar.Delete(c.Request.Context(), id); err != nil {
		httpError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
