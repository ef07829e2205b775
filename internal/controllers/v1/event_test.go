package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/couplefin/backend/internal/calendar"
	v1 "github.com/couplefin/backend/internal/controllers/v1"
	"github.com/couplefin/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) createTestEvent(create v1.EventCreate) calendar.Event {
	if create.Date == "" {
		create.Date = "2024-05-12"
	}
	if create.Title == "" {
		create.Title = "Jantar com a sogra"
	}

	recorder := suite.request(http.MethodPost, "http://example.com/v1/events", create)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.EventResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestEventCreate() {
	e := suite.createTestEvent(v1.EventCreate{})
	suite.Assert().NotEqual(uuid.Nil, e.ID)
	suite.Assert().Equal(calendar.DefaultStartTime, e.StartTime)
	suite.Assert().Equal(calendar.DefaultEndTime, e.EndTime)

	e = suite.createTestEvent(v1.EventCreate{StartTime: "19:00", EndTime: "22:30"})
	suite.Assert().Equal("19:00", e.StartTime)
	suite.Assert().Equal("22:30", e.EndTime)
}

func (suite *TestSuiteStandard) TestEventCreateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"No date", v1.EventCreate{Title: "Cinema"}},
		{"Invalid date", v1.EventCreate{Date: "12/05/2024", Title: "Cinema"}},
		{"Blank title", v1.EventCreate{Date: "2024-05-12", Title: "   "}},
		{"Invalid start", v1.EventCreate{Date: "2024-05-12", Title: "Cinema", StartTime: "7pm"}},
		{"Invalid end", v1.EventCreate{Date: "2024-05-12", Title: "Cinema", EndTime: "24:00"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodPost, "http://example.com/v1/events", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().Empty(suite.controller.Calendar.Events())
}

func (suite *TestSuiteStandard) TestEventList() {
	_ = suite.createTestEvent(v1.EventCreate{Date: "2024-05-13", Title: "Dentista", StartTime: "15:00"})
	_ = suite.createTestEvent(v1.EventCreate{Date: "2024-05-13", Title: "Academia", StartTime: "07:00"})
	_ = suite.createTestEvent(v1.EventCreate{Date: "2024-05-14", Title: "Mercado"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/events", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EventListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Dentista", response.Data[0].Title, "the full list keeps the order events were added in")

	recorder = suite.request(http.MethodGet, "http://example.com/v1/events?date=2024-05-13", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Academia", response.Data[0].Title, "events of a day are sorted by start time")

	recorder = suite.request(http.MethodGet, "http://example.com/v1/events?date=tomorrow", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEventDay() {
	for i := 0; i < 5; i++ {
		_ = suite.createTestEvent(v1.EventCreate{Date: "2024-06-01", Title: fmt.Sprintf("Evento %d", i), StartTime: fmt.Sprintf("1%d:00", i)})
	}

	recorder := suite.request(http.MethodGet, "http://example.com/v1/events/days/2024-06-01", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EventDayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Visible, calendar.MaxVisible)
	suite.Assert().Equal(2, response.Data.Overflow)

	recorder = suite.request(http.MethodGet, "http://example.com/v1/events/days/2024-06-02", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data.Visible)
	suite.Assert().Equal(0, response.Data.Overflow)

	recorder = suite.request(http.MethodGet, "http://example.com/v1/events/days/june", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEventUpcoming() {
	for _, date := range []string{"2024-07-01", "2023-01-01", "2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04"} {
		_ = suite.createTestEvent(v1.EventCreate{Date: date})
	}

	recorder := suite.request(http.MethodGet, "http://example.com/v1/events/upcoming", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EventListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, calendar.MaxUpcoming)
	suite.Assert().Equal("2023-01-01", response.Data[0].Date)
	suite.Assert().Equal("2024-06-04", response.Data[4].Date)
}

func (suite *TestSuiteStandard) TestEventDelete() {
	e := suite.createTestEvent(v1.EventCreate{})
	path := fmt.Sprintf("http://example.com/v1/events/%s", e.ID)

	recorder := suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodDelete, "http://example.com/v1/events/nope", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
