package v1_test

import (
	"net/http"
	"net/url"
	"strings"

	v1 "github.com/couplefin/backend/internal/controllers/v1"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/test"
)

func (suite *TestSuiteStandard) TestRouletteDefaults() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/roulette", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RouletteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(ledger.DefaultRouletteOptions, response.Data)
}

func (suite *TestSuiteStandard) TestRouletteAddRemove() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/roulette", v1.RouletteOptionCreate{Option: "  Sushi "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RouletteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Data, "Sushi")
	suite.Assert().Equal(`"Sushi" adicionado à roleta. Mais uma opção para se arrepender!`, response.Message)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/roulette", v1.RouletteOptionCreate{Option: "Sushi"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/roulette", v1.RouletteOptionCreate{Option: "   "})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodDelete, "http://example.com/v1/roulette/Sushi", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotContains(response.Data, "Sushi")
	suite.Assert().Equal(`"Sushi" removido. Menos uma decisão para brigar!`, response.Message)

	// Removing an option that is not there is fine
	recorder = suite.request(http.MethodDelete, "http://example.com/v1/roulette/Sushi", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestRouletteSpin() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/roulette/spin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RouletteSpinResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(ledger.DefaultRouletteOptions[0], response.Data)
	suite.Assert().Equal("O destino decidiu: **Pizza**! Preparem-se para... o que vier.", response.Message)
}

func (suite *TestSuiteStandard) TestRouletteSpinEmpty() {
	for _, option := range ledger.DefaultRouletteOptions {
		recorder := suite.request(http.MethodDelete, "http://example.com/v1/roulette/"+url.PathEscape(option), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	}

	recorder := suite.request(http.MethodPost, "http://example.com/v1/roulette/spin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Equal(ledger.ErrNoOptions.Error(), test.DecodeError(suite.T(), &recorder))

	recorder = suite.request(http.MethodGet, "http://example.com/v1/roulette/spin/stream", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRouletteSpinStream() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/roulette/spin/stream", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	body := recorder.Body.String()
	suite.Assert().True(strings.HasPrefix(recorder.Header().Get("Content-Type"), "text/event-stream"))
	suite.Assert().Contains(body, "event:tick\ndata:Pizza\n")
	suite.Assert().Contains(body, "event:result\n")
	suite.Assert().Contains(body, `"data":"Pizza"`)
	suite.Assert().Equal(1, strings.Count(body, "event:result"))
}

func (suite *TestSuiteStandard) TestRouletteOptions() {
	tests := []struct {
		path     string
		expected string
	}{
		{"/v1/roulette", "OPTIONS, GET, POST"},
		{"/v1/roulette/spin", "OPTIONS, POST"},
		{"/v1/roulette/spin/stream", "OPTIONS, GET"},
		{"/v1/roulette/Pizza", "OPTIONS, DELETE"},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodOptions, "http://example.com"+tt.path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal(tt.expected, recorder.Header().Get("allow"), tt.path)
	}
}
