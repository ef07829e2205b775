package v1_test

import (
	"net/http"

	v1 "github.com/couplefin/backend/internal/controllers/v1"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCoupleDefaults() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/couple", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CoupleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(ledger.CoupleNames{Partner1: "Pessoa 1", Partner2: "Pessoa 2"}, response.Data)
}

func (suite *TestSuiteStandard) TestCoupleUpdate() {
	recorder := suite.request(http.MethodPut, "http://example.com/v1/couple", v1.CoupleEditable{Partner1: " Alice ", Partner2: "Bruno"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CoupleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(ledger.CoupleNames{Partner1: "Alice", Partner2: "Bruno"}, response.Data)
	suite.Assert().Equal("Nomes dos parceiros atualizados! Agora podem se culpar com mais propriedade.", response.Message)

	for _, body := range []any{"", v1.CoupleEditable{Partner1: "Alice"}, v1.CoupleEditable{Partner1: "Alice", Partner2: "   "}} {
		recorder = suite.request(http.MethodPut, "http://example.com/v1/couple", body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}

	suite.Assert().Equal("Bruno", suite.controller.Ledger.State().CoupleNames.Partner2)
}

func (suite *TestSuiteStandard) TestCoupleSummary() {
	recorder := suite.request(http.MethodPut, "http://example.com/v1/couple", v1.CoupleEditable{Partner1: "Alice", Partner2: "Bruno"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "3000", ResponsiblePartner: "Alice"})
	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "7000", ResponsiblePartner: "Bruno"})
	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "200000", ResponsiblePartner: "Alice", Type: ledger.Revenue})

	recorder = suite.request(http.MethodGet, "http://example.com/v1/couple/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CoupleSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Alice", response.Data.Partner1.Name)
	suite.Assert().True(decimal.NewFromInt(30).Equal(response.Data.Partner1.Expense))
	suite.Assert().True(decimal.NewFromInt(2000).Equal(response.Data.Partner1.Revenue))
	suite.Assert().True(decimal.NewFromInt(70).Equal(response.Data.Partner2.Expense))
	suite.Assert().Equal(ledger.SpenderPartner2, response.Data.BiggestSpender)
}
