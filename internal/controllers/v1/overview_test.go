package v1_test

import (
	"net/http"

	v1 "github.com/couplefin/backend/internal/controllers/v1"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBalance() {
	_ = suite.createTestTransaction(v1.TransactionCreate{Type: ledger.Revenue, RawAmount: "300000"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/balance", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BalanceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.NewFromInt(3000).Equal(response.Data.Balance))
	suite.Assert().Equal("R$ 3.000,00", response.Data.Formatted)
	suite.Assert().Equal("surviving", response.Data.Status.Level)
}

func (suite *TestSuiteStandard) TestDashboard() {
	_ = suite.createTestTransaction(v1.TransactionCreate{Type: ledger.Revenue, RawAmount: "300000"})
	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "5000", Category: "Alimentação"})
	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "12000", Category: "Entretenimento"})
	_ = suite.createTestBudget("Alimentação", "10000")

	recorder := suite.request(http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	d := response.Data
	suite.Assert().True(decimal.NewFromInt(2830).Equal(d.Balance))
	suite.Assert().True(decimal.NewFromInt(3000).Equal(d.TotalRevenue))
	suite.Assert().True(decimal.NewFromInt(170).Equal(d.TotalExpense))
	suite.Assert().True(decimal.NewFromInt(50).Equal(d.TotalRemaining))
	suite.Require().Len(d.Budgets, 1)
	suite.Require().Len(d.ExpensesByCategory, 2)
	suite.Assert().Equal("Entretenimento", d.ExpensesByCategory[0].Category)
}

func (suite *TestSuiteStandard) TestAdvice() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AdviceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(ledger.TierZero, response.Data.Tier)
	suite.Assert().Nil(response.Data.TopCategory)

	_ = suite.createTestTransaction(v1.TransactionCreate{Type: ledger.Revenue, RawAmount: "100000"})
	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "60000", Category: "Entretenimento"})

	recorder = suite.request(http.MethodGet, "http://example.com/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(ledger.TierLow, response.Data.Tier)
	suite.Assert().True(response.Data.Vice)
	suite.Assert().Equal("Entretenimento", response.Data.TopCategory.Category)
}

func (suite *TestSuiteStandard) TestOverviewOptions() {
	for _, path := range []string{"/v1/balance", "/v1/dashboard", "/v1/advice"} {
		recorder := suite.request(http.MethodOptions, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"), path)
	}
}
