package v1_test

import (
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/couplefin/backend/internal/controllers/v1"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestBudget(category, rawLimit string) v1.BudgetResponse {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{Category: category, RawLimit: rawLimit})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestBudgetUpsert() {
	budget := suite.createTestBudget("Alimentação", "10000")
	suite.Assert().True(decimal.NewFromInt(100).Equal(budget.Data.Limit))
	suite.Assert().Equal(`Orçamento para "Alimentação" atualizado! Cuidado para não estourar.`, budget.Message)

	budget = suite.createTestBudget("Alimentação", "20000")
	suite.Assert().True(decimal.NewFromInt(200).Equal(budget.Data.Limit))
	suite.Assert().Len(suite.controller.Ledger.State().Budgets, 1, "setting a budget again must replace it")
}

func (suite *TestSuiteStandard) TestBudgetUpsertFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"No category", v1.BudgetEditable{RawLimit: "100"}},
		{"Blank category", v1.BudgetEditable{Category: " ", RawLimit: "100"}},
		{"Limit zero", v1.BudgetEditable{Category: "Lazer", RawLimit: "0"}},
		{"Limit not numeric", v1.BudgetEditable{Category: "Lazer", RawLimit: "R$ 100"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetList() {
	_ = suite.createTestBudget("Alimentação", "10000")
	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "8000", Category: "Alimentação"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("2024-05", response.Month.String())
	suite.Assert().True(decimal.NewFromInt(80).Equal(response.Data[0].Spent))
	suite.Assert().True(decimal.NewFromInt(20).Equal(response.Data[0].Remaining))
	suite.Assert().Equal(ledger.HealthWarning, response.Data[0].Health)
	suite.Assert().True(decimal.NewFromInt(20).Equal(response.TotalRemaining))

	recorder = suite.request(http.MethodGet, "http://example.com/v1/budgets?month=2024-04", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data[0].Spent.IsZero(), "expenses of other months must not count")
	suite.Assert().Equal(ledger.HealthNormal, response.Data[0].Health)

	recorder = suite.request(http.MethodGet, "http://example.com/v1/budgets?allTime=true", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var allTime v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &allTime)
	suite.Assert().Nil(allTime.Month)
	suite.Assert().True(decimal.NewFromInt(80).Equal(allTime.Data[0].Spent))
}

func (suite *TestSuiteStandard) TestBudgetListInvalidQuery() {
	for _, query := range []string{"month=last", "allTime=maybe"} {
		suite.T().Run(query, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodGet, "http://example.com/v1/budgets?"+query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetOverBudget() {
	_ = suite.createTestBudget("Lazer", "5000")
	_ = suite.createTestTransaction(v1.TransactionCreate{RawAmount: "7500", Category: "Lazer"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/budgets/Lazer", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(ledger.HealthOverBudget, response.Data.Health)
	suite.Assert().True(decimal.NewFromInt(150).Equal(response.Data.Percent))
	suite.Assert().True(decimal.NewFromInt(100).Equal(response.Data.ProgressPercent))
	suite.Assert().True(decimal.NewFromInt(-25).Equal(response.Data.Remaining))
}

func (suite *TestSuiteStandard) TestBudgetGetNotFound() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/budgets/Nada", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodOptions, "http://example.com/v1/budgets/Nada", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	_ = suite.createTestBudget("Alimentação", "10000")

	path := "http://example.com/v1/budgets/" + url.PathEscape("Alimentação")
	for i := 0; i < 2; i++ {
		recorder := suite.request(http.MethodDelete, path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.BudgetDeleteResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Equal(`Orçamento para "Alimentação" removido. Vão gastar sem limites agora, né?`, response.Message)
	}

	suite.Assert().Empty(suite.controller.Ledger.State().Budgets)
}

func (suite *TestSuiteStandard) TestBudgetPay() {
	_ = suite.createTestBudget("Aluguel", "150000")

	recorder := suite.request(http.MethodPost, "http://example.com/v1/budgets/Aluguel/payments", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetPaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Pagamento: Aluguel", response.Data.Description)
	suite.Assert().Equal("Pessoa 1", response.Data.ResponsiblePartner)
	suite.Assert().Equal(ledger.Expense, response.Data.Type)
	suite.Assert().Equal("Despesa de R$ 1.500,00 registrada. A culpa é do(a) Pessoa 1!", response.Message)
	suite.Assert().True(decimal.NewFromInt(-1500).Equal(suite.balance()))

	recorder = suite.request(http.MethodPost, "http://example.com/v1/budgets/Nada/payments", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	_ = suite.createTestBudget("Aluguel", "150000")

	tests := []struct {
		path     string
		expected string
	}{
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/budgets/Aluguel", "OPTIONS, GET, DELETE"},
		{"/v1/budgets/Aluguel/payments", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.expected, recorder.Header().Get("allow"))
		})
	}
}
