package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/couplefin/backend/internal/controllers/v1"
	"github.com/couplefin/backend/internal/ledger"
	"github.com/couplefin/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) balance() decimal.Decimal {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/balance", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BalanceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data.Balance
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	expense := suite.createTestTransaction(v1.TransactionCreate{RawAmount: "5000", Category: "Alimentação"})
	suite.Assert().True(decimal.NewFromInt(-50).Equal(expense.Data.Amount), "expenses are stored with a negative amount")
	suite.Assert().Equal("Alimentação", expense.Data.Category)
	suite.Assert().Equal(now, expense.Data.Date)
	suite.Assert().Equal("Despesa de R$ 50,00 registrada. A culpa é do(a) Alice!", expense.Message)

	revenue := suite.createTestTransaction(v1.TransactionCreate{Description: "Salário", RawAmount: "300000", Type: ledger.Revenue, ResponsiblePartner: "Bruno"})
	suite.Assert().True(decimal.NewFromInt(3000).Equal(revenue.Data.Amount))
	suite.Assert().Equal(ledger.DefaultCategory, revenue.Data.Category)
	suite.Assert().Equal("Receita de R$ 3.000,00 registrada. Parabéns, Bruno!", revenue.Message)

	suite.Assert().True(decimal.NewFromInt(2950).Equal(suite.balance()))
}

func (suite *TestSuiteStandard) TestTransactionCreateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "description": "Pizza", `},
		{"Amount not a string", `{ "description": "Pizza", "rawAmount": 5000, "type": "expense", "responsiblePartner": "Alice" }`},
		{"Amount with letters", v1.TransactionCreate{Description: "Pizza", RawAmount: "50,00", Type: ledger.Expense, ResponsiblePartner: "Alice"}},
		{"Amount zero", v1.TransactionCreate{Description: "Pizza", RawAmount: "000", Type: ledger.Expense, ResponsiblePartner: "Alice"}},
		{"Unknown type", v1.TransactionCreate{Description: "Pizza", RawAmount: "5000", Type: "gift", ResponsiblePartner: "Alice"}},
		{"No description", v1.TransactionCreate{RawAmount: "5000", Type: ledger.Expense, ResponsiblePartner: "Alice"}},
		{"Blank description", v1.TransactionCreate{Description: "   ", RawAmount: "5000", Type: ledger.Expense, ResponsiblePartner: "Alice"}},
		{"No partner", v1.TransactionCreate{Description: "Pizza", RawAmount: "5000", Type: ledger.Expense}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	suite.Assert().True(suite.balance().IsZero(), "rejected transactions must not change the balance")
}

func (suite *TestSuiteStandard) TestTransactionCreateDBError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodPost, "http://example.com/v1/transactions", v1.TransactionCreate{
		Description:        "Pizza",
		RawAmount:          "5000",
		Type:               ledger.Expense,
		ResponsiblePartner: "Alice",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Equal("an error occurred on the server during your request", test.DecodeError(suite.T(), &recorder))
	suite.Assert().Empty(suite.controller.Ledger.State().Transactions, "a failed write must not change the state")
}

func (suite *TestSuiteStandard) TestTransactionGet() {
	created := suite.createTestTransaction(v1.TransactionCreate{})

	recorder := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(created.Data.ID, response.Data.ID)

	recorder = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodGet, "http://example.com/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionList() {
	_ = suite.createTestTransaction(v1.TransactionCreate{Description: "Pizza de queijo", Category: "Alimentação"})
	_ = suite.createTestTransaction(v1.TransactionCreate{Description: "Cinema", Category: "Entretenimento", ResponsiblePartner: "Bruno"})
	_ = suite.createTestTransaction(v1.TransactionCreate{Description: "Salário", Type: ledger.Revenue, RawAmount: "100000"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Expenses", "type=expense", 2},
		{"Revenues", "type=revenue", 1},
		{"Partner", "partner=Bruno", 1},
		{"Category", "category=Alimenta%C3%A7%C3%A3o", 1},
		{"Description glob", "description=*pizza*", 1},
		{"Description glob no match", "description=pizza", 0},
		{"This month", "month=2024-05", 3},
		{"Other month", "month=2024-04", 0},
		{"Combined", "type=expense&partner=Alice", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionListInvalidQuery() {
	for _, query := range []string{"type=gift", "month=May", "month=2024-13"} {
		suite.T().Run(query, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	_ = suite.createTestTransaction(v1.TransactionCreate{Type: ledger.Revenue, RawAmount: "10000"})
	expense := suite.createTestTransaction(v1.TransactionCreate{RawAmount: "2550"})
	suite.Assert().True(decimal.RequireFromString("74.5").Equal(suite.balance()))

	path := fmt.Sprintf("http://example.com/v1/transactions/%s", expense.Data.ID)

	recorder := suite.request(http.MethodDelete, path+"?amount=25.5", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodDelete, path+"?amount=abc", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodDelete, path+"?amount=-25.50", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Lembrança dolorosa (ou alegre) apagada com sucesso!", response.Message)
	suite.Assert().True(decimal.NewFromInt(100).Equal(suite.balance()), "deleting an expense must give its amount back")

	recorder = suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionOptions() {
	created := suite.createTestTransaction(v1.TransactionCreate{})

	recorder := suite.request(http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
