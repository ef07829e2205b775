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
)

func (suite *TestSuiteStandard) TestGoalCreate() {
	goal := suite.createTestGoal(v1.GoalEditable{Name: "Sofá novo", RawTarget: "250000"})

	suite.Assert().Equal("Sofá novo", goal.Data.Name)
	suite.Assert().True(decimal.NewFromInt(2500).Equal(goal.Data.TargetAmount))
	suite.Assert().True(goal.Data.CurrentAmount.IsZero())
	suite.Assert().Equal(now, goal.Data.DateCreated)
	suite.Assert().False(goal.Data.Completed)

	recorder := suite.request(http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 1)
}

func (suite *TestSuiteStandard) TestGoalCreateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"No name", v1.GoalEditable{RawTarget: "1000"}},
		{"Blank name", v1.GoalEditable{Name: "  ", RawTarget: "1000"}},
		{"Target zero", v1.GoalEditable{Name: "Nada", RawTarget: "0"}},
		{"Target negative", v1.GoalEditable{Name: "Nada", RawTarget: "-1000"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodPost, "http://example.com/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalContribute() {
	_ = suite.createTestTransaction(v1.TransactionCreate{Type: ledger.Revenue, RawAmount: "100000"})
	goal := suite.createTestGoal(v1.GoalEditable{RawTarget: "50000"})
	path := fmt.Sprintf("http://example.com/v1/goals/%s/contributions", goal.Data.ID)

	recorder := suite.request(http.MethodPost, path, v1.GoalContribution{RawAmount: "20000"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.NewFromInt(200).Equal(response.Data.CurrentAmount))
	suite.Assert().True(decimal.NewFromInt(40).Equal(response.Data.Progress))
	suite.Assert().Equal("R$ 200,00 contribuídos para a meta! O futuro sorri (ou chora) para vocês!", response.Message)
	suite.Assert().True(decimal.NewFromInt(800).Equal(suite.balance()))

	// The goal is capped at its target, the balance pays the full amount
	recorder = suite.request(http.MethodPost, path, v1.GoalContribution{RawAmount: "40000"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data.CurrentAmount))
	suite.Assert().True(response.Data.Completed)
	suite.Assert().True(decimal.NewFromInt(400).Equal(suite.balance()))
}

func (suite *TestSuiteStandard) TestGoalContributeFails() {
	_ = suite.createTestTransaction(v1.TransactionCreate{Type: ledger.Revenue, RawAmount: "1000"})
	goal := suite.createTestGoal(v1.GoalEditable{})
	path := fmt.Sprintf("http://example.com/v1/goals/%s/contributions", goal.Data.ID)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"More than the balance", path, v1.GoalContribution{RawAmount: "1001"}, http.StatusBadRequest},
		{"Zero", path, v1.GoalContribution{RawAmount: "0"}, http.StatusBadRequest},
		{"No amount", path, v1.GoalContribution{}, http.StatusBadRequest},
		{"Unknown goal", fmt.Sprintf("http://example.com/v1/goals/%s/contributions", uuid.New()), v1.GoalContribution{RawAmount: "100"}, http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/goals/goal/contributions", v1.GoalContribution{RawAmount: "100"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.RequestController(t, suite.controller, suite.db, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}

	suite.Assert().True(decimal.NewFromInt(10).Equal(suite.balance()))
}

func (suite *TestSuiteStandard) TestGoalUpdate() {
	_ = suite.createTestTransaction(v1.TransactionCreate{Type: ledger.Revenue, RawAmount: "100000"})
	goal := suite.createTestGoal(v1.GoalEditable{RawTarget: "50000"})
	path := fmt.Sprintf("http://example.com/v1/goals/%s", goal.Data.ID)

	recorder := suite.request(http.MethodPost, path+"/contributions", v1.GoalContribution{RawAmount: "30000"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPatch, path, v1.GoalEditable{Name: "Praia, mas perto", RawTarget: "20000"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Praia, mas perto", response.Data.Name)
	suite.Assert().True(decimal.NewFromInt(200).Equal(response.Data.CurrentAmount), "the saved amount must be capped at the new target")
	suite.Assert().Equal(goal.Data.ID, response.Data.ID)
	suite.Assert().Equal("Meta atualizada! Rumo ao sofrimento (ou à alegria) conjunto!", response.Message)

	recorder = suite.request(http.MethodPatch, path, v1.GoalEditable{Name: "Praia", RawTarget: "0"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), v1.GoalEditable{Name: "Praia", RawTarget: "100"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalDelete() {
	goal := suite.createTestGoal(v1.GoalEditable{})
	path := fmt.Sprintf("http://example.com/v1/goals/%s", goal.Data.ID)

	recorder := suite.request(http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodOptions, path, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalDeleteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Meta abandonada. Sabíamos que era ambicioso demais!", response.Message)

	for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodOptions} {
		recorder = suite.request(method, path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	}
}
