// Package mocks holds expecter-style test doubles for the db package.
package mocks

import (
	context "context"

	db "github.com/mwhite7112/woodpantry-rates/internal/db"
	mock "github.com/stretchr/testify/mock"
)

// MockQuerier is a mock type for the Querier type
type MockQuerier struct {
	mock.Mock
}

type MockQuerier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuerier) EXPECT() *MockQuerier_Expecter {
	return &MockQuerier_Expecter{mock: &_m.Mock}
}

// CreateRateQuote provides a mock function with given fields: ctx, arg
func (_m *MockQuerier) CreateRateQuote(ctx context.Context, arg db.CreateRateQuoteParams) (db.RateQuote, error) {
	ret := _m.Called(ctx, arg)

	if len(ret) == 0 {
		panic("no return value specified for CreateRateQuote")
	}

	var r0 db.RateQuote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, db.CreateRateQuoteParams) (db.RateQuote, error)); ok {
		return rf(ctx, arg)
	}
	if rf, ok := ret.Get(0).(func(context.Context, db.CreateRateQuoteParams) db.RateQuote); ok {
		r0 = rf(ctx, arg)
	} else {
		r0 = ret.Get(0).(db.RateQuote)
	}

	if rf, ok := ret.Get(1).(func(context.Context, db.CreateRateQuoteParams) error); ok {
		r1 = rf(ctx, arg)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuerier_CreateRateQuote_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateRateQuote'
type MockQuerier_CreateRateQuote_Call struct {
	*mock.Call
}

// CreateRateQuote is a helper method to define mock.On call
//   - ctx context.Context
//   - arg db.CreateRateQuoteParams
func (_e *MockQuerier_Expecter) CreateRateQuote(ctx interface{}, arg interface{}) *MockQuerier_CreateRateQuote_Call {
	return &MockQuerier_CreateRateQuote_Call{Call: _e.mock.On("CreateRateQuote", ctx, arg)}
}

func (_c *MockQuerier_CreateRateQuote_Call) Run(run func(ctx context.Context, arg db.CreateRateQuoteParams)) *MockQuerier_CreateRateQuote_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(db.CreateRateQuoteParams))
	})
	return _c
}

func (_c *MockQuerier_CreateRateQuote_Call) Return(_a0 db.RateQuote, _a1 error) *MockQuerier_CreateRateQuote_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuerier_CreateRateQuote_Call) RunAndReturn(run func(context.Context, db.CreateRateQuoteParams) (db.RateQuote, error)) *MockQuerier_CreateRateQuote_Call {
	_c.Call.Return(run)
	return _c
}

// ListRateQuotes provides a mock function with given fields: ctx, limit
func (_m *MockQuerier) ListRateQuotes(ctx context.Context, limit int32) ([]db.RateQuote, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListRateQuotes")
	}

	var r0 []db.RateQuote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int32) ([]db.RateQuote, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int32) []db.RateQuote); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]db.RateQuote)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int32) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuerier_ListRateQuotes_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListRateQuotes'
type MockQuerier_ListRateQuotes_Call struct {
	*mock.Call
}

// ListRateQuotes is a helper method to define mock.On call
//   - ctx context.Context
//   - limit int32
func (_e *MockQuerier_Expecter) ListRateQuotes(ctx interface{}, limit interface{}) *MockQuerier_ListRateQuotes_Call {
	return &MockQuerier_ListRateQuotes_Call{Call: _e.mock.On("ListRateQuotes", ctx, limit)}
}

func (_c *MockQuerier_ListRateQuotes_Call) Run(run func(ctx context.Context, limit int32)) *MockQuerier_ListRateQuotes_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int32))
	})
	return _c
}

func (_c *MockQuerier_ListRateQuotes_Call) Return(_a0 []db.RateQuote, _a1 error) *MockQuerier_ListRateQuotes_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuerier_ListRateQuotes_Call) RunAndReturn(run func(context.Context, int32) ([]db.RateQuote, error)) *MockQuerier_ListRateQuotes_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQuerier creates a new instance of MockQuerier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQuerier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuerier {
	mock := &MockQuerier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
