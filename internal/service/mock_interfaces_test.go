package service

import (
	context "context"

	shipping "github.com/mwhite7112/woodpantry-rates/internal/shipping"
	mock "github.com/stretchr/testify/mock"
)

// MockRateFetcher is a mock type for the RateFetcher type
type MockRateFetcher struct {
	mock.Mock
}

type MockRateFetcher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRateFetcher) EXPECT() *MockRateFetcher_Expecter {
	return &MockRateFetcher_Expecter{mock: &_m.Mock}
}

// FetchRates provides a mock function with given fields: ctx, sender, receiver, parcel, token
func (_m *MockRateFetcher) FetchRates(ctx context.Context, sender shipping.Address, receiver shipping.Address, parcel shipping.Parcel, token string) (shipping.ShipmentResponse, error) {
	ret := _m.Called(ctx, sender, receiver, parcel, token)

	if len(ret) == 0 {
		panic("no return value specified for FetchRates")
	}

	var r0 shipping.ShipmentResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, shipping.Address, shipping.Address, shipping.Parcel, string) (shipping.ShipmentResponse, error)); ok {
		return rf(ctx, sender, receiver, parcel, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, shipping.Address, shipping.Address, shipping.Parcel, string) shipping.ShipmentResponse); ok {
		r0 = rf(ctx, sender, receiver, parcel, token)
	} else {
		r0 = ret.Get(0).(shipping.ShipmentResponse)
	}

	if rf, ok := ret.Get(1).(func(context.Context, shipping.Address, shipping.Address, shipping.Parcel, string) error); ok {
		r1 = rf(ctx, sender, receiver, parcel, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRateFetcher_FetchRates_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchRates'
type MockRateFetcher_FetchRates_Call struct {
	*mock.Call
}

// FetchRates is a helper method to define mock.On call
func (_e *MockRateFetcher_Expecter) FetchRates(ctx interface{}, sender interface{}, receiver interface{}, parcel interface{}, token interface{}) *MockRateFetcher_FetchRates_Call {
	return &MockRateFetcher_FetchRates_Call{Call: _e.mock.On("FetchRates", ctx, sender, receiver, parcel, token)}
}

func (_c *MockRateFetcher_FetchRates_Call) Run(run func(ctx context.Context, sender shipping.Address, receiver shipping.Address, parcel shipping.Parcel, token string)) *MockRateFetcher_FetchRates_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(shipping.Address), args[2].(shipping.Address), args[3].(shipping.Parcel), args[4].(string))
	})
	return _c
}

func (_c *MockRateFetcher_FetchRates_Call) Return(_a0 shipping.ShipmentResponse, _a1 error) *MockRateFetcher_FetchRates_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRateFetcher_FetchRates_Call) RunAndReturn(run func(context.Context, shipping.Address, shipping.Address, shipping.Parcel, string) (shipping.ShipmentResponse, error)) *MockRateFetcher_FetchRates_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRateFetcher creates a new instance of MockRateFetcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRateFetcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRateFetcher {
	mock := &MockRateFetcher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockAddressExtractor is a mock type for the AddressExtractor type
type MockAddressExtractor struct {
	mock.Mock
}

type MockAddressExtractor_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAddressExtractor) EXPECT() *MockAddressExtractor_Expecter {
	return &MockAddressExtractor_Expecter{mock: &_m.Mock}
}

// Extract provides a mock function with given fields: ctx, rawText
func (_m *MockAddressExtractor) Extract(ctx context.Context, rawText string) (shipping.Address, error) {
	ret := _m.Called(ctx, rawText)

	if len(ret) == 0 {
		panic("no return value specified for Extract")
	}

	var r0 shipping.Address
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (shipping.Address, error)); ok {
		return rf(ctx, rawText)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) shipping.Address); ok {
		r0 = rf(ctx, rawText)
	} else {
		r0 = ret.Get(0).(shipping.Address)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, rawText)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAddressExtractor_Extract_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Extract'
type MockAddressExtractor_Extract_Call struct {
	*mock.Call
}

// Extract is a helper method to define mock.On call
func (_e *MockAddressExtractor_Expecter) Extract(ctx interface{}, rawText interface{}) *MockAddressExtractor_Extract_Call {
	return &MockAddressExtractor_Extract_Call{Call: _e.mock.On("Extract", ctx, rawText)}
}

func (_c *MockAddressExtractor_Extract_Call) Return(_a0 shipping.Address, _a1 error) *MockAddressExtractor_Extract_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockAddressExtractor creates a new instance of MockAddressExtractor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAddressExtractor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddressExtractor {
	mock := &MockAddressExtractor{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockQuoteRecorder is a mock type for the QuoteRecorder type
type MockQuoteRecorder struct {
	mock.Mock
}

type MockQuoteRecorder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuoteRecorder) EXPECT() *MockQuoteRecorder_Expecter {
	return &MockQuoteRecorder_Expecter{mock: &_m.Mock}
}

// RecordQuote provides a mock function with given fields: ctx, quote
func (_m *MockQuoteRecorder) RecordQuote(ctx context.Context, quote shipping.Quote) error {
	ret := _m.Called(ctx, quote)

	if len(ret) == 0 {
		panic("no return value specified for RecordQuote")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, shipping.Quote) error); ok {
		r0 = rf(ctx, quote)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockQuoteRecorder_RecordQuote_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordQuote'
type MockQuoteRecorder_RecordQuote_Call struct {
	*mock.Call
}

// RecordQuote is a helper method to define mock.On call
func (_e *MockQuoteRecorder_Expecter) RecordQuote(ctx interface{}, quote interface{}) *MockQuoteRecorder_RecordQuote_Call {
	return &MockQuoteRecorder_RecordQuote_Call{Call: _e.mock.On("RecordQuote", ctx, quote)}
}

func (_c *MockQuoteRecorder_RecordQuote_Call) Return(_a0 error) *MockQuoteRecorder_RecordQuote_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockQuoteRecorder creates a new instance of MockQuoteRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockQuoteRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteRecorder {
	mock := &MockQuoteRecorder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockQuoteNotifier is a mock type for the QuoteNotifier type
type MockQuoteNotifier struct {
	mock.Mock
}

type MockQuoteNotifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuoteNotifier) EXPECT() *MockQuoteNotifier_Expecter {
	return &MockQuoteNotifier_Expecter{mock: &_m.Mock}
}

// PublishRatesQuoted provides a mock function with given fields: ctx, quote
func (_m *MockQuoteNotifier) PublishRatesQuoted(ctx context.Context, quote shipping.Quote) error {
	ret := _m.Called(ctx, quote)

	if len(ret) == 0 {
		panic("no return value specified for PublishRatesQuoted")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, shipping.Quote) error); ok {
		r0 = rf(ctx, quote)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockQuoteNotifier_PublishRatesQuoted_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PublishRatesQuoted'
type MockQuoteNotifier_PublishRatesQuoted_Call struct {
	*mock.Call
}

// PublishRatesQuoted is a helper method to define mock.On call
func (_e *MockQuoteNotifier_Expecter) PublishRatesQuoted(ctx interface{}, quote interface{}) *MockQuoteNotifier_PublishRatesQuoted_Call {
	return &MockQuoteNotifier_PublishRatesQuoted_Call{Call: _e.mock.On("PublishRatesQuoted", ctx, quote)}
}

func (_c *MockQuoteNotifier_PublishRatesQuoted_Call) Return(_a0 error) *MockQuoteNotifier_PublishRatesQuoted_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockQuoteNotifier creates a new instance of MockQuoteNotifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockQuoteNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteNotifier {
	mock := &MockQuoteNotifier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
