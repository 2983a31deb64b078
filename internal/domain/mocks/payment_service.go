package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// PaymentServiceMock мок domain.PaymentService
type PaymentServiceMock struct {
	mock.Mock
}

type PaymentServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PaymentServiceMock) EXPECT() *PaymentServiceMock_Expecter {
	return &PaymentServiceMock_Expecter{mock: &_m.Mock}
}

// HandleWebhook provides a mock function with given fields: ctx, body, signature
func (_m *PaymentServiceMock) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	ret := _m.Called(ctx, body, signature)

	if len(ret) == 0 {
		panic("no return value specified for HandleWebhook")
	}

	if rf, ok := ret.Get(0).(func(context.Context, []byte, string) error); ok {
		return rf(ctx, body, signature)
	}

	return ret.Error(0)
}

type PaymentServiceMock_HandleWebhook_Call struct {
	*mock.Call
}

// HandleWebhook is a helper method to define mock.On call
func (_e *PaymentServiceMock_Expecter) HandleWebhook(ctx interface{}, body interface{}, signature interface{}) *PaymentServiceMock_HandleWebhook_Call {
	return &PaymentServiceMock_HandleWebhook_Call{Call: _e.mock.On("HandleWebhook", ctx, body, signature)}
}

func (_c *PaymentServiceMock_HandleWebhook_Call) Run(run func(ctx context.Context, body []byte, signature string)) *PaymentServiceMock_HandleWebhook_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]byte), args[2].(string))
	})
	return _c
}

func (_c *PaymentServiceMock_HandleWebhook_Call) Return(_a0 error) *PaymentServiceMock_HandleWebhook_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *PaymentServiceMock_HandleWebhook_Call) RunAndReturn(run func(context.Context, []byte, string) error) *PaymentServiceMock_HandleWebhook_Call {
	_c.Call.Return(run)
	return _c
}

// ApproveManual provides a mock function with given fields: ctx, orderID, comment
func (_m *PaymentServiceMock) ApproveManual(ctx context.Context, orderID int64, comment string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, comment)

	if len(ret) == 0 {
		panic("no return value specified for ApproveManual")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*domain.Order, error)); ok {
		return rf(ctx, orderID, comment)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

type PaymentServiceMock_ApproveManual_Call struct {
	*mock.Call
}

// ApproveManual is a helper method to define mock.On call
func (_e *PaymentServiceMock_Expecter) ApproveManual(ctx interface{}, orderID interface{}, comment interface{}) *PaymentServiceMock_ApproveManual_Call {
	return &PaymentServiceMock_ApproveManual_Call{Call: _e.mock.On("ApproveManual", ctx, orderID, comment)}
}

func (_c *PaymentServiceMock_ApproveManual_Call) Run(run func(ctx context.Context, orderID int64, comment string)) *PaymentServiceMock_ApproveManual_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(string))
	})
	return _c
}

func (_c *PaymentServiceMock_ApproveManual_Call) Return(_a0 *domain.Order, _a1 error) *PaymentServiceMock_ApproveManual_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PaymentServiceMock_ApproveManual_Call) RunAndReturn(run func(context.Context, int64, string) (*domain.Order, error)) *PaymentServiceMock_ApproveManual_Call {
	_c.Call.Return(run)
	return _c
}

// RejectManual provides a mock function with given fields: ctx, orderID, comment
func (_m *PaymentServiceMock) RejectManual(ctx context.Context, orderID int64, comment string) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, comment)

	if len(ret) == 0 {
		panic("no return value specified for RejectManual")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*domain.Order, error)); ok {
		return rf(ctx, orderID, comment)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

type PaymentServiceMock_RejectManual_Call struct {
	*mock.Call
}

// RejectManual is a helper method to define mock.On call
func (_e *PaymentServiceMock_Expecter) RejectManual(ctx interface{}, orderID interface{}, comment interface{}) *PaymentServiceMock_RejectManual_Call {
	return &PaymentServiceMock_RejectManual_Call{Call: _e.mock.On("RejectManual", ctx, orderID, comment)}
}

func (_c *PaymentServiceMock_RejectManual_Call) Run(run func(ctx context.Context, orderID int64, comment string)) *PaymentServiceMock_RejectManual_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(string))
	})
	return _c
}

func (_c *PaymentServiceMock_RejectManual_Call) Return(_a0 *domain.Order, _a1 error) *PaymentServiceMock_RejectManual_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PaymentServiceMock_RejectManual_Call) RunAndReturn(run func(context.Context, int64, string) (*domain.Order, error)) *PaymentServiceMock_RejectManual_Call {
	_c.Call.Return(run)
	return _c
}

// NewPaymentServiceMock создает мок и проверяет ожидания по завершении теста
func NewPaymentServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentServiceMock {
	m := &PaymentServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
