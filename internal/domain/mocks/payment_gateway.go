package mocks

import (
	"context"

	"github.com/avc/plantstore/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// PaymentGatewayMock мок domain.PaymentGateway
type PaymentGatewayMock struct {
	mock.Mock
}

type PaymentGatewayMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PaymentGatewayMock) EXPECT() *PaymentGatewayMock_Expecter {
	return &PaymentGatewayMock_Expecter{mock: &_m.Mock}
}

// CreatePayment provides a mock function with given fields: ctx, req
func (_m *PaymentGatewayMock) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreatePayment")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.PaymentRequest) (*domain.PaymentSession, error)); ok {
		return rf(ctx, req)
	}

	var r0 *domain.PaymentSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PaymentSession)
	}

	return r0, ret.Error(1)
}

type PaymentGatewayMock_CreatePayment_Call struct {
	*mock.Call
}

// CreatePayment is a helper method to define mock.On call
func (_e *PaymentGatewayMock_Expecter) CreatePayment(ctx interface{}, req interface{}) *PaymentGatewayMock_CreatePayment_Call {
	return &PaymentGatewayMock_CreatePayment_Call{Call: _e.mock.On("CreatePayment", ctx, req)}
}

func (_c *PaymentGatewayMock_CreatePayment_Call) Run(run func(ctx context.Context, req domain.PaymentRequest)) *PaymentGatewayMock_CreatePayment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.PaymentRequest))
	})
	return _c
}

func (_c *PaymentGatewayMock_CreatePayment_Call) Return(session *domain.PaymentSession, err error) *PaymentGatewayMock_CreatePayment_Call {
	_c.Call.Return(session, err)
	return _c
}

func (_c *PaymentGatewayMock_CreatePayment_Call) RunAndReturn(run func(context.Context, domain.PaymentRequest) (*domain.PaymentSession, error)) *PaymentGatewayMock_CreatePayment_Call {
	_c.Call.Return(run)
	return _c
}

// NewPaymentGatewayMock создает мок и проверяет ожидания по завершении теста
func NewPaymentGatewayMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentGatewayMock {
	m := &PaymentGatewayMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
