package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	decimal "github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// PromoServiceMock мок domain.PromoService
type PromoServiceMock struct {
	mock.Mock
}

type PromoServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PromoServiceMock) EXPECT() *PromoServiceMock_Expecter {
	return &PromoServiceMock_Expecter{mock: &_m.Mock}
}

// Evaluate provides a mock function with given fields: ctx, code, subtotal
func (_m *PromoServiceMock) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (domain.PromoResult, error) {
	ret := _m.Called(ctx, code, subtotal)

	if len(ret) == 0 {
		panic("no return value specified for Evaluate")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, decimal.Decimal) (domain.PromoResult, error)); ok {
		return rf(ctx, code, subtotal)
	}

	r0 := ret.Get(0).(domain.PromoResult)

	return r0, ret.Error(1)
}

type PromoServiceMock_Evaluate_Call struct {
	*mock.Call
}

// Evaluate is a helper method to define mock.On call
func (_e *PromoServiceMock_Expecter) Evaluate(ctx interface{}, code interface{}, subtotal interface{}) *PromoServiceMock_Evaluate_Call {
	return &PromoServiceMock_Evaluate_Call{Call: _e.mock.On("Evaluate", ctx, code, subtotal)}
}

func (_c *PromoServiceMock_Evaluate_Call) Run(run func(ctx context.Context, code string, subtotal decimal.Decimal)) *PromoServiceMock_Evaluate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(decimal.Decimal))
	})
	return _c
}

func (_c *PromoServiceMock_Evaluate_Call) Return(_a0 domain.PromoResult, _a1 error) *PromoServiceMock_Evaluate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PromoServiceMock_Evaluate_Call) RunAndReturn(run func(context.Context, string, decimal.Decimal) (domain.PromoResult, error)) *PromoServiceMock_Evaluate_Call {
	_c.Call.Return(run)
	return _c
}

// CreatePromo provides a mock function with given fields: ctx, p
func (_m *PromoServiceMock) CreatePromo(ctx context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for CreatePromo")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *domain.PromoCode) (*domain.PromoCode, error)); ok {
		return rf(ctx, p)
	}

	var r0 *domain.PromoCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PromoCode)
	}

	return r0, ret.Error(1)
}

type PromoServiceMock_CreatePromo_Call struct {
	*mock.Call
}

// CreatePromo is a helper method to define mock.On call
func (_e *PromoServiceMock_Expecter) CreatePromo(ctx interface{}, p interface{}) *PromoServiceMock_CreatePromo_Call {
	return &PromoServiceMock_CreatePromo_Call{Call: _e.mock.On("CreatePromo", ctx, p)}
}

func (_c *PromoServiceMock_CreatePromo_Call) Run(run func(ctx context.Context, p *domain.PromoCode)) *PromoServiceMock_CreatePromo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.PromoCode))
	})
	return _c
}

func (_c *PromoServiceMock_CreatePromo_Call) Return(_a0 *domain.PromoCode, _a1 error) *PromoServiceMock_CreatePromo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PromoServiceMock_CreatePromo_Call) RunAndReturn(run func(context.Context, *domain.PromoCode) (*domain.PromoCode, error)) *PromoServiceMock_CreatePromo_Call {
	_c.Call.Return(run)
	return _c
}

// UpdatePromo provides a mock function with given fields: ctx, p
func (_m *PromoServiceMock) UpdatePromo(ctx context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for UpdatePromo")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *domain.PromoCode) (*domain.PromoCode, error)); ok {
		return rf(ctx, p)
	}

	var r0 *domain.PromoCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PromoCode)
	}

	return r0, ret.Error(1)
}

type PromoServiceMock_UpdatePromo_Call struct {
	*mock.Call
}

// UpdatePromo is a helper method to define mock.On call
func (_e *PromoServiceMock_Expecter) UpdatePromo(ctx interface{}, p interface{}) *PromoServiceMock_UpdatePromo_Call {
	return &PromoServiceMock_UpdatePromo_Call{Call: _e.mock.On("UpdatePromo", ctx, p)}
}

func (_c *PromoServiceMock_UpdatePromo_Call) Run(run func(ctx context.Context, p *domain.PromoCode)) *PromoServiceMock_UpdatePromo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.PromoCode))
	})
	return _c
}

func (_c *PromoServiceMock_UpdatePromo_Call) Return(_a0 *domain.PromoCode, _a1 error) *PromoServiceMock_UpdatePromo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PromoServiceMock_UpdatePromo_Call) RunAndReturn(run func(context.Context, *domain.PromoCode) (*domain.PromoCode, error)) *PromoServiceMock_UpdatePromo_Call {
	_c.Call.Return(run)
	return _c
}

// DeactivatePromo provides a mock function with given fields: ctx, id
func (_m *PromoServiceMock) DeactivatePromo(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeactivatePromo")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

type PromoServiceMock_DeactivatePromo_Call struct {
	*mock.Call
}

// DeactivatePromo is a helper method to define mock.On call
func (_e *PromoServiceMock_Expecter) DeactivatePromo(ctx interface{}, id interface{}) *PromoServiceMock_DeactivatePromo_Call {
	return &PromoServiceMock_DeactivatePromo_Call{Call: _e.mock.On("DeactivatePromo", ctx, id)}
}

func (_c *PromoServiceMock_DeactivatePromo_Call) Run(run func(ctx context.Context, id int64)) *PromoServiceMock_DeactivatePromo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *PromoServiceMock_DeactivatePromo_Call) Return(_a0 error) *PromoServiceMock_DeactivatePromo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *PromoServiceMock_DeactivatePromo_Call) RunAndReturn(run func(context.Context, int64) error) *PromoServiceMock_DeactivatePromo_Call {
	_c.Call.Return(run)
	return _c
}

// ListPromos provides a mock function with given fields: ctx
func (_m *PromoServiceMock) ListPromos(ctx context.Context) ([]*domain.PromoCode, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListPromos")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]*domain.PromoCode, error)); ok {
		return rf(ctx)
	}

	var r0 []*domain.PromoCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.PromoCode)
	}

	return r0, ret.Error(1)
}

type PromoServiceMock_ListPromos_Call struct {
	*mock.Call
}

// ListPromos is a helper method to define mock.On call
func (_e *PromoServiceMock_Expecter) ListPromos(ctx interface{}) *PromoServiceMock_ListPromos_Call {
	return &PromoServiceMock_ListPromos_Call{Call: _e.mock.On("ListPromos", ctx)}
}

func (_c *PromoServiceMock_ListPromos_Call) Run(run func(ctx context.Context)) *PromoServiceMock_ListPromos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *PromoServiceMock_ListPromos_Call) Return(_a0 []*domain.PromoCode, _a1 error) *PromoServiceMock_ListPromos_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PromoServiceMock_ListPromos_Call) RunAndReturn(run func(context.Context) ([]*domain.PromoCode, error)) *PromoServiceMock_ListPromos_Call {
	_c.Call.Return(run)
	return _c
}

// GetPromo provides a mock function with given fields: ctx, id
func (_m *PromoServiceMock) GetPromo(ctx context.Context, id int64) (*domain.PromoCode, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetPromo")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.PromoCode, error)); ok {
		return rf(ctx, id)
	}

	var r0 *domain.PromoCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PromoCode)
	}

	return r0, ret.Error(1)
}

type PromoServiceMock_GetPromo_Call struct {
	*mock.Call
}

// GetPromo is a helper method to define mock.On call
func (_e *PromoServiceMock_Expecter) GetPromo(ctx interface{}, id interface{}) *PromoServiceMock_GetPromo_Call {
	return &PromoServiceMock_GetPromo_Call{Call: _e.mock.On("GetPromo", ctx, id)}
}

func (_c *PromoServiceMock_GetPromo_Call) Run(run func(ctx context.Context, id int64)) *PromoServiceMock_GetPromo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *PromoServiceMock_GetPromo_Call) Return(_a0 *domain.PromoCode, _a1 error) *PromoServiceMock_GetPromo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *PromoServiceMock_GetPromo_Call) RunAndReturn(run func(context.Context, int64) (*domain.PromoCode, error)) *PromoServiceMock_GetPromo_Call {
	_c.Call.Return(run)
	return _c
}

// NewPromoServiceMock создает мок и проверяет ожидания по завершении теста
func NewPromoServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PromoServiceMock {
	m := &PromoServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
