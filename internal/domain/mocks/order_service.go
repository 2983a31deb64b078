package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// OrderServiceMock мок domain.OrderService
type OrderServiceMock struct {
	mock.Mock
}

type OrderServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *OrderServiceMock) EXPECT() *OrderServiceMock_Expecter {
	return &OrderServiceMock_Expecter{mock: &_m.Mock}
}

// Quote provides a mock function with given fields: ctx, req
func (_m *OrderServiceMock) Quote(ctx context.Context, req domain.CheckoutRequest) (*domain.Quote, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Quote")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.CheckoutRequest) (*domain.Quote, error)); ok {
		return rf(ctx, req)
	}

	var r0 *domain.Quote
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Quote)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_Quote_Call struct {
	*mock.Call
}

// Quote is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) Quote(ctx interface{}, req interface{}) *OrderServiceMock_Quote_Call {
	return &OrderServiceMock_Quote_Call{Call: _e.mock.On("Quote", ctx, req)}
}

func (_c *OrderServiceMock_Quote_Call) Run(run func(ctx context.Context, req domain.CheckoutRequest)) *OrderServiceMock_Quote_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.CheckoutRequest))
	})
	return _c
}

func (_c *OrderServiceMock_Quote_Call) Return(_a0 *domain.Quote, _a1 error) *OrderServiceMock_Quote_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_Quote_Call) RunAndReturn(run func(context.Context, domain.CheckoutRequest) (*domain.Quote, error)) *OrderServiceMock_Quote_Call {
	_c.Call.Return(run)
	return _c
}

// PlaceOrder provides a mock function with given fields: ctx, userID, req
func (_m *OrderServiceMock) PlaceOrder(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for PlaceOrder")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.CheckoutRequest) (*domain.CheckoutResult, error)); ok {
		return rf(ctx, userID, req)
	}

	var r0 *domain.CheckoutResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.CheckoutResult)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_PlaceOrder_Call struct {
	*mock.Call
}

// PlaceOrder is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) PlaceOrder(ctx interface{}, userID interface{}, req interface{}) *OrderServiceMock_PlaceOrder_Call {
	return &OrderServiceMock_PlaceOrder_Call{Call: _e.mock.On("PlaceOrder", ctx, userID, req)}
}

func (_c *OrderServiceMock_PlaceOrder_Call) Run(run func(ctx context.Context, userID int64, req domain.CheckoutRequest)) *OrderServiceMock_PlaceOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(domain.CheckoutRequest))
	})
	return _c
}

func (_c *OrderServiceMock_PlaceOrder_Call) Return(_a0 *domain.CheckoutResult, _a1 error) *OrderServiceMock_PlaceOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_PlaceOrder_Call) RunAndReturn(run func(context.Context, int64, domain.CheckoutRequest) (*domain.CheckoutResult, error)) *OrderServiceMock_PlaceOrder_Call {
	_c.Call.Return(run)
	return _c
}

// ListUserOrders provides a mock function with given fields: ctx, userID
func (_m *OrderServiceMock) ListUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListUserOrders")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*domain.Order, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []*domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Order)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_ListUserOrders_Call struct {
	*mock.Call
}

// ListUserOrders is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) ListUserOrders(ctx interface{}, userID interface{}) *OrderServiceMock_ListUserOrders_Call {
	return &OrderServiceMock_ListUserOrders_Call{Call: _e.mock.On("ListUserOrders", ctx, userID)}
}

func (_c *OrderServiceMock_ListUserOrders_Call) Run(run func(ctx context.Context, userID int64)) *OrderServiceMock_ListUserOrders_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *OrderServiceMock_ListUserOrders_Call) Return(_a0 []*domain.Order, _a1 error) *OrderServiceMock_ListUserOrders_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_ListUserOrders_Call) RunAndReturn(run func(context.Context, int64) ([]*domain.Order, error)) *OrderServiceMock_ListUserOrders_Call {
	_c.Call.Return(run)
	return _c
}

// GetUserOrder provides a mock function with given fields: ctx, userID, orderID
func (_m *OrderServiceMock) GetUserOrder(ctx context.Context, userID int64, orderID int64) (*domain.Order, error) {
	ret := _m.Called(ctx, userID, orderID)

	if len(ret) == 0 {
		panic("no return value specified for GetUserOrder")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (*domain.Order, error)); ok {
		return rf(ctx, userID, orderID)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_GetUserOrder_Call struct {
	*mock.Call
}

// GetUserOrder is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) GetUserOrder(ctx interface{}, userID interface{}, orderID interface{}) *OrderServiceMock_GetUserOrder_Call {
	return &OrderServiceMock_GetUserOrder_Call{Call: _e.mock.On("GetUserOrder", ctx, userID, orderID)}
}

func (_c *OrderServiceMock_GetUserOrder_Call) Run(run func(ctx context.Context, userID int64, orderID int64)) *OrderServiceMock_GetUserOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(int64))
	})
	return _c
}

func (_c *OrderServiceMock_GetUserOrder_Call) Return(_a0 *domain.Order, _a1 error) *OrderServiceMock_GetUserOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_GetUserOrder_Call) RunAndReturn(run func(context.Context, int64, int64) (*domain.Order, error)) *OrderServiceMock_GetUserOrder_Call {
	_c.Call.Return(run)
	return _c
}

// UploadPaymentProof provides a mock function with given fields: ctx, userID, orderID, url
func (_m *OrderServiceMock) UploadPaymentProof(ctx context.Context, userID int64, orderID int64, url string) (*domain.Order, error) {
	ret := _m.Called(ctx, userID, orderID, url)

	if len(ret) == 0 {
		panic("no return value specified for UploadPaymentProof")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, string) (*domain.Order, error)); ok {
		return rf(ctx, userID, orderID, url)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_UploadPaymentProof_Call struct {
	*mock.Call
}

// UploadPaymentProof is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) UploadPaymentProof(ctx interface{}, userID interface{}, orderID interface{}, url interface{}) *OrderServiceMock_UploadPaymentProof_Call {
	return &OrderServiceMock_UploadPaymentProof_Call{Call: _e.mock.On("UploadPaymentProof", ctx, userID, orderID, url)}
}

func (_c *OrderServiceMock_UploadPaymentProof_Call) Run(run func(ctx context.Context, userID int64, orderID int64, url string)) *OrderServiceMock_UploadPaymentProof_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(int64), args[3].(string))
	})
	return _c
}

func (_c *OrderServiceMock_UploadPaymentProof_Call) Return(_a0 *domain.Order, _a1 error) *OrderServiceMock_UploadPaymentProof_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_UploadPaymentProof_Call) RunAndReturn(run func(context.Context, int64, int64, string) (*domain.Order, error)) *OrderServiceMock_UploadPaymentProof_Call {
	_c.Call.Return(run)
	return _c
}

// ListOrders provides a mock function with given fields: ctx, f
func (_m *OrderServiceMock) ListOrders(ctx context.Context, f domain.OrderFilter) (*domain.OrderPage, error) {
	ret := _m.Called(ctx, f)

	if len(ret) == 0 {
		panic("no return value specified for ListOrders")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderFilter) (*domain.OrderPage, error)); ok {
		return rf(ctx, f)
	}

	var r0 *domain.OrderPage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.OrderPage)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_ListOrders_Call struct {
	*mock.Call
}

// ListOrders is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) ListOrders(ctx interface{}, f interface{}) *OrderServiceMock_ListOrders_Call {
	return &OrderServiceMock_ListOrders_Call{Call: _e.mock.On("ListOrders", ctx, f)}
}

func (_c *OrderServiceMock_ListOrders_Call) Run(run func(ctx context.Context, f domain.OrderFilter)) *OrderServiceMock_ListOrders_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.OrderFilter))
	})
	return _c
}

func (_c *OrderServiceMock_ListOrders_Call) Return(_a0 *domain.OrderPage, _a1 error) *OrderServiceMock_ListOrders_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_ListOrders_Call) RunAndReturn(run func(context.Context, domain.OrderFilter) (*domain.OrderPage, error)) *OrderServiceMock_ListOrders_Call {
	_c.Call.Return(run)
	return _c
}

// GetOrder provides a mock function with given fields: ctx, id
func (_m *OrderServiceMock) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetOrder")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Order, error)); ok {
		return rf(ctx, id)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_GetOrder_Call struct {
	*mock.Call
}

// GetOrder is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) GetOrder(ctx interface{}, id interface{}) *OrderServiceMock_GetOrder_Call {
	return &OrderServiceMock_GetOrder_Call{Call: _e.mock.On("GetOrder", ctx, id)}
}

func (_c *OrderServiceMock_GetOrder_Call) Run(run func(ctx context.Context, id int64)) *OrderServiceMock_GetOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *OrderServiceMock_GetOrder_Call) Return(_a0 *domain.Order, _a1 error) *OrderServiceMock_GetOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_GetOrder_Call) RunAndReturn(run func(context.Context, int64) (*domain.Order, error)) *OrderServiceMock_GetOrder_Call {
	_c.Call.Return(run)
	return _c
}

// EditOrder provides a mock function with given fields: ctx, id, edit, change
func (_m *OrderServiceMock) EditOrder(ctx context.Context, id int64, edit domain.OrderEdit, change *domain.StatusChange) (*domain.Order, error) {
	ret := _m.Called(ctx, id, edit, change)

	if len(ret) == 0 {
		panic("no return value specified for EditOrder")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.OrderEdit, *domain.StatusChange) (*domain.Order, error)); ok {
		return rf(ctx, id, edit, change)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

type OrderServiceMock_EditOrder_Call struct {
	*mock.Call
}

// EditOrder is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) EditOrder(ctx interface{}, id interface{}, edit interface{}, change interface{}) *OrderServiceMock_EditOrder_Call {
	return &OrderServiceMock_EditOrder_Call{Call: _e.mock.On("EditOrder", ctx, id, edit, change)}
}

func (_c *OrderServiceMock_EditOrder_Call) Run(run func(ctx context.Context, id int64, edit domain.OrderEdit, change *domain.StatusChange)) *OrderServiceMock_EditOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(domain.OrderEdit), args[3].(*domain.StatusChange))
	})
	return _c
}

func (_c *OrderServiceMock_EditOrder_Call) Return(_a0 *domain.Order, _a1 error) *OrderServiceMock_EditOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *OrderServiceMock_EditOrder_Call) RunAndReturn(run func(context.Context, int64, domain.OrderEdit, *domain.StatusChange) (*domain.Order, error)) *OrderServiceMock_EditOrder_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteOrder provides a mock function with given fields: ctx, id
func (_m *OrderServiceMock) DeleteOrder(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteOrder")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

type OrderServiceMock_DeleteOrder_Call struct {
	*mock.Call
}

// DeleteOrder is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) DeleteOrder(ctx interface{}, id interface{}) *OrderServiceMock_DeleteOrder_Call {
	return &OrderServiceMock_DeleteOrder_Call{Call: _e.mock.On("DeleteOrder", ctx, id)}
}

func (_c *OrderServiceMock_DeleteOrder_Call) Run(run func(ctx context.Context, id int64)) *OrderServiceMock_DeleteOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *OrderServiceMock_DeleteOrder_Call) Return(_a0 error) *OrderServiceMock_DeleteOrder_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *OrderServiceMock_DeleteOrder_Call) RunAndReturn(run func(context.Context, int64) error) *OrderServiceMock_DeleteOrder_Call {
	_c.Call.Return(run)
	return _c
}

// NewOrderServiceMock создает мок и проверяет ожидания по завершении теста
func NewOrderServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceMock {
	m := &OrderServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
