package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// CatalogServiceMock мок domain.CatalogService
type CatalogServiceMock struct {
	mock.Mock
}

type CatalogServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *CatalogServiceMock) EXPECT() *CatalogServiceMock_Expecter {
	return &CatalogServiceMock_Expecter{mock: &_m.Mock}
}

// ListProducts provides a mock function with given fields: ctx, f
func (_m *CatalogServiceMock) ListProducts(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, int, error) {
	ret := _m.Called(ctx, f)

	if len(ret) == 0 {
		panic("no return value specified for ListProducts")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.ProductFilter) ([]*domain.Product, int, error)); ok {
		return rf(ctx, f)
	}

	var r0 []*domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Product)
	}

	return r0, ret.Int(1), ret.Error(2)
}

type CatalogServiceMock_ListProducts_Call struct {
	*mock.Call
}

// ListProducts is a helper method to define mock.On call
func (_e *CatalogServiceMock_Expecter) ListProducts(ctx interface{}, f interface{}) *CatalogServiceMock_ListProducts_Call {
	return &CatalogServiceMock_ListProducts_Call{Call: _e.mock.On("ListProducts", ctx, f)}
}

func (_c *CatalogServiceMock_ListProducts_Call) Run(run func(ctx context.Context, f domain.ProductFilter)) *CatalogServiceMock_ListProducts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ProductFilter))
	})
	return _c
}

func (_c *CatalogServiceMock_ListProducts_Call) Return(_a0 []*domain.Product, _a1 int, _a2 error) *CatalogServiceMock_ListProducts_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *CatalogServiceMock_ListProducts_Call) RunAndReturn(run func(context.Context, domain.ProductFilter) ([]*domain.Product, int, error)) *CatalogServiceMock_ListProducts_Call {
	_c.Call.Return(run)
	return _c
}

// GetProduct provides a mock function with given fields: ctx, id
func (_m *CatalogServiceMock) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetProduct")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Product, error)); ok {
		return rf(ctx, id)
	}

	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}

	return r0, ret.Error(1)
}

type CatalogServiceMock_GetProduct_Call struct {
	*mock.Call
}

// GetProduct is a helper method to define mock.On call
func (_e *CatalogServiceMock_Expecter) GetProduct(ctx interface{}, id interface{}) *CatalogServiceMock_GetProduct_Call {
	return &CatalogServiceMock_GetProduct_Call{Call: _e.mock.On("GetProduct", ctx, id)}
}

func (_c *CatalogServiceMock_GetProduct_Call) Run(run func(ctx context.Context, id int64)) *CatalogServiceMock_GetProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *CatalogServiceMock_GetProduct_Call) Return(_a0 *domain.Product, _a1 error) *CatalogServiceMock_GetProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *CatalogServiceMock_GetProduct_Call) RunAndReturn(run func(context.Context, int64) (*domain.Product, error)) *CatalogServiceMock_GetProduct_Call {
	_c.Call.Return(run)
	return _c
}

// CreateProduct provides a mock function with given fields: ctx, p, announce
func (_m *CatalogServiceMock) CreateProduct(ctx context.Context, p *domain.Product, announce bool) (*domain.Product, error) {
	ret := _m.Called(ctx, p, announce)

	if len(ret) == 0 {
		panic("no return value specified for CreateProduct")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Product, bool) (*domain.Product, error)); ok {
		return rf(ctx, p, announce)
	}

	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}

	return r0, ret.Error(1)
}

type CatalogServiceMock_CreateProduct_Call struct {
	*mock.Call
}

// CreateProduct is a helper method to define mock.On call
func (_e *CatalogServiceMock_Expecter) CreateProduct(ctx interface{}, p interface{}, announce interface{}) *CatalogServiceMock_CreateProduct_Call {
	return &CatalogServiceMock_CreateProduct_Call{Call: _e.mock.On("CreateProduct", ctx, p, announce)}
}

func (_c *CatalogServiceMock_CreateProduct_Call) Run(run func(ctx context.Context, p *domain.Product, announce bool)) *CatalogServiceMock_CreateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Product), args[2].(bool))
	})
	return _c
}

func (_c *CatalogServiceMock_CreateProduct_Call) Return(_a0 *domain.Product, _a1 error) *CatalogServiceMock_CreateProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *CatalogServiceMock_CreateProduct_Call) RunAndReturn(run func(context.Context, *domain.Product, bool) (*domain.Product, error)) *CatalogServiceMock_CreateProduct_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProduct provides a mock function with given fields: ctx, p
func (_m *CatalogServiceMock) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProduct")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Product) (*domain.Product, error)); ok {
		return rf(ctx, p)
	}

	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}

	return r0, ret.Error(1)
}

type CatalogServiceMock_UpdateProduct_Call struct {
	*mock.Call
}

// UpdateProduct is a helper method to define mock.On call
func (_e *CatalogServiceMock_Expecter) UpdateProduct(ctx interface{}, p interface{}) *CatalogServiceMock_UpdateProduct_Call {
	return &CatalogServiceMock_UpdateProduct_Call{Call: _e.mock.On("UpdateProduct", ctx, p)}
}

func (_c *CatalogServiceMock_UpdateProduct_Call) Run(run func(ctx context.Context, p *domain.Product)) *CatalogServiceMock_UpdateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.Product))
	})
	return _c
}

func (_c *CatalogServiceMock_UpdateProduct_Call) Return(_a0 *domain.Product, _a1 error) *CatalogServiceMock_UpdateProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *CatalogServiceMock_UpdateProduct_Call) RunAndReturn(run func(context.Context, *domain.Product) (*domain.Product, error)) *CatalogServiceMock_UpdateProduct_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteProduct provides a mock function with given fields: ctx, id
func (_m *CatalogServiceMock) DeleteProduct(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteProduct")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

type CatalogServiceMock_DeleteProduct_Call struct {
	*mock.Call
}

// DeleteProduct is a helper method to define mock.On call
func (_e *CatalogServiceMock_Expecter) DeleteProduct(ctx interface{}, id interface{}) *CatalogServiceMock_DeleteProduct_Call {
	return &CatalogServiceMock_DeleteProduct_Call{Call: _e.mock.On("DeleteProduct", ctx, id)}
}

func (_c *CatalogServiceMock_DeleteProduct_Call) Run(run func(ctx context.Context, id int64)) *CatalogServiceMock_DeleteProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *CatalogServiceMock_DeleteProduct_Call) Return(_a0 error) *CatalogServiceMock_DeleteProduct_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *CatalogServiceMock_DeleteProduct_Call) RunAndReturn(run func(context.Context, int64) error) *CatalogServiceMock_DeleteProduct_Call {
	_c.Call.Return(run)
	return _c
}

// NewCatalogServiceMock создает мок и проверяет ожидания по завершении теста
func NewCatalogServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceMock {
	m := &CatalogServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
