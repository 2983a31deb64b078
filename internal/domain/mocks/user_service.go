package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	decimal "github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// UserServiceMock мок domain.UserService
type UserServiceMock struct {
	mock.Mock
}

type UserServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *UserServiceMock) EXPECT() *UserServiceMock_Expecter {
	return &UserServiceMock_Expecter{mock: &_m.Mock}
}

// ListUsers provides a mock function with given fields: ctx, page, limit
func (_m *UserServiceMock) ListUsers(ctx context.Context, page int, limit int) ([]*domain.User, int, error) {
	ret := _m.Called(ctx, page, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListUsers")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]*domain.User, int, error)); ok {
		return rf(ctx, page, limit)
	}

	var r0 []*domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.User)
	}

	return r0, ret.Int(1), ret.Error(2)
}

type UserServiceMock_ListUsers_Call struct {
	*mock.Call
}

// ListUsers is a helper method to define mock.On call
func (_e *UserServiceMock_Expecter) ListUsers(ctx interface{}, page interface{}, limit interface{}) *UserServiceMock_ListUsers_Call {
	return &UserServiceMock_ListUsers_Call{Call: _e.mock.On("ListUsers", ctx, page, limit)}
}

func (_c *UserServiceMock_ListUsers_Call) Run(run func(ctx context.Context, page int, limit int)) *UserServiceMock_ListUsers_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(int))
	})
	return _c
}

func (_c *UserServiceMock_ListUsers_Call) Return(_a0 []*domain.User, _a1 int, _a2 error) *UserServiceMock_ListUsers_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *UserServiceMock_ListUsers_Call) RunAndReturn(run func(context.Context, int, int) ([]*domain.User, int, error)) *UserServiceMock_ListUsers_Call {
	_c.Call.Return(run)
	return _c
}

// GetUser provides a mock function with given fields: ctx, id
func (_m *UserServiceMock) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetUser")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.User, error)); ok {
		return rf(ctx, id)
	}

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

type UserServiceMock_GetUser_Call struct {
	*mock.Call
}

// GetUser is a helper method to define mock.On call
func (_e *UserServiceMock_Expecter) GetUser(ctx interface{}, id interface{}) *UserServiceMock_GetUser_Call {
	return &UserServiceMock_GetUser_Call{Call: _e.mock.On("GetUser", ctx, id)}
}

func (_c *UserServiceMock_GetUser_Call) Run(run func(ctx context.Context, id int64)) *UserServiceMock_GetUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *UserServiceMock_GetUser_Call) Return(_a0 *domain.User, _a1 error) *UserServiceMock_GetUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *UserServiceMock_GetUser_Call) RunAndReturn(run func(context.Context, int64) (*domain.User, error)) *UserServiceMock_GetUser_Call {
	_c.Call.Return(run)
	return _c
}

// CreateUser provides a mock function with given fields: ctx, u
func (_m *UserServiceMock) CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	ret := _m.Called(ctx, u)

	if len(ret) == 0 {
		panic("no return value specified for CreateUser")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.NewUser) (*domain.User, error)); ok {
		return rf(ctx, u)
	}

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

type UserServiceMock_CreateUser_Call struct {
	*mock.Call
}

// CreateUser is a helper method to define mock.On call
func (_e *UserServiceMock_Expecter) CreateUser(ctx interface{}, u interface{}) *UserServiceMock_CreateUser_Call {
	return &UserServiceMock_CreateUser_Call{Call: _e.mock.On("CreateUser", ctx, u)}
}

func (_c *UserServiceMock_CreateUser_Call) Run(run func(ctx context.Context, u domain.NewUser)) *UserServiceMock_CreateUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.NewUser))
	})
	return _c
}

func (_c *UserServiceMock_CreateUser_Call) Return(_a0 *domain.User, _a1 error) *UserServiceMock_CreateUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *UserServiceMock_CreateUser_Call) RunAndReturn(run func(context.Context, domain.NewUser) (*domain.User, error)) *UserServiceMock_CreateUser_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateUser provides a mock function with given fields: ctx, id, upd
func (_m *UserServiceMock) UpdateUser(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	ret := _m.Called(ctx, id, upd)

	if len(ret) == 0 {
		panic("no return value specified for UpdateUser")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.UserUpdate) (*domain.User, error)); ok {
		return rf(ctx, id, upd)
	}

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

type UserServiceMock_UpdateUser_Call struct {
	*mock.Call
}

// UpdateUser is a helper method to define mock.On call
func (_e *UserServiceMock_Expecter) UpdateUser(ctx interface{}, id interface{}, upd interface{}) *UserServiceMock_UpdateUser_Call {
	return &UserServiceMock_UpdateUser_Call{Call: _e.mock.On("UpdateUser", ctx, id, upd)}
}

func (_c *UserServiceMock_UpdateUser_Call) Run(run func(ctx context.Context, id int64, upd domain.UserUpdate)) *UserServiceMock_UpdateUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(domain.UserUpdate))
	})
	return _c
}

func (_c *UserServiceMock_UpdateUser_Call) Return(_a0 *domain.User, _a1 error) *UserServiceMock_UpdateUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *UserServiceMock_UpdateUser_Call) RunAndReturn(run func(context.Context, int64, domain.UserUpdate) (*domain.User, error)) *UserServiceMock_UpdateUser_Call {
	_c.Call.Return(run)
	return _c
}

// CreditBalance provides a mock function with given fields: ctx, id, amount
func (_m *UserServiceMock) CreditBalance(ctx context.Context, id int64, amount decimal.Decimal) (*domain.User, error) {
	ret := _m.Called(ctx, id, amount)

	if len(ret) == 0 {
		panic("no return value specified for CreditBalance")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, decimal.Decimal) (*domain.User, error)); ok {
		return rf(ctx, id, amount)
	}

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

type UserServiceMock_CreditBalance_Call struct {
	*mock.Call
}

// CreditBalance is a helper method to define mock.On call
func (_e *UserServiceMock_Expecter) CreditBalance(ctx interface{}, id interface{}, amount interface{}) *UserServiceMock_CreditBalance_Call {
	return &UserServiceMock_CreditBalance_Call{Call: _e.mock.On("CreditBalance", ctx, id, amount)}
}

func (_c *UserServiceMock_CreditBalance_Call) Run(run func(ctx context.Context, id int64, amount decimal.Decimal)) *UserServiceMock_CreditBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(decimal.Decimal))
	})
	return _c
}

func (_c *UserServiceMock_CreditBalance_Call) Return(_a0 *domain.User, _a1 error) *UserServiceMock_CreditBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *UserServiceMock_CreditBalance_Call) RunAndReturn(run func(context.Context, int64, decimal.Decimal) (*domain.User, error)) *UserServiceMock_CreditBalance_Call {
	_c.Call.Return(run)
	return _c
}

// NewUserServiceMock создает мок и проверяет ожидания по завершении теста
func NewUserServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserServiceMock {
	m := &UserServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
