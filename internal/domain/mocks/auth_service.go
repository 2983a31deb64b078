package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// AuthServiceMock мок domain.AuthService
type AuthServiceMock struct {
	mock.Mock
}

type AuthServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *AuthServiceMock) EXPECT() *AuthServiceMock_Expecter {
	return &AuthServiceMock_Expecter{mock: &_m.Mock}
}

// Register provides a mock function with given fields: ctx, req
func (_m *AuthServiceMock) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegistrationTicket, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.RegisterRequest) (*domain.RegistrationTicket, error)); ok {
		return rf(ctx, req)
	}

	var r0 *domain.RegistrationTicket
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RegistrationTicket)
	}

	return r0, ret.Error(1)
}

type AuthServiceMock_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
func (_e *AuthServiceMock_Expecter) Register(ctx interface{}, req interface{}) *AuthServiceMock_Register_Call {
	return &AuthServiceMock_Register_Call{Call: _e.mock.On("Register", ctx, req)}
}

func (_c *AuthServiceMock_Register_Call) Run(run func(ctx context.Context, req domain.RegisterRequest)) *AuthServiceMock_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.RegisterRequest))
	})
	return _c
}

func (_c *AuthServiceMock_Register_Call) Return(_a0 *domain.RegistrationTicket, _a1 error) *AuthServiceMock_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *AuthServiceMock_Register_Call) RunAndReturn(run func(context.Context, domain.RegisterRequest) (*domain.RegistrationTicket, error)) *AuthServiceMock_Register_Call {
	_c.Call.Return(run)
	return _c
}

// CompleteRegistration provides a mock function with given fields: ctx, phone, token
func (_m *AuthServiceMock) CompleteRegistration(ctx context.Context, phone string, token string) (string, error) {
	ret := _m.Called(ctx, phone, token)

	if len(ret) == 0 {
		panic("no return value specified for CompleteRegistration")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (string, error)); ok {
		return rf(ctx, phone, token)
	}


	return ret.String(0), ret.Error(1)
}

type AuthServiceMock_CompleteRegistration_Call struct {
	*mock.Call
}

// CompleteRegistration is a helper method to define mock.On call
func (_e *AuthServiceMock_Expecter) CompleteRegistration(ctx interface{}, phone interface{}, token interface{}) *AuthServiceMock_CompleteRegistration_Call {
	return &AuthServiceMock_CompleteRegistration_Call{Call: _e.mock.On("CompleteRegistration", ctx, phone, token)}
}

func (_c *AuthServiceMock_CompleteRegistration_Call) Run(run func(ctx context.Context, phone string, token string)) *AuthServiceMock_CompleteRegistration_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *AuthServiceMock_CompleteRegistration_Call) Return(_a0 string, _a1 error) *AuthServiceMock_CompleteRegistration_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *AuthServiceMock_CompleteRegistration_Call) RunAndReturn(run func(context.Context, string, string) (string, error)) *AuthServiceMock_CompleteRegistration_Call {
	_c.Call.Return(run)
	return _c
}

// Login provides a mock function with given fields: ctx, email, password
func (_m *AuthServiceMock) Login(ctx context.Context, email string, password string) (string, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (string, error)); ok {
		return rf(ctx, email, password)
	}


	return ret.String(0), ret.Error(1)
}

type AuthServiceMock_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
func (_e *AuthServiceMock_Expecter) Login(ctx interface{}, email interface{}, password interface{}) *AuthServiceMock_Login_Call {
	return &AuthServiceMock_Login_Call{Call: _e.mock.On("Login", ctx, email, password)}
}

func (_c *AuthServiceMock_Login_Call) Run(run func(ctx context.Context, email string, password string)) *AuthServiceMock_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *AuthServiceMock_Login_Call) Return(_a0 string, _a1 error) *AuthServiceMock_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *AuthServiceMock_Login_Call) RunAndReturn(run func(context.Context, string, string) (string, error)) *AuthServiceMock_Login_Call {
	_c.Call.Return(run)
	return _c
}

// Profile provides a mock function with given fields: ctx, userID
func (_m *AuthServiceMock) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Profile")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.User, error)); ok {
		return rf(ctx, userID)
	}

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

type AuthServiceMock_Profile_Call struct {
	*mock.Call
}

// Profile is a helper method to define mock.On call
func (_e *AuthServiceMock_Expecter) Profile(ctx interface{}, userID interface{}) *AuthServiceMock_Profile_Call {
	return &AuthServiceMock_Profile_Call{Call: _e.mock.On("Profile", ctx, userID)}
}

func (_c *AuthServiceMock_Profile_Call) Run(run func(ctx context.Context, userID int64)) *AuthServiceMock_Profile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *AuthServiceMock_Profile_Call) Return(_a0 *domain.User, _a1 error) *AuthServiceMock_Profile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *AuthServiceMock_Profile_Call) RunAndReturn(run func(context.Context, int64) (*domain.User, error)) *AuthServiceMock_Profile_Call {
	_c.Call.Return(run)
	return _c
}

// NewAuthServiceMock создает мок и проверяет ожидания по завершении теста
func NewAuthServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthServiceMock {
	m := &AuthServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
