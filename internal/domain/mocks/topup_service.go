package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	decimal "github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// TopupServiceMock мок domain.TopupService
type TopupServiceMock struct {
	mock.Mock
}

type TopupServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *TopupServiceMock) EXPECT() *TopupServiceMock_Expecter {
	return &TopupServiceMock_Expecter{mock: &_m.Mock}
}

// RequestTopup provides a mock function with given fields: ctx, userID, amount, method
func (_m *TopupServiceMock) RequestTopup(ctx context.Context, userID int64, amount decimal.Decimal, method string) (*domain.BalanceTopup, error) {
	ret := _m.Called(ctx, userID, amount, method)

	if len(ret) == 0 {
		panic("no return value specified for RequestTopup")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, decimal.Decimal, string) (*domain.BalanceTopup, error)); ok {
		return rf(ctx, userID, amount, method)
	}

	var r0 *domain.BalanceTopup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BalanceTopup)
	}

	return r0, ret.Error(1)
}

type TopupServiceMock_RequestTopup_Call struct {
	*mock.Call
}

// RequestTopup is a helper method to define mock.On call
func (_e *TopupServiceMock_Expecter) RequestTopup(ctx interface{}, userID interface{}, amount interface{}, method interface{}) *TopupServiceMock_RequestTopup_Call {
	return &TopupServiceMock_RequestTopup_Call{Call: _e.mock.On("RequestTopup", ctx, userID, amount, method)}
}

func (_c *TopupServiceMock_RequestTopup_Call) Run(run func(ctx context.Context, userID int64, amount decimal.Decimal, method string)) *TopupServiceMock_RequestTopup_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(decimal.Decimal), args[3].(string))
	})
	return _c
}

func (_c *TopupServiceMock_RequestTopup_Call) Return(_a0 *domain.BalanceTopup, _a1 error) *TopupServiceMock_RequestTopup_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *TopupServiceMock_RequestTopup_Call) RunAndReturn(run func(context.Context, int64, decimal.Decimal, string) (*domain.BalanceTopup, error)) *TopupServiceMock_RequestTopup_Call {
	_c.Call.Return(run)
	return _c
}

// ListUserTopups provides a mock function with given fields: ctx, userID
func (_m *TopupServiceMock) ListUserTopups(ctx context.Context, userID int64) ([]*domain.BalanceTopup, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListUserTopups")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*domain.BalanceTopup, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []*domain.BalanceTopup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.BalanceTopup)
	}

	return r0, ret.Error(1)
}

type TopupServiceMock_ListUserTopups_Call struct {
	*mock.Call
}

// ListUserTopups is a helper method to define mock.On call
func (_e *TopupServiceMock_Expecter) ListUserTopups(ctx interface{}, userID interface{}) *TopupServiceMock_ListUserTopups_Call {
	return &TopupServiceMock_ListUserTopups_Call{Call: _e.mock.On("ListUserTopups", ctx, userID)}
}

func (_c *TopupServiceMock_ListUserTopups_Call) Run(run func(ctx context.Context, userID int64)) *TopupServiceMock_ListUserTopups_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *TopupServiceMock_ListUserTopups_Call) Return(_a0 []*domain.BalanceTopup, _a1 error) *TopupServiceMock_ListUserTopups_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *TopupServiceMock_ListUserTopups_Call) RunAndReturn(run func(context.Context, int64) ([]*domain.BalanceTopup, error)) *TopupServiceMock_ListUserTopups_Call {
	_c.Call.Return(run)
	return _c
}

// UploadTopupProof provides a mock function with given fields: ctx, userID, topupID, url
func (_m *TopupServiceMock) UploadTopupProof(ctx context.Context, userID int64, topupID int64, url string) (*domain.BalanceTopup, error) {
	ret := _m.Called(ctx, userID, topupID, url)

	if len(ret) == 0 {
		panic("no return value specified for UploadTopupProof")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, string) (*domain.BalanceTopup, error)); ok {
		return rf(ctx, userID, topupID, url)
	}

	var r0 *domain.BalanceTopup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BalanceTopup)
	}

	return r0, ret.Error(1)
}

type TopupServiceMock_UploadTopupProof_Call struct {
	*mock.Call
}

// UploadTopupProof is a helper method to define mock.On call
func (_e *TopupServiceMock_Expecter) UploadTopupProof(ctx interface{}, userID interface{}, topupID interface{}, url interface{}) *TopupServiceMock_UploadTopupProof_Call {
	return &TopupServiceMock_UploadTopupProof_Call{Call: _e.mock.On("UploadTopupProof", ctx, userID, topupID, url)}
}

func (_c *TopupServiceMock_UploadTopupProof_Call) Run(run func(ctx context.Context, userID int64, topupID int64, url string)) *TopupServiceMock_UploadTopupProof_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(int64), args[3].(string))
	})
	return _c
}

func (_c *TopupServiceMock_UploadTopupProof_Call) Return(_a0 *domain.BalanceTopup, _a1 error) *TopupServiceMock_UploadTopupProof_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *TopupServiceMock_UploadTopupProof_Call) RunAndReturn(run func(context.Context, int64, int64, string) (*domain.BalanceTopup, error)) *TopupServiceMock_UploadTopupProof_Call {
	_c.Call.Return(run)
	return _c
}

// ListTopups provides a mock function with given fields: ctx, status
func (_m *TopupServiceMock) ListTopups(ctx context.Context, status domain.TopupStatus) ([]*domain.BalanceTopup, error) {
	ret := _m.Called(ctx, status)

	if len(ret) == 0 {
		panic("no return value specified for ListTopups")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.TopupStatus) ([]*domain.BalanceTopup, error)); ok {
		return rf(ctx, status)
	}

	var r0 []*domain.BalanceTopup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.BalanceTopup)
	}

	return r0, ret.Error(1)
}

type TopupServiceMock_ListTopups_Call struct {
	*mock.Call
}

// ListTopups is a helper method to define mock.On call
func (_e *TopupServiceMock_Expecter) ListTopups(ctx interface{}, status interface{}) *TopupServiceMock_ListTopups_Call {
	return &TopupServiceMock_ListTopups_Call{Call: _e.mock.On("ListTopups", ctx, status)}
}

func (_c *TopupServiceMock_ListTopups_Call) Run(run func(ctx context.Context, status domain.TopupStatus)) *TopupServiceMock_ListTopups_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.TopupStatus))
	})
	return _c
}

func (_c *TopupServiceMock_ListTopups_Call) Return(_a0 []*domain.BalanceTopup, _a1 error) *TopupServiceMock_ListTopups_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *TopupServiceMock_ListTopups_Call) RunAndReturn(run func(context.Context, domain.TopupStatus) ([]*domain.BalanceTopup, error)) *TopupServiceMock_ListTopups_Call {
	_c.Call.Return(run)
	return _c
}

// ApproveTopup provides a mock function with given fields: ctx, topupID, comment
func (_m *TopupServiceMock) ApproveTopup(ctx context.Context, topupID int64, comment string) (*domain.BalanceTopup, error) {
	ret := _m.Called(ctx, topupID, comment)

	if len(ret) == 0 {
		panic("no return value specified for ApproveTopup")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*domain.BalanceTopup, error)); ok {
		return rf(ctx, topupID, comment)
	}

	var r0 *domain.BalanceTopup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BalanceTopup)
	}

	return r0, ret.Error(1)
}

type TopupServiceMock_ApproveTopup_Call struct {
	*mock.Call
}

// ApproveTopup is a helper method to define mock.On call
func (_e *TopupServiceMock_Expecter) ApproveTopup(ctx interface{}, topupID interface{}, comment interface{}) *TopupServiceMock_ApproveTopup_Call {
	return &TopupServiceMock_ApproveTopup_Call{Call: _e.mock.On("ApproveTopup", ctx, topupID, comment)}
}

func (_c *TopupServiceMock_ApproveTopup_Call) Run(run func(ctx context.Context, topupID int64, comment string)) *TopupServiceMock_ApproveTopup_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(string))
	})
	return _c
}

func (_c *TopupServiceMock_ApproveTopup_Call) Return(_a0 *domain.BalanceTopup, _a1 error) *TopupServiceMock_ApproveTopup_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *TopupServiceMock_ApproveTopup_Call) RunAndReturn(run func(context.Context, int64, string) (*domain.BalanceTopup, error)) *TopupServiceMock_ApproveTopup_Call {
	_c.Call.Return(run)
	return _c
}

// RejectTopup provides a mock function with given fields: ctx, topupID, comment
func (_m *TopupServiceMock) RejectTopup(ctx context.Context, topupID int64, comment string) (*domain.BalanceTopup, error) {
	ret := _m.Called(ctx, topupID, comment)

	if len(ret) == 0 {
		panic("no return value specified for RejectTopup")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*domain.BalanceTopup, error)); ok {
		return rf(ctx, topupID, comment)
	}

	var r0 *domain.BalanceTopup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BalanceTopup)
	}

	return r0, ret.Error(1)
}

type TopupServiceMock_RejectTopup_Call struct {
	*mock.Call
}

// RejectTopup is a helper method to define mock.On call
func (_e *TopupServiceMock_Expecter) RejectTopup(ctx interface{}, topupID interface{}, comment interface{}) *TopupServiceMock_RejectTopup_Call {
	return &TopupServiceMock_RejectTopup_Call{Call: _e.mock.On("RejectTopup", ctx, topupID, comment)}
}

func (_c *TopupServiceMock_RejectTopup_Call) Run(run func(ctx context.Context, topupID int64, comment string)) *TopupServiceMock_RejectTopup_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(string))
	})
	return _c
}

func (_c *TopupServiceMock_RejectTopup_Call) Return(_a0 *domain.BalanceTopup, _a1 error) *TopupServiceMock_RejectTopup_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *TopupServiceMock_RejectTopup_Call) RunAndReturn(run func(context.Context, int64, string) (*domain.BalanceTopup, error)) *TopupServiceMock_RejectTopup_Call {
	_c.Call.Return(run)
	return _c
}

// NewTopupServiceMock создает мок и проверяет ожидания по завершении теста
func NewTopupServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *TopupServiceMock {
	m := &TopupServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
