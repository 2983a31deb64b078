package mocks

import (
	"context"

	domain "github.com/avc/plantstore/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// ReviewServiceMock мок domain.ReviewService
type ReviewServiceMock struct {
	mock.Mock
}

type ReviewServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *ReviewServiceMock) EXPECT() *ReviewServiceMock_Expecter {
	return &ReviewServiceMock_Expecter{mock: &_m.Mock}
}

// CreateReview provides a mock function with given fields: ctx, userID, productID, rating, text
func (_m *ReviewServiceMock) CreateReview(ctx context.Context, userID int64, productID int64, rating int, text string) (*domain.Review, error) {
	ret := _m.Called(ctx, userID, productID, rating, text)

	if len(ret) == 0 {
		panic("no return value specified for CreateReview")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, int, string) (*domain.Review, error)); ok {
		return rf(ctx, userID, productID, rating, text)
	}

	var r0 *domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Review)
	}

	return r0, ret.Error(1)
}

type ReviewServiceMock_CreateReview_Call struct {
	*mock.Call
}

// CreateReview is a helper method to define mock.On call
func (_e *ReviewServiceMock_Expecter) CreateReview(ctx interface{}, userID interface{}, productID interface{}, rating interface{}, text interface{}) *ReviewServiceMock_CreateReview_Call {
	return &ReviewServiceMock_CreateReview_Call{Call: _e.mock.On("CreateReview", ctx, userID, productID, rating, text)}
}

func (_c *ReviewServiceMock_CreateReview_Call) Run(run func(ctx context.Context, userID int64, productID int64, rating int, text string)) *ReviewServiceMock_CreateReview_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(int64), args[3].(int), args[4].(string))
	})
	return _c
}

func (_c *ReviewServiceMock_CreateReview_Call) Return(_a0 *domain.Review, _a1 error) *ReviewServiceMock_CreateReview_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *ReviewServiceMock_CreateReview_Call) RunAndReturn(run func(context.Context, int64, int64, int, string) (*domain.Review, error)) *ReviewServiceMock_CreateReview_Call {
	_c.Call.Return(run)
	return _c
}

// ListProductReviews provides a mock function with given fields: ctx, productID
func (_m *ReviewServiceMock) ListProductReviews(ctx context.Context, productID int64) ([]*domain.Review, error) {
	ret := _m.Called(ctx, productID)

	if len(ret) == 0 {
		panic("no return value specified for ListProductReviews")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*domain.Review, error)); ok {
		return rf(ctx, productID)
	}

	var r0 []*domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Review)
	}

	return r0, ret.Error(1)
}

type ReviewServiceMock_ListProductReviews_Call struct {
	*mock.Call
}

// ListProductReviews is a helper method to define mock.On call
func (_e *ReviewServiceMock_Expecter) ListProductReviews(ctx interface{}, productID interface{}) *ReviewServiceMock_ListProductReviews_Call {
	return &ReviewServiceMock_ListProductReviews_Call{Call: _e.mock.On("ListProductReviews", ctx, productID)}
}

func (_c *ReviewServiceMock_ListProductReviews_Call) Run(run func(ctx context.Context, productID int64)) *ReviewServiceMock_ListProductReviews_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *ReviewServiceMock_ListProductReviews_Call) Return(_a0 []*domain.Review, _a1 error) *ReviewServiceMock_ListProductReviews_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *ReviewServiceMock_ListProductReviews_Call) RunAndReturn(run func(context.Context, int64) ([]*domain.Review, error)) *ReviewServiceMock_ListProductReviews_Call {
	_c.Call.Return(run)
	return _c
}

// ListReviews provides a mock function with given fields: ctx, page, limit
func (_m *ReviewServiceMock) ListReviews(ctx context.Context, page int, limit int) ([]*domain.Review, int, error) {
	ret := _m.Called(ctx, page, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListReviews")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]*domain.Review, int, error)); ok {
		return rf(ctx, page, limit)
	}

	var r0 []*domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Review)
	}

	return r0, ret.Int(1), ret.Error(2)
}

type ReviewServiceMock_ListReviews_Call struct {
	*mock.Call
}

// ListReviews is a helper method to define mock.On call
func (_e *ReviewServiceMock_Expecter) ListReviews(ctx interface{}, page interface{}, limit interface{}) *ReviewServiceMock_ListReviews_Call {
	return &ReviewServiceMock_ListReviews_Call{Call: _e.mock.On("ListReviews", ctx, page, limit)}
}

func (_c *ReviewServiceMock_ListReviews_Call) Run(run func(ctx context.Context, page int, limit int)) *ReviewServiceMock_ListReviews_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(int))
	})
	return _c
}

func (_c *ReviewServiceMock_ListReviews_Call) Return(_a0 []*domain.Review, _a1 int, _a2 error) *ReviewServiceMock_ListReviews_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *ReviewServiceMock_ListReviews_Call) RunAndReturn(run func(context.Context, int, int) ([]*domain.Review, int, error)) *ReviewServiceMock_ListReviews_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteReview provides a mock function with given fields: ctx, id
func (_m *ReviewServiceMock) DeleteReview(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteReview")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

type ReviewServiceMock_DeleteReview_Call struct {
	*mock.Call
}

// DeleteReview is a helper method to define mock.On call
func (_e *ReviewServiceMock_Expecter) DeleteReview(ctx interface{}, id interface{}) *ReviewServiceMock_DeleteReview_Call {
	return &ReviewServiceMock_DeleteReview_Call{Call: _e.mock.On("DeleteReview", ctx, id)}
}

func (_c *ReviewServiceMock_DeleteReview_Call) Run(run func(ctx context.Context, id int64)) *ReviewServiceMock_DeleteReview_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *ReviewServiceMock_DeleteReview_Call) Return(_a0 error) *ReviewServiceMock_DeleteReview_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *ReviewServiceMock_DeleteReview_Call) RunAndReturn(run func(context.Context, int64) error) *ReviewServiceMock_DeleteReview_Call {
	_c.Call.Return(run)
	return _c
}

// NewReviewServiceMock создает мок и проверяет ожидания по завершении теста
func NewReviewServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewServiceMock {
	m := &ReviewServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
