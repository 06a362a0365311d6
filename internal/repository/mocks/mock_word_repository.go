package mocks

import (
	"context"

	"linguaweb/internal/model"
	"linguaweb/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) CreateWord(ctx context.Context, w *model.Word) (*model.Word, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockWordRepository) FindWordByText(ctx context.Context, word string) (*model.Word, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, string) *model.Word); ok {
		return f(ctx, word), args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockWordRepository) FindWordByID(ctx context.Context, id int64) (*model.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockWordRepository) ListWordIDs(ctx context.Context, f repository.WordFilter) ([]int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockWordRepository) GetOrCreateAudioFile(ctx context.Context, storageKey string) (*model.AudioFile, error) {
	args := m.Called(ctx, storageKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AudioFile), args.Error(1)
}

func (m *MockWordRepository) FindAudioFileByID(ctx context.Context, id int64) (*model.AudioFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AudioFile), args.Error(1)
}
