package mocks

import (
	"context"

	"linguaweb/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockWordService struct {
	mock.Mock
}

func (m *MockWordService) Provision(ctx context.Context, word, language string) (*model.Word, error) {
	args := m.Called(ctx, word, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockWordService) ProvisionPresets(ctx context.Context, maxPerLanguage int) ([]model.Word, error) {
	args := m.Called(ctx, maxPerLanguage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Word), args.Error(1)
}

func (m *MockWordService) ListIDs(ctx context.Context, language string, age int) ([]int64, error) {
	args := m.Called(ctx, language, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockWordService) Get(ctx context.Context, id int64) (*model.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockWordService) CheckGuess(ctx context.Context, id int64, guess string) (bool, error) {
	args := m.Called(ctx, id, guess)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordService) DownloadAudio(ctx context.Context, id int64) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
