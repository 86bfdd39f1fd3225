package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/inspoet/internal/domain"
	"github.com/heartmarshall/inspoet/internal/service/limerick"
)

var _ limerickService = &limerickServiceMock{}

type limerickServiceMock struct {
	GenerateFunc func(ctx context.Context, input limerick.GenerateInput) (*limerick.GenerateResult, error)
	HistoryFunc  func(ctx context.Context) ([]domain.HistoryRecord, error)
	AuthorsFunc  func(ctx context.Context) ([]string, error)
	ThemesFunc   func(ctx context.Context, author string) ([]limerick.PoemThemes, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input limerick.GenerateInput
		}
		History []struct {
			Ctx context.Context
		}
		Authors []struct {
			Ctx context.Context
		}
		Themes []struct {
			Ctx    context.Context
			Author string
		}
	}
	lockGenerate sync.RWMutex
	lockHistory  sync.RWMutex
	lockAuthors  sync.RWMutex
	lockThemes   sync.RWMutex
}

func (mock *limerickServiceMock) Generate(ctx context.Context, input limerick.GenerateInput) (*limerick.GenerateResult, error) {
	if mock.GenerateFunc == nil {
		panic("limerickServiceMock.GenerateFunc: method is nil but limerickService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input limerick.GenerateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *limerickServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input limerick.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *limerickServiceMock) History(ctx context.Context) ([]domain.HistoryRecord, error) {
	if mock.HistoryFunc == nil {
		panic("limerickServiceMock.HistoryFunc: method is nil but limerickService.History was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx)
}

func (mock *limerickServiceMock) HistoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *limerickServiceMock) Authors(ctx context.Context) ([]string, error) {
	if mock.AuthorsFunc == nil {
		panic("limerickServiceMock.AuthorsFunc: method is nil but limerickService.Authors was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAuthors.Lock()
	mock.calls.Authors = append(mock.calls.Authors, callInfo)
	mock.lockAuthors.Unlock()
	return mock.AuthorsFunc(ctx)
}

func (mock *limerickServiceMock) AuthorsCalls() []struct {
	Ctx context.Context
} {
	mock.lockAuthors.RLock()
	calls := mock.calls.Authors
	mock.lockAuthors.RUnlock()
	return calls
}

func (mock *limerickServiceMock) Themes(ctx context.Context, author string) ([]limerick.PoemThemes, error) {
	if mock.ThemesFunc == nil {
		panic("limerickServiceMock.ThemesFunc: method is nil but limerickService.Themes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Author string
	}{
		Ctx:    ctx,
		Author: author,
	}
	mock.lockThemes.Lock()
	mock.calls.Themes = append(mock.calls.Themes, callInfo)
	mock.lockThemes.Unlock()
	return mock.ThemesFunc(ctx, author)
}

func (mock *limerickServiceMock) ThemesCalls() []struct {
	Ctx    context.Context
	Author string
} {
	mock.lockThemes.RLock()
	calls := mock.calls.Themes
	mock.lockThemes.RUnlock()
	return calls
}
