package limerick

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/inspoet/internal/domain"
)

var _ tagger = &taggerMock{}

type taggerMock struct {
	TagFunc func(ctx context.Context, text string) ([]domain.Token, error)

	calls struct {
		Tag []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockTag sync.RWMutex
}

func (mock *taggerMock) Tag(ctx context.Context, text string) ([]domain.Token, error) {
	if mock.TagFunc == nil {
		panic("taggerMock.TagFunc: method is nil but tagger.Tag was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{
		Ctx:  ctx,
		Text: text,
	}
	mock.lockTag.Lock()
	mock.calls.Tag = append(mock.calls.Tag, callInfo)
	mock.lockTag.Unlock()
	return mock.TagFunc(ctx, text)
}

func (mock *taggerMock) TagCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockTag.RLock()
	calls := mock.calls.Tag
	mock.lockTag.RUnlock()
	return calls
}

var _ similarityProvider = &similarityProviderMock{}

type similarityProviderMock struct {
	MostSimilarFunc func(ctx context.Context, word string, n int) ([]domain.Neighbor, error)

	calls struct {
		MostSimilar []struct {
			Ctx  context.Context
			Word string
			N    int
		}
	}
	lockMostSimilar sync.RWMutex
}

func (mock *similarityProviderMock) MostSimilar(ctx context.Context, word string, n int) ([]domain.Neighbor, error) {
	if mock.MostSimilarFunc == nil {
		panic("similarityProviderMock.MostSimilarFunc: method is nil but similarityProvider.MostSimilar was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
		N    int
	}{
		Ctx:  ctx,
		Word: word,
		N:    n,
	}
	mock.lockMostSimilar.Lock()
	mock.calls.MostSimilar = append(mock.calls.MostSimilar, callInfo)
	mock.lockMostSimilar.Unlock()
	return mock.MostSimilarFunc(ctx, word, n)
}

func (mock *similarityProviderMock) MostSimilarCalls() []struct {
	Ctx  context.Context
	Word string
	N    int
} {
	mock.lockMostSimilar.RLock()
	calls := mock.calls.MostSimilar
	mock.lockMostSimilar.RUnlock()
	return calls
}

var _ rhymeProvider = &rhymeProviderMock{}

type rhymeProviderMock struct {
	RhymesFunc func(ctx context.Context, word string) ([]string, error)

	calls struct {
		Rhymes []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockRhymes sync.RWMutex
}

func (mock *rhymeProviderMock) Rhymes(ctx context.Context, word string) ([]string, error) {
	if mock.RhymesFunc == nil {
		panic("rhymeProviderMock.RhymesFunc: method is nil but rhymeProvider.Rhymes was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{
		Ctx:  ctx,
		Word: word,
	}
	mock.lockRhymes.Lock()
	mock.calls.Rhymes = append(mock.calls.Rhymes, callInfo)
	mock.lockRhymes.Unlock()
	return mock.RhymesFunc(ctx, word)
}

func (mock *rhymeProviderMock) RhymesCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockRhymes.RLock()
	calls := mock.calls.Rhymes
	mock.lockRhymes.RUnlock()
	return calls
}

var _ inflector = &inflectorMock{}

type inflectorMock struct {
	PluralFunc   func(word string) string
	SingularFunc func(word string) string

	calls struct {
		Plural []struct {
			Word string
		}
		Singular []struct {
			Word string
		}
	}
	lockPlural   sync.RWMutex
	lockSingular sync.RWMutex
}

func (mock *inflectorMock) Plural(word string) string {
	if mock.PluralFunc == nil {
		panic("inflectorMock.PluralFunc: method is nil but inflector.Plural was just called")
	}
	callInfo := struct {
		Word string
	}{
		Word: word,
	}
	mock.lockPlural.Lock()
	mock.calls.Plural = append(mock.calls.Plural, callInfo)
	mock.lockPlural.Unlock()
	return mock.PluralFunc(word)
}

func (mock *inflectorMock) PluralCalls() []struct {
	Word string
} {
	mock.lockPlural.RLock()
	calls := mock.calls.Plural
	mock.lockPlural.RUnlock()
	return calls
}

func (mock *inflectorMock) Singular(word string) string {
	if mock.SingularFunc == nil {
		panic("inflectorMock.SingularFunc: method is nil but inflector.Singular was just called")
	}
	callInfo := struct {
		Word string
	}{
		Word: word,
	}
	mock.lockSingular.Lock()
	mock.calls.Singular = append(mock.calls.Singular, callInfo)
	mock.lockSingular.Unlock()
	return mock.SingularFunc(word)
}

func (mock *inflectorMock) SingularCalls() []struct {
	Word string
} {
	mock.lockSingular.RLock()
	calls := mock.calls.Singular
	mock.lockSingular.RUnlock()
	return calls
}

var _ grammarChecker = &grammarCheckerMock{}

type grammarCheckerMock struct {
	CheckFunc func(ctx context.Context, text string) ([]domain.GrammarIssue, error)

	calls struct {
		Check []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockCheck sync.RWMutex
}

func (mock *grammarCheckerMock) Check(ctx context.Context, text string) ([]domain.GrammarIssue, error) {
	if mock.CheckFunc == nil {
		panic("grammarCheckerMock.CheckFunc: method is nil but grammarChecker.Check was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{
		Ctx:  ctx,
		Text: text,
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, text)
}

func (mock *grammarCheckerMock) CheckCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockCheck.RLock()
	calls := mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}

var _ sentimentScorer = &sentimentScorerMock{}

type sentimentScorerMock struct {
	PolarityFunc func(ctx context.Context, text string) (float64, error)

	calls struct {
		Polarity []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockPolarity sync.RWMutex
}

func (mock *sentimentScorerMock) Polarity(ctx context.Context, text string) (float64, error) {
	if mock.PolarityFunc == nil {
		panic("sentimentScorerMock.PolarityFunc: method is nil but sentimentScorer.Polarity was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{
		Ctx:  ctx,
		Text: text,
	}
	mock.lockPolarity.Lock()
	mock.calls.Polarity = append(mock.calls.Polarity, callInfo)
	mock.lockPolarity.Unlock()
	return mock.PolarityFunc(ctx, text)
}

func (mock *sentimentScorerMock) PolarityCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockPolarity.RLock()
	calls := mock.calls.Polarity
	mock.lockPolarity.RUnlock()
	return calls
}

var _ corpusLoader = &corpusLoaderMock{}

type corpusLoaderMock struct {
	AuthorsFunc func(ctx context.Context) ([]string, error)
	LoadFunc    func(ctx context.Context, author string) (*domain.Corpus, error)

	calls struct {
		Authors []struct {
			Ctx context.Context
		}
		Load []struct {
			Ctx    context.Context
			Author string
		}
	}
	lockAuthors sync.RWMutex
	lockLoad    sync.RWMutex
}

func (mock *corpusLoaderMock) Authors(ctx context.Context) ([]string, error) {
	if mock.AuthorsFunc == nil {
		panic("corpusLoaderMock.AuthorsFunc: method is nil but corpusLoader.Authors was just called")
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

func (mock *corpusLoaderMock) AuthorsCalls() []struct {
	Ctx context.Context
} {
	mock.lockAuthors.RLock()
	calls := mock.calls.Authors
	mock.lockAuthors.RUnlock()
	return calls
}

func (mock *corpusLoaderMock) Load(ctx context.Context, author string) (*domain.Corpus, error) {
	if mock.LoadFunc == nil {
		panic("corpusLoaderMock.LoadFunc: method is nil but corpusLoader.Load was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Author string
	}{
		Ctx:    ctx,
		Author: author,
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, author)
}

func (mock *corpusLoaderMock) LoadCalls() []struct {
	Ctx    context.Context
	Author string
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

var _ historyStore = &historyStoreMock{}

type historyStoreMock struct {
	AppendFunc func(ctx context.Context, record domain.HistoryRecord) error
	ListFunc   func(ctx context.Context) ([]domain.HistoryRecord, error)

	calls struct {
		Append []struct {
			Ctx    context.Context
			Record domain.HistoryRecord
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockAppend sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *historyStoreMock) Append(ctx context.Context, record domain.HistoryRecord) error {
	if mock.AppendFunc == nil {
		panic("historyStoreMock.AppendFunc: method is nil but historyStore.Append was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.HistoryRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, record)
}

func (mock *historyStoreMock) AppendCalls() []struct {
	Ctx    context.Context
	Record domain.HistoryRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyStoreMock) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	if mock.ListFunc == nil {
		panic("historyStoreMock.ListFunc: method is nil but historyStore.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *historyStoreMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ generationObserver = &generationObserverMock{}

type generationObserverMock struct {
	ObserveGenerationFunc func(outcome string, candidates int, elapsed time.Duration)

	calls struct {
		ObserveGeneration []struct {
			Outcome    string
			Candidates int
			Elapsed    time.Duration
		}
	}
	lockObserveGeneration sync.RWMutex
}

func (mock *generationObserverMock) ObserveGeneration(outcome string, candidates int, elapsed time.Duration) {
	if mock.ObserveGenerationFunc == nil {
		panic("generationObserverMock.ObserveGenerationFunc: method is nil but generationObserver.ObserveGeneration was just called")
	}
	callInfo := struct {
		Outcome    string
		Candidates int
		Elapsed    time.Duration
	}{
		Outcome:    outcome,
		Candidates: candidates,
		Elapsed:    elapsed,
	}
	mock.lockObserveGeneration.Lock()
	mock.calls.ObserveGeneration = append(mock.calls.ObserveGeneration, callInfo)
	mock.lockObserveGeneration.Unlock()
	mock.ObserveGenerationFunc(outcome, candidates, elapsed)
}

func (mock *generationObserverMock) ObserveGenerationCalls() []struct {
	Outcome    string
	Candidates int
	Elapsed    time.Duration
} {
	mock.lockObserveGeneration.RLock()
	calls := mock.calls.ObserveGeneration
	mock.lockObserveGeneration.RUnlock()
	return calls
}
