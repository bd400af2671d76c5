package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Astemirdum/isbndb-service/isbndb/internal/service"
	service_mocks "github.com/Astemirdum/isbndb-service/isbndb/internal/service/mocks"
	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type findFunc func(s *service.Service, ctx context.Context, id string) (*isbndb.Resource, error)

type searchFunc func(s *service.Service, ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error)

var kindTable = []struct {
	tag    string
	kind   string
	find   findFunc
	search searchFunc
}{
	{"author", "Authors", (*service.Service).FindAuthor, (*service.Service).SearchAuthors},
	{"book", "Books", (*service.Service).FindBook, (*service.Service).SearchBooks},
	{"category", "Categories", (*service.Service).FindCategory, (*service.Service).SearchCategories},
	{"publisher", "Publishers", (*service.Service).FindPublisher, (*service.Service).SearchPublishers},
	{"subject", "Subjects", (*service.Service).FindSubject, (*service.Service).SearchSubjects},
}

func newService(t *testing.T, cfg *service.AgentConfig) (*service.Service, *service_mocks.MockLibrary, *service_mocks.MockAgent) {
	t.Helper()
	c := gomock.NewController(t)
	lib := service_mocks.NewMockLibrary(c)
	agent := service_mocks.NewMockAgent(c)
	log := zap.NewExample().Named("test")
	return service.NewService(lib, cfg, log), lib, agent
}

func TestService_Find(t *testing.T) {
	t.Parallel()
	for _, tt := range kindTable {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
			ctx := context.Background()
			want := &isbndb.Resource{Kind: isbndb.Kind(tt.kind), ID: "42"}

			lib.EXPECT().NewAgent("K1").Return(agent, nil).Times(1)
			agent.EXPECT().Find(ctx, isbndb.Kind(tt.kind), "42").Return(want, nil).Times(1)

			got, err := tt.find(svc, ctx, "42")
			require.NoError(t, err)
			require.Same(t, want, got)
		})
	}
}

func TestService_FindNoMatch(t *testing.T) {
	t.Parallel()
	svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
	ctx := context.Background()

	lib.EXPECT().NewAgent("K1").Return(agent, nil)
	agent.EXPECT().Find(ctx, isbndb.Publishers, "nobody").Return(nil, nil)

	got, err := svc.FindPublisher(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestService_Search(t *testing.T) {
	t.Parallel()
	for _, tt := range kindTable {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
			ctx := context.Background()
			args := isbndb.Args{"q": "history"}
			want := isbndb.NewIterator(10, func(context.Context, int) (isbndb.Page, error) {
				return isbndb.Page{}, nil
			})

			lib.EXPECT().NewAgent("K1").Return(agent, nil).Times(1)
			agent.EXPECT().Search(ctx, isbndb.Kind(tt.kind), args).Return(want, nil).Times(1)

			got, err := tt.search(svc, ctx, args)
			require.NoError(t, err)
			require.Same(t, want, got)
		})
	}
}

func TestService_FindBookByISBN(t *testing.T) {
	t.Parallel()
	svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
	ctx := context.Background()
	want := &isbndb.Resource{Kind: isbndb.Books, ID: "0000000000"}

	lib.EXPECT().NewAgent("K1").Return(agent, nil)
	agent.EXPECT().Find(ctx, isbndb.Kind("Books"), "0000000000").Return(want, nil)

	got, err := svc.FindBook(ctx, "0000000000")
	require.NoError(t, err)
	require.Same(t, want, got)
}

func TestService_GetAgent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		accessKey  string
		defaultKey string
		wantKey    string
	}{
		{
			name:       "configured key wins over default",
			accessKey:  "K1",
			defaultKey: "DEFAULT",
			wantKey:    "K1",
		},
		{
			name:       "default key when none configured",
			accessKey:  "",
			defaultKey: "DEFAULT",
			wantKey:    "DEFAULT",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, lib, agent := newService(t, service.NewAgentConfig(tt.accessKey))

			if tt.accessKey == "" {
				lib.EXPECT().DefaultAccessKey().Return(tt.defaultKey).Times(1)
			}
			lib.EXPECT().NewAgent(tt.wantKey).Return(agent, nil).Times(1)

			first, err := svc.GetAgent()
			require.NoError(t, err)
			second, err := svc.GetAgent()
			require.NoError(t, err)
			require.Same(t, agent, first)
			require.Same(t, first, second)
		})
	}
}

func TestService_GetAgentConcurrent(t *testing.T) {
	t.Parallel()
	svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
	lib.EXPECT().NewAgent("K1").Return(agent, nil).Times(1)

	const workers = 16
	var wg sync.WaitGroup
	got := make([]service.Agent, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := svc.GetAgent()
			if err == nil {
				got[i] = a
			}
		}(i)
	}
	wg.Wait()
	for _, a := range got {
		require.Same(t, agent, a)
	}
}

func TestService_AllocateAgentKeepsExisting(t *testing.T) {
	t.Parallel()
	cfg := service.NewAgentConfig("K1")
	svc, lib, agent := newService(t, cfg)
	lib.EXPECT().NewAgent("K1").Return(agent, nil).Times(1)

	first, err := svc.AllocateAgent(cfg)
	require.NoError(t, err)
	second, err := svc.AllocateAgent(cfg)
	require.NoError(t, err)
	require.Same(t, first, second)

	got, err := svc.GetAgent()
	require.NoError(t, err)
	require.Same(t, agent, got)
}

func TestService_AllocateAgentOtherConfig(t *testing.T) {
	t.Parallel()
	svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
	other := service.NewAgentConfig("K2")
	lib.EXPECT().NewAgent("K2").Return(agent, nil).Times(1)

	got, err := svc.AllocateAgent(other)
	require.NoError(t, err)
	require.Same(t, agent, got)
}

func TestService_ErrorsPropagateUnchanged(t *testing.T) {
	t.Parallel()
	errAgent := errors.New("service unavailable")

	t.Run("allocate", func(t *testing.T) {
		t.Parallel()
		svc, lib, agent := newService(t, service.NewAgentConfig(""))
		ctx := context.Background()

		lib.EXPECT().DefaultAccessKey().Return("").Times(2)
		gomock.InOrder(
			lib.EXPECT().NewAgent("").Return(nil, isbndb.ErrNoAccessKey),
			lib.EXPECT().NewAgent("").Return(agent, nil),
		)
		agent.EXPECT().Find(ctx, isbndb.Books, "1").Return(nil, nil)

		_, err := svc.FindBook(ctx, "1")
		require.Equal(t, isbndb.ErrNoAccessKey, err)

		// a failed allocation leaves the configuration empty
		_, err = svc.FindBook(ctx, "1")
		require.NoError(t, err)
	})

	t.Run("find", func(t *testing.T) {
		t.Parallel()
		svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
		ctx := context.Background()

		lib.EXPECT().NewAgent("K1").Return(agent, nil)
		agent.EXPECT().Find(ctx, isbndb.Authors, "a").Return(nil, errAgent)

		res, err := svc.FindAuthor(ctx, "a")
		require.Nil(t, res)
		require.Equal(t, errAgent, err)
	})

	t.Run("search", func(t *testing.T) {
		t.Parallel()
		svc, lib, agent := newService(t, service.NewAgentConfig("K1"))
		ctx := context.Background()
		apiErr := &isbndb.APIError{StatusCode: http.StatusBadRequest, Message: "bad args"}

		lib.EXPECT().NewAgent("K1").Return(agent, nil)
		agent.EXPECT().Search(ctx, isbndb.Subjects, gomock.Any()).Return(nil, apiErr)

		it, err := svc.SearchSubjects(ctx, isbndb.Args{"bogus": "1"})
		require.Nil(t, it)
		require.Same(t, apiErr, err)
	})
}

func TestNewLibrary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "DEFAULT" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"book":{"title":"Go"}}`))
	}))
	defer srv.Close()

	prev := isbndb.DefaultAccessKey()
	t.Cleanup(func() { isbndb.SetDefaultAccessKey(prev) })

	lib := service.NewLibrary(isbndb.WithBaseURL(srv.URL))

	isbndb.SetDefaultAccessKey("")
	agent, err := lib.NewAgent(lib.DefaultAccessKey())
	require.ErrorIs(t, err, isbndb.ErrNoAccessKey)
	require.Nil(t, agent)

	isbndb.SetDefaultAccessKey("DEFAULT")
	svc := service.NewService(lib, service.NewAgentConfig(""), zap.NewNop())
	res, err := svc.FindBook(context.Background(), "0000000000")
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"Go"}`, string(res.Data))
}
