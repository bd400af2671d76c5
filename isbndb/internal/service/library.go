package service

import (
	"context"

	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
)

//go:generate go run github.com/golang/mock/mockgen -source=library.go -destination=mocks/mock.go

// Agent is the client handle all lookups go through.
type Agent interface {
	Find(ctx context.Context, kind isbndb.Kind, id string) (*isbndb.Resource, error)
	Search(ctx context.Context, kind isbndb.Kind, args isbndb.Args) (*isbndb.Iterator, error)
}

// Library constructs agents and holds the process-wide default key.
type Library interface {
	NewAgent(accessKey string) (Agent, error)
	DefaultAccessKey() string
}

var (
	_ Agent   = (*isbndb.Client)(nil)
	_ Library = (*clientLibrary)(nil)
)

type clientLibrary struct {
	opts []isbndb.Option
}

// NewLibrary binds Library to the isbndb client package. opts are applied
// to every agent it creates.
func NewLibrary(opts ...isbndb.Option) Library {
	return &clientLibrary{opts: opts}
}

func (l *clientLibrary) NewAgent(accessKey string) (Agent, error) {
	c, err := isbndb.NewClient(accessKey, l.opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (l *clientLibrary) DefaultAccessKey() string {
	return isbndb.DefaultAccessKey()
}
