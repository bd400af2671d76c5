package handler

import (
	"context"

	"github.com/Astemirdum/isbndb-service/isbndb/internal/service"
	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ISBNdbService interface {
	FindAuthor(ctx context.Context, id string) (*isbndb.Resource, error)
	FindBook(ctx context.Context, id string) (*isbndb.Resource, error)
	FindCategory(ctx context.Context, id string) (*isbndb.Resource, error)
	FindPublisher(ctx context.Context, id string) (*isbndb.Resource, error)
	FindSubject(ctx context.Context, id string) (*isbndb.Resource, error)

	SearchAuthors(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error)
	SearchBooks(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error)
	SearchCategories(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error)
	SearchPublishers(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error)
	SearchSubjects(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error)
}

var _ ISBNdbService = (*service.Service)(nil)
