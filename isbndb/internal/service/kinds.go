package service

import (
	"context"

	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
)

func (s *Service) FindAuthor(ctx context.Context, id string) (*isbndb.Resource, error) {
	return s.find(ctx, isbndb.Authors, id)
}

// FindBook accepts a book id or an ISBN.
func (s *Service) FindBook(ctx context.Context, id string) (*isbndb.Resource, error) {
	return s.find(ctx, isbndb.Books, id)
}

func (s *Service) FindCategory(ctx context.Context, id string) (*isbndb.Resource, error) {
	return s.find(ctx, isbndb.Categories, id)
}

func (s *Service) FindPublisher(ctx context.Context, id string) (*isbndb.Resource, error) {
	return s.find(ctx, isbndb.Publishers, id)
}

func (s *Service) FindSubject(ctx context.Context, id string) (*isbndb.Resource, error) {
	return s.find(ctx, isbndb.Subjects, id)
}

func (s *Service) SearchAuthors(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error) {
	return s.search(ctx, isbndb.Authors, args)
}

func (s *Service) SearchBooks(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error) {
	return s.search(ctx, isbndb.Books, args)
}

func (s *Service) SearchCategories(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error) {
	return s.search(ctx, isbndb.Categories, args)
}

func (s *Service) SearchPublishers(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error) {
	return s.search(ctx, isbndb.Publishers, args)
}

func (s *Service) SearchSubjects(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error) {
	return s.search(ctx, isbndb.Subjects, args)
}
