package isbndb_test

import (
	"testing"

	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind   isbndb.Kind
		tag    string
		plural string
	}{
		{isbndb.Authors, "author", "authors"},
		{isbndb.Books, "book", "books"},
		{isbndb.Categories, "category", "categories"},
		{isbndb.Publishers, "publisher", "publishers"},
		{isbndb.Subjects, "subject", "subjects"},
	}
	require.Len(t, isbndb.AllKinds(), len(tests))
	for _, tt := range tests {
		require.True(t, tt.kind.Valid())
		require.Equal(t, tt.tag, tt.kind.Tag())
		require.Equal(t, tt.plural, tt.kind.Plural())

		k, err := isbndb.ParseTag(tt.tag)
		require.NoError(t, err)
		require.Equal(t, tt.kind, k)
		k, err = isbndb.ParseTag(tt.plural)
		require.NoError(t, err)
		require.Equal(t, tt.kind, k)
	}

	_, err := isbndb.ParseTag("films")
	require.Error(t, err)
	require.False(t, isbndb.Kind("Films").Valid())
}

func TestDefaultAccessKey(t *testing.T) {
	prev := isbndb.DefaultAccessKey()
	t.Cleanup(func() { isbndb.SetDefaultAccessKey(prev) })

	isbndb.SetDefaultAccessKey("DEFAULT")
	require.Equal(t, "DEFAULT", isbndb.DefaultAccessKey())
}
