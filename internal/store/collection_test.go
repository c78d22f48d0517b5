package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID    uuid.UUID `json:"id"`
	Owner string    `json:"owner"`
	Rank  int       `json:"rank"`
}

func (d testDoc) DocumentID() uuid.UUID { return d.ID }

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCollection_InsertGet(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testDoc](testDB(t), "docs")

	doc := testDoc{ID: uuid.New(), Owner: "ada", Rank: 1}
	require.NoError(t, c.Insert(ctx, doc))

	got, err := c.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestCollection_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testDoc](testDB(t), "docs")

	doc := testDoc{ID: uuid.New()}
	require.NoError(t, c.Insert(ctx, doc))
	assert.ErrorIs(t, c.Insert(ctx, doc), ErrAlreadyExists)
}

func TestCollection_GetMissing(t *testing.T) {
	c := NewCollection[testDoc](testDB(t), "docs")
	_, err := c.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_PutReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testDoc](testDB(t), "docs")

	first := testDoc{ID: uuid.New(), Rank: 1}
	second := testDoc{ID: uuid.New(), Rank: 2}
	require.NoError(t, c.Put(ctx, first))
	require.NoError(t, c.Put(ctx, second))

	first.Rank = 10
	require.NoError(t, c.Put(ctx, first))

	docs, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 10, docs[0].Rank)
	assert.Equal(t, 2, docs[1].Rank)
}

func TestCollection_CollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	a := NewCollection[testDoc](db, "a")
	b := NewCollection[testDoc](db, "b")

	doc := testDoc{ID: uuid.New()}
	require.NoError(t, a.Insert(ctx, doc))
	require.NoError(t, b.Insert(ctx, doc), "same id in another collection")

	n, err := a.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, b.Delete(ctx, doc.ID))
	_, err = a.Get(ctx, doc.ID)
	assert.NoError(t, err)
}

func TestCollection_Find(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testDoc](testDB(t), "docs")

	for i, owner := range []string{"ada", "bob", "ada"} {
		require.NoError(t, c.Insert(ctx, testDoc{ID: uuid.New(), Owner: owner, Rank: i}))
	}

	docs, err := c.Find(ctx, "owner", "ada")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 0, docs[0].Rank)
	assert.Equal(t, 2, docs[1].Rank)

	docs, err = c.Find(ctx, "owner", "carol")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCollection_FindByUUID(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testDoc](testDB(t), "docs")

	doc := testDoc{ID: uuid.New()}
	require.NoError(t, c.Insert(ctx, doc))

	docs, err := c.Find(ctx, "id", doc.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)
}

func TestCollection_FindRejectsPathExpressions(t *testing.T) {
	c := NewCollection[testDoc](testDB(t), "docs")
	_, err := c.Find(context.Background(), "owner') OR 1=1 --", "x")
	assert.Error(t, err)
}

func TestCollection_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[testDoc](testDB(t), "docs")

	doc := testDoc{ID: uuid.New()}
	require.NoError(t, c.Insert(ctx, doc))
	require.NoError(t, c.Delete(ctx, doc.ID))
	assert.ErrorIs(t, c.Delete(ctx, doc.ID), ErrNotFound)

	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
