package store_test

import (
	"path/filepath"
	"testing"

	"blububb/internal/models"
	"blububb/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestGormStore_SaveAndLoadRoundTrip(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)

	doc, err := st.Load("products")
	assert.NoError(t, err)
	assert.Empty(t, doc)

	doc = store.Document{}
	doc.SetRecords("products", []models.Record{
		{"id": "abc12345", "name": "Croissant", "price": 3.5},
	})
	assert.NoError(t, st.Save("products", doc))

	loaded, err := st.Load("products")
	assert.NoError(t, err)
	records := loaded.Records("products")
	assert.Len(t, records, 1)
	assert.Equal(t, "Croissant", records[0].String("name"))
	assert.Equal(t, 3.5, records[0].Float("price"))
}

func TestGormStore_SaveUpserts(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)

	doc := store.Document{}
	doc.SetRecords("members", []models.Record{{"id": "1"}})
	assert.NoError(t, st.Save("members", doc))

	doc.SetRecords("members", []models.Record{{"id": "1"}, {"id": "2"}})
	assert.NoError(t, st.Save("members", doc))

	loaded, err := st.Load("members")
	assert.NoError(t, err)
	assert.Len(t, loaded.Records("members"), 2)
}
