package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"blububb/internal/models"
	"blububb/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_LoadMissingCollection(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	doc, err := st.Load("products")
	assert.NoError(t, err)
	assert.Empty(t, doc)
	assert.Empty(t, doc.Records("products"))
}

func TestFileStore_SaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	assert.NoError(t, err)

	doc := store.Document{}
	doc.SetRecords("products", []models.Record{
		{"id": "abc12345", "name": "Croissant", "price": 3.5, "featured": true},
		{"id": "def67890", "name": "Kue Lapis", "price": 2.0},
	})

	assert.NoError(t, st.Save("products", doc))

	loaded, err := st.Load("products")
	assert.NoError(t, err)
	records := loaded.Records("products")
	assert.Len(t, records, 2)
	assert.Equal(t, "abc12345", records[0].ID())
	assert.Equal(t, "Croissant", records[0].String("name"))
	assert.Equal(t, 3.5, records[0].Float("price"))
	assert.True(t, records[0].Bool("featured"))
	assert.Equal(t, "def67890", records[1].ID())

	// The backing file is indented and keeps non-ASCII literal.
	raw, err := os.ReadFile(filepath.Join(dir, "products.json"))
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "    ")
}

func TestFileStore_SaveOverwritesWholeFile(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	doc := store.Document{}
	doc.SetRecords("members", []models.Record{{"id": "1"}, {"id": "2"}})
	assert.NoError(t, st.Save("members", doc))

	doc.SetRecords("members", []models.Record{{"id": "3"}})
	assert.NoError(t, st.Save("members", doc))

	loaded, err := st.Load("members")
	assert.NoError(t, err)
	records := loaded.Records("members")
	assert.Len(t, records, 1)
	assert.Equal(t, "3", records[0].ID())
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("{not json"), 0o644))

	_, err = st.Load("products")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestFileStore_LoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), nil, 0o644))

	doc, err := st.Load("transactions")
	assert.NoError(t, err)
	assert.Empty(t, doc)
}

func TestMemoryStore_CopiesDocuments(t *testing.T) {
	st := store.NewMemoryStore()

	doc := store.Document{}
	doc.SetRecords("products", []models.Record{{"id": "1", "name": "Brownie"}})
	assert.NoError(t, st.Save("products", doc))

	loaded, err := st.Load("products")
	assert.NoError(t, err)
	loaded.Records("products")[0]["name"] = "changed"

	// Mutating a loaded copy must not leak back into the store.
	reloaded, err := st.Load("products")
	assert.NoError(t, err)
	assert.Equal(t, "Brownie", reloaded.Records("products")[0].String("name"))
}
