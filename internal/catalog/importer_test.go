package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchcolab/matchmaker/internal/qdrant"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"artist_name,artist_tags,label",
		"Herbie Hancock,\"jazz, funk, fusion\",Blue Note",
		"  ,no name here,x",
		"Empty Tags,,x",
		"Flying Lotus,\"electronic, jazz\",Warp",
		"herbie hancock,\"jazz, electro-funk\",Columbia",
	}, "\n")

	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	// Blank rows are skipped, the duplicate keeps the later tags.
	require.Len(t, entries, 2)
	assert.Equal(t, "herbie hancock", entries[0].Name)
	assert.Equal(t, "jazz, electro-funk", entries[0].Tags)
	assert.Equal(t, "Flying Lotus", entries[1].Name)
}

func TestParseCSVHeaderOrderFree(t *testing.T) {
	input := "artist_tags,artist_name\n\"ambient, drone\",Stars of the Lid\n"

	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Stars of the Lid", entries[0].Name)
	assert.Equal(t, "ambient, drone", entries[0].Tags)
}

func TestParseCSVMissingColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("name,tags\na,b\n"))
	require.Error(t, err)
}

type fakeEmbedder struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i]))}
	}
	return vectors, nil
}

type fakeIndexer struct {
	mu       sync.Mutex
	upserted []qdrant.ArtistPoint
	err      error
}

func (f *fakeIndexer) UpsertArtists(_ context.Context, artists []qdrant.ArtistPoint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, artists...)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

func manyEntries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Name: "artist-" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+i/676)),
			Tags: strings.Repeat("x", i%7+1),
		}
	}
	return entries
}

func TestImporterPreservesEntryOrder(t *testing.T) {
	embedder := &fakeEmbedder{}
	index := &fakeIndexer{}
	im := NewImporter(embedder, index, nopLogger{}, 3)

	entries := manyEntries(150)
	require.NoError(t, im.Run(context.Background(), entries))

	require.Len(t, index.upserted, 150)
	for i, p := range index.upserted {
		assert.Equal(t, entries[i].Name, p.Name)
		assert.Equal(t, entries[i].Tags, p.Tags)
		require.Len(t, p.Vector, 1)
		assert.Equal(t, float32(len(entries[i].Tags)), p.Vector[0])
	}
	// 150 entries at batch size 64 means 3 embedding calls.
	assert.Equal(t, 3, embedder.calls)
}

func TestImporterEmbeddingFailureSkipsUpsert(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("rate limited")}
	index := &fakeIndexer{}
	im := NewImporter(embedder, index, nopLogger{}, 2)

	err := im.Run(context.Background(), manyEntries(10))
	require.Error(t, err)
	assert.Empty(t, index.upserted)
}

func TestImporterRejectsEmptyInput(t *testing.T) {
	im := NewImporter(&fakeEmbedder{}, &fakeIndexer{}, nopLogger{}, 0)
	require.Error(t, im.Run(context.Background(), nil))
}
