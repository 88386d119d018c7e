package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/3-lines-studio/pagesmith/internal/core"
)

func openTestDB(t *testing.T) *SQLiteSource {
	t.Helper()
	src, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestSQLiteSourceRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openTestDB(t)

	require.NoError(t, src.PutSite(ctx, []byte(`{"name":"First"}`)))
	require.NoError(t, src.PutSite(ctx, []byte(`{"name":"Example Taco Shop"}`)))

	site, err := src.Site(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Example Taco Shop"}`, string(site))

	require.NoError(t, src.PutDocument(ctx, []byte(`{"id":"loc-1","meta":{"entityType":"location","locale":"en"},"name":"One"}`)))
	require.NoError(t, src.PutDocument(ctx, []byte(`{"id":"loc-2","name":"Two"}`)))
	require.NoError(t, src.PutDocument(ctx, []byte(`{"id":"loc-1","meta":{"entityType":"location","locale":"en"},"name":"One again"}`)))

	docs, err := src.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "One again", gjson.GetBytes(docs[0], "name").String())
	assert.Equal(t, "location", gjson.GetBytes(docs[0], "meta.entityType").String())
	assert.False(t, gjson.GetBytes(docs[1], "meta").Exists())

	doc, err := src.Document(ctx, "loc-2")
	require.NoError(t, err)
	assert.Equal(t, "Two", gjson.GetBytes(doc, "name").String())

	_, err = src.Document(ctx, "nope")
	assert.ErrorIs(t, err, core.ErrDocumentNotFound)
}

func TestSQLiteSourceEmptySite(t *testing.T) {
	_, err := openTestDB(t).Site(context.Background())
	assert.ErrorContains(t, err, "site table is empty")
}

func TestSQLitePutDocumentRequiresID(t *testing.T) {
	err := openTestDB(t).PutDocument(context.Background(), []byte(`{"name":"x"}`))
	assert.ErrorContains(t, err, "missing id")
}

func TestWithColumns(t *testing.T) {
	doc, err := withColumns("7", "location", "fr", `{"name":"x"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","id":"7","meta":{"entityType":"location","locale":"fr"}}`, string(doc))

	doc, err = withColumns("7", "location", "fr", `{"id":7,"meta":{"entityType":"event"}}`)
	require.NoError(t, err)
	assert.Equal(t, int64(7), gjson.GetBytes(doc, "id").Int())
	assert.Equal(t, "event", gjson.GetBytes(doc, "meta.entityType").String())
	assert.Equal(t, "fr", gjson.GetBytes(doc, "meta.locale").String())

	_, err = withColumns("7", "", "", `{`)
	assert.Error(t, err)
}
