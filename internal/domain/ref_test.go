package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefUnmarshalBareID(t *testing.T) {
	var ref Ref[Product]
	require.NoError(t, json.Unmarshal([]byte(`"p-123"`), &ref))

	assert.Equal(t, "p-123", ref.ID())
	_, ok := ref.Expanded()
	assert.False(t, ok)
}

func TestRefUnmarshalExpandedDocument(t *testing.T) {
	raw := `{"id":"p-123","name":"Gold Ring","price":2000}`

	var ref Ref[Product]
	require.NoError(t, json.Unmarshal([]byte(raw), &ref))

	assert.Equal(t, "p-123", ref.ID())
	product, ok := ref.Expanded()
	require.True(t, ok)
	assert.Equal(t, "Gold Ring", product.Name)
	assert.Equal(t, int64(2000), product.Price)
}

func TestRefMarshalEmitsBareID(t *testing.T) {
	ref := ExpandedRef("p-9", Product{ID: "p-9", Name: "Chain"})

	raw, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.Equal(t, `"p-9"`, string(raw))
}

func TestRefInsideOrderHandlesBothWireShapes(t *testing.T) {
	// The data service expands relationships or not depending on depth;
	// both shapes must decode into the same order.
	shallow := `{"user":"u-1","items":[{"product":"p-1","quantity":2,"price":2000}],"status":"pending"}`
	deep := `{"user":{"id":"u-1","email":"a@b.c"},"items":[{"product":{"id":"p-1","name":"Ring","price":2000},"quantity":2,"price":2000}],"status":"pending"}`

	var a, b Order
	require.NoError(t, json.Unmarshal([]byte(shallow), &a))
	require.NoError(t, json.Unmarshal([]byte(deep), &b))

	assert.Equal(t, "u-1", a.User.ID())
	assert.Equal(t, "u-1", b.User.ID())
	assert.Equal(t, "p-1", a.Items[0].Product.ID())
	assert.Equal(t, "p-1", b.Items[0].Product.ID())

	_, ok := a.Items[0].Product.Expanded()
	assert.False(t, ok)
	product, ok := b.Items[0].Product.Expanded()
	require.True(t, ok)
	assert.Equal(t, "Ring", product.Name)
}

func TestRefZero(t *testing.T) {
	var ref Ref[User]
	assert.True(t, ref.IsZero())
	assert.False(t, IDRef[User]("u-2").IsZero())
}
