package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateToken_KeepsMillisecondPrecision(t *testing.T) {
	id := primitive.NewObjectID()
	ts := time.Now().Truncate(time.Second).Add(500 * time.Millisecond)

	token, err := GenerateToken(id, ts)
	require.NoError(t, err)

	page, err := token.Decode()
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, id.Hex(), page.CursorID)
	assert.Equal(t, ts.UnixMilli(), page.CursorTimestamp)
	assert.True(t, time.UnixMilli(page.CursorTimestamp).Equal(ts))
}

func TestPageToken_Decode(t *testing.T) {
	t.Run("EmptyTokenIsFirstPage", func(t *testing.T) {
		page, err := PageToken("").Decode()
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		_, err := PageToken("not-base64!!").Decode()
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("ExpiredRejected", func(t *testing.T) {
		token, err := GenerateToken(primitive.NewObjectID(), time.Now().Add(-25*time.Hour))
		require.NoError(t, err)

		_, err = token.Decode()
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
