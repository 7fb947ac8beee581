package corpus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/corpus"
)

type fakeSetReader struct {
	members map[string][]string
	err     error
	keys    []string
}

func (f *fakeSetReader) SMembers(_ context.Context, key string) *redis.StringSliceCmd {
	f.keys = append(f.keys, key)
	return redis.NewStringSliceResult(f.members[key], f.err)
}

func TestRedisSource(t *testing.T) {
	t.Parallel()

	t.Run("reads set members", func(t *testing.T) {
		t.Parallel()

		client := &fakeSetReader{members: map[string][]string{"names:known": {"anna", "bob"}}}
		names, err := corpus.RedisSource(client, "names:known").Names(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"anna", "bob"}, names)
		assert.Equal(t, []string{"names:known"}, client.keys)
	})

	t.Run("missing key is empty", func(t *testing.T) {
		t.Parallel()

		names, err := corpus.RedisSource(&fakeSetReader{}, "names:missing").Names(context.Background())
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("command error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
		_, err := corpus.RedisSource(&fakeSetReader{err: boom}, "names:known").Names(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), `"names:known"`)
	})
}
