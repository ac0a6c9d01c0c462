package artifact

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/eograph"
)

func newMiniRedisStore(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	s := NewRedisStoreFromClient(client, WithPrefix("test:"))
	t.Cleanup(func() { s.Close() })
	return mr, s
}

func TestRedisStore_Contract(t *testing.T) {
	_, s := newMiniRedisStore(t)
	runStoreContract(t, s)
}

func TestRedisStoreCorruptValue(t *testing.T) {
	mr, s := newMiniRedisStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, eograph.BuildGraph())
	require.NoError(t, err)
	require.True(t, mr.Exists("test:graph:"+id))

	require.NoError(t, mr.Set("test:graph:"+id, `{"format_version":2,"node_count":1,"nodes":[{"state":"1"}]}`))
	_, err = s.Load(ctx, id)
	assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, s := newMiniRedisStore(t)
	mr.Close()

	_, err := s.Load(context.Background(), "anything")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

// wrapErrHook wraps every command error, as tracing hooks do.
type wrapErrHook struct{}

func (wrapErrHook) DialHook(next backend.DialHook) backend.DialHook { return next }

func (wrapErrHook) ProcessHook(next backend.ProcessHook) backend.ProcessHook {
	return func(ctx context.Context, cmd backend.Cmder) error {
		if err := next(ctx, cmd); err != nil {
			cmd.SetErr(fmt.Errorf("traced: %w", err))
			return cmd.Err()
		}
		return nil
	}
}

func (wrapErrHook) ProcessPipelineHook(next backend.ProcessPipelineHook) backend.ProcessPipelineHook {
	return next
}

func TestRedisStoreWrappedMissIsNotFound(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	client.AddHook(wrapErrHook{})
	s := NewRedisStoreFromClient(client)
	defer s.Close()

	_, err = s.Load(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
