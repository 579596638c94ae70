package provider

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeClient struct {
	name   string
	answer string
	err    error
	closed atomic.Int32
}

func (c *fakeClient) Provider() string { return c.name }

func (c *fakeClient) Complete(_ context.Context, text string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.answer + text, nil
}

func (c *fakeClient) Close() error {
	c.closed.Add(1)
	return nil
}

func fakeProvider(name string, construct ConstructFunc) Provider {
	return Provider{Name: name, Construct: construct}
}

func okConstruct(name string) ConstructFunc {
	return func(_ context.Context, credential string) (Client, error) {
		return &fakeClient{name: name, answer: credential + ":"}, nil
	}
}

func newTestRegistry(providers ...Provider) *Registry {
	return NewRegistry(providers, logger.Nop())
}

// ── Names / Has ───────────────────────────────────────────────────────────────

func TestRegistry_NamesKeepOrder(t *testing.T) {
	r := newTestRegistry(
		fakeProvider("b", okConstruct("b")),
		fakeProvider("a", okConstruct("a")),
		fakeProvider("b", okConstruct("b")),
	)

	assert.Equal(t, []string{"b", "a"}, r.Names())

	names := r.Names()
	names[0] = "mutated"
	assert.Equal(t, "b", r.Names()[0])
}

func TestRegistry_HasIsCaseSensitive(t *testing.T) {
	r := newTestRegistry(fakeProvider("OpenAI", okConstruct("OpenAI")))

	assert.True(t, r.Has("OpenAI"))
	assert.False(t, r.Has("openai"))
	assert.False(t, r.Has(" OpenAI"))
}

// ── Construct ─────────────────────────────────────────────────────────────────

func TestRegistry_Construct_Success(t *testing.T) {
	r := newTestRegistry(fakeProvider("OpenAI", okConstruct("OpenAI")))

	client, err := r.Construct(context.Background(), "OpenAI", "sk-1")
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", client.Provider())
}

func TestRegistry_Construct_UnknownProvider(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Construct(context.Background(), "nope", "sk")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestRegistry_Construct_WrapsFailure(t *testing.T) {
	cause := errors.New("401 unauthorized")
	calls := 0
	r := newTestRegistry(fakeProvider("Groq", func(context.Context, string) (Client, error) {
		calls++
		return nil, cause
	}))

	_, err := r.Construct(context.Background(), "Groq", "bad")

	var constructionErr *ConstructionError
	require.ErrorAs(t, err, &constructionErr)
	assert.Equal(t, "Groq", constructionErr.Provider)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, calls, "construction must not be retried")
}

func TestRegistry_Construct_KeepsConstructionError(t *testing.T) {
	original := &ConstructionError{Provider: "Groq", Err: errors.New("boom")}
	r := newTestRegistry(fakeProvider("Groq", func(context.Context, string) (Client, error) {
		return nil, original
	}))

	_, err := r.Construct(context.Background(), "Groq", "bad")
	assert.Same(t, original, err)
}

func TestRegistry_Construct_NilClient(t *testing.T) {
	r := newTestRegistry(fakeProvider("Groq", func(context.Context, string) (Client, error) {
		return nil, nil
	}))

	_, err := r.Construct(context.Background(), "Groq", "k")

	var constructionErr *ConstructionError
	assert.ErrorAs(t, err, &constructionErr)
}

// ── ConstructFor ──────────────────────────────────────────────────────────────

func TestRegistry_ConstructFor_CollapsesConcurrentCalls(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	r := newTestRegistry(fakeProvider("OpenAI", func(_ context.Context, credential string) (Client, error) {
		calls.Add(1)
		<-release
		return &fakeClient{name: "OpenAI"}, nil
	}))

	const callers = 5
	results := make([]Client, callers)
	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for i := range callers {
		go func() {
			defer done.Done()
			started.Done()
			client, _, err := r.ConstructFor(context.Background(), "u1", "OpenAI", "sk")
			assert.NoError(t, err)
			results[i] = client
		}()
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, c := range results {
		assert.Same(t, results[0], c)
	}
}

func TestRegistry_ConstructFor_DistinctKeys(t *testing.T) {
	var calls atomic.Int32
	r := newTestRegistry(fakeProvider("OpenAI", func(context.Context, string) (Client, error) {
		calls.Add(1)
		return &fakeClient{name: "OpenAI"}, nil
	}))

	c1, shared1, err := r.ConstructFor(context.Background(), "u1", "OpenAI", "sk")
	require.NoError(t, err)
	c2, shared2, err := r.ConstructFor(context.Background(), "u2", "OpenAI", "sk")
	require.NoError(t, err)

	assert.NotSame(t, c1, c2)
	assert.False(t, shared1)
	assert.False(t, shared2)
	assert.Equal(t, int32(2), calls.Load())
}

// ── Send ──────────────────────────────────────────────────────────────────────

func TestRegistry_Send(t *testing.T) {
	r := newTestRegistry()
	client := &fakeClient{name: "OpenAI", answer: "echo:"}

	answer, err := r.Send(context.Background(), client, "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo:hi", answer)
}

func TestRegistry_Send_WrapsTransportError(t *testing.T) {
	cause := errors.New("connection reset")
	r := newTestRegistry()
	client := &fakeClient{name: "OpenAI", err: cause}

	_, err := r.Send(context.Background(), client, "hi")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "OpenAI", transportErr.Provider)
	assert.ErrorIs(t, err, cause)
}

func TestRegistry_Send_NilClient(t *testing.T) {
	_, err := newTestRegistry().Send(context.Background(), nil, "hi")

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

// ── Bind / Evict / Discard ────────────────────────────────────────────────────

func TestRegistry_BindAndEvict(t *testing.T) {
	r := newTestRegistry()
	client := &fakeClient{name: "OpenAI"}

	r.Bind("u1", client)
	got, ok := r.bound("u1")
	require.True(t, ok)
	assert.Same(t, client, got)

	r.Evict("u1")
	_, ok = r.bound("u1")
	assert.False(t, ok)
	assert.Equal(t, int32(1), client.closed.Load())

	r.Evict("u1")
	assert.Equal(t, int32(1), client.closed.Load(), "evicting twice closes once")
}

func TestRegistry_Bind_ClosesReplacedClient(t *testing.T) {
	r := newTestRegistry()
	first := &fakeClient{name: "OpenAI"}
	second := &fakeClient{name: "Groq"}

	r.Bind("u1", first)
	r.Bind("u1", first)
	assert.Equal(t, int32(0), first.closed.Load())

	r.Bind("u1", second)
	assert.Equal(t, int32(1), first.closed.Load())
	assert.Equal(t, int32(0), second.closed.Load())
}

func TestRegistry_Discard(t *testing.T) {
	r := newTestRegistry()
	bound := &fakeClient{name: "OpenAI"}
	stale := &fakeClient{name: "OpenAI"}
	r.Bind("u1", bound)

	r.Discard("u1", bound)
	assert.Equal(t, int32(0), bound.closed.Load(), "bound client stays open")

	r.Discard("u1", stale)
	assert.Equal(t, int32(1), stale.closed.Load())

	r.Discard("u1", nil)
}
