package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	service := SessionService{}

	token := service.StartSession(42)
	assert.Len(t, token, sessionTokenLength)

	id, ok := service.ResolveSession(token)
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	service.EndSession(token)
	_, ok = service.ResolveSession(token)
	assert.False(t, ok)
}

func TestResolveUnknownToken(t *testing.T) {
	service := SessionService{}

	_, ok := service.ResolveSession("no-such-token")
	assert.False(t, ok)
	_, ok = service.ResolveSession("")
	assert.False(t, ok)
}

func TestEndSessionIdempotent(t *testing.T) {
	service := SessionService{}

	token := service.StartSession(1)
	service.EndSession(token)
	service.EndSession(token)
	service.EndSession("never-existed")

	_, ok := service.ResolveSession(token)
	assert.False(t, ok)
}

func TestMultipleSessionsPerAccount(t *testing.T) {
	service := SessionService{}

	first := service.StartSession(7)
	second := service.StartSession(7)
	assert.NotEqual(t, first, second)

	// starting a second session does not invalidate the first
	id, ok := service.ResolveSession(first)
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	service.EndSessionsFor(7)
	_, ok = service.ResolveSession(first)
	assert.False(t, ok)
	_, ok = service.ResolveSession(second)
	assert.False(t, ok)
}

func TestConcurrentSessions(t *testing.T) {
	service := SessionService{}

	tokens := make([]string, 50)
	var wg sync.WaitGroup
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = service.StartSession(i)
		}(i)
	}
	wg.Wait()

	for i, token := range tokens {
		id, ok := service.ResolveSession(token)
		assert.True(t, ok)
		assert.Equal(t, i, id)
	}

	// concurrent End of the same token must not interfere
	victim := tokens[0]
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.EndSession(victim)
		}()
	}
	wg.Wait()

	_, ok := service.ResolveSession(victim)
	assert.False(t, ok)
}
