package randsrc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
	assert.Equal(t, int64(42), a.InitialSeed())
}

func TestRead(t *testing.T) {
	a := New(7)
	b := New(7)
	p := make([]byte, 13)
	q := make([]byte, 13)

	n, err := a.Read(p)
	assert.NoError(t, err)
	assert.Equal(t, 13, n)
	_, _ = b.Read(q)
	assert.Equal(t, p, q)
}

func TestDeriveIsDeterministic(t *testing.T) {
	a := New(1).Derive()
	b := New(1).Derive()
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestConcurrentUse(t *testing.T) {
	src := New(3)
	r := src.Rand()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = r.Intn(100)
				_ = src.Uint64()
			}
		}()
	}
	wg.Wait()
}
