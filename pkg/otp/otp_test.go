package otp

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGOTPGenerator_Range(t *testing.T) {
	g := NewGOTPGenerator()

	for i := 0; i < 500; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGOTPGenerator_Concurrent(t *testing.T) {
	g := NewGOTPGenerator()

	const workers = 16
	const perWorker = 50

	var (
		mu    sync.Mutex
		codes = make(map[string]int)
		wg    sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				code, err := g.Generate()
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				codes[code]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// 800 draws from 900000 values: a shared, unsynchronised source would collapse this
	assert.Greater(t, len(codes), workers*perWorker-20)
}

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"123456", true},
		{"012345", true},
		{"12345", false},
		{"1234567", false},
		{"12a456", false},
		{"", false},
		{"１２３４５６", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWellFormed(tt.code))
		})
	}
}

func TestKeep(t *testing.T) {
	tests := []struct {
		name string
		code int
		coin int64
		want bool
	}{
		{name: "light code ignores coin", code: 483648, coin: 0, want: true},
		{name: "top of range", code: 999999, coin: 0, want: true},
		{name: "heavy code dropped on zero", code: 100000, coin: 0, want: false},
		{name: "heavy code kept otherwise", code: 100000, coin: 1, want: true},
		{name: "last heavy code dropped on zero", code: 483647, coin: 0, want: false},
		{name: "last heavy code kept on max coin", code: 483647, coin: hotpHeavyPreimages - 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keep(tt.code, tt.coin))
		})
	}
}

func TestKeep_EqualizesPreimages(t *testing.T) {
	var heavyKept int64
	for coin := int64(0); coin < hotpHeavyPreimages; coin++ {
		if keep(100000, coin) {
			heavyKept++
		}
	}

	// a heavy code keeps as many preimages as a light code has
	assert.Equal(t, int64(hotpHeavyPreimages-1), heavyKept)
	assert.Equal(t, int64(1<<31%1000000), int64(hotpHeavyBelow))
	assert.Equal(t, int64(1<<31/1000000+1), int64(hotpHeavyPreimages))
}
