package guard_test

import (
	"errors"
	"sync"
	"testing"

	"trading/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTicketNotConstructed = errors.New("ticket must be created via newTicket")

type ticket struct {
	symbol string
	guard  guard.ConstructorGuard
}

func newTicket(symbol string) ticket {
	return ticket{symbol: symbol, guard: guard.NewConstructorGuard()}
}

func (t ticket) Validate() error {
	return t.guard.Validate(errTicketNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	tests := []struct {
		name     string
		g        guard.ConstructorGuard
		given    error
		expected error
	}{
		{"constructed with custom error", guard.NewConstructorGuard(), errTicketNotConstructed, nil},
		{"constructed with nil error", guard.NewConstructorGuard(), nil, nil},
		{"zero value with custom error", guard.ConstructorGuard{}, errTicketNotConstructed, errTicketNotConstructed},
		{"zero value with nil error", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate(tt.given)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	require.NoError(t, newTicket("BTC/USDT").Validate())

	var zero ticket
	require.ErrorIs(t, zero.Validate(), errTicketNotConstructed)

	copied := newTicket("ETH/USDT")
	assert.NoError(t, copied.Validate(), "guard survives copies by value")
}

func TestConstructorGuard_DefaultErrorMessage(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(errTicketNotConstructed))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	for range b.N {
		_ = g.Validate(errTicketNotConstructed)
	}
}
