package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	cerrors "github.com/NVIDIA/calculator-registry/pkg/errors"
)

func TestRegistry_ConcurrentRegisterAndLookup(t *testing.T) {
	reg := newTestRegistry("ns")
	const workers = 16
	const perWorker = 50

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for i := range perWorker {
				name := fmt.Sprintf("ns.W%dC%d", w, i)
				tok, err := reg.Register(name, factoryFor(name))
				if err != nil {
					return err
				}
				got, err := reg.CreateByName(name, args{input: i})
				if err != nil {
					return err
				}
				if got.from != name {
					return fmt.Errorf("CreateByName(%s) built %s", name, got.from)
				}
				_ = reg.GetRegisteredNames()
				if i%2 == 1 {
					tok.Revoke()
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Every even registration survives with its alias.
	assert.Equal(t, workers*perWorker/2*2, reg.Len())
}

func TestRegistry_ConcurrentDuplicateOnlyOneWins(t *testing.T) {
	reg := newTestRegistry("ns")
	const contenders = 24

	var g errgroup.Group
	results := make([]error, contenders)
	for i := range contenders {
		g.Go(func() error {
			_, results[i] = reg.Register("ns.Contended", factoryFor(fmt.Sprint(i)))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeAlreadyRegistered))
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, []string{"Contended", "ns.Contended"}, reg.GetRegisteredNames())
}
