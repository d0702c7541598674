package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/hooktrace/component"
)

func newInstance(t *testing.T) *component.Instance {
	t.Helper()
	app := component.NewApp()
	return app.NewInstance(&component.Descriptor{Name: "Widget"}, nil)
}

func TestInjectPair_PhaseSequence(t *testing.T) {
	t.Parallel()
	inst := newInstance(t)

	var got []component.Phase
	component.InjectPair(inst, "beforeMount", "mounted", func(hook string, phase component.Phase) {
		got = append(got, phase)
	})

	inst.EmitHook("beforeMount")
	inst.EmitHook("mounted")

	require.Equal(t, []component.Phase{component.PhaseBefore, component.PhaseAfter}, got)

	// Any further firing on either hook of the pair is stale.
	inst.EmitHook("beforeMount")
	inst.EmitHook("mounted")
	assert.Equal(t, []component.Phase{
		component.PhaseBefore,
		component.PhaseAfter,
		component.PhaseStale,
		component.PhaseStale,
	}, got)
}

func TestInjectPair_SharedCounterAcrossBothHooks(t *testing.T) {
	t.Parallel()
	inst := newInstance(t)

	var got []string
	component.InjectPair(inst, "beforeUpdate", "updated", func(hook string, phase component.Phase) {
		got = append(got, hook+"/"+phase.String())
	})

	// The end hook firing first still consumes the shared counter: whichever
	// hook fires first is the "before" half.
	inst.EmitHook("updated")
	inst.EmitHook("beforeUpdate")

	assert.Equal(t, []string{"updated/before", "beforeUpdate/after"}, got)
}

func TestInjectPair_FrontInsertion(t *testing.T) {
	t.Parallel()
	inst := newInstance(t)

	var order []string
	inst.On("mounted", func() { order = append(order, "host") })
	component.InjectPair(inst, "beforeMount", "mounted", func(hook string, phase component.Phase) {
		order = append(order, "injected")
	})

	inst.EmitHook("mounted")
	assert.Equal(t, []string{"injected", "host"}, order)
}

func TestInjectPair_CreatesMissingHookList(t *testing.T) {
	t.Parallel()
	inst := newInstance(t)

	fired := 0
	component.InjectPair(inst, "activated", "deactivated", func(hook string, phase component.Phase) {
		fired++
	})

	inst.EmitHook("activated")
	assert.Equal(t, 1, fired)
}

func TestInjectPair_NoOpAfterUnmount(t *testing.T) {
	t.Parallel()
	inst := newInstance(t)

	fired := 0
	component.InjectPair(inst, "beforeUnmount", "unmounted", func(hook string, phase component.Phase) {
		fired++
	})

	inst.EmitHook("beforeUnmount")
	inst.MarkUnmounted()

	// The callback stays registered but stale unmount-phase firings do nothing.
	inst.EmitHook("unmounted")
	inst.EmitHook("unmounted")
	assert.Equal(t, 1, fired)
}

func TestInjectPair_NilArguments(t *testing.T) {
	t.Parallel()
	inst := newInstance(t)

	assert.NotPanics(t, func() {
		component.InjectPair(nil, "beforeMount", "mounted", func(string, component.Phase) {})
		component.InjectPair(inst, "beforeMount", "mounted", nil)
		inst.EmitHook("beforeMount")
	})
}
