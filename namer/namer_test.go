package namer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aalemi-dev/hooktrace/component"
	"github.com/aalemi-dev/hooktrace/namer"
)

func TestResolve_ExplicitNameWins(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	inst := app.NewInstance(&component.Descriptor{Name: "Widget", Tag: "legacy", File: "x.comp"}, nil)

	assert.Equal(t, "Widget", namer.NewResolver().Resolve(inst))
}

func TestResolve_LegacyTag(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	inst := app.NewInstance(&component.Descriptor{Tag: "legacy-tag", File: "x.comp"}, nil)

	assert.Equal(t, "legacy-tag", namer.NewResolver().Resolve(inst))
}

func TestResolve_FileHint(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	root := app.NewInstance(&component.Descriptor{}, nil)
	inst := app.NewInstance(&component.Descriptor{File: "widgets/nav-bar.comp"}, root)

	assert.Equal(t, "NavBar", namer.NewResolver().Resolve(inst))
}

func TestResolve_Root(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	root := app.NewInstance(&component.Descriptor{}, nil)

	assert.Equal(t, "Root", namer.NewResolver().Resolve(root))
}

func TestResolve_ParentRegistryScan(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	childType := &component.Descriptor{}
	parentType := &component.Descriptor{
		Name:       "Parent",
		Components: map[string]*component.Descriptor{"SideBar": childType},
	}

	root := app.NewInstance(&component.Descriptor{}, nil)
	parent := app.NewInstance(parentType, root)
	child := app.NewInstance(childType, parent)

	assert.Equal(t, "SideBar", namer.NewResolver().Resolve(child))
}

func TestResolve_GlobalRegistryScan(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	childType := &component.Descriptor{}
	app.Component("GlobalWidget", childType)

	root := app.NewInstance(&component.Descriptor{}, nil)
	child := app.NewInstance(childType, root)

	assert.Equal(t, "GlobalWidget", namer.NewResolver().Resolve(child))
}

func TestResolve_AnonymousFallback(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	root := app.NewInstance(&component.Descriptor{}, nil)
	child := app.NewInstance(&component.Descriptor{}, root)

	r := namer.NewResolver()
	assert.Equal(t, namer.Anonymous, r.Resolve(child))
	assert.Equal(t, namer.Anonymous, r.Resolve(nil))
}

// Resolution must be idempotent and run the registry scan at most once per
// instance: after the first hit the cached name answers, even if the registry
// entry disappears afterwards.
func TestResolve_ScanMemoized(t *testing.T) {
	t.Parallel()
	app := component.NewApp()
	childType := &component.Descriptor{}
	app.Component("CachedWidget", childType)

	root := app.NewInstance(&component.Descriptor{}, nil)
	child := app.NewInstance(childType, root)

	r := namer.NewResolver()
	first := r.Resolve(child)
	assert.Equal(t, "CachedWidget", first)

	// Remove the registry entry; the memoized name must still answer.
	delete(app.Components(), "CachedWidget")
	assert.Equal(t, first, r.Resolve(child))
}

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"widgets/nav-bar.comp", "NavBar"},
		{"user_profile.tmpl", "UserProfile"},
		{"deep/path/to/data-table.x", "DataTable"},
		{`win\style\drop-down.c`, "DropDown"},
		{"plain", "Plain"},
		{"already/Capital.ext", "Capital"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, namer.Classify(tc.in))
		})
	}
}
