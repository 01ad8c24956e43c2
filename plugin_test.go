package catppuccin

import (
	"reflect"
	"testing"

	"github.com/opencode-ai/catppuccin/form"
)

func TestPlugRegistersFourSchemes(t *testing.T) {
	var list form.SchemeList
	New().Plug(&list)

	want := []string{
		"catppuccin-latte",
		"catppuccin-frappe",
		"catppuccin-macchiato",
		"catppuccin-mocha",
	}
	if !reflect.DeepEqual(list.Names(), want) {
		t.Errorf("expected schemes %v, got %v", want, list.Names())
	}
}

func TestPlugSharesOptionsAcrossFlavors(t *testing.T) {
	invoked := map[string]int{}
	p := New().NoBackground().Modify(func(reg form.Registry, c Palette) {
		invoked[string(c.Base)]++
	})

	var list form.SchemeList
	p.Plug(&list)

	for _, scheme := range list.All() {
		reg := form.NewMemoryRegistry()
		if err := scheme.Apply(reg); err != nil {
			t.Fatalf("%s: %v", scheme.Name(), err)
		}
		def, _ := reg.Get("Default")
		if def.Bg != "" {
			t.Errorf("%s: no-background option not shared", scheme.Name())
		}
	}

	// One invocation per flavor, each with that flavor's palette.
	if len(invoked) != 4 {
		t.Fatalf("expected the callback to see 4 palettes, saw %d", len(invoked))
	}
	for base, count := range invoked {
		if count != 1 {
			t.Errorf("palette with base %s seen %d times", base, count)
		}
	}
}

func TestPlugTwiceReplaces(t *testing.T) {
	var list form.SchemeList
	New().Plug(&list)
	New().NoBackground().Plug(&list)

	if list.Len() != 4 {
		t.Fatalf("expected re-plugging to replace schemes, got %d", list.Len())
	}

	scheme, _ := list.Get("catppuccin-mocha")
	reg := form.NewMemoryRegistry()
	if err := scheme.Apply(reg); err != nil {
		t.Fatal(err)
	}
	def, _ := reg.Get("Default")
	if def.Bg != "" {
		t.Error("expected the replacement scheme's options to apply")
	}
}

func TestBuilderDoesNotMutateReceiver(t *testing.T) {
	base := New()
	_ = base.NoBackground()

	reg := form.NewMemoryRegistry()
	if err := base.Scheme(FlavorMocha).Apply(reg); err != nil {
		t.Fatal(err)
	}
	def, _ := reg.Get("Default")
	if def.Bg == "" {
		t.Error("NoBackground must return a copy, not mutate the receiver")
	}
}
