package imgstack

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/AlexxNica/imgstack/blend"
)

func modePlacements(modes ...string) []*placement {
	ps := make([]*placement, len(modes))
	for i, mode := range modes {
		ps[i] = &placement{blendMode: mode}
	}
	return ps
}

func TestSplitRuns(t *testing.T) {
	native := map[string]bool{BlendSourceOver: true, "lighter": true}

	tests := []struct {
		name  string
		modes []string
		// want is the run pattern: positive = native run length,
		// negative = manual run length.
		want []int
	}{
		{"empty", nil, nil},
		{"all native", []string{"source-over", "lighter", "source-over"}, []int{3}},
		{"all manual", []string{"multiply", "screen"}, []int{-2}},
		{"alternating", []string{"multiply", "lighter", "screen", "source-over"}, []int{-1, 1, -1, 1}},
		{"grouped", []string{"multiply", "screen", "lighter", "lighter", "overlay"}, []int{-2, 2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := splitRuns(native, modePlacements(tt.modes...))
			if len(runs) != len(tt.want) {
				t.Fatalf("got %d runs, want %d", len(runs), len(tt.want))
			}
			total := 0
			for i, run := range runs {
				wantNative := tt.want[i] > 0
				wantLen := tt.want[i]
				if wantLen < 0 {
					wantLen = -wantLen
				}
				if run.native != wantNative || len(run.placements) != wantLen {
					t.Errorf("run %d = native=%v len=%d, want native=%v len=%d",
						i, run.native, len(run.placements), wantNative, wantLen)
				}
				total += wantLen
			}
			if total != len(tt.modes) {
				t.Errorf("runs cover %d placements, want %d", total, len(tt.modes))
			}
		})
	}
}

func TestSingleLayerSkipsBlendLookup(t *testing.T) {
	// A single placement is drawn directly; its blend mode is never looked
	// up, so even an unregistered name renders.
	c := NewCanvas(10, 10)
	l := NewLayer(FillContent(RGB(0, 1, 0)))
	l.BlendMode = "definitely-not-registered"
	c.AddLayer(l)

	r := NewRenderer(WithBlendRegistry(blend.NewRegistry()))
	buf, err := r.Render(context.Background(), c)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := buf.GetPixel(5, 5); got != RGB(0, 1, 0) {
		t.Errorf("pixel = %+v, want green", got)
	}
}

func TestUnregisteredBlendModeIsFatal(t *testing.T) {
	c := NewCanvas(10, 10)
	c.AddLayer(NewLayer(FillContent(RGB(1, 0, 0))))
	top := NewLayer(FillContent(RGB(0, 0, 1)))
	top.BlendMode = "no-such-mode"
	c.AddLayer(top)

	buf, err := NewRenderer().Render(context.Background(), c)
	if !errors.Is(err, ErrNoSuchBlendMode) {
		t.Fatalf("err = %v, want ErrNoSuchBlendMode", err)
	}
	if buf != nil {
		t.Error("failed render must not produce output")
	}
}

func TestManualMultiplyExample(t *testing.T) {
	// Bottom red fill, top blue fill at opacity 0.5 with the non-native
	// multiply mode: the output must equal the manual multiply function
	// applied over the full canvas.
	const size = 100

	c := NewCanvas(size, size)
	c.AddLayer(NewLayer(FillContent(RGB(1, 0, 0))))
	top := NewLayer(FillContent(RGB(0, 0, 1)))
	top.Opacity = 0.5
	top.BlendMode = "multiply"
	c.AddLayer(top)

	got, err := NewRenderer().Render(context.Background(), c)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	base := NewBuffer(size, size)
	base.Fill(RGB(1, 0, 0))
	src := NewBuffer(size, size)
	src.Fill(RGB(0, 0, 1))

	fn, ok := blend.Default().Get("multiply")
	if !ok {
		t.Fatal("multiply missing from default registry")
	}
	want := base.Clone()
	err = fn(base.Data(), want.Data(), size, size, blend.Source{
		Data:    src.Data(),
		Width:   size,
		Height:  size,
		Opacity: 0.5,
	})
	if err != nil {
		t.Fatalf("blend function failed: %v", err)
	}

	if !bytes.Equal(got.Data(), want.Data()) {
		t.Errorf("render differs from direct manual blend: got pixel %+v, want %+v",
			got.GetPixel(0, 0), want.GetPixel(0, 0))
	}
}

func TestManualRunSkipsOffCanvasPlacement(t *testing.T) {
	c := NewCanvas(20, 20)
	c.AddLayer(NewLayer(FillContent(RGB(1, 0, 0))))
	top := NewLayer(FillContent(RGB(0, 0, 1)))
	top.BlendMode = "multiply"
	top.TX = 1000 // zero-area bounding rect: skipped, not an error
	c.AddLayer(top)

	buf, err := NewRenderer().Render(context.Background(), c)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := buf.GetPixel(10, 10); got != RGB(1, 0, 0) {
		t.Errorf("pixel = %+v, want untouched red base", got)
	}
}

// opRecordingBackend wraps the software backend, reporting extra native
// modes and recording every composite op passed to Draw.
type opRecordingBackend struct {
	*SoftwareBackend
	native map[string]bool
	ops    []string
}

func (b *opRecordingBackend) Draw(dst, src *Buffer, m Matrix, opacity float64, op string) error {
	b.ops = append(b.ops, op)
	return b.SoftwareBackend.Draw(dst, src, m, opacity, "")
}

func (b *opRecordingBackend) NativeModes() map[string]bool {
	return b.native
}

func TestNativeRunUsesCompositeOps(t *testing.T) {
	backend := &opRecordingBackend{
		SoftwareBackend: NewSoftwareBackend(),
		native:          map[string]bool{BlendSourceOver: true, "multiply": true},
	}

	c := NewCanvas(10, 10)
	c.AddLayer(NewLayer(FillContent(RGB(1, 0, 0))))
	mid := NewLayer(FillContent(RGB(0, 1, 0)))
	mid.BlendMode = "multiply"
	c.AddLayer(mid)
	c.AddLayer(NewLayer(FillContent(RGB(0, 0, 1))))

	// Empty blend registry: a manual-path lookup would fail loudly.
	r := NewRenderer(WithBackend(backend), WithBlendRegistry(blend.NewRegistry()))
	if _, err := r.Render(context.Background(), c); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := []string{"", "multiply", ""}
	if len(backend.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", backend.ops, want)
	}
	for i := range want {
		if backend.ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", backend.ops, want)
		}
	}
}
