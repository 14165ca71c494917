package blend

import "testing"

func TestDefaultRegistryModes(t *testing.T) {
	r := Default()
	for _, name := range []string{
		"multiply", "screen", "overlay", "darken", "lighten",
		"color-dodge", "color-burn", "hard-light", "soft-light",
		"difference", "exclusion",
	} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("default registry missing %q", name)
		}
	}
	if _, ok := r.Get("source-over"); ok {
		t.Error("source-over must not be a manual blend")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("custom"); ok {
		t.Error("empty registry reported a function")
	}

	called := false
	r.Register("custom", func(base, out []byte, w, h int, src Source) error {
		called = true
		return nil
	})

	fn, ok := r.Get("custom")
	if !ok {
		t.Fatal("registered function not found")
	}
	if err := fn(nil, nil, 0, 0, Source{}); err != nil {
		t.Fatalf("blend failed: %v", err)
	}
	if !called {
		t.Error("registered function was not invoked")
	}
	if len(r.Names()) != 1 {
		t.Errorf("Names = %v, want one entry", r.Names())
	}
}

func TestChannelFormulas(t *testing.T) {
	tests := []struct {
		name string
		fn   func(s, d byte) byte
		s, d byte
		want byte
	}{
		{"multiply zero", multiplyChan, 0, 255, 0},
		{"multiply identity", multiplyChan, 255, 123, 123},
		{"multiply half", multiplyChan, 128, 128, 64},
		{"screen zero", screenChan, 0, 123, 123},
		{"screen white", screenChan, 255, 10, 255},
		{"darken", minByte, 40, 200, 40},
		{"lighten", maxByte, 40, 200, 200},
		{"difference", differenceChan, 200, 60, 140},
		{"difference swapped", differenceChan, 60, 200, 140},
		{"dodge white", colorDodgeChan, 255, 17, 255},
		{"dodge zero backdrop", colorDodgeChan, 100, 0, 0},
		{"burn black", colorBurnChan, 0, 200, 0},
		{"burn white backdrop", colorBurnChan, 100, 255, 255},
		{"exclusion black", exclusionChan, 0, 99, 99},
		{"hard-light dark source multiplies", hardLightChan, 0, 200, 0},
		{"hard-light bright source screens", hardLightChan, 255, 17, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.s, tt.d)
			if diff := int(got) - int(tt.want); diff > 1 || diff < -1 {
				t.Errorf("fn(%d, %d) = %d, want %d", tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestSoftLightExtremes(t *testing.T) {
	// Mid-gray source leaves the backdrop unchanged.
	for _, d := range []byte{0, 64, 128, 200, 255} {
		got := softLightChan(128, d)
		if diff := int(got) - int(d); diff > 2 || diff < -2 {
			t.Errorf("softLight(128, %d) = %d, want about %d", d, got, d)
		}
	}
}

func TestSeparableBlendsRegion(t *testing.T) {
	// 4x4 red base; blend a 2x2 opaque white multiply source at (1,1).
	const w, h = 4, 4
	base := make([]byte, w*h*4)
	for i := 0; i < len(base); i += 4 {
		base[i] = 255
		base[i+3] = 255
	}
	out := make([]byte, len(base))
	copy(out, base)

	src := Source{
		Data:    make([]byte, 2*2*4),
		Width:   2,
		Height:  2,
		Opacity: 1,
		DX:      1,
		DY:      1,
	}
	for i := 0; i < len(src.Data); i += 4 {
		src.Data[i+0] = 255
		src.Data[i+1] = 255
		src.Data[i+2] = 255
		src.Data[i+3] = 255
	}

	fn := Separable(multiplyChan)
	if err := fn(base, out, w, h, src); err != nil {
		t.Fatalf("blend failed: %v", err)
	}

	// White multiplied over red keeps red.
	idx := (1*w + 1) * 4
	if out[idx] != 255 || out[idx+1] != 0 || out[idx+2] != 0 || out[idx+3] != 255 {
		t.Errorf("blended pixel = %v, want red", out[idx:idx+4])
	}

	// Pixels outside the source rectangle stay as pre-filled base.
	if out[0] != 255 || out[3] != 255 {
		t.Errorf("untouched pixel = %v, want base red", out[0:4])
	}
}

func TestSeparableOpacityAndTransparency(t *testing.T) {
	const w, h = 1, 1
	base := []byte{0, 0, 255, 255} // blue backdrop
	out := make([]byte, 4)
	copy(out, base)

	src := Source{
		Data:    []byte{255, 255, 255, 255},
		Width:   1,
		Height:  1,
		Opacity: 0,
	}
	if err := Separable(screenChan)(base, out, w, h, src); err != nil {
		t.Fatalf("blend failed: %v", err)
	}
	if out[2] != 255 || out[3] != 255 {
		t.Errorf("zero-opacity blend changed backdrop: %v", out)
	}

	// Fully transparent source pixels are skipped too.
	src.Data = []byte{255, 255, 255, 0}
	src.Opacity = 1
	if err := Separable(screenChan)(base, out, w, h, src); err != nil {
		t.Fatalf("blend failed: %v", err)
	}
	if out[2] != 255 {
		t.Errorf("transparent source changed backdrop: %v", out)
	}
}

func TestSeparableClipsToCanvas(t *testing.T) {
	// Source hangs off every edge; no out-of-range writes, only the
	// overlap is blended.
	const w, h = 2, 2
	base := make([]byte, w*h*4)
	for i := 3; i < len(base); i += 4 {
		base[i] = 255
	}
	out := make([]byte, len(base))
	copy(out, base)

	src := Source{
		Data:    make([]byte, 4*4*4),
		Width:   4,
		Height:  4,
		Opacity: 1,
		DX:      -1,
		DY:      -1,
	}
	for i := 0; i < len(src.Data); i += 4 {
		src.Data[i] = 255
		src.Data[i+3] = 255
	}

	if err := Separable(maxByte)(base, out, w, h, src); err != nil {
		t.Fatalf("blend failed: %v", err)
	}
	for i := 0; i < len(out); i += 4 {
		if out[i] != 255 {
			t.Errorf("pixel %d = %v, want lightened red", i/4, out[i:i+4])
		}
	}
}
