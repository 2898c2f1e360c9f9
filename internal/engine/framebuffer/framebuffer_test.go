package framebuffer

import "testing"

func TestFlipRGBA(t *testing.T) {
	// Two rows, bottom row red, top row blue, as GL returns them.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	img := FlipRGBA(pixels, 2, 2)

	if got := img.RGBAAt(0, 0); got.B != 255 || got.R != 0 {
		t.Errorf("top-left = %v, want blue", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 255 || got.B != 0 {
		t.Errorf("bottom-right = %v, want red", got)
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int32
	}{
		{1280, 720, 1280, 720},
		{0, 720, 1, 720},
		{800, -5, 800, 1},
	}
	for _, tt := range tests {
		w, h := clampSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = %d, %d, want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}
