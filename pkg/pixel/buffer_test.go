package pixel

import (
	"image"
	"testing"
)

func TestNewDefaultsAlpha(t *testing.T) {
	p := New(1, 2, 3)
	if p.Alpha != 255 {
		t.Fatalf("New alpha = %d, want 255", p.Alpha)
	}
	q := NewAlpha(1, 2, 3, 17)
	if q.Alpha != 17 {
		t.Fatalf("NewAlpha alpha = %d, want 17", q.Alpha)
	}
	if got := p.String(); got != "RGB(1, 2, 3, 255)" {
		t.Fatalf("String = %q", got)
	}
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name string
		rows [][]RGB
		want bool
	}{
		{"nil rows", nil, false},
		{"zero rows", [][]RGB{}, false},
		{"zero width", [][]RGB{{}}, false},
		{"ragged", [][]RGB{{New(0, 0, 0), New(0, 0, 0)}, {New(0, 0, 0)}}, false},
		{"nil middle row", [][]RGB{{New(0, 0, 0)}, nil}, false},
		{"ok", [][]RGB{{New(0, 0, 0)}, {New(1, 1, 1)}}, true},
	}
	for _, tc := range cases {
		if got := NewBuffer(tc.rows).Verify(); got != tc.want {
			t.Errorf("%s: Verify = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestReplaceRowsKeepsHandle(t *testing.T) {
	b := NewUniform(2, 3, New(9, 9, 9))
	handle := b
	b.ReplaceRows([][]RGB{{New(1, 1, 1)}, {New(2, 2, 2)}, {New(3, 3, 3)}})
	h, w := handle.Dimensions()
	if h != 3 || w != 1 {
		t.Fatalf("dimensions after ReplaceRows = %dx%d, want 3x1", h, w)
	}
	if handle.Get(2, 0) != New(3, 3, 3) {
		t.Fatalf("handle did not observe replaced contents")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewUniform(2, 2, New(5, 5, 5))
	c := b.Clone()
	b.Set(0, 0, New(99, 0, 0))
	if c.Get(0, 0) != New(5, 5, 5) {
		t.Fatalf("clone shares storage with original")
	}
}

func TestFromImageNormalizes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Pix = []uint8{10, 20, 30, 255, 40, 50, 60, 128}
	b := FromImage(src, nil)
	h, w := b.Dimensions()
	if h != 1 || w != 2 {
		t.Fatalf("dimensions = %dx%d, want 1x2", h, w)
	}
	if got := b.Get(0, 0); got != NewAlpha(10, 20, 30, 255) {
		t.Fatalf("pixel (0,0) = %v", got)
	}
	if got := b.Get(0, 1); got != NewAlpha(40, 50, 60, 128) {
		t.Fatalf("pixel (0,1) = %v", got)
	}
}

func TestNRGBAClampsAtCodecBoundary(t *testing.T) {
	b := NewBuffer([][]RGB{{NewAlpha(-20, 300, 128, 255)}})
	img := b.NRGBA(nil)
	if img.Pix[0] != 0 || img.Pix[1] != 255 || img.Pix[2] != 128 || img.Pix[3] != 255 {
		t.Fatalf("encoded pixel = %v, want [0 255 128 255]", img.Pix[:4])
	}
	// the buffer itself keeps the out-of-range values
	if b.Get(0, 0) != NewAlpha(-20, 300, 128, 255) {
		t.Fatalf("buffer mutated by NRGBA conversion")
	}
}

func TestRoundTripThroughImage(t *testing.T) {
	b := NewBuffer([][]RGB{
		{NewAlpha(1, 2, 3, 255), NewAlpha(4, 5, 6, 200)},
		{NewAlpha(7, 8, 9, 100), NewAlpha(10, 11, 12, 0)},
	})
	got := FromImage(b.NRGBA(nil), nil)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if got.Get(r, c) != b.Get(r, c) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", r, c, got.Get(r, c), b.Get(r, c))
			}
		}
	}
}
