package buffer

import (
	"testing"

	"github.com/decker502/invaders/pkg/sprites"
)

func TestNewPixelBuffer(t *testing.T) {
	b := NewPixelBuffer(300, 400)

	if b.Width() != 300 || b.Height() != 400 {
		t.Errorf("Expected 300x400 buffer, got %dx%d", b.Width(), b.Height())
	}
	if len(b.Pixels()) != 300*400*4 {
		t.Errorf("Expected %d pixel bytes, got %d", 300*400*4, len(b.Pixels()))
	}
}

func TestNewPixelBufferRejectsBadDims(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-positive dimensions")
		}
	}()
	NewPixelBuffer(0, 10)
}

func TestClear(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	white := RGB(255, 255, 255)

	b.Clear(white)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.At(x, y) != white {
				t.Fatalf("Pixel (%d, %d) should be white after clear", x, y)
			}
		}
	}
}

func TestSetAndAt(t *testing.T) {
	b := NewPixelBuffer(10, 10)
	red := RGB(128, 0, 0)

	b.Set(3, 7, red)

	if b.At(3, 7) != red {
		t.Error("Set pixel should read back")
	}
	if b.At(3, 6) == red || b.At(4, 7) == red {
		t.Error("Neighboring pixels should be untouched")
	}
}

func TestSetYAxisPointsUp(t *testing.T) {
	b := NewPixelBuffer(2, 3)
	red := RGB(128, 0, 0)

	// y=0 是最底行，对应内部字节的最后一行
	b.Set(0, 0, red)

	pix := b.Pixels()
	bottomRowOffset := (3 - 1) * 2 * 4
	if pix[bottomRowOffset] != 128 {
		t.Error("y=0 should map to the last stored row")
	}
	if pix[0] != 0 {
		t.Error("Top stored row should be untouched")
	}
}

func TestSetOutOfRangeIsSilent(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	red := RGB(128, 0, 0)

	// 越界写入静默丢弃
	b.Set(-1, 0, red)
	b.Set(4, 0, red)
	b.Set(0, -1, red)
	b.Set(0, 4, red)

	if b.At(-1, 0) != (Color{}) {
		t.Error("Out-of-range read should return zero color")
	}
}

func TestBlitAnchorsBottomLeft(t *testing.T) {
	b := NewPixelBuffer(10, 10)
	red := RGB(128, 0, 0)

	m := sprites.Get(sprites.SpriteRocket) // 2x5 全置位
	b.Blit(m, 3, 2, red)

	// 锚点为左下角：占据 (3..4, 2..6)
	if b.At(3, 2) != red || b.At(4, 6) != red {
		t.Error("Blit should cover the 2x5 box above the anchor")
	}
	if b.At(3, 1) == red || b.At(3, 7) == red || b.At(5, 2) == red {
		t.Error("Blit should not spill outside the box")
	}
}

func TestBlitSkipsUnsetBits(t *testing.T) {
	b := NewPixelBuffer(20, 20)
	white := RGB(255, 255, 255)
	red := RGB(128, 0, 0)
	b.Clear(white)

	// 玩家位图顶行是 ..#....#..，未置位的像素保持背景
	m := sprites.Get(sprites.SpritePlayer)
	b.Blit(m, 0, 0, red)

	if b.At(0, 9) != white {
		t.Error("Unset bits should leave the background intact")
	}
	if b.At(2, 9) != red {
		t.Error("Set bits should be painted")
	}
}

func TestBlitClipsSilently(t *testing.T) {
	b := NewPixelBuffer(10, 10)
	red := RGB(128, 0, 0)
	m := sprites.Get(sprites.SpriteRocket)

	// 部分与完全越界都不 panic
	b.Blit(m, -1, -3, red)
	b.Blit(m, 9, 8, red)
	b.Blit(m, 100, 100, red)

	if b.At(9, 8) != red {
		t.Error("In-range part of a clipped blit should still be painted")
	}
}
