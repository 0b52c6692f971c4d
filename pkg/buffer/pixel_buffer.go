// Package buffer 实现 CPU 侧的像素缓冲区与精灵合成
//
// 坐标系与模拟核心一致：y 轴向上，(0, 0) 位于场地左下角。内部按自顶向下
// 的行序存储 RGBA 字节，Pixels 的返回值可以直接交给纹理上传接口
// （如 ebiten.Image.WritePixels），无需再做翻转。
package buffer

import "github.com/decker502/invaders/pkg/sprites"

// Color RGBA 颜色值
type Color struct {
	R, G, B, A uint8
}

// RGB 构造不透明颜色
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// PixelBuffer 固定尺寸的像素缓冲区
// 尺寸在创建时确定且不再变化；所有写入都做边界检查，越界像素静默丢弃
type PixelBuffer struct {
	width  int
	height int
	pix    []byte // 自顶向下行序的 RGBA 字节，长度 = width*height*4
}

// NewPixelBuffer 创建指定尺寸的像素缓冲区
// 尺寸必须为正，非法尺寸属于编程错误，直接 panic
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		panic("buffer: pixel buffer dimensions must be positive")
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// Width 返回缓冲区宽度（像素）
func (b *PixelBuffer) Width() int { return b.width }

// Height 返回缓冲区高度（像素）
func (b *PixelBuffer) Height() int { return b.height }

// Pixels 返回自顶向下行序的 RGBA 字节切片
// 切片与缓冲区共享底层数组，调用方只应读取
func (b *PixelBuffer) Pixels() []byte { return b.pix }

// Clear 将所有像素覆写为指定颜色
func (b *PixelBuffer) Clear(c Color) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// Set 写入单个像素，坐标越界时静默丢弃
func (b *PixelBuffer) Set(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	// y 轴向上，内部行序自顶向下
	i := ((b.height-1-y)*b.width + x) * 4
	b.pix[i] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// At 读取单个像素，越界返回零值颜色
func (b *PixelBuffer) At(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Color{}
	}
	i := ((b.height-1-y)*b.width + x) * 4
	return Color{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Blit 以 (x, y) 为精灵左下角锚点，将位图中置位的像素覆写为指定颜色
//
// 位图第 j 行（j=0 为顶行）的像素落在 y + (高度-1-j) 处，即精灵相对锚点
// 自下而上展开。未置位的像素不触碰目标（透明背景）；落在缓冲区外的像素
// 静默裁剪，不报错——这是设计好的离屏裁剪策略。不做任何混合。
func (b *PixelBuffer) Blit(m *sprites.Mask, x, y int, c Color) {
	for j := 0; j < m.Height; j++ {
		ty := y + m.Height - 1 - j
		for i := 0; i < m.Width; i++ {
			if m.At(i, j) {
				b.Set(x+i, ty, c)
			}
		}
	}
}
