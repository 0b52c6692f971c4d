// Package utils 提供位图文字绘制与输入采集工具
package utils

import (
	"github.com/decker502/invaders/pkg/buffer"
	"github.com/decker502/invaders/pkg/sprites"
)

// 字符前进量：5 像素字宽 + 1 像素间距
const charAdvance = 6

// MeasureText 计算文本绘制后占用的像素宽度
func MeasureText(text string) int {
	if len(text) == 0 {
		return 0
	}
	// 最后一个字符后不留间距
	return len(text)*charAdvance - 1
}

// DrawText 在像素缓冲区上绘制一行文本
// 参数：
//   - buf: 绘制目标
//   - text: 文本内容，小写字母自动转为大写，字模表外的字符按空格占位
//   - x, y: 文本锚点（首字符左下角）
//   - align: 对齐方式（"left", "center", "right"）
func DrawText(buf *buffer.PixelBuffer, text string, x, y int, c buffer.Color, align string) {
	startX := x
	switch align {
	case "center":
		startX = x - MeasureText(text)/2
	case "right":
		startX = x - MeasureText(text)
	}

	currentX := startX
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if glyph, ok := sprites.Glyph(ch); ok {
			buf.Blit(glyph, currentX, y, c)
		}
		currentX += charAdvance
	}
}
