// Package blend evaluates GPU blend states on premultiplied float colors.
//
// Compositing is described with the same gputypes.BlendState values a GPU
// color target would use, so the software path and a hardware pipeline
// agree on the math. All colors are premultiplied.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - WebGPU blend state: https://www.w3.org/TR/webgpu/#blend-state
package blend

import "github.com/gogpu/gputypes"

// SourceOverState is the premultiplied source-over blend state: S + D*(1-Sa).
func SourceOverState() gputypes.BlendState {
	return gputypes.BlendStatePremultiplied()
}

// SourceOver composites src on top of dst: src + (1-src.A)*dst.
func SourceOver(src, dst gputypes.Color) gputypes.Color {
	return Apply(SourceOverState(), src, dst, gputypes.Color{})
}
