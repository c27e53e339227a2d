// Package shade renders signed-distance scenes to color and id images.
//
// # Overview
//
// A scene is a shape.Source: a function from a per-pixel
// shape.Invocation to a composited shape.Shape. Frame evaluates the source
// once per pixel center and stores two images: the display color and the
// id buffer used for object picking.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/shade"
//	    "github.com/gogpu/shade/color"
//	    "github.com/gogpu/shade/sdf"
//	    "github.com/gogpu/shade/shape"
//	)
//
//	scene := shape.UnionOf(
//	    shape.Fill(sdf.Circle(80), 1, color.NewRgba(1, 0, 0, 1)),
//	    shape.Fill(sdf.Translate(sdf.Rect(120, 60), 60, 0), 2, color.NewRgba(0, 0, 1, 0.5)),
//	)
//
//	frame, err := shade.NewFrame(512, 512)
//	if err != nil {
//	    return err
//	}
//	defer frame.Close()
//
//	out := frame.Render(scene)
//	png.Encode(w, out.Color)
//
// # Packages
//
//   - color: linear RGB, sRGB, HSV and Lch colors hubbed through linear RGB
//   - sdf: bounding boxes, distance fields and primitive generators
//   - shape: coverage, premultiplied compositing and the id layer
//
// # Coordinate System
//
// By default scene space is centered on the frame with Y pointing up and
// one scene unit per device pixel divided by the pixel ratio. Use
// WithTransform to supply any other pixel-to-scene mapping.
package shade
