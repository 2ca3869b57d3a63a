// Package lottie renders a declarative 2D vector-animation document
// to a raster image, deterministically and without a GPU.
//
// # Overview
//
// Given a parsed [Composition], a frame index, and a pixel grid,
// [Composition.RenderSync] walks the composition's layers in order,
// samples each one's keyframed transform and shape properties at that
// frame, and rasterizes the result into an RGBA8888 buffer. There is
// no hidden state between calls: rendering frame N twice produces
// identical bytes, and frames may be rendered in any order.
//
// # Architecture
//
//   - Geometry kernel ([Path], internal/geom): flattening, arc-length,
//     trim, and triangle-fan tessellation of shape outlines.
//   - Timeline kernel ([CubicBezier], [Keyframe], [Animator]): cubic-
//     bezier easing and keyframe interpolation over animated properties.
//   - Software rasterizer (internal/raster): triangle coverage, paint
//     sampling, source-over blending, mask buffers, stroke
//     polygonization, text blitting.
//   - Composition renderer ([Composition], [Layer]): the per-frame
//     scene walk that binds the other three together.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left.
//   - X increases right, Y increases down.
//   - Rotation in degrees (document convention), 0 pointing right,
//     increasing clockwise.
//
// # Determinism
//
// All geometry, timeline, and color math uses float32 throughout, so
// a render's output depends only on f32 IEEE-754 arithmetic and not on
// host float64 rounding. The core never returns an error: a malformed
// or partially-unsupported element is skipped rather than aborting the
// frame (see [RenderOptions] for the handful of knobs that affect this
// behavior).
package lottie
