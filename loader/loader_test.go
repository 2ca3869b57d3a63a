package loader

import (
	"encoding/json"
	"testing"

	lottie "github.com/SoftOboros/rlottie-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicDoc = `{
	"w": 100, "h": 100, "fr": 30, "ip": 0, "op": 60,
	"layers": [
		{
			"ty": 4, "nm": "square",
			"ip": 0, "op": 60,
			"shapes": [
				{"ty": "sh", "d": "m 0 0 l 10 0 l 10 10 l 0 10 o"},
				{"ty": "fl", "c": [1, 0, 0, 1]}
			]
		}
	]
}`

func TestLoadBasicDocument(t *testing.T) {
	comp, err := Load([]byte(basicDoc))
	require.NoError(t, err)
	assert.Equal(t, 100, comp.Width)
	assert.Equal(t, 100, comp.Height)
	assert.Equal(t, float32(30), comp.FrameRate)
	require.Len(t, comp.Layers, 1)

	layer := comp.Layers[0]
	assert.Equal(t, lottie.LayerShape, layer.Kind)
	require.Len(t, layer.Shapes, 1)

	group := layer.Shapes[0]
	assert.Equal(t, lottie.ShapePath, group.Kind)
	assert.True(t, group.Fill.Enabled)
	assert.Equal(t, lottie.Scalar(100), group.Fill.OpacityAnim.Value(0))
	assert.Equal(t, lottie.Scalar(100), group.TrimEnd.Value(0))
}

func TestLoadEmptyDocument(t *testing.T) {
	_, err := Load([]byte(`{"w":10,"h":10,"fr":30,"ip":0,"op":0,"layers":[],"assets":[]}`))
	assert.ErrorIs(t, err, lottie.ErrEmptyDocument)
}

func TestLoadCyclicPreCompDetected(t *testing.T) {
	doc := `{
		"w": 10, "h": 10, "fr": 30, "ip": 0, "op": 30,
		"layers": [{"ty": 0, "refId": "a", "ip": 0, "op": 30}],
		"assets": [
			{"id": "a", "layers": [{"ty": 0, "refId": "b", "ip": 0, "op": 30}]},
			{"id": "b", "layers": [{"ty": 0, "refId": "a", "ip": 0, "op": 30}]}
		]
	}`
	_, err := Load([]byte(doc))
	assert.ErrorIs(t, err, lottie.ErrCyclicPreComp)
}

func TestParsePathStringGrammar(t *testing.T) {
	raw, err := json.Marshal("m 1 1 l 5 1 c 5 3 3 5 5 5 o")
	require.NoError(t, err)

	verts, err := parsePathString(raw)
	require.NoError(t, err)
	require.True(t, verts.Closed)
	require.Len(t, verts.Commands, 3)

	assert.Equal(t, byte('m'), verts.Commands[0].Verb)
	assert.Equal(t, lottie.Vec2{X: 1, Y: 1}, verts.Commands[0].Point)

	assert.Equal(t, byte('l'), verts.Commands[1].Verb)
	assert.Equal(t, lottie.Vec2{X: 5, Y: 1}, verts.Commands[1].Point)
	// the "c" token's first absolute control point lands on the
	// previous command's outgoing handle, relative to its own point.
	assert.Equal(t, lottie.Vec2{X: 0, Y: 2}, verts.Commands[1].ControlOut)

	assert.Equal(t, byte('c'), verts.Commands[2].Verb)
	assert.Equal(t, lottie.Vec2{X: 5, Y: 5}, verts.Commands[2].Point)
	assert.Equal(t, lottie.Vec2{X: -2, Y: 0}, verts.Commands[2].ControlIn)
}

func TestConvertShapeItemsFoldsStylesOntoPrecedingGeometry(t *testing.T) {
	raw := []rawShapeItem{
		{Ty: "sh", D: mustJSON(t, "m 0 0 l 1 0 l 1 1 o")},
		{Ty: "fl", Color: mustJSON(t, []float64{1, 0, 0, 1})},
		{Ty: "sh", D: mustJSON(t, "m 2 2 l 3 2 l 3 3 o")},
		{Ty: "st", Color: mustJSON(t, []float64{0, 1, 0, 1}), Width: mustJSON(t, 2.0)},
	}

	groups, err := convertShapeItems(raw)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.True(t, groups[0].Fill.Enabled)
	assert.False(t, groups[0].Stroke.Enabled)

	assert.False(t, groups[1].Fill.Enabled)
	assert.True(t, groups[1].Stroke.Enabled)
	assert.Equal(t, lottie.Scalar(2), groups[1].Stroke.WidthAnim.Value(0))
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
