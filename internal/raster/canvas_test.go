package raster

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/1broseidon/deskclock/internal/face"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

// assertPixel allows a little slack for anti-aliasing round-off.
func assertPixel(t *testing.T, want color.RGBA, img *image.RGBA, x, y int) {
	t.Helper()
	got := img.RGBAAt(x, y)
	assert.InDelta(t, want.R, got.R, 2, "R at (%d,%d)", x, y)
	assert.InDelta(t, want.G, got.G, 2, "G at (%d,%d)", x, y)
	assert.InDelta(t, want.B, got.B, 2, "B at (%d,%d)", x, y)
	assert.InDelta(t, want.A, got.A, 2, "A at (%d,%d)", x, y)
}

func TestFillCircleCoversInsideOnly(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	c := New(img, nil)

	c.FillCircle(face.Point{X: 50, Y: 50}, 20, color.NRGBA{R: 255, A: 255})

	assertPixel(t, color.RGBA{R: 255, A: 255}, img, 50, 50)
	assertPixel(t, color.RGBA{R: 255, A: 255}, img, 60, 50)
	assertPixel(t, color.RGBA{}, img, 80, 50)
	assertPixel(t, color.RGBA{}, img, 5, 5)
}

func TestStrokeCircleLeavesCentreEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	c := New(img, nil)

	c.StrokeCircle(face.Point{X: 50, Y: 50}, 30, 6, color.NRGBA{G: 255, A: 255})

	assertPixel(t, color.RGBA{}, img, 50, 50)
	assertPixel(t, color.RGBA{G: 255, A: 255}, img, 80, 50)
	assertPixel(t, color.RGBA{}, img, 90, 50)
}

func TestStrokeLineRoundCapExtendsPastEnd(t *testing.T) {
	butt := image.NewRGBA(image.Rect(0, 0, 100, 100))
	New(butt, nil).StrokeLine(face.Point{X: 20, Y: 50}, face.Point{X: 80, Y: 50}, 10, face.CapButt, color.NRGBA{B: 255, A: 255})

	round := image.NewRGBA(image.Rect(0, 0, 100, 100))
	New(round, nil).StrokeLine(face.Point{X: 20, Y: 50}, face.Point{X: 80, Y: 50}, 10, face.CapRound, color.NRGBA{B: 255, A: 255})

	assertPixel(t, color.RGBA{B: 255, A: 255}, butt, 50, 50)
	assertPixel(t, color.RGBA{B: 255, A: 255}, butt, 50, 53)
	assertPixel(t, color.RGBA{}, butt, 50, 58)
	assertPixel(t, color.RGBA{}, butt, 83, 50)
	assertPixel(t, color.RGBA{B: 255, A: 255}, round, 83, 50)
	assertPixel(t, color.RGBA{B: 255, A: 255}, round, 16, 50)
}

func TestStrokeLineZeroLengthRoundIsDot(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	New(img, nil).StrokeLine(face.Point{X: 20, Y: 20}, face.Point{X: 20, Y: 20}, 8, face.CapRound, color.NRGBA{R: 9, A: 255})

	assertPixel(t, color.RGBA{R: 9, A: 255}, img, 20, 20)
}

func TestDrawTextMarksPixelsNearCentre(t *testing.T) {
	textFace, err := NumeralFace()
	require.NoError(t, err)
	defer textFace.Close()

	img := image.NewRGBA(image.Rect(0, 0, 80, 80))
	New(img, textFace).DrawText("12", face.Point{X: 40, Y: 40}, color.NRGBA{A: 255})

	inked := image.Rectangle{}
	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			if img.RGBAAt(x, y).A > 0 {
				inked = inked.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	require.False(t, inked.Empty())
	mid := image.Pt((inked.Min.X+inked.Max.X)/2, (inked.Min.Y+inked.Max.Y)/2)
	assert.InDelta(t, 40, mid.X, 3)
	assert.InDelta(t, 40, mid.Y, 4)
}

func TestDrawTextWithoutFaceIsNoop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	New(img, nil).DrawText("3", face.Point{X: 10, Y: 10}, color.NRGBA{A: 255})

	for _, v := range img.Pix {
		require.Zero(t, v)
	}
}

func TestRenderFullFrame(t *testing.T) {
	textFace, err := NumeralFace()
	require.NoError(t, err)
	defer textFace.Close()

	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	layout := face.NewLayout(300, 300)
	face.Render(New(img, textFace), layout, time.Date(2024, 1, 1, 3, 0, 0, 0, time.Local))

	assert.Equal(t, color.RGBA{}, rgbaAt(img, 2, 2), "outside the dial stays transparent")

	assertPixel(t, color.RGBA{R: 245, G: 245, B: 220, A: 255}, img, 150, 220)

	// Hour hand at three o'clock: dark pixels to the right of the centre.
	hand := rgbaAt(img, 200, 150)
	assert.Less(t, hand.R, uint8(40))

	// Second hand at zero: red above the centre.
	second := rgbaAt(img, 150, 60)
	assert.Greater(t, second.R, uint8(200))
	assert.Less(t, second.G, uint8(60))
}
