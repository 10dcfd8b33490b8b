package signature

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/tarekkanon/nightshift-logistics/internal/pkg/dataurl"
	"golang.org/x/image/vector"
)

const (
	DefaultStrokeWidth = 2.5
	MaxDimension       = 2000
	mediaType          = "image/png"
)

var (
	ErrEmptyPad         = errors.New("signature pad is empty")
	ErrInvalidDimension = errors.New("invalid signature pad dimension")
)

type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Pad холст подписи: Begin на нажатии, Extend на движении, End на отпускании.
type Pad struct {
	width, height int
	strokeWidth   float32
	strokes       [][]Point
	drawing       bool
}

func NewPad(width, height int) (*Pad, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Pad{
		width:       width,
		height:      height,
		strokeWidth: DefaultStrokeWidth,
	}, nil
}

func (p *Pad) Begin(pt Point) {
	p.strokes = append(p.strokes, []Point{pt})
	p.drawing = true
}

// Extend без Begin игнорируется, как движение мыши без нажатой кнопки.
func (p *Pad) Extend(pt Point) {
	if !p.drawing {
		return
	}
	last := len(p.strokes) - 1
	p.strokes[last] = append(p.strokes[last], pt)
}

func (p *Pad) End() {
	p.drawing = false
}

func (p *Pad) Clear() {
	p.strokes = nil
	p.drawing = false
}

func (p *Pad) IsEmpty() bool {
	return len(p.strokes) == 0
}

// Replay воспроизводит готовые штрихи, например присланные клиентом.
func (p *Pad) Replay(strokes [][]Point) {
	for _, stroke := range strokes {
		if len(stroke) == 0 {
			continue
		}
		p.Begin(stroke[0])
		for _, pt := range stroke[1:] {
			p.Extend(pt)
		}
		p.End()
	}
}

func (p *Pad) Render() (*image.RGBA, error) {
	if p.IsEmpty() {
		return nil, ErrEmptyPad
	}

	bounds := image.Rect(0, 0, p.width, p.height)
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)

	ink := image.NewUniform(color.Black)
	raster := vector.NewRasterizer(p.width, p.height)

	// каждый сегмент отдельным Draw: пересекающиеся контуры одного пути гасили бы друг друга
	for _, stroke := range p.strokes {
		if len(stroke) == 1 {
			p.dot(raster, stroke[0])
			raster.Draw(dst, bounds, ink, image.Point{})
			continue
		}
		for i := 1; i < len(stroke); i++ {
			p.segment(raster, stroke[i-1], stroke[i])
			raster.Draw(dst, bounds, ink, image.Point{})
		}
	}

	return dst, nil
}

// Encode PNG в виде data URL.
func (p *Pad) Encode() (string, error) {
	img, err := p.Render()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return dataurl.Encode(mediaType, buf.Bytes()), nil
}

func (p *Pad) dot(raster *vector.Rasterizer, pt Point) {
	raster.Reset(p.width, p.height)
	hw := p.strokeWidth / 2
	raster.MoveTo(pt.X-hw, pt.Y-hw)
	raster.LineTo(pt.X+hw, pt.Y-hw)
	raster.LineTo(pt.X+hw, pt.Y+hw)
	raster.LineTo(pt.X-hw, pt.Y+hw)
	raster.ClosePath()
}

func (p *Pad) segment(raster *vector.Rasterizer, from, to Point) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		p.dot(raster, from)
		return
	}

	hw := p.strokeWidth / 2
	// единичный вектор направления, концы продлеваются на hw чтобы сегменты стыковались
	ux, uy := dx/length, dy/length
	nx, ny := -uy*hw, ux*hw
	ax, ay := from.X-ux*hw, from.Y-uy*hw
	bx, by := to.X+ux*hw, to.Y+uy*hw

	raster.Reset(p.width, p.height)
	raster.MoveTo(ax+nx, ay+ny)
	raster.LineTo(bx+nx, by+ny)
	raster.LineTo(bx-nx, by-ny)
	raster.LineTo(ax-nx, ay-ny)
	raster.ClosePath()
}
