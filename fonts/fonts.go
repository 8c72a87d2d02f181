package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var source *text.GoTextFaceSource

var faces = map[float64]text.Face{}

func src() *text.GoTextFaceSource {
	if source == nil {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("parse embedded font: %v", err))
		}
		source = s
	}
	return source
}

// Face returns a cached face at the given size.
func Face(size float64) text.Face {
	if f, ok := faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: src(), Size: size}
	faces[size] = f
	return f
}

func Title() text.Face  { return Face(28) }
func Normal() text.Face { return Face(14) }
func Small() text.Face  { return Face(11) }
