package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/automoto/highrise/fonts"
	"github.com/automoto/highrise/systems"
)

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()
	OnQuit  func()

	bestLabel *widget.Label
}

// NewMenuUI creates the title menu
func NewMenuUI(onStart, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
		OnQuit:  onQuit,
	}
	mui.buildUI()
	return mui
}

func (mui *MenuUI) buildUI() {
	titleFace := fonts.Title()
	normalFace := fonts.Normal()
	smallFace := fonts.Small()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("HIGHRISE", &titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("outlast the streets, own the rooftops", &smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	))

	mui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text(bestRunText(), &smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 180, 100, 255},
		}),
	)
	contentContainer.AddChild(mui.bestLabel)

	contentContainer.AddChild(mui.button("Start", normalFace, func() {
		if mui.OnStart != nil {
			mui.OnStart()
		}
	}))
	contentContainer.AddChild(mui.button("Fullscreen", normalFace, func() {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		_ = systems.SaveSettings(&systems.SavedSettings{Fullscreen: full})
	}))
	contentContainer.AddChild(mui.button("Quit", normalFace, func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh re-reads the stored best run into the menu.
func (mui *MenuUI) Refresh() {
	mui.bestLabel.Label = bestRunText()
}

func bestRunText() string {
	best := systems.LoadBestRun()
	if best == 0 {
		return "no recorded runs yet"
	}
	seconds := best / 60
	return fmt.Sprintf("best run  %02d:%02d", seconds/60, seconds%60)
}

func (mui *MenuUI) button(label string, face text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 32),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
