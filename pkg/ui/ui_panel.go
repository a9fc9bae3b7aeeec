package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 5
}

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 8
}

// UIPanel stacks widgets under section headers in a scrollable panel.
type UIPanel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Widgets       []UIWidget
	ScrollOffset  float64
	Hidden        bool

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups the widgets [StartIndex, EndIndex) under a header.
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

// NewUIPanel creates a new UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new section, it collects the widgets added until the next
// EndSection.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, p.Y+p.ContentHeight()+20, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{slider})
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, p.Y+p.ContentHeight()+20, label, value)
	p.add(&CheckboxWrapper{checkbox})
	return checkbox
}

// AddButton adds a full width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, p.Y+p.ContentHeight()+20, p.Width-20, 22, label, onClick)
	p.add(&ButtonWrapper{button})
	return button
}

// add appends the widget to the panel and to the open section, if any.
func (p *UIPanel) add(widget UIWidget) {
	p.Widgets = append(p.Widgets, widget)
	if n := len(p.sections); n > 0 && p.sections[n-1].EndIndex == len(p.Widgets)-1 {
		p.sections[n-1].EndIndex = len(p.Widgets)
	}
}

// ContentHeight is the height of the title, the section headers and every widget.
func (p *UIPanel) ContentHeight() float64 {
	height := titleHeight + float64(len(p.sections))*sectionHeight
	for _, widget := range p.Widgets {
		height += widget.GetHeight()
	}
	return height
}

// Contains reports whether the point is over the visible panel.
func (p *UIPanel) Contains(x, y float64) bool {
	return !p.Hidden && x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Scroll moves the content by dy wheel steps, clamped to the content height.
func (p *UIPanel) Scroll(dy float64) {
	p.ScrollOffset -= dy * 20
	maxScroll := max(p.ContentHeight()-p.Height+40, 0)
	p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	if p.Hidden {
		return
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		p.Scroll(dy)
	}
	for _, widget := range p.Widgets {
		widget.Update()
	}
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	currentY := p.Y + titleHeight - p.ScrollOffset
	for _, section := range p.sections {
		if p.visible(currentY, sectionHeight) {
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, section.Title, int(p.X+10), int(currentY+3))
		}
		currentY += sectionHeight

		for _, widget := range p.Widgets[section.StartIndex:section.EndIndex] {
			h := widget.GetHeight()
			p.placeWidget(widget, currentY)
			if p.visible(currentY, h) {
				if label := widgetLabel(widget); label != "" {
					ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(currentY))
				}
				widget.Draw(screen)
			}
			currentY += h
		}
	}
}

func (p *UIPanel) visible(y, h float64) bool {
	return y >= p.Y+titleHeight-h && y+h <= p.Y+p.Height
}

// placeWidget moves the widget to its scrolled position so clicks hit what is drawn.
func (p *UIPanel) placeWidget(widget UIWidget, y float64) {
	switch w := widget.(type) {
	case *SliderWrapper:
		w.Y = y + 15
	case *CheckboxWrapper:
		w.X = p.X + p.Width - 10 - w.Size
		w.Y = y
	case *ButtonWrapper:
		w.Y = y
	}
}

func widgetLabel(widget UIWidget) string {
	switch w := widget.(type) {
	case *SliderWrapper:
		return fmt.Sprintf("%s: %.2f", w.Label, w.Value)
	case *CheckboxWrapper:
		return w.Label
	}
	return ""
}
