package ui

import "testing"

func TestSlider_ValueAt(t *testing.T) {
	s := NewSlider(10, 0, 100, "Max Speed", 1, 11, 4)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", 10, 1},
		{"middle", 60, 6},
		{"right edge", 110, 11},
		{"clamped left", -50, 1},
		{"clamped right", 500, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ValueAt(tt.x); got != tt.want {
				t.Errorf("ValueAt(%v) = %v; want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestNewSlider_ClampsValue(t *testing.T) {
	if s := NewSlider(0, 0, 10, "fov", 0, 360, 400); s.Value != 360 {
		t.Errorf("Expected value clamped to 360, got %v", s.Value)
	}
	if s := NewSlider(0, 0, 10, "fov", 0, 360, 90); s.Ratio() != 0.25 {
		t.Errorf("Expected ratio 0.25, got %v", s.Ratio())
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(0, 0, "Show rays", false)

	c.press(true, true)
	c.press(true, true) // still held
	if !c.Value {
		t.Fatal("Expected checkbox to be checked after the first press")
	}
	c.press(true, false)
	c.press(true, true)
	if c.Value {
		t.Error("Expected second press to uncheck")
	}
	c.press(false, true)
	if c.Value {
		t.Error("Press outside the box must not toggle")
	}
}

func TestButton_FiresOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 50, 20, "Pause", func() { clicks++ })

	b.press(true, true)
	b.press(true, true)
	b.press(false, false)
	b.press(true, true)
	if clicks != 2 {
		t.Errorf("Expected 2 clicks, got %d", clicks)
	}
}

func TestUIPanel_Layout(t *testing.T) {
	p := NewUIPanel("Flock", 10, 10, 200, 100)
	if got := p.ContentHeight(); got != titleHeight {
		t.Fatalf("Empty panel height = %v; want %v", got, titleHeight)
	}

	p.AddSection("Perception")
	s1 := p.AddSlider("View Range", 0, 100, 60)
	s2 := p.AddSlider("View FOV", 0, 360, 200)
	p.EndSection()
	p.AddSection("Display")
	cb := p.AddCheckbox("Show rays", true)

	if s2.Y <= s1.Y {
		t.Errorf("Expected widgets stacked downwards, got %v then %v", s1.Y, s2.Y)
	}
	if len(p.sections) != 2 || p.sections[0].EndIndex != 2 || p.sections[1].StartIndex != 2 || p.sections[1].EndIndex != 3 {
		t.Errorf("Unexpected sections %+v", p.sections)
	}

	want := titleHeight + 2*sectionHeight + 2*(s1.H+25) + cb.Size + 5
	if got := p.ContentHeight(); got != want {
		t.Errorf("ContentHeight = %v; want %v", got, want)
	}
}

func TestUIPanel_Scroll(t *testing.T) {
	p := NewUIPanel("Flock", 0, 0, 200, 100)
	p.AddSection("Sliders")
	for i := 0; i < 10; i++ {
		p.AddSlider("s", 0, 1, 0)
	}
	maxScroll := p.ContentHeight() - p.Height + 40

	p.Scroll(1) // wheel up at the top stays at the top
	if p.ScrollOffset != 0 {
		t.Errorf("Expected 0 offset, got %v", p.ScrollOffset)
	}
	p.Scroll(-1000)
	if p.ScrollOffset != maxScroll {
		t.Errorf("Expected offset clamped to %v, got %v", maxScroll, p.ScrollOffset)
	}
}

func TestUIPanel_HiddenContainsNothing(t *testing.T) {
	p := NewUIPanel("Flock", 0, 0, 200, 100)
	if !p.Contains(50, 50) {
		t.Error("Expected point inside the panel")
	}
	p.Hidden = true
	if p.Contains(50, 50) {
		t.Error("Hidden panel must not capture the cursor")
	}
}
