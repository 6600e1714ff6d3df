// Package controls is a small widget-agnostic control binding layer.
//
// Each control reads and writes its value through accessor functions, so the
// bound state stays owned by whoever registered it. A renderer (see
// internal/engine/ui) draws the controls and reports edits back through Set
// and Commit.
package controls

// Kind identifies a control type.
type Kind int

const (
	KindNumber Kind = iota
	KindInt
	KindBool
	KindColor
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindAction:
		return "action"
	}
	return "unknown"
}

// Control is implemented by every control in a Folder.
type Control interface {
	Kind() Kind
	Label() string
}

// Panel is the root of a control tree.
type Panel struct {
	Title   string
	Hidden  bool
	Folders []*Folder
}

// NewPanel creates an empty panel.
func NewPanel(title string) *Panel {
	return &Panel{Title: title}
}

// AddFolder appends a new open folder.
func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{Name: name, Open: true}
	p.Folders = append(p.Folders, f)
	return f
}

// Folder returns the folder with the given name or nil.
func (p *Panel) Folder(name string) *Folder {
	for _, f := range p.Folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Toggle shows or hides the whole panel.
func (p *Panel) Toggle() {
	p.Hidden = !p.Hidden
}

// Close collapses every folder.
func (p *Panel) Close() {
	for _, f := range p.Folders {
		f.Open = false
	}
}

// Folder groups controls under a collapsible header.
type Folder struct {
	Name     string
	Open     bool
	Controls []Control
}

// Find returns the control with the given label or nil.
func (f *Folder) Find(label string) Control {
	for _, c := range f.Controls {
		if c.Label() == label {
			return c
		}
	}
	return nil
}

// AddNumber binds a float control.
func (f *Folder) AddNumber(label string, get func() float64, set func(float64)) *Number {
	n := &Number{label: label, get: get, set: set}
	f.Controls = append(f.Controls, n)
	return n
}

// AddInt binds an integer control.
func (f *Folder) AddInt(label string, get func() int, set func(int)) *Int {
	i := &Int{label: label, get: get, set: set, step: 1}
	f.Controls = append(f.Controls, i)
	return i
}

// AddBool binds a checkbox.
func (f *Folder) AddBool(label string, get func() bool, set func(bool)) *Bool {
	b := &Bool{label: label, get: get, set: set}
	f.Controls = append(f.Controls, b)
	return b
}

// AddColor binds an RGB color picker.
func (f *Folder) AddColor(label string, get func() [3]float32, set func([3]float32)) *Color {
	c := &Color{label: label, get: get, set: set}
	f.Controls = append(f.Controls, c)
	return c
}

// AddAction adds a button.
func (f *Folder) AddAction(label string, fn func()) *Action {
	a := &Action{label: label, fn: fn}
	f.Controls = append(f.Controls, a)
	return a
}
