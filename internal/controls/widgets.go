package controls

// Bool is a checkbox. Every toggle is a complete edit, so Set fires both
// OnChange and OnFinishChange.
type Bool struct {
	label    string
	get      func() bool
	set      func(bool)
	onChange func(bool)
	onFinish func(bool)
}

func (b *Bool) Kind() Kind { return KindBool }
func (b *Bool) Label() string { return b.label }

// Name sets the display label.
func (b *Bool) Name(label string) *Bool {
	b.label = label
	return b
}

// OnChange registers the callback run on every toggle.
func (b *Bool) OnChange(fn func(bool)) *Bool {
	b.onChange = fn
	return b
}

// OnFinishChange registers the commit callback.
func (b *Bool) OnFinishChange(fn func(bool)) *Bool {
	b.onFinish = fn
	return b
}

// Value reads the bound value.
func (b *Bool) Value() bool {
	return b.get()
}

// Set writes v and fires both callbacks.
func (b *Bool) Set(v bool) {
	b.set(v)
	if b.onChange != nil {
		b.onChange(v)
	}
	if b.onFinish != nil {
		b.onFinish(v)
	}
}

// Color is an RGB picker with components in [0, 1].
type Color struct {
	label    string
	get      func() [3]float32
	set      func([3]float32)
	onChange func([3]float32)
	onFinish func([3]float32)
	dirty    bool
}

func (c *Color) Kind() Kind { return KindColor }
func (c *Color) Label() string { return c.label }

// Name sets the display label.
func (c *Color) Name(label string) *Color {
	c.label = label
	return c
}

// OnChange registers the callback run on every edit.
func (c *Color) OnChange(fn func([3]float32)) *Color {
	c.onChange = fn
	return c
}

// OnFinishChange registers the callback run once an edit settles.
func (c *Color) OnFinishChange(fn func([3]float32)) *Color {
	c.onFinish = fn
	return c
}

// Value reads the bound value.
func (c *Color) Value() [3]float32 {
	return c.get()
}

// Set clamps each component to [0, 1], writes it and fires OnChange.
func (c *Color) Set(rgb [3]float32) [3]float32 {
	for i, v := range rgb {
		if v < 0 {
			rgb[i] = 0
		} else if v > 1 {
			rgb[i] = 1
		}
	}
	c.set(rgb)
	c.dirty = true
	if c.onChange != nil {
		c.onChange(rgb)
	}
	return rgb
}

// Commit fires OnFinishChange if the color was edited since the last commit.
func (c *Color) Commit() {
	if !c.dirty {
		return
	}
	c.dirty = false
	if c.onFinish != nil {
		c.onFinish(c.get())
	}
}

// Action is a button.
type Action struct {
	label string
	fn    func()
}

func (a *Action) Kind() Kind { return KindAction }
func (a *Action) Label() string { return a.label }

// Name sets the display label.
func (a *Action) Name(label string) *Action {
	a.label = label
	return a
}

// Fire runs the action.
func (a *Action) Fire() {
	if a.fn != nil {
		a.fn()
	}
}
