package view

import "io"

// ComponentFunc is the signature of a view component: it receives its props
// and returns the node to render.
type ComponentFunc func(Props) Node

// ComponentBuilder accumulates the props, directives, slots, and children of
// one component invocation.
type ComponentBuilder struct {
	fn ComponentFunc

	propOrder []string
	propVals  map[string]any

	toggles []classToggle
	styles  []styleEntry
	events  []Event
	uses    []UseCall
	binds   []BindCall
	clones  []CloneCall

	slots      []*SlotBuilder
	children   []any
	childrenFn func(args ...any) Node
}

// Component starts building an invocation of the given component.
func Component(fn ComponentFunc) *ComponentBuilder {
	return &ComponentBuilder{fn: fn, propVals: map[string]any{}}
}

// Prop sets a named prop. Later writes to the same name win.
func (c *ComponentBuilder) Prop(name string, value any) *ComponentBuilder {
	if _, ok := c.propVals[name]; !ok {
		c.propOrder = append(c.propOrder, name)
	}
	c.propVals[name] = value
	return c
}

// Class sets the conventional class prop, merging with earlier values.
func (c *ComponentBuilder) Class(classes string) *ComponentBuilder {
	if prev, ok := c.propVals["class"].(string); ok && prev != "" {
		classes = prev + " " + classes
	}
	return c.Prop("class", classes)
}

// ID sets the conventional id prop.
func (c *ComponentBuilder) ID(id string) *ComponentBuilder {
	return c.Prop("id", id)
}

// ClassToggle records a conditional class for the component to consume.
func (c *ComponentBuilder) ClassToggle(name string, cond any) *ComponentBuilder {
	c.toggles = append(c.toggles, classToggle{name: name, cond: cond})
	return c
}

// StyleProp records a style property for the component to consume.
func (c *ComponentBuilder) StyleProp(name string, value any) *ComponentBuilder {
	c.styles = append(c.styles, styleEntry{name: name, value: value})
	return c
}

// Attr forwards a plain attribute to the component as a prop.
func (c *ComponentBuilder) Attr(name string, value any) *ComponentBuilder {
	return c.Prop(name, value)
}

// On records an event handler.
func (c *ComponentBuilder) On(name string, handler any) *ComponentBuilder {
	c.events = append(c.events, Event{Name: name, Handler: handler})
	return c
}

// Use records a use: directive.
func (c *ComponentBuilder) Use(fn any, arg ...any) *ComponentBuilder {
	u := UseCall{Fn: fn}
	if len(arg) > 0 {
		u.Arg = arg[0]
	}
	c.uses = append(c.uses, u)
	return c
}

// Bind records a two-way binding.
func (c *ComponentBuilder) Bind(key string, value any) *ComponentBuilder {
	c.binds = append(c.binds, BindCall{Key: key, Value: value})
	return c
}

// Clone records a clone: directive.
func (c *ComponentBuilder) Clone(name string, value any) *ComponentBuilder {
	c.clones = append(c.clones, CloneCall{Name: name, Value: value})
	return c
}

// Slot attaches one slot instance. Instances with the same name aggregate in
// declaration order.
func (c *ComponentBuilder) Slot(s *SlotBuilder) *ComponentBuilder {
	c.slots = append(c.slots, s)
	return c
}

// Child appends ordinary children.
func (c *ComponentBuilder) Child(children ...any) *ComponentBuilder {
	c.children = append(c.children, children...)
	return c
}

// Children sets a parameterized children closure; the component supplies the
// arguments when it renders its children.
func (c *ComponentBuilder) Children(fn func(args ...any) Node) *ComponentBuilder {
	c.childrenFn = fn
	return c
}

// Render invokes the component with its assembled props and renders the
// result.
func (c *ComponentBuilder) Render(w io.Writer) error {
	props := Props{
		order:      c.propOrder,
		values:     c.propVals,
		slots:      map[string][]Slot{},
		children:   c.children,
		childrenFn: c.childrenFn,
		events:     c.events,
	}
	for _, sb := range c.slots {
		props.slots[sb.name] = append(props.slots[sb.name], sb.build())
	}
	node := c.fn(props)
	if node == nil {
		return nil
	}
	return node.Render(w)
}

// Props carries the inputs of one component invocation.
type Props struct {
	order      []string
	values     map[string]any
	slots      map[string][]Slot
	children   []any
	childrenFn func(args ...any) Node
	events     []Event
}

// Get returns a prop value, resolved if dynamic. Missing props return nil.
func (p Props) Get(name string) any {
	return resolve(p.values[name])
}

// GetString returns a prop as a string, empty when missing.
func (p Props) GetString(name string) string {
	v := p.Get(name)
	if v == nil {
		return ""
	}
	return toString(v)
}

// GetBool returns a prop as a bool, false when missing.
func (p Props) GetBool(name string) bool {
	b, _ := p.Get(name).(bool)
	return b
}

// Has reports whether the prop was passed at all.
func (p Props) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Names returns the prop names in declaration order.
func (p Props) Names() []string {
	return p.order
}

// Slot returns the single instance of a scalar slot. ok is false when the
// slot was not passed; an absent optional slot is not an error.
func (p Props) Slot(name string) (Slot, bool) {
	ss := p.slots[name]
	if len(ss) == 0 {
		return Slot{}, false
	}
	return ss[0], true
}

// Slots returns all instances of a collection slot in declaration order.
func (p Props) Slots(name string) []Slot {
	return p.slots[name]
}

// Children renders the invocation's ordinary children. Arguments are passed
// through to a parameterized children closure; without one they are ignored.
func (p Props) Children(args ...any) Node {
	if p.childrenFn != nil {
		return p.childrenFn(args...)
	}
	return Frag(p.children...)
}

// Events returns the event handlers attached to the invocation.
func (p Props) Events() []Event {
	return p.events
}
