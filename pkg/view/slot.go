package view

// SlotBuilder accumulates one slot instance attached to a component
// invocation.
type SlotBuilder struct {
	name string

	propOrder []string
	propVals  map[string]any

	toggles []classToggle
	styles  []styleEntry
	events  []Event
	uses    []UseCall
	binds   []BindCall
	clones  []CloneCall

	children   []any
	childrenFn func(args ...any) Node
}

// NewSlot starts building a slot instance with the given runtime name.
func NewSlot(name string) *SlotBuilder {
	return &SlotBuilder{name: name, propVals: map[string]any{}}
}

// Prop sets a named slot prop.
func (s *SlotBuilder) Prop(name string, value any) *SlotBuilder {
	if _, ok := s.propVals[name]; !ok {
		s.propOrder = append(s.propOrder, name)
	}
	s.propVals[name] = value
	return s
}

// Attr forwards a plain attribute as a prop.
func (s *SlotBuilder) Attr(name string, value any) *SlotBuilder {
	return s.Prop(name, value)
}

// ClassToggle records a conditional class for the component to consume.
func (s *SlotBuilder) ClassToggle(name string, cond any) *SlotBuilder {
	s.toggles = append(s.toggles, classToggle{name: name, cond: cond})
	return s
}

// StyleProp records a style property.
func (s *SlotBuilder) StyleProp(name string, value any) *SlotBuilder {
	s.styles = append(s.styles, styleEntry{name: name, value: value})
	return s
}

// On records an event handler.
func (s *SlotBuilder) On(name string, handler any) *SlotBuilder {
	s.events = append(s.events, Event{Name: name, Handler: handler})
	return s
}

// Use records a use: directive.
func (s *SlotBuilder) Use(fn any, arg ...any) *SlotBuilder {
	u := UseCall{Fn: fn}
	if len(arg) > 0 {
		u.Arg = arg[0]
	}
	s.uses = append(s.uses, u)
	return s
}

// Bind records a two-way binding.
func (s *SlotBuilder) Bind(key string, value any) *SlotBuilder {
	s.binds = append(s.binds, BindCall{Key: key, Value: value})
	return s
}

// Clone records a clone: directive.
func (s *SlotBuilder) Clone(name string, value any) *SlotBuilder {
	s.clones = append(s.clones, CloneCall{Name: name, Value: value})
	return s
}

// Child appends children.
func (s *SlotBuilder) Child(children ...any) *SlotBuilder {
	s.children = append(s.children, children...)
	return s
}

// Children sets a parameterized children closure. The component supplies the
// arguments when it renders the slot.
func (s *SlotBuilder) Children(fn func(args ...any) Node) *SlotBuilder {
	s.childrenFn = fn
	return s
}

// build freezes the builder into the Slot value handed to the component.
func (s *SlotBuilder) build() Slot {
	return Slot{
		Name:       s.name,
		values:     s.propVals,
		children:   s.children,
		childrenFn: s.childrenFn,
	}
}

// Slot is one slot instance as seen by the component through Props.
type Slot struct {
	Name string

	values     map[string]any
	children   []any
	childrenFn func(args ...any) Node
}

// Get returns a slot prop value, resolved if dynamic.
func (s Slot) Get(name string) any {
	return resolve(s.values[name])
}

// GetBool returns a slot prop as a bool, false when missing.
func (s Slot) GetBool(name string) bool {
	b, _ := s.Get(name).(bool)
	return b
}

// Has reports whether the slot prop was passed.
func (s Slot) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Children renders the slot's children. Arguments are forwarded to the
// children closure when the slot declared parameters.
func (s Slot) Children(args ...any) Node {
	if s.childrenFn != nil {
		return s.childrenFn(args...)
	}
	return Frag(s.children...)
}
