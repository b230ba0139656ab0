package nav

// DrawerState is the lifecycle phase of the mobile drawer.
// Opening and Closing only exist for transition styling; logic settles on Open or Closed.
type DrawerState string

const (
	DrawerClosed  DrawerState = "closed"
	DrawerOpening DrawerState = "opening"
	DrawerOpen    DrawerState = "open"
	DrawerClosing DrawerState = "closing"
)

// Drawer is the mobile slide-in panel holding the flattened navigation tree.
// While open it holds the document scroll lock, traps keyboard focus and
// listens for Escape and backdrop clicks.
type Drawer struct {
	doc          *Document
	links        []Link
	state        DrawerState
	release      func()
	detach       []func()
	returnFocus  string
	onTransition func(from, to DrawerState)
}

// NewDrawer builds a closed drawer listing links
func NewDrawer(doc *Document, links []Link, onTransition func(from, to DrawerState)) *Drawer {
	return &Drawer{
		doc:          doc,
		links:        links,
		state:        DrawerClosed,
		onTransition: onTransition,
	}
}

// State returns the settled state
func (d *Drawer) State() DrawerState {
	return d.state
}

// IsOpen reports whether the drawer is open
func (d *Drawer) IsOpen() bool {
	return d.state == DrawerOpen
}

// Links returns the drawer's links in display order
func (d *Drawer) Links() []Link {
	return d.links
}

// Open shows the drawer. trigger is the id of the control that opened it;
// focus returns there on close. Opening an open drawer does nothing.
func (d *Drawer) Open(trigger string) {
	if d.state == DrawerOpen {
		return
	}

	d.transition(DrawerOpening)
	d.release = d.doc.ScrollLock().Acquire()

	d.returnFocus = d.doc.Focused()
	if trigger != "" {
		d.returnFocus = trigger
	}
	d.doc.Focus(d.focusables()[0])

	d.detach = append(d.detach,
		d.doc.AddListener(EventKeyDown, d.handleKey),
		d.doc.AddListener(EventClick, d.handleClick),
	)
	d.transition(DrawerOpen)
}

// Close hides the drawer, gives back the scroll lock and restores focus.
// Closing a closed drawer does nothing, so scroll is never restored twice.
func (d *Drawer) Close() {
	if d.state != DrawerOpen {
		return
	}

	d.transition(DrawerClosing)
	for _, fn := range d.detach {
		fn()
	}
	d.detach = nil

	if d.release != nil {
		d.release()
		d.release = nil
	}
	if d.returnFocus != "" {
		d.doc.Focus(d.returnFocus)
	}
	d.returnFocus = ""
	d.transition(DrawerClosed)
}

// Toggle opens a closed drawer and closes an open one
func (d *Drawer) Toggle(trigger string) {
	if d.IsOpen() {
		d.Close()
		return
	}
	d.Open(trigger)
}

func (d *Drawer) handleKey(e Event) {
	switch e.Key {
	case KeyEscape:
		d.Close()
	case KeyTab:
		d.cycleFocus(e.Shift)
	}
}

func (d *Drawer) handleClick(e Event) {
	if e.Target == DrawerBackdropID || e.Target == DrawerCloseID {
		d.Close()
	}
}

// cycleFocus moves focus to the next (or previous) focusable inside the drawer,
// wrapping at both ends. Focus outside the drawer is pulled back to the first item.
func (d *Drawer) cycleFocus(back bool) {
	ids := d.focusables()
	cur := -1
	focused := d.doc.Focused()
	for i, id := range ids {
		if id == focused {
			cur = i
			break
		}
	}

	var next int
	switch {
	case cur < 0:
		next = 0
	case back:
		next = (cur - 1 + len(ids)) % len(ids)
	default:
		next = (cur + 1) % len(ids)
	}
	d.doc.Focus(ids[next])
}

// focusables lists the drawer's focus order: the close button then every link
func (d *Drawer) focusables() []string {
	ids := make([]string, 0, len(d.links)+1)
	ids = append(ids, DrawerCloseID)
	for i := range d.links {
		ids = append(ids, DrawerItemID(i))
	}
	return ids
}

func (d *Drawer) transition(to DrawerState) {
	from := d.state
	d.state = to
	if d.onTransition != nil {
		d.onTransition(from, to)
	}
}
