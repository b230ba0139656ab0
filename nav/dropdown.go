package nav

// Dropdown manages the mega-menu of one top-level entry.
// Which dropdown is open lives on the owning Shell so only one can be open at a time.
type Dropdown struct {
	entry Entry
	shell *Shell
}

// Label returns the owning entry's label
func (d *Dropdown) Label() string {
	return d.entry.Label
}

// ID returns the id of the dropdown region
func (d *Dropdown) ID() string {
	return MenuID(d.entry.Label)
}

// Children returns the rich menu items
func (d *Dropdown) Children() []ChildEntry {
	return d.entry.Children
}

// Groups returns the mega-menu link groups
func (d *Dropdown) Groups() []Group {
	return d.entry.Groups
}

// IsOpen reports whether this dropdown is the open one
func (d *Dropdown) IsOpen() bool {
	return d.shell.activeDropdown == d.entry.Label
}

// Open opens this dropdown, closing any other
func (d *Dropdown) Open() {
	d.shell.activeDropdown = d.entry.Label
}

// Close closes this dropdown if it is the open one
func (d *Dropdown) Close() {
	if d.IsOpen() {
		d.shell.activeDropdown = ""
	}
}

// Toggle flips the open state
func (d *Dropdown) Toggle() {
	if d.IsOpen() {
		d.Close()
		return
	}
	d.Open()
}

// handleClick closes the menu when the click landed outside its region
func (d *Dropdown) handleClick(e Event) {
	if !d.IsOpen() {
		return
	}
	if !within(e.Target, d.ID()) {
		d.Close()
	}
}

// handleMouseLeave closes the menu as soon as the pointer leaves its region
func (d *Dropdown) handleMouseLeave(e Event) {
	if e.Target == d.ID() {
		d.Close()
	}
}
