package wizard

import "sync"

// Controller is the shared open/close switch of the booking dialog. Every
// page element that opens or closes the dialog holds the same *Controller.
type Controller struct {
	mu        sync.Mutex
	open      bool
	wizard    *Wizard
	listeners map[int]func(open bool)
	nextID    int
}

// NewController creates a closed controller owning w
func NewController(w *Wizard) *Controller {
	return &Controller{
		wizard:    w,
		listeners: make(map[int]func(bool)),
	}
}

// Open shows the dialog at DATE with a freshly generated calendar window.
// Calling Open on an open dialog changes nothing.
func (c *Controller) Open() {
	c.mu.Lock()
	if c.open {
		c.mu.Unlock()
		return
	}
	c.open = true
	c.wizard.RefreshWindow()
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(true)
	}
}

// Close hides the dialog, abandons any in-flight submission and clears the
// draft so the next Open starts blank. Closing a closed dialog is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return
	}
	c.open = false
	c.wizard.Reset()
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(false)
	}
}

// IsOpen reports whether the dialog is shown
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Wizard returns the wizard owned by the controller
func (c *Controller) Wizard() *Wizard {
	return c.wizard
}

// Subscribe registers fn for visibility changes and returns its unsubscribe func
func (c *Controller) Subscribe(fn func(open bool)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller) snapshotListeners() []func(bool) {
	out := make([]func(bool), 0, len(c.listeners))
	for _, fn := range c.listeners {
		out = append(out, fn)
	}
	return out
}
