package log

// Driver is an output sink for log entries. A driver owns its output
// resource exclusively but may itself be registered with any number of
// channels. Submit must not modify the entry.
type Driver interface {
	// Submit writes a log entry to the driver's output.
	Submit(e *Entry) error

	// Close releases the driver's output resource.
	Close() error
}

// Channel routes an entry through policies and, when every policy
// accepts, fans it out to drivers.
type Channel interface {
	// Submit runs the entry through the registered policies and drivers.
	Submit(e *Entry) error

	// RegisterDrivers appends drivers to the fan-out sequence.
	RegisterDrivers(drvs ...Driver)

	// RegisterPolicies appends policies to the filter sequence.
	RegisterPolicies(plcs ...Policy)
}

// Group is the standard Channel implementation. Drivers and policies
// are kept in registration order; duplicates are allowed and receive
// the entry once per registration.
type Group struct {
	drivers  []Driver
	policies []Policy
}

// NewGroup creates a channel pre-registered with the given drivers.
func NewGroup(drvs ...Driver) *Group {
	return &Group{drivers: drvs}
}

// RegisterDrivers appends drivers to the fan-out sequence.
func (g *Group) RegisterDrivers(drvs ...Driver) {
	g.drivers = append(g.drivers, drvs...)
}

// RegisterPolicies appends policies to the filter sequence.
func (g *Group) RegisterPolicies(plcs ...Policy) {
	g.policies = append(g.policies, plcs...)
}

// Submit evaluates policies in registration order; the first rejection
// drops the entry with no driver invoked. Otherwise every driver
// receives the entry in registration order. A driver error does not
// stop the fan-out; the last error is returned once all drivers have
// been given the entry.
func (g *Group) Submit(e *Entry) error {
	for _, plc := range g.policies {
		if !plc.TransformEntry(e) {
			return nil
		}
	}

	var lastErr error
	for _, drv := range g.drivers {
		if err := drv.Submit(e); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes every registered driver and returns the last error.
// Only meaningful when the group is the sole owner of its drivers.
func (g *Group) Close() error {
	var lastErr error
	for _, drv := range g.drivers {
		if err := drv.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
