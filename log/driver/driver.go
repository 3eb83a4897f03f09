package driver

import (
	"github.com/dkovralev/goutil/log"
	"github.com/dkovralev/goutil/log/format"
)

// Formatting is implemented by drivers that render entries through a
// replaceable Formatter before writing.
type Formatting interface {
	log.Driver
	SetFormatter(f format.Formatter)
}

// fmtDriver carries the replaceable formatter shared by the built-in
// formatting drivers.
type fmtDriver struct {
	formatter format.Formatter
}

// SetFormatter replaces the driver's formatter. A nil formatter turns
// the driver into a silent sink.
func (d *fmtDriver) SetFormatter(f format.Formatter) {
	d.formatter = f
}
