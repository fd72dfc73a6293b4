// Package conn implements the raw bus backends used by the display drivers.
package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"tinygo.org/x/drivers"
)

// I2C is a write oriented connection to a single I²C peripheral.
type I2C struct {
	bus  i2c.BusCloser // nil if the bus is owned by the caller
	name string
	conn conn.Conn
}

// OpenI2C opens the numbered I²C bus from the periph.io registry, use -1 to open
// the first available bus.
func OpenI2C(device int, addr uint8) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}

	return &I2C{
		bus:  bus,
		name: bus.String(),
		conn: &i2c.Dev{Bus: bus, Addr: uint16(addr)},
	}, nil
}

// NewI2C wraps an already opened bus. Closing the connection leaves the bus open.
func NewI2C(bus i2c.Bus, addr uint16) *I2C {
	return &I2C{
		name: bus.String(),
		conn: &i2c.Dev{Bus: bus, Addr: addr},
	}
}

// NewTinyGoI2C wraps a TinyGo bus, such as a configured machine.I2C.
func NewTinyGoI2C(bus drivers.I2C, addr uint16) *I2C {
	dev := &tinygoDev{bus: bus, addr: addr}
	return &I2C{
		name: dev.String(),
		conn: dev,
	}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.name)
}

func (c *I2C) Close() error {
	if c.bus == nil {
		return nil
	}
	return c.bus.Close()
}

// Write sends p as a single bus transaction.
func (c *I2C) Write(p []byte) (int, error) {
	if err := c.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// tinygoDev adapts a TinyGo bus to a periph.io connection.
type tinygoDev struct {
	bus  drivers.I2C
	addr uint16
}

func (d *tinygoDev) String() string {
	return fmt.Sprintf("tinygo(%#02x)", d.addr)
}

func (d *tinygoDev) Tx(w, r []byte) error {
	return d.bus.Tx(d.addr, w, r)
}

func (d *tinygoDev) Duplex() conn.Duplex {
	return conn.Half
}

var _ conn.Conn = (*tinygoDev)(nil)
