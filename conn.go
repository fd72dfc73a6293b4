package display

import (
	"io"

	"github.com/BeatGlow/moodface/conn"
	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command sends a single command byte. Command arguments are sent as
	// commands of their own.
	Command(byte) error

	// Data sends data bytes as a single transaction.
	Data(...byte) error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8
}

// DefaultI2CConfig is the configuration of a typical SSD1306 module.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

type i2cBus interface {
	io.Writer
	String() string
	Close() error
}

type i2cConn struct {
	i2cBus
	buf []byte
}

// OpenI2C opens an I²C bus through the periph.io registry. The host drivers must
// have been initialized before.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	if config.Addr == 0 {
		config.Addr = DefaultI2CConfig.Addr
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	return &i2cConn{i2cBus: c}, nil
}

// NewI2C uses an already opened periph.io bus.
func NewI2C(bus i2c.Bus, addr uint8) Conn {
	return &i2cConn{i2cBus: conn.NewI2C(bus, uint16(addr))}
}

// NewTinyGoI2C uses a TinyGo bus, such as a configured machine.I2C.
func NewTinyGoI2C(bus drivers.I2C, addr uint8) Conn {
	return &i2cConn{i2cBus: conn.NewTinyGoI2C(bus, uint16(addr))}
}

func (c *i2cConn) Command(cmnd byte) (err error) {
	if debug {
		logf("command %#02x", cmnd)
	}
	_, err = c.Write([]byte{ssd1xxxControlCommand, cmnd})
	return
}

func (c *i2cConn) Data(data ...byte) (err error) {
	if debug {
		logf("data %d bytes", len(data))
	}
	c.buf = append(append(c.buf[:0], ssd1xxxControlData), data...)
	_, err = c.Write(c.buf)
	return
}
