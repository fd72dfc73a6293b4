// Package irrigation implements the soil moisture control loop: it reads the
// moisture sensor, waters dry soil with the pump and shows the soil mood on the
// status display.
package irrigation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/BeatGlow/moodface/face"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Sensor is an analog soil moisture probe. A higher voltage means drier soil.
type Sensor interface {
	Read() (analog.Sample, error)
}

// Pump is the digital output switching the water pump.
type Pump interface {
	Out(gpio.Level) error
}

// PowerPin is a PWM capable output used to power the sensor.
type PowerPin interface {
	PWM(gpio.Duty, physic.Frequency) error
}

// Config is the control loop configuration. Zero fields use the value from
// [DefaultConfig].
type Config struct {
	// DryThreshold is the sensor voltage at or above which the soil is dry.
	DryThreshold physic.ElectricPotential

	// Reference is the ADC reference voltage.
	Reference physic.ElectricPotential

	// FullScale is the raw ADC reading at the reference voltage.
	FullScale int32

	// WaterFor is how long the pump runs per dry reading.
	WaterFor time.Duration

	// Interval is the time between readings.
	Interval time.Duration

	// PowerFrequency is the PWM frequency of the sensor supply.
	PowerFrequency physic.Frequency

	// ShowGauge adds the moisture gauge next to the face.
	ShowGauge bool
}

// DefaultConfig matches a capacitive probe on a 12-bit, 3.3V ADC.
var DefaultConfig = Config{
	DryThreshold:   2500 * physic.MilliVolt,
	Reference:      3300 * physic.MilliVolt,
	FullScale:      4095,
	WaterFor:       9 * time.Second,
	Interval:       time.Second,
	PowerFrequency: 477 * physic.Hertz,
}

// Controller runs the irrigation loop. It is driven from a single goroutine.
type Controller struct {
	config Config
	sensor Sensor
	pump   Pump
	screen face.Canvas

	// pumpOff latches once the pump was switched off for wet soil, so the
	// off command is only sent once per wet period.
	pumpOff bool
	mood    face.Mood

	sleep func(context.Context, time.Duration) error
}

// New returns a controller. The screen may be nil if no display is attached.
func New(sensor Sensor, pump Pump, screen face.Canvas, config *Config) (*Controller, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	c := &Controller{
		config: *config,
		sensor: sensor,
		pump:   pump,
		screen: screen,
		sleep:  sleep,
	}

	if c.config.DryThreshold <= 0 {
		c.config.DryThreshold = DefaultConfig.DryThreshold
	}
	if c.config.Reference <= 0 {
		c.config.Reference = DefaultConfig.Reference
	}
	if c.config.FullScale <= 0 {
		c.config.FullScale = DefaultConfig.FullScale
	}
	if c.config.WaterFor <= 0 {
		c.config.WaterFor = DefaultConfig.WaterFor
	}
	if c.config.Interval <= 0 {
		c.config.Interval = DefaultConfig.Interval
	}
	if c.config.PowerFrequency <= 0 {
		c.config.PowerFrequency = DefaultConfig.PowerFrequency
	}

	if sensor == nil {
		return nil, errors.New("irrigation: no sensor")
	}
	if pump == nil {
		return nil, errors.New("irrigation: no pump")
	}
	if c.config.DryThreshold > c.config.Reference {
		return nil, fmt.Errorf("irrigation: dry threshold %s above reference %s", c.config.DryThreshold, c.config.Reference)
	}

	return c, nil
}

// PowerSensor drives the sensor supply pin with a steady 100% duty cycle. It
// is a one time setup call.
func (c *Controller) PowerSensor(pin PowerPin) error {
	if err := pin.PWM(gpio.DutyMax, c.config.PowerFrequency); err != nil {
		return fmt.Errorf("irrigation: sensor power: %w", err)
	}
	return nil
}

// Voltage converts a sample to the sensor voltage. Drivers that only report
// the raw reading are scaled against the reference voltage.
func (c *Controller) Voltage(s analog.Sample) physic.ElectricPotential {
	if s.V != 0 {
		return s.V
	}
	return physic.ElectricPotential(int64(s.Raw) * int64(c.config.Reference) / int64(c.config.FullScale))
}

// Level returns the moisture level for a voltage, 0 being bone dry and 1 wet.
func (c *Controller) Level(v physic.ElectricPotential) float64 {
	level := 1 - float64(v)/float64(c.config.Reference)
	if level < 0 {
		return 0
	}
	return level
}

// Step takes one reading and acts on it. Dry soil is watered for the
// configured time before Step returns. Display failures are logged and never
// affect the pump.
func (c *Controller) Step(ctx context.Context) error {
	s, err := c.sensor.Read()
	if err != nil {
		return fmt.Errorf("irrigation: read sensor: %w", err)
	}
	v := c.Voltage(s)
	log.Printf("irrigation: reading %d, %s", s.Raw, v)

	if v >= c.config.DryThreshold {
		c.pumpOff = false
		log.Printf("irrigation: soil is dry, watering for %s", c.config.WaterFor)
		if err = c.pump.Out(gpio.High); err != nil {
			return fmt.Errorf("irrigation: pump on: %w", err)
		}
		c.show(face.Sad, v)
		return c.sleep(ctx, c.config.WaterFor)
	}

	if !c.pumpOff {
		log.Printf("irrigation: soil is wet, pump off")
		if err = c.pump.Out(gpio.Low); err != nil {
			return fmt.Errorf("irrigation: pump off: %w", err)
		}
		c.pumpOff = true
	}
	c.show(face.Happy, v)
	return nil
}

// Run calls Step every interval until the context is done, or until a
// hardware error occurs. The pump is switched off when Run returns.
func (c *Controller) Run(ctx context.Context) error {
	defer func() {
		if err := c.pump.Out(gpio.Low); err != nil {
			log.Printf("irrigation: pump off: %v", err)
			return
		}
		c.pumpOff = true
	}()

	for {
		if err := c.Step(ctx); err != nil {
			return err
		}
		if err := c.sleep(ctx, c.config.Interval); err != nil {
			return err
		}
	}
}

// Mood returns the mood last shown.
func (c *Controller) Mood() face.Mood {
	return c.mood
}

func (c *Controller) show(mood face.Mood, v physic.ElectricPotential) {
	c.mood = mood
	if c.screen == nil {
		return
	}
	if err := face.Show(c.screen, mood, c.Level(v), c.config.ShowGauge); err != nil {
		log.Printf("irrigation: show %s face: %v", mood, err)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
