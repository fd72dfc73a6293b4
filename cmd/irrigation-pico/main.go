//go:build tinygo && rp2040

// Command irrigation-pico is the RP2040 firmware of the irrigation controller.
//
// Wiring: moisture probe on ADC0 (GPIO26) powered from GPIO2, pump driver on
// GPIO15, SSD1306 display on I2C1 with SDA on GPIO18 and SCL on GPIO19.
package main

import (
	"context"
	"log"
	"machine"
	"time"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	display "github.com/BeatGlow/moodface"
	"github.com/BeatGlow/moodface/irrigation"
)

const (
	sensorPin = machine.ADC0
	powerPin  = machine.GPIO2
	pumpPin   = machine.GPIO15
	sdaPin    = machine.GPIO18
	sclPin    = machine.GPIO19
)

// adcSensor scales the 16-bit TinyGo reading down to the 12-bit converter value.
type adcSensor struct {
	adc machine.ADC
}

func (s adcSensor) Read() (analog.Sample, error) {
	return analog.Sample{Raw: int32(s.adc.Get() >> 4)}, nil
}

type outputPin machine.Pin

func (p outputPin) Out(l gpio.Level) error {
	machine.Pin(p).Set(bool(l))
	return nil
}

type pwmPin machine.Pin

func (p pwmPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	pwm := machine.PWM1
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(f.Period().Nanoseconds())}); err != nil {
		return err
	}
	ch, err := pwm.Channel(machine.Pin(p))
	if err != nil {
		return err
	}
	pwm.Set(ch, uint32(uint64(pwm.Top())*uint64(duty)/uint64(gpio.DutyMax)))
	return nil
}

func main() {
	// give the USB console a moment to attach
	time.Sleep(2 * time.Second)

	machine.InitADC()
	adc := machine.ADC{Pin: sensorPin}
	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		fatal(err)
	}

	pumpPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pumpPin.Low()

	bus := machine.I2C1
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       sdaPin,
		SCL:       sclPin,
	}); err != nil {
		fatal(err)
	}

	screen, err := display.SSD1306(display.NewTinyGoI2C(bus, display.DefaultI2CConfig.Addr), nil)
	if err != nil {
		// keep watering without a status display
		log.Printf("display: %v", err)
	}

	config := irrigation.DefaultConfig
	config.ShowGauge = true

	var c *irrigation.Controller
	if screen != nil {
		c, err = irrigation.New(adcSensor{adc: adc}, outputPin(pumpPin), screen, &config)
	} else {
		c, err = irrigation.New(adcSensor{adc: adc}, outputPin(pumpPin), nil, &config)
	}
	if err != nil {
		fatal(err)
	}
	if err = c.PowerSensor(pwmPin(powerPin)); err != nil {
		fatal(err)
	}

	if err = c.Run(context.Background()); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	for {
		log.Printf("fatal: %v", err)
		time.Sleep(5 * time.Second)
	}
}
