package irrigation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BeatGlow/moodface/face"
	"github.com/BeatGlow/moodface/pixel"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
)

type testSensor struct {
	samples []analog.Sample
	err     error
}

func (s *testSensor) Read() (analog.Sample, error) {
	if s.err != nil {
		return analog.Sample{}, s.err
	}
	if len(s.samples) == 0 {
		return analog.Sample{}, errors.New("no more samples")
	}
	sample := s.samples[0]
	s.samples = s.samples[1:]
	return sample, nil
}

type testPump struct {
	levels []gpio.Level
}

func (p *testPump) Out(l gpio.Level) error {
	p.levels = append(p.levels, l)
	return nil
}

type testPower struct {
	duty gpio.Duty
	freq physic.Frequency
}

func (p *testPower) PWM(duty gpio.Duty, f physic.Frequency) error {
	p.duty, p.freq = duty, f
	return nil
}

type testScreen struct {
	*pixel.MonoVerticalLSBImage
	refreshes int
	err       error
}

func (s *testScreen) Refresh() error {
	s.refreshes++
	return s.err
}

func raw(v ...int32) []analog.Sample {
	samples := make([]analog.Sample, len(v))
	for i := range v {
		samples[i].Raw = v[i]
	}
	return samples
}

func newTestController(t *testing.T, sensor Sensor, pump Pump, screen face.Canvas) (*Controller, *[]time.Duration) {
	t.Helper()
	c, err := New(sensor, pump, screen, nil)
	if err != nil {
		t.Fatal(err)
	}
	var sleeps []time.Duration
	c.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return ctx.Err()
	}
	return c, &sleeps
}

func TestVoltage(t *testing.T) {
	c, _ := newTestController(t, &testSensor{}, &testPump{}, nil)
	tests := []struct {
		sample analog.Sample
		want   physic.ElectricPotential
	}{
		{analog.Sample{Raw: 0}, 0},
		{analog.Sample{Raw: 4095}, 3300 * physic.MilliVolt},
		{analog.Sample{Raw: 2048}, 1650402930},
		{analog.Sample{Raw: 4095, V: 1200 * physic.MilliVolt}, 1200 * physic.MilliVolt},
	}
	for _, test := range tests {
		if v := c.Voltage(test.sample); v != test.want {
			t.Errorf("%+v: expected %s, got %s", test.sample, test.want, v)
		}
	}

	if v := c.Level(0); v != 1 {
		t.Errorf("expected level 1 at 0V, got %g", v)
	}
	if v := c.Level(4 * physic.Volt); v != 0 {
		t.Errorf("expected level 0 above reference, got %g", v)
	}
}

func TestStep(t *testing.T) {
	var (
		// 3103 is just above 2.5V, 3102 just below
		sensor = &testSensor{samples: raw(1000, 1000, 3103, 3102, 3102, 4095, 2000)}
		pump   = &gpiotest.Pin{N: "PUMP"}
		screen = &testScreen{MonoVerticalLSBImage: pixel.NewMonoVerticalLSBImage(128, 64)}
	)
	c, sleeps := newTestController(t, sensor, pump, screen)

	type step struct {
		pump  gpio.Level
		mood  face.Mood
		sleep time.Duration
	}
	want := []step{
		{gpio.Low, face.Happy, 0},
		{gpio.Low, face.Happy, 0},
		{gpio.High, face.Sad, 9 * time.Second},
		{gpio.Low, face.Happy, 0},
		{gpio.Low, face.Happy, 0},
		{gpio.High, face.Sad, 9 * time.Second},
		{gpio.Low, face.Happy, 0},
	}
	for i, w := range want {
		*sleeps = nil
		if err := c.Step(context.Background()); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if v := pump.Read(); v != w.pump {
			t.Errorf("step %d: expected pump %s, got %s", i, w.pump, v)
		}
		if v := c.Mood(); v != w.mood {
			t.Errorf("step %d: expected mood %s, got %s", i, w.mood, v)
		}
		var slept time.Duration
		for _, d := range *sleeps {
			slept += d
		}
		if slept != w.sleep {
			t.Errorf("step %d: expected to water for %s, got %s", i, w.sleep, slept)
		}
		if screen.refreshes != i+1 {
			t.Errorf("step %d: expected %d refreshes, got %d", i, i+1, screen.refreshes)
		}
	}
}

func TestPumpOffLatch(t *testing.T) {
	var (
		sensor = &testSensor{samples: raw(0, 0, 0, 4095, 0, 0)}
		pump   = new(testPump)
	)
	c, _ := newTestController(t, sensor, pump, nil)
	for i := 0; i < 6; i++ {
		if err := c.Step(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	want := []gpio.Level{gpio.Low, gpio.High, gpio.Low}
	if len(pump.levels) != len(want) {
		t.Fatalf("expected pump commands %v, got %v", want, pump.levels)
	}
	for i := range want {
		if pump.levels[i] != want[i] {
			t.Errorf("command %d: expected %s, got %s", i, want[i], pump.levels[i])
		}
	}
}

func TestRun(t *testing.T) {
	var (
		sensor = &testSensor{samples: raw(0, 0, 0)}
		pump   = new(testPump)
	)
	c, err := New(sensor, pump, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var intervals int
	c.sleep = func(_ context.Context, d time.Duration) error {
		if d != time.Second {
			t.Errorf("expected 1s interval, got %s", d)
		}
		if intervals++; intervals == 3 {
			cancel()
			return ctx.Err()
		}
		return nil
	}
	if err = c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context canceled, got %v", err)
	}
	if intervals != 3 {
		t.Errorf("expected 3 intervals, got %d", intervals)
	}

	sensor.err = errors.New("adc")
	if err = c.Run(context.Background()); !errors.Is(err, sensor.err) {
		t.Errorf("expected sensor error, got %v", err)
	}
}

func TestStepBrokenScreen(t *testing.T) {
	var (
		sensor = &testSensor{samples: raw(4095, 0, 4095)}
		pump   = new(testPump)
		screen = &testScreen{
			MonoVerticalLSBImage: pixel.NewMonoVerticalLSBImage(128, 64),
			err:                  errors.New("nack"),
		}
	)
	c, sleeps := newTestController(t, sensor, pump, screen)
	for i, mood := range []face.Mood{face.Sad, face.Happy, face.Sad} {
		if err := c.Step(context.Background()); err != nil {
			t.Fatalf("step %d: expected display error to be ignored, got %v", i, err)
		}
		if v := c.Mood(); v != mood {
			t.Errorf("step %d: expected mood %s, got %s", i, mood, v)
		}
	}

	want := []gpio.Level{gpio.High, gpio.Low, gpio.High}
	if len(pump.levels) != len(want) {
		t.Fatalf("expected pump commands %v, got %v", want, pump.levels)
	}
	for i := range want {
		if pump.levels[i] != want[i] {
			t.Errorf("command %d: expected %s, got %s", i, want[i], pump.levels[i])
		}
	}
	if len(*sleeps) != 2 {
		t.Errorf("expected 2 watering periods, got %d", len(*sleeps))
	}
	if screen.refreshes != 3 {
		t.Errorf("expected 3 refreshes, got %d", screen.refreshes)
	}
}

func TestRunStopsPump(t *testing.T) {
	var (
		sensor = &testSensor{samples: raw(4095)}
		pump   = &gpiotest.Pin{N: "PUMP"}
	)
	c, err := New(sensor, pump, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.sleep = func(ctx context.Context, d time.Duration) error {
		if d != DefaultConfig.WaterFor {
			t.Errorf("expected to be watering, got a %s sleep", d)
		}
		if v := pump.Read(); v != gpio.High {
			t.Errorf("expected pump on while watering, got %s", v)
		}
		cancel()
		return ctx.Err()
	}
	if err = c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context canceled, got %v", err)
	}
	if v := pump.Read(); v != gpio.Low {
		t.Errorf("expected pump off after Run returned, got %s", v)
	}

	// hardware errors stop the pump as well
	sensor.samples = raw(4095)
	c.sleep = func(context.Context, time.Duration) error { return nil }
	if err = c.Run(context.Background()); err == nil {
		t.Fatal("expected error once the sensor runs out of samples")
	}
	if v := pump.Read(); v != gpio.Low {
		t.Errorf("expected pump off after sensor error, got %s", v)
	}
}

func TestPowerSensor(t *testing.T) {
	c, _ := newTestController(t, &testSensor{}, &testPump{}, nil)
	pin := new(testPower)
	if err := c.PowerSensor(pin); err != nil {
		t.Fatal(err)
	}
	if pin.duty != gpio.DutyMax {
		t.Errorf("expected full duty cycle, got %s", pin.duty)
	}
	if pin.freq != 477*physic.Hertz {
		t.Errorf("expected 477Hz, got %s", pin.freq)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(nil, &testPump{}, nil, nil); err == nil {
		t.Error("expected error without sensor")
	}
	if _, err := New(&testSensor{}, nil, nil, nil); err == nil {
		t.Error("expected error without pump")
	}
	if _, err := New(&testSensor{}, &testPump{}, nil, &Config{DryThreshold: 5 * physic.Volt}); err == nil {
		t.Error("expected error for threshold above reference")
	}

	c, err := New(&testSensor{}, &testPump{}, nil, &Config{WaterFor: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	if c.config.WaterFor != time.Minute || c.config.Interval != DefaultConfig.Interval {
		t.Errorf("unexpected config %+v", c.config)
	}
}
