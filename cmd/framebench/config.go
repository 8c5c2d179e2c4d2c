package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/framectl/internal/telemetry"
)

// framebench scenario.toml key mapping.
type fileScenario struct {
	Iterations int    `toml:"iterations"`
	Samples    int    `toml:"samples"`
	SensorID   string `toml:"sensor_id"`
}

type scenario struct {
	Iterations int
	Samples    int
	SensorID   string
}

// loadScenario overlays scenario.toml onto defaults; only keys present in
// the file override.
func loadScenario(path string, defaults scenario) (scenario, error) {
	sc := defaults

	var raw fileScenario
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return scenario{}, fmt.Errorf("load scenario: %w", err)
	}

	if meta.IsDefined("iterations") {
		sc.Iterations = raw.Iterations
	}
	if meta.IsDefined("samples") {
		sc.Samples = raw.Samples
	}
	if meta.IsDefined("sensor_id") {
		sc.SensorID = strings.TrimSpace(raw.SensorID)
	}

	if sc.Samples < 0 {
		return scenario{}, fmt.Errorf("scenario samples must not be negative")
	}
	if sc.SensorID == "" {
		return scenario{}, fmt.Errorf("scenario sensor_id must not be empty")
	}
	return sc, nil
}

func (sc scenario) reading() telemetry.SensorReading {
	samples := make([]uint16, sc.Samples)
	for i := range samples {
		samples[i] = uint16(1024 << (i % 5))
	}
	return telemetry.SensorReading{
		Temperature: 22.5,
		Humidity:    65.0,
		Timestamp:   1735689600,
		SensorID:    sc.SensorID,
		Samples:     samples,
	}
}
