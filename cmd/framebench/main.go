// framebench measures serialize/deserialize and frame build/parse latency
// over a synthetic telemetry workload.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/montanaflynn/stats"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/danmuck/framectl/internal/codec"
	"github.com/danmuck/framectl/internal/frame"
	"github.com/danmuck/framectl/internal/packet"
	"github.com/danmuck/framectl/internal/telemetry"
)

var (
	scenarioPath = kingpin.Flag("scenario", "Benchmark scenario TOML").String()
	iterations   = kingpin.Flag("iterations", "Iterations per operation").Default("10000").Int()
	samples      = kingpin.Flag("samples", "Sensor samples per reading").Default("5").Int()
	memProfile   = kingpin.Flag("memprofile", "Enable memory profiling").Bool()
)

func main() {
	kingpin.Parse()

	sc := scenario{Iterations: *iterations, Samples: *samples, SensorID: "SENSOR_001"}
	if *scenarioPath != "" {
		loaded, err := loadScenario(*scenarioPath, sc)
		if err != nil {
			log.Fatalln(err)
		}
		sc = loaded
	}
	if sc.Iterations < 1 {
		log.Fatalln("iterations must be positive")
	}

	if *memProfile {
		defer profile.Start(profile.MemProfile).Stop()
	}

	run(sc)
}

func run(sc scenario) {
	reading := sc.reading()

	serialized, err := codec.Marshal(reading)
	if err != nil {
		log.Fatalln("marshal:", err)
	}
	wire, err := packet.Create(telemetry.MsgSensorReading, reading)
	if err != nil {
		log.Fatalln("create:", err)
	}

	serialize := measure(sc.Iterations, func() {
		_, _ = codec.Marshal(reading)
	})
	deserialize := measure(sc.Iterations, func() {
		var out telemetry.SensorReading
		_ = codec.Unmarshal(serialized, &out)
	})
	build := measure(sc.Iterations, func() {
		_, _ = frame.Build(telemetry.MsgSensorReading, serialized)
	})
	parse := measure(sc.Iterations, func() {
		var out telemetry.SensorReading
		_ = packet.Parse(wire, &out)
	})

	fmt.Printf("scenario: iterations=%d samples=%d\n", sc.Iterations, sc.Samples)
	report("serialize", serialize)
	report("deserialize", deserialize)
	report("frame build", build)
	report("packet parse", parse)
	reportSizes(sc)
}

// measure runs fn n times and records per-call latency in nanoseconds.
func measure(n int, fn func()) *hdrhistogram.Histogram {
	h := hdrhistogram.New(1, int64(10*time.Second), 3)
	for i := 0; i < n; i++ {
		start := time.Now()
		fn()
		_ = h.RecordValue(time.Since(start).Nanoseconds())
	}
	return h
}

func report(name string, h *hdrhistogram.Histogram) {
	fmt.Printf("  %-13s p50=%6dns p99=%6dns max=%6dns mean=%.0fns\n",
		name,
		h.ValueAtQuantile(50),
		h.ValueAtQuantile(99),
		h.Max(),
		h.Mean())
}

// reportSizes summarizes wire size across sample counts up to the scenario's,
// showing the framing overhead spread.
func reportSizes(sc scenario) {
	sizes := make([]float64, 0, sc.Samples+1)
	for n := 0; n <= sc.Samples; n++ {
		r := sc.reading()
		r.Samples = r.Samples[:n]
		wire, err := packet.Create(telemetry.MsgSensorReading, r)
		if err != nil {
			log.Fatalln("create:", err)
		}
		sizes = append(sizes, float64(len(wire)))
	}
	med, err := stats.Median(sizes)
	if err != nil {
		log.Fatalln("median:", err)
	}
	mea, err := stats.Mean(sizes)
	if err != nil {
		log.Fatalln("mean:", err)
	}
	min, err := stats.Min(sizes)
	if err != nil {
		log.Fatalln("min:", err)
	}
	max, err := stats.Max(sizes)
	if err != nil {
		log.Fatalln("max:", err)
	}
	fmt.Printf("  wire bytes    min=%.0f median=%.0f mean=%.1f max=%.0f\n", min, med, mea, max)
}
