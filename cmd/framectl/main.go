// framectl builds a demo packet, dumps its wire image, and replays it
// byte-by-byte through a receiver, the way a serial peer would see it.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/danmuck/framectl/internal/config"
	"github.com/danmuck/framectl/internal/frame"
	"github.com/danmuck/framectl/internal/logging"
	"github.com/danmuck/framectl/internal/packet"
	"github.com/danmuck/framectl/internal/telemetry"
)

var (
	configPath = kingpin.Flag("config", "Link config TOML").String()
	msgID      = kingpin.Flag("id", "Message id for the frame header").Default("-1").Int()
	hexPayload = kingpin.Flag("payload", "Raw payload as hex instead of the telemetry demo").String()
	flipAt     = kingpin.Flag("flip", "Corrupt the wire byte at this offset before replay").Default("-1").Int()
)

func main() {
	logging.ConfigureRuntime()
	kingpin.Parse()

	cfg := config.DefaultLinkConfig()
	if *configPath != "" {
		loaded, err := config.LoadLinkConfig(*configPath)
		if err != nil {
			log.Error().Err(err).Msg("config")
			os.Exit(1)
		}
		cfg = loaded
		logging.SetLevel(cfg.LogLevel)
	}

	id := byte(cfg.MessageID)
	if *msgID >= 0 && *msgID <= 0xFF {
		id = byte(*msgID)
	}

	wire, err := buildWire(id)
	if err != nil {
		log.Error().Err(err).Msg("build packet")
		os.Exit(1)
	}
	dump("wire", wire)

	if *flipAt >= 0 && *flipAt < len(wire) {
		wire[*flipAt] ^= 0xFF
		log.Warn().Int("offset", *flipAt).Msg("corrupted wire byte")
		dump("corrupted", wire)
	}

	rv := frame.NewReceiverLimit(cfg.MaxFrameBytes)
	for _, res := range rv.Feed(wire) {
		if res.Valid {
			log.Info().
				Uint8("id", res.MessageID).
				Int("payload_bytes", len(res.Payload)).
				Msg("frame received")
		} else {
			log.Error().Err(res.Err).Msg("frame rejected")
		}
	}
}

func buildWire(id byte) ([]byte, error) {
	if *hexPayload != "" {
		raw, err := hex.DecodeString(*hexPayload)
		if err != nil {
			return nil, err
		}
		return frame.Build(id, raw)
	}
	return packet.Create(id, sampleReading())
}

func sampleReading() telemetry.SensorReading {
	return telemetry.SensorReading{
		Temperature: 22.5,
		Humidity:    65.0,
		Timestamp:   1735689600,
		SensorID:    "SENSOR_001",
		Samples:     []uint16{1024, 2048, 4096},
	}
}

func dump(label string, data []byte) {
	fmt.Printf("%s (%d bytes): % X\n", label, len(data), data)
}
