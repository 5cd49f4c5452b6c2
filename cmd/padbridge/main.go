package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gethiox/padbridge/internal/pkg/bridge"
	"github.com/gethiox/padbridge/internal/pkg/canbus"
	"github.com/gethiox/padbridge/internal/pkg/gamepad"
	"github.com/gethiox/padbridge/internal/pkg/logg"
	"go.uber.org/zap"
)

var (
	device      = flag.String("device", "", "controller device node, e.g. /dev/input/js0")
	iface       = flag.String("interface", "", "CAN interface to publish on, e.g. can0")
	freq        = flag.Float64("freq", 0, "publish frequency in Hz")
	accMin      = flag.Float64("acc_min", math.NaN(), "minimum acceleration")
	accMax      = flag.Float64("acc_max", math.NaN(), "maximum acceleration")
	decMin      = flag.Float64("dec_min", math.NaN(), "minimum deceleration")
	decMax      = flag.Float64("dec_max", math.NaN(), "maximum deceleration")
	steeringMin = flag.Float64("steering_min", math.NaN(), "minimum steering")
	steeringMax = flag.Float64("steering_max", math.NaN(), "maximum steering")
	canID       = flag.Uint("canid", canbus.DefaultFrameID, "CAN frame identifier of the actuation request")
	ps4         = flag.Bool("ps4", false, "controller is a DualShock 4 class device")
	verbose     = flag.Bool("verbose", false, "log every input event and published command")
	configPath  = flag.String("config", "", "optional ini file with bridge defaults")
)

func usage() {
	prog := os.Args[0]
	fmt.Fprintf(os.Stderr, "%s interfaces with the given game controller to publish actuation requests on a CAN bus.\n", prog)
	fmt.Fprintf(os.Stderr, "Usage:   %s --device=<controller device> --interface=<CAN interface> --freq=<frequency in Hz> "+
		"--acc_min=<minimum acceleration> --acc_max=<maximum acceleration> --dec_min=<minimum deceleration> "+
		"--dec_max=<maximum deceleration> --steering_min=<minimum steering> --steering_max=<maximum steering> "+
		"[--canid=<frame id>] [--ps4] [--verbose]\n", prog)
	fmt.Fprintf(os.Stderr, "Example: %s --device=/dev/input/js0 --interface=can0 --freq=100 --acc_min=0 --acc_max=50 "+
		"--dec_min=0 --dec_max=-10 --steering_min=-10 --steering_max=10\n", prog)
}

func incomplete() bool {
	if *device == "" || *iface == "" || *freq <= 0 {
		return true
	}
	for _, v := range []float64{*accMin, *accMax, *decMin, *decMax, *steeringMin, *steeringMax} {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

func main() {
	flag.Parse()
	if incomplete() {
		usage()
		os.Exit(1)
	}

	cfg := bridge.Config{
		Device: *device,
		Freq:   *freq,
		Range: gamepad.Range{
			AccelMin:    float32(*accMin),
			AccelMax:    float32(*accMax),
			DecelMin:    float32(*decMin),
			DecelMax:    float32(*decMax),
			SteeringMin: float32(*steeringMin),
			SteeringMax: float32(*steeringMax),
		},
		Family:       gamepad.DualShock3,
		Interface:    *iface,
		FrameID:      uint32(*canID),
		PollInterval: gamepad.DefaultPollInterval,
		Verbose:      *verbose,
	}
	if *ps4 {
		cfg.Family = gamepad.DualShock4
	}

	log := logg.New(cfg.Verbose)

	if *configPath != "" {
		if err := bridge.LoadFile(*configPath, &cfg); err != nil {
			log.Error("invalid config file", zap.String("path", *configPath), zap.Error(err))
			os.Exit(1)
		}
	}

	code := run(cfg, log)
	_ = log.Sync()
	os.Exit(code)
}

func run(cfg bridge.Config, log *zap.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dev, err := gamepad.Open(cfg.Device, log)
	if err != nil {
		log.Error("could not open device", zap.String("device", cfg.Device), zap.Error(err))
		return 1
	}
	defer dev.Close()

	transport, err := canbus.Dial(ctx, cfg.Interface, cfg.FrameID, log)
	if err != nil {
		log.Error("could not attach to bus", zap.String("interface", cfg.Interface), zap.Error(err))
		return 1
	}
	defer transport.Close()

	if !transport.IsRunning() {
		log.Error("bus attachment is not running", zap.String("interface", cfg.Interface))
		return 1
	}

	state := gamepad.NewState()
	b, err := bridge.New(state, transport, cfg.Freq, log)
	if err != nil {
		log.Error("invalid publish configuration", zap.Error(err))
		return 1
	}

	sampler := gamepad.NewSampler(dev, state, cfg.Range, gamepad.ProfileFor(cfg.Family), cfg.PollInterval, log)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := sampler.Run(ctx); err != nil {
			log.Error("sampling stopped", zap.Error(err))
		}
	}()

	err = b.Run(ctx)

	// unblock the sampler before closing the device
	stop()
	wg.Wait()

	if err != nil {
		log.Error("publish loop failed", zap.Error(err))
		return 1
	}
	return 0
}
