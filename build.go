package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Cross-compilation helper, the bridge usually runs on small ARM boxes
// mounted in the vehicle.
var availableTargets = []target{
	{goos: "linux", goarch: "arm", goarm: "6"},
	{goos: "linux", goarch: "arm", goarm: "7"},
	{goos: "linux", goarch: "arm64"},
	{goos: "linux", goarch: "386"},
	{goos: "linux", goarch: "amd64"},
}

type target struct {
	goos   string
	goarch string
	goarm  string
}

func (t *target) String() string {
	if t.goarm != "" {
		return fmt.Sprintf("%s-%s-v%s", t.goos, t.goarch, t.goarm)
	}
	return fmt.Sprintf("%s-%s", t.goos, t.goarch)
}

var selection, project, basename string
var race bool

func init() {
	var targets []string
	for _, t := range availableTargets {
		targets = append(targets, t.String())
	}
	flag.StringVar(&selection, "platforms", "all", fmt.Sprintf(
		"comma-separated target platform list\navailable: %s", strings.Join(targets, ",")),
	)
	flag.StringVar(&project, "project", "./cmd/padbridge/", "project directory to build")
	flag.StringVar(&basename, "base", "padbridge", "base filename for output binaries")
	flag.BoolVar(&race, "race", false, "include race detector")
	flag.Parse()
}

func build(t target) error {
	binaryPath := fmt.Sprintf("./builds/%s-%s", basename, t.String())

	envVars := []string{
		fmt.Sprintf("GOOS=%s", t.goos),
		fmt.Sprintf("GOARCH=%s", t.goarch),
		"CGO_ENABLED=0",
	}
	if t.goarm != "" {
		envVars = append(envVars, fmt.Sprintf("GOARM=%s", t.goarm))
	}

	params := []string{"build", "-o", binaryPath}
	if race {
		params = append(params, "-race")
	}
	params = append(params, project)

	cmd := exec.Command("go", params...)
	cmd.Env = append(os.Environ(), envVars...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w\n%s", t.String(), err, stderr.String())
	}
	return nil
}

func main() {
	log.SetFlags(log.Ltime)

	var selectedTargets []target
	if selection != "all" {
		for _, rt := range strings.Split(selection, ",") {
			found := false
			for _, t := range availableTargets {
				if t.String() == rt {
					selectedTargets = append(selectedTargets, t)
					found = true
					break
				}
			}
			if !found {
				log.Printf("target not found: %s", rt)
				os.Exit(1)
			}
		}
	} else {
		selectedTargets = availableTargets
	}

	var ok = true
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	log.Printf("engaging parallel building for %d targets", len(selectedTargets))
	for _, t := range selectedTargets {
		wg.Add(1)
		go func(t target) {
			defer wg.Done()
			if err := build(t); err != nil {
				log.Printf("building target failed: %s", err)
				mu.Lock()
				ok = false
				mu.Unlock()
				return
			}
			log.Printf("building target success: %s", t.String())
		}(t)
	}
	wg.Wait()

	if !ok {
		os.Exit(1)
	}
}
