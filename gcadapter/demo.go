//go:build none
// +build none

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Gurvan/go-joydrive"
	gca "github.com/Gurvan/go-joydrive/gcadapter"
)

func main() {
	adapter, err := gca.NewGCAdapter()
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}
	defer adapter.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	adapter.StartPolling(ctx)

	// Give the adapter a moment to report, then drive from the first
	// plugged-in port.
	time.Sleep(100 * time.Millisecond)
	plugged := adapter.Controllers()
	if len(plugged) == 0 {
		fmt.Println("no controller plugged in")
		return
	}
	port := uint8(len(gca.Ports))
	for _, p := range gca.Ports {
		if _, ok := plugged[p]; ok {
			fmt.Printf("Controller %d plugged in\n", p+1)
			if p < port {
				port = p
			}
		}
	}

	g := joydrive.DefaultGeometry()
	source := gca.NewStickSource(adapter, port, g)

	ticker := time.NewTicker(time.Second / time.Duration(60))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p, ok := source.Pointer(); ok {
				d := g.Compute(p).Drive
				fmt.Printf("FWD = %.2f STR = %.2f RCW = %.2f\n", d.FWD, d.STR, d.RCW)
			}
		}
	}
}
