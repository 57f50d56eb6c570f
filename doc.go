// SPDX-License-Identifier: EPL-2.0

// Package audiocore provides a portable real-time audio I/O core for Go
// applications.
//
// The package wraps native audio backends behind one API: device
// enumeration with capability reporting, stream lifecycle management with
// a real-time callback, a lock-free ring buffer for feeding audio across
// threads, and a format/rate/channel conversion pipeline.
//
// # Quick Start
//
// A Context owns the backend, the device registry and the stream engine:
//
//	ctx, err := audiocore.NewContext(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Uninit()
//
//	cfg := audio.DefaultConfig()
//	s, err := ctx.OpenStream("", cfg, func(in, out []float32, frames int) {
//		audio.Silence(out)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	s.Start()
//	time.Sleep(time.Second)
//	s.Stop()
//
// # Backend Fallback
//
// NewContext builds a fallback chain from the configuration's backend
// toggles, always terminated by a silent no-op backend, and binds the
// first backend whose driver context initializes. An application on a
// machine with no sound hardware still gets a working (inaudible) API.
//
// # Playing Buffers
//
// Player converts a decoded audio.Buffer to the stream's configuration
// and feeds it through a lock-free ring into the real-time callback:
//
//	buf, _ := wav.Decode(file)
//	p, _ := audiocore.NewPlayer(ctx, audio.DefaultConfig(), buf)
//	p.Play()
//	p.Wait()
//	p.Close()
//
// # Device Changes
//
// Backends report hotplug through the device registry's queue. Call
// RescanDevices from a monitoring goroutine and ProcessEvents from the
// control goroutine to apply the changes.
package audiocore
