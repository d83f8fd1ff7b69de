package gcadapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/karalabe/usb"

	"github.com/Gurvan/go-joydrive/internal/log"
)

const (
	vendorID  = 0x057E
	productID = 0x0337

	reportSize = 37
)

var startPayload = []byte{0x13}

// ErrNotFound is returned when no Gamecube adapter is plugged in.
var ErrNotFound = errors.New("gcadapter: no adapter found")

// ErrShortRead is returned when a transfer does not carry a whole report.
var ErrShortRead = errors.New("gcadapter: incomplete read")

const (
	defaultMinBackoff = 10 * time.Millisecond
	defaultMaxBackoff = time.Second
)

// Ports lists the four controller ports of the adapter.
var Ports = [4]uint8{0, 1, 2, 3}

// GCAdapter represents a Gamecube controller USB adapter
type GCAdapter struct {
	controllers map[uint8]*rawGCInput
	offsets     map[uint8]*Offsets
	mutex       sync.RWMutex
	device      io.ReadWriteCloser
	buffer      []byte
	logger      log.Log
	minBackoff  time.Duration
	maxBackoff  time.Duration
	stopChan    chan struct{}
	stopOnce    sync.Once
	done        chan struct{}
}

// Option configures a GCAdapter.
type Option func(*GCAdapter)

// WithLogger sets the logger used to report polling errors.
func WithLogger(l log.Log) Option {
	return func(adapter *GCAdapter) { adapter.logger = l }
}

// WithRetryBackoff bounds the wait between failed reads while polling. The
// wait doubles on each consecutive failure and resets after a good report.
func WithRetryBackoff(lo, hi time.Duration) Option {
	return func(adapter *GCAdapter) {
		adapter.minBackoff = lo
		adapter.maxBackoff = hi
	}
}

// NewGCAdapter finds a Gamecube controller USB adapter, opens it and
// returns a pointer to it.
func NewGCAdapter(opts ...Option) (*GCAdapter, error) {
	if !usb.Supported() {
		return nil, errors.New("gcadapter: USB access not supported on this platform")
	}
	infos, err := usb.EnumerateRaw(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("gcadapter: enumerate: %w", err)
	}
	if len(infos) == 0 {
		return nil, ErrNotFound
	}
	device, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("gcadapter: open %s: %w", infos[0].Path, err)
	}
	adapter, err := Open(device, opts...)
	if err != nil {
		device.Close()
		return nil, err
	}
	return adapter, nil
}

// Open starts an adapter on an already opened device by sending the start
// payload.
func Open(device io.ReadWriteCloser, opts ...Option) (*GCAdapter, error) {
	adapter := &GCAdapter{
		controllers: make(map[uint8]*rawGCInput),
		offsets:     make(map[uint8]*Offsets),
		device:      device,
		buffer:      make([]byte, reportSize),
		logger:      log.Nop(),
		minBackoff:  defaultMinBackoff,
		maxBackoff:  defaultMaxBackoff,
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(adapter)
	}

	if _, err := device.Write(startPayload); err != nil {
		return nil, fmt.Errorf("gcadapter: send start payload: %w", err)
	}

	for _, PORT := range Ports {
		adapter.controllers[PORT] = neutralRawInput()
		adapter.offsets[PORT] = neutralRawInput()
	}
	return adapter, nil
}

// Poll polls the Gamecube USB adapter once
func (adapter *GCAdapter) Poll() error {
	return adapter.step()
}

// StartPolling starts a polling loop in its own goroutine. It runs until
// ctx is done, the adapter is closed or the device goes away. Once the
// device is gone every port reads as unplugged.
func (adapter *GCAdapter) StartPolling(ctx context.Context) {
	go func() {
		defer close(adapter.done)
		backoff := time.Duration(0)
		for {
			select {
			case <-ctx.Done():
				return
			case <-adapter.stopChan:
				return
			default:
			}

			err := adapter.step()
			if err == nil {
				backoff = 0
				continue
			}
			if errors.Is(err, io.EOF) {
				adapter.logger.Warn("gcadapter: device gone", log.Err(err))
				adapter.unplugAll()
				return
			}

			backoff = nextBackoff(backoff, adapter.minBackoff, adapter.maxBackoff)
			adapter.logger.Warn("gcadapter: polling error", log.Err(err), log.Duration("retry_in", backoff))
			t := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case <-adapter.stopChan:
				t.Stop()
				return
			case <-t.C:
			}
		}
	}()
}

func nextBackoff(cur, lo, hi time.Duration) time.Duration {
	if cur < lo {
		return lo
	}
	cur *= 2
	if cur > hi {
		return hi
	}
	return cur
}

func (adapter *GCAdapter) unplugAll() {
	adapter.mutex.Lock()
	defer adapter.mutex.Unlock()
	for _, PORT := range Ports {
		adapter.controllers[PORT] = neutralRawInput()
		adapter.offsets[PORT] = neutralRawInput()
	}
}

// Close stops polling and releases the device.
func (adapter *GCAdapter) Close() error {
	adapter.stopOnce.Do(func() { close(adapter.stopChan) })
	return adapter.device.Close()
}

// Done is closed when the polling loop has exited.
func (adapter *GCAdapter) Done() <-chan struct{} {
	return adapter.done
}

func (adapter *GCAdapter) step() error {
	// One transfer is one report; a short one is dropped, never merged
	// with the next.
	n, err := adapter.device.Read(adapter.buffer)
	if err != nil {
		return fmt.Errorf("failed to read from device: %w", err)
	}
	if n != reportSize {
		return fmt.Errorf("%w: got %d bytes, expected %d", ErrShortRead, n, reportSize)
	}

	controllers, err := DeserializeGCControllers(adapter.buffer)
	if err != nil {
		return err
	}

	adapter.mutex.Lock()
	defer adapter.mutex.Unlock()

	for PORT, controller := range controllers {
		if adapter.offsets[PORT].PluggedIn != controller.PluggedIn || controller.resetCombo() {
			adapter.offsets[PORT] = controller
		}
		adapter.controllers[PORT] = controller
	}
	return nil
}

// Controller returns the current state of the controller on port PORT.
func (adapter *GCAdapter) Controller(PORT uint8) *GCInputs {
	adapter.mutex.RLock()
	defer adapter.mutex.RUnlock()
	raw, ok := adapter.controllers[PORT]
	if !ok {
		return processRawController(neutralRawInput(), neutralRawInput())
	}
	return processRawController(raw, adapter.offsets[PORT])
}

// Controllers returns the current state of the plugged in controllers.
func (adapter *GCAdapter) Controllers() map[uint8]*GCInputs {
	adapter.mutex.RLock()
	defer adapter.mutex.RUnlock()
	gcInputs := make(map[uint8]*GCInputs)
	for _, PORT := range Ports {
		if adapter.controllers[PORT].PluggedIn {
			gcInputs[PORT] = processRawController(adapter.controllers[PORT], adapter.offsets[PORT])
		}
	}
	return gcInputs
}
