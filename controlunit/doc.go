// Package controlunit provides a high-level API for driving a Carrera
// control unit over a pluggable transport.
//
// # Overview
//
// ControlUnit turns each high-level operation into a single framed
// request/response exchange with the device: build the request, send it
// through the Backend, decode the response, map failures into the
// package's error taxonomy.
//
// # Basic Usage
//
//	backend := serialport.New("/dev/ttyUSB0")
//	cu := controlunit.New(backend)
//
//	ctx := context.Background()
//	if err := cu.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer cu.Disconnect(ctx)
//
//	status, err := cu.GetStatus(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch s := status.(type) {
//	case protocol.TrackStatus:
//	    fmt.Println("start signal:", s.StartSignal)
//	case protocol.LapStatus:
//	    fmt.Println("lap time:", s.Time)
//	}
//
// # Configuration Options
//
//	cu := controlunit.New(backend,
//	    controlunit.WithTimeout(5*time.Second),
//	    controlunit.WithLogger(myLogger),
//	)
//
// # Concurrency
//
// The wire protocol has no request tagging: a second request issued
// before the first response arrives cannot be correlated. Operations on
// the same ControlUnit must therefore be serialized by the caller, one
// exchange in flight at a time.
//
// # Error Handling
//
// Every operation returns either a typed value or an error from the
// closed taxonomy in errors.go. Failures are surfaced immediately;
// nothing is retried internally.
package controlunit
