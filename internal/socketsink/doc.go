// Package socketsink forwards log records of a run to a socket.io server as
// "log" events, so that a dashboard can follow a training run live. The sink
// is optional and best effort: emitting never blocks the run on the network.
package socketsink
