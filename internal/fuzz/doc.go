// Package fuzztests holds Go fuzz harnesses for the FanC front end and the
// IR emitter. Every input must either compile to verifiable IR or stop at
// a single language error; panics and hangs are failures.
package fuzztests
