// Package radio plans and applies the tuner settings of the FM front end.
//
// The tuner is centred a quarter of the sample rate below the wanted
// channel, so the channel arrives at +Fs/4 where the quarter-rate filter
// picks it up. Everything here is pure configuration; the device itself sits
// behind the Tuner interface.
package radio
