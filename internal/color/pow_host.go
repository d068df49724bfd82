//go:build !srgb_softpow

package color

var defaultPow Pow = HostPow{}
