package network

import (
	"context"
	"net"
)

var (
	DialWithPreference = dialWithPreference
	DialWithIPStack    = dialWithIPStack
)

func NoopProvider() *noopProvider {
	return &noopProvider{}
}

// SOCKSForwardDial dials the way the SOCKS5 client reaches its proxy.
func SOCKSForwardDial(network, addr, ipStack string) (net.Conn, error) {
	return (&ipStackDialer{ipStack: ipStack}).Dial(network, addr)
}

func SOCKSForwardDialContext(ctx context.Context, network, addr, ipStack string) (net.Conn, error) {
	return (&ipStackDialer{ipStack: ipStack}).DialContext(ctx, network, addr)
}
