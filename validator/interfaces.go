package validator

import (
	"context"
	"net"
)

// Resolver covers the DNS operations the checks need. *net.Resolver satisfies it, tests can use a stub.
type Resolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}
