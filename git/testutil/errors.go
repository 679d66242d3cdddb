package testutil

import "net"

var errUnreachable = &net.OpError{
	Op:  "dial",
	Net: "tcp",
	Err: &net.DNSError{Err: "no such host", Name: "github.com", IsNotFound: true},
}
