// Package resolver discovers the host's public IPv4 address.
//
// Two transports are supported, selected by the URL scheme:
//
//   - http/https: a GET whose body is the address in plain text
//     (https://api.ipify.org, https://checkip.amazonaws.com).
//   - dns: an A (or TXT) query answered with the querying address
//     (dns://resolver1.opendns.com/myip.opendns.com).
//
// A resolver is a pure query. It keeps no state, does not retry, and reports
// every failure as *errors.NetworkError; retry policy belongs to the caller.
//
// # Usage
//
//	r, err := resolver.New(cfg.Resolver)
//	addr, err := r.Resolve(ctx)
package resolver
