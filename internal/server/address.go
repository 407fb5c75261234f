package server

import "net"

// ListenAddresses expands a configured listen address into the concrete URLs
// a client can reach. A wildcard host ("", "0.0.0.0" or "::") is replaced by
// every IPv4 address assigned to the machine's interfaces; a concrete host is
// returned as-is.
func ListenAddresses(addr string) []string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return []string{"http://" + addr}
	}

	if host != "" && host != "0.0.0.0" && host != "::" {
		return []string{"http://" + addr}
	}

	ifaceAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return []string{"http://" + addr}
	}

	var urls []string
	for _, ifaceAddr := range ifaceAddrs {
		ipNet, ok := ifaceAddr.(*net.IPNet)
		if !ok {
			continue
		}

		ip := ipNet.IP.To4()
		if ip == nil {
			continue
		}

		urls = append(urls, "http://"+net.JoinHostPort(ip.String(), port))
	}

	if len(urls) == 0 {
		return []string{"http://" + addr}
	}

	return urls
}
