package server

import "errors"

// errNoServerAddress is returned by NewServer when the configuration carries
// no HTTP listen address. This is treated as a fatal misconfiguration and
// causes the application to fail at startup.
var errNoServerAddress = errors.New("no server address is configured")
