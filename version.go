package cldurl

// Version is the SDK version reported in analytics signatures.
// Release builds override it with:
//
//	go build -ldflags "-X github.com/pthm/cldurl.Version=1.4.0"
//
// Builders read it once in New; Config.SDKVersion takes precedence.
var Version = "1.3.3"
