package server

// Server is the lifecycle contract for the transport server returned by
// [NewServer]. RunServer blocks until shutdown is requested; Shutdown
// drains in-flight requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
