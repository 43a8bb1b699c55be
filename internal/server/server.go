package server

// Server aggregates the entity-specific HTTP servers. The deals server is the
// only one today.
type Server struct {
	DealsServer
}

func NewServer(
	dealsServer DealsServer,
) Server {
	return Server{
		DealsServer: dealsServer,
	}
}
