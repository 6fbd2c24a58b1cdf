package coordinator

import (
	"fmt"
	"net"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/cuemby/gridworks/api/proto"
)

// Listener wraps a Server with the gRPC and HTTP listeners cmd/coordinator
// runs in production. The protocol carries no peer authentication, so
// the gRPC server is plaintext; job payloads carry their own deployment
// credentials.
type Listener struct {
	server *Server
	grpc   *grpc.Server
	health *health.Server
}

// NewListener wraps server with a gRPC server exposing both coordinator
// services plus the standard gRPC health-checking service.
func NewListener(server *Server) *Listener {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()

	proto.RegisterGridCoordinatorServer(grpcServer, server)
	proto.RegisterGridAgentServiceServer(grpcServer, server)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Listener{server: server, grpc: grpcServer, health: healthServer}
}

// ServeGRPC blocks serving the gRPC listener on addr until Stop is called.
func (l *Listener) ServeGRPC(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("coordinator: listening on %s: %w", addr, err)
	}
	return l.grpc.Serve(lis)
}

// ServeHTTP blocks serving /health, /ready and /metrics on addr until
// the process exits; callers typically run it in its own goroutine
// alongside ServeGRPC.
func (l *Listener) ServeHTTP(addr string) error {
	return http.ListenAndServe(addr, l.server.HealthMux())
}

// Stop gracefully stops the gRPC server.
func (l *Listener) Stop() {
	l.health.Shutdown()
	l.grpc.GracefulStop()
}
