package bridge

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BestDev/unreal-blueprint-mcp/client"
	catalog "github.com/BestDev/unreal-blueprint-mcp/schema"
	"github.com/BestDev/unreal-blueprint-mcp/server"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"
)

const instructions = "Tools and resources of a running Unreal Engine editor. Resources are addressed as unreal://{type}/{name}."

// New creates a bridge service for options
func New(ctx context.Context, options *Options, logger *slog.Logger) (*Service, error) {
	config, err := options.Config(ctx)
	if err != nil {
		return nil, err
	}
	registry, err := catalog.NewRegistry()
	if err != nil {
		return nil, err
	}
	clientOptions := append(config.Options(), client.WithLogger(logger))
	return NewService(client.New(config.URL, clientOptions...), registry, logger), nil
}

// Server returns an MCP server backed by the service
func (s *Service) Server(options ...server.Option) (*server.Server, error) {
	options = append([]server.Option{
		server.WithInstructions(instructions),
		server.WithNewOperations(func(ctx context.Context, logger *server.Logger) (server.Operations, error) {
			return &implementer{service: s, logger: logger}, nil
		}),
	}, options...)
	return server.New(options...)
}

// Run parses args and serves MCP until stdin closes or the process is signalled
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: options.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, err := New(ctx, options, logger)
	if err != nil {
		return err
	}
	defer service.Close()

	srv, err := service.Server(server.WithAllowedOrigins(options.Origins...))
	if err != nil {
		return err
	}
	logger.Info("starting bridge", "engine", service.client.BaseURL(), "http", options.HTTPAddr)
	group, ctx := errgroup.WithContext(ctx)
	if options.HTTPAddr != "" {
		httpServer := srv.HTTP(ctx, options.HTTPAddr)
		group.Go(func() error {
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
		return group.Wait()
	}
	group.Go(func() error {
		served := make(chan error, 1)
		go func() {
			served <- srv.Stdio(ctx).ListenAndServe()
		}()
		select {
		case err := <-served:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case <-ctx.Done():
			return nil
		}
	})
	return group.Wait()
}
