package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/qdrawlabs/qdraw/internal/api"
	"github.com/qdrawlabs/qdraw/pkg/cache"
	"github.com/qdrawlabs/qdraw/pkg/storage"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	redis   string // Redis URL for the shared artifact cache
	mongo   string // MongoDB URI for diagram persistence
	mongoDB string // MongoDB database name
}

// newServeCmd creates the serve command, which runs the HTTP render API.
// Without --redis and --mongo the server runs fully in-process: no
// shared cache, in-memory diagram store.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080", mongoDB: "qdraw"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis URL for the shared artifact cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for diagram persistence (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	artifacts := cache.NewNullCache()
	if opts.redis != "" {
		var err error
		artifacts, err = cache.NewRedisCache(ctx, opts.redis)
		if err != nil {
			return err
		}
		logger.Info("connected artifact cache", "redis", opts.redis)
	}
	defer artifacts.Close()

	var store storage.Store = storage.NewMemoryStore()
	if opts.mongo != "" {
		ms, err := storage.NewMongoStore(ctx, opts.mongo, opts.mongoDB)
		if err != nil {
			return err
		}
		store = ms
		logger.Info("connected diagram store", "mongo", opts.mongo, "db", opts.mongoDB)
	}
	defer store.Close(context.Background())

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           api.NewServer(api.WithCache(artifacts), api.WithStore(store), api.WithLogger(logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
