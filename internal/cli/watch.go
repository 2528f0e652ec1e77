package cli

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// runPackWatch runs pack once, then re-runs it every time the orders file
// changes, until the command's context is cancelled.
func runPackWatch(ctx context.Context, opts packOpts) error {
	logger := loggerFromContext(ctx)

	if err := runPack(ctx, opts); err != nil {
		logger.Error("initial pack failed", zap.Error(err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(opts.ordersPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	logger.Info("watching for order file changes", zap.String("dir", dir))

	target := filepath.Clean(opts.ordersPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Info("orders file changed, re-packing", zap.String("file", event.Name))
			if err := runPack(ctx, opts); err != nil {
				logger.Error("re-pack failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}
