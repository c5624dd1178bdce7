package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"courtside-backend/cmd/courtside-cli/cmd"
	"courtside-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()

	instance, err := telemetry.SetupFromEnv(ctx, "courtside-cli")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		err := instance.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	}()

	cmd.Execute(ctx)
}
