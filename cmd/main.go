package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mpac-commercial/course-design-assessment/internal/app"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/shutdown"
)

func main() {
	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	application, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init app: %v\n", err)
		os.Exit(1)
	}

	runErr := application.Run(ctx)
	if runErr != nil {
		application.Log.Error("server exited", "error", runErr)
	}
	application.Close()
	if runErr != nil {
		os.Exit(1)
	}
}
