package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/payloadguard/internal/app"
)

func main() {
	application := app.New()             // Initialize the application
	code := application.Run(os.Args[1:]) // Run the selected command and keep its exit code

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Stop(ctx) // Flush telemetry and close resources
	cancel()

	os.Exit(code)
}
