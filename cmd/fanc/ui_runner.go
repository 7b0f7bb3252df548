package main

import (
	"context"
	"io"

	"fanc/internal/buildpipeline"
	"fanc/internal/ui"
)

type buildOutcome struct {
	result *buildpipeline.Result
	err    error
}

// runBuildWithUI runs the build in the background and renders its progress
// events until the build closes the channel.
func runBuildWithUI(ctx context.Context, title string, req *buildpipeline.Request, out io.Writer) (*buildpipeline.Result, error) {
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := buildpipeline.Build(ctx, &reqCopy)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	uiErr := ui.RunProgress(title, req.Files, events, out)
	// Drain whatever the view did not consume so the build never blocks.
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
