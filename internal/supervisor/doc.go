// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

/*
Package supervisor provides process supervision using suture v4.

The tree has two layers:

	coursecompass
	├── data-layer
	│   └── SnapshotWriterService (one-shot, only after a JSON load)
	└── api-layer
	    └── HTTPServerService

Services return suture.ErrDoNotRestart when their work is complete, nil or
ctx.Err() on shutdown, and any other error to request a restart. Supervisor
events are logged through sutureslog, which writes to an *slog.Logger backed
by the zerolog logger (see logging.NewSlogLogger).

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)
*/
package supervisor
