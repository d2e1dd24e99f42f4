// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

/*
Package services provides suture.Service wrappers for server components.

HTTPServerService translates the blocking ListenAndServe pattern into
suture's context-aware Serve:

	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second, logger))

SnapshotWriterService persists a freshly decoded dataset once:

	tree.AddDataService(services.NewSnapshotWriterService(snapshots, raw, 0, logger))

Return values drive the supervisor:

	suture.ErrDoNotRestart  work is complete, remove the service
	ctx.Err()               shutdown requested
	other error             failure, restart with backoff

Every service implements fmt.Stringer so supervisor events name it.
*/
package services
