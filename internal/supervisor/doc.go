// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package supervisor provides process supervision for Cadence using suture v4.

The tree isolates long-running services into layers that restart
independently:

	RootSupervisor ("cadence")
	├── StorageSupervisor ("storage-layer")
	│   ├── FlushService ("profile-flush")
	│   └── PeriodicService ("value-log-gc")
	├── DiscoverySupervisor ("discovery-layer")
	│   └── PeriodicService ("search-cache-janitor")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service start, panic, backoff) are logged through
sutureslog, bridged onto zerolog by logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(),
	    supervisor.TreeConfigFromSupervisor(cfg.Supervisor))
	if err != nil {
	    return err
	}
	tree.AddStorageService(services.NewFlushService(manager, cfg.Supervisor.FlushInterval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Service implementations live in the services subpackage.
*/
package supervisor
