// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// StatsCollector exposes the connection pool statistics (open, idle and
// in-use connections, wait counts) as Prometheus metrics labelled with the
// driver name. It returns nil when no pool is attached.
func (s *Storages) StatsCollector() prometheus.Collector {
	if s.db == nil {
		return nil
	}
	return collectors.NewDBStatsCollector(s.db.DB, s.db.driver)
}
