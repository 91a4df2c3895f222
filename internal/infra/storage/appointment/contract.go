package appointment

import "github.com/chris030500/Barberia/pkg/dbmetrics"

// DB executor interfaces shared with the metrics wrapper
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
